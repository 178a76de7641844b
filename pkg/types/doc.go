// Package types defines the contact directory domain model: validated phone
// numbers and birthdays, the per-contact Record, the insertion-ordered
// Directory with its birthday-window query, the Store interface for snapshot
// persistence, and the classified errors returned by every operation.
//
// Nothing in this package prints or logs. Operations either return a value or
// a *Error whose Kind tells the command layer how to present it.
package types
