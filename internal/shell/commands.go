package shell

import (
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// command is a dispatch table entry. A negative arity accepts any number of
// arguments.
type command struct {
	usage   string
	arity   int
	handler func(s *Shell, args []string) (string, error)
}

func (c command) run(s *Shell, args []string) (string, error) {
	if c.arity >= 0 && len(args) != c.arity {
		return "", types.WrongArgs(c.usage)
	}
	return c.handler(s, args)
}

var commands = map[string]command{
	"hello":         {usage: "hello", arity: -1, handler: hello},
	"add":           {usage: "add [name] [phone]", arity: 2, handler: addContact},
	"change":        {usage: "change [name] [old_phone] [new_phone]", arity: 3, handler: changeContact},
	"phone":         {usage: "phone [name]", arity: 1, handler: showPhone},
	"all":           {usage: "all", arity: -1, handler: showAll},
	"add-birthday":  {usage: "add-birthday [name] [birthday]", arity: 2, handler: addBirthday},
	"show-birthday": {usage: "show-birthday [name]", arity: 1, handler: showBirthday},
	"birthdays":     {usage: "birthdays", arity: -1, handler: birthdays},
	"remove-phone":  {usage: "remove-phone [name] [phone]", arity: 2, handler: removePhone},
	"delete":        {usage: "delete [name]", arity: 1, handler: deleteContact},
}

func hello(*Shell, []string) (string, error) {
	return "How can I help you?", nil
}

func addContact(s *Shell, args []string) (string, error) {
	if err := s.dir.AddOrUpdate(args[0], args[1]); err != nil {
		return "", err
	}
	return "Contact added.", nil
}

func changeContact(s *Shell, args []string) (string, error) {
	rec, err := s.dir.Get(args[0])
	if err != nil {
		return "", err
	}
	found, err := rec.EditPhone(args[1], args[2])
	if err != nil {
		return "", err
	}
	if !found {
		return "Phone number not found.", nil
	}
	return "Contact updated.", nil
}

func showPhone(s *Shell, args []string) (string, error) {
	rec, err := s.dir.Get(args[0])
	if err != nil {
		return "", err
	}
	return strings.Join(rec.PhoneValues(), ", "), nil
}

func showAll(s *Shell, _ []string) (string, error) {
	if s.dir.Len() == 0 {
		return "No contacts found.", nil
	}
	return describeAll(s.dir.All()), nil
}

func addBirthday(s *Shell, args []string) (string, error) {
	rec, err := s.dir.Get(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func showBirthday(s *Shell, args []string) (string, error) {
	rec, err := s.dir.Get(args[0])
	if err != nil {
		return "", err
	}
	b, ok := rec.Birthday()
	if !ok {
		return "Birthday not set.", nil
	}
	return b.String(), nil
}

func birthdays(s *Shell, _ []string) (string, error) {
	upcoming := s.dir.UpcomingBirthdays(s.now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	return describeAll(upcoming), nil
}

func removePhone(s *Shell, args []string) (string, error) {
	rec, err := s.dir.Get(args[0])
	if err != nil {
		return "", err
	}
	if !rec.RemovePhone(args[1]) {
		return "Phone number not found.", nil
	}
	return "Phone number removed.", nil
}

func deleteContact(s *Shell, args []string) (string, error) {
	if !s.dir.Remove(args[0]) {
		return "", types.ErrContactNotFound
	}
	return "Contact deleted.", nil
}

func describeAll(recs []*types.Record) string {
	lines := make([]string, len(recs))
	for i, r := range recs {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
