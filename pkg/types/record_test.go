package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordWithPhones(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r := NewRecord(name)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestRecordAddPhone(t *testing.T) {
	r := NewRecord("alice")

	require.NoError(t, r.AddPhone("0123456789"))
	require.NoError(t, r.AddPhone("0123456789"))
	err := r.AddPhone("12345")

	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Equal(t, []string{"0123456789", "0123456789"}, r.PhoneValues(), "duplicates kept, invalid rejected")
}

func TestRecordRemovePhone(t *testing.T) {
	r := newRecordWithPhones(t, "alice", "1111111111", "2222222222", "1111111111")

	assert.True(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []string{"2222222222", "1111111111"}, r.PhoneValues(), "only the first match is removed")

	assert.False(t, r.RemovePhone("9999999999"))
	assert.Len(t, r.PhoneValues(), 2)
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name      string
		oldValue  string
		newValue  string
		wantFound bool
		wantErr   error
		want      []string
	}{
		{
			name:      "match replaces in place",
			oldValue:  "2222222222",
			newValue:  "4444444444",
			wantFound: true,
			want:      []string{"1111111111", "4444444444", "3333333333"},
		},
		{
			name:     "missing old value leaves list unchanged",
			oldValue: "9999999999",
			newValue: "4444444444",
			want:     []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name:      "invalid new value rejected",
			oldValue:  "2222222222",
			newValue:  "44",
			wantFound: true,
			wantErr:   ErrInvalidPhone,
			want:      []string{"1111111111", "2222222222", "3333333333"},
		},
		{
			name:     "missing old value wins over invalid new value",
			oldValue: "9999999999",
			newValue: "44",
			want:     []string{"1111111111", "2222222222", "3333333333"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecordWithPhones(t, "alice", "1111111111", "2222222222", "3333333333")

			found, err := r.EditPhone(tt.oldValue, tt.newValue)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, r.PhoneValues())
		})
	}
}

func TestRecordFindPhone(t *testing.T) {
	r := newRecordWithPhones(t, "alice", "1111111111")

	p, ok := r.FindPhone("1111111111")
	assert.True(t, ok)
	assert.Equal(t, "1111111111", p.String())

	_, ok = r.FindPhone("2222222222")
	assert.False(t, ok)
}

func TestRecordPhonesIsCopy(t *testing.T) {
	r := newRecordWithPhones(t, "alice", "1111111111")

	phones := r.Phones()
	phones[0] = Phone{value: "2222222222"}

	assert.Equal(t, []string{"1111111111"}, r.PhoneValues())
}

func TestRecordSetBirthday(t *testing.T) {
	r := NewRecord("alice")

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday("25.06.1990"))
	require.NoError(t, r.SetBirthday("26.07.1991"))

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "26.07.1991", b.String(), "second set overwrites")

	err := r.SetBirthday("1991-07-26")
	assert.ErrorIs(t, err, ErrInvalidBirthday)
	b, _ = r.Birthday()
	assert.Equal(t, "26.07.1991", b.String(), "invalid input keeps previous birthday")
}

func TestRecordString(t *testing.T) {
	t.Run("no phones no birthday", func(t *testing.T) {
		r := NewRecord("bob")
		assert.Equal(t, "Contact name: bob, phones: , birthday: N/A", r.String())
	})

	t.Run("phones and birthday", func(t *testing.T) {
		r := newRecordWithPhones(t, "alice", "0123456789", "0123456798")
		require.NoError(t, r.SetBirthday("05.03.1985"))
		assert.Equal(t,
			"Contact name: alice, phones: 0123456789, 0123456798, birthday: 05.03.1985",
			r.String())
	})
}
