// Package friends implements an ordered, filterable breadth-first walk over a
// directory of friend records.
//
// The walk starts from every record flagged as a best friend, emits each level
// sorted by name and never schedules a name twice. Records are pulled one at a
// time through an Iterator:
//
//	dir := friends.NewDirectory(records)
//	it, err := friends.NewLimitedIterator(dir, friends.AcceptFemale{}, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for !it.Done() {
//	    fmt.Println(it.Next().Name)
//	}
package friends

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGender is returned when a gender value is neither male nor female.
var ErrInvalidGender = errors.New("invalid gender")

// Gender of a friend record.
type Gender uint8

const (
	Male Gender = iota + 1
	Female
)

// ParseGender converts "male" or "female" (any case) to a Gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	if g != Male && g != Female {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGender, g)
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Record is a single friend. Friends holds the names of its mutual friends;
// a name may refer to a record that is not in the Directory.
type Record struct {
	Name    string   `json:"name" yaml:"name"`
	Gender  Gender   `json:"gender" yaml:"gender"`
	Best    bool     `json:"best,omitempty" yaml:"best,omitempty"`
	Friends []string `json:"friends,omitempty" yaml:"friends,omitempty"`
}
