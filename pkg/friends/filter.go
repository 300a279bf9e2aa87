package friends

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidFilterType is returned when a value cannot act as a Filter.
var ErrInvalidFilterType = errors.New("filter is not a Filter")

// Filter decides whether a record appears in the traversal output.
// IsSuitable must not modify the record or any traversal state.
type Filter interface {
	IsSuitable(rec Record) bool
}

// AcceptAll accepts every record.
type AcceptAll struct{}

func (AcceptAll) IsSuitable(Record) bool { return true }

// AcceptMale accepts male records.
type AcceptMale struct{}

func (AcceptMale) IsSuitable(rec Record) bool { return rec.Gender == Male }

// AcceptFemale accepts female records.
type AcceptFemale struct{}

func (AcceptFemale) IsSuitable(rec Record) bool { return rec.Gender == Female }

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(rec Record) bool

func (f FilterFunc) IsSuitable(rec Record) bool { return f(rec) }

// All accepts a record only when every filter accepts it.
func All(filters ...Filter) Filter {
	return FilterFunc(func(rec Record) bool {
		for _, f := range filters {
			if !f.IsSuitable(rec) {
				return false
			}
		}
		return true
	})
}

// Any accepts a record when at least one filter accepts it.
func Any(filters ...Filter) Filter {
	return FilterFunc(func(rec Record) bool {
		for _, f := range filters {
			if f.IsSuitable(rec) {
				return true
			}
		}
		return false
	})
}

// Not inverts f.
func Not(f Filter) Filter {
	return FilterFunc(func(rec Record) bool {
		return !f.IsSuitable(rec)
	})
}

// ParseFilter resolves one of the built-in filter names: "all", "male" or
// "female". The empty string selects AcceptAll.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return AcceptAll{}, nil
	case "male":
		return AcceptMale{}, nil
	case "female":
		return AcceptFemale{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidFilterType, name)
	}
}

// AsFilter converts v to a Filter. It accepts any Filter implementation and
// plain func(Record) bool values; anything else, including nil, fails with
// ErrInvalidFilterType.
func AsFilter(v any) (Filter, error) {
	switch f := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: got nil", ErrInvalidFilterType)
	case func(Record) bool:
		if f == nil {
			return nil, fmt.Errorf("%w: got nil func", ErrInvalidFilterType)
		}
		return FilterFunc(f), nil
	case Filter:
		if isNilValue(f) {
			return nil, fmt.Errorf("%w: got nil %T", ErrInvalidFilterType, f)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidFilterType, v)
	}
}

// isNilValue catches typed nils hidden in a non-nil interface, such as a nil
// FilterFunc or a nil pointer to a Filter implementation.
func isNilValue(f Filter) bool {
	rv := reflect.ValueOf(f)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
