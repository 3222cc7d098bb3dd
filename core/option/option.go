package option

import (
	"errors"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices Maybe) (interface{}, error)
	IsNone() bool
}

// Match matches o against choices. Values of the map may be plain values or
// functions of type func(interface{}) (interface{}, error), which will be called
// with o as argument.
func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if maybe == nil {
		return nil, ErrNoSuchMatchPattern
	}
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o)
	} else {
		err = ErrNoSuchMatchPattern
	}
	if err != nil {
		tracer().Debugf("option match failed: %v", err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type) (interface{}, error) {
	if f, ok := op.(func(interface{}) (interface{}, error)); ok {
		return f(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Maybe{
//          option.None: option.Fail(errors.New("value required")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// --- IntT ------------------------------------------------------------------

// IntT is an option type for int. The zero value is unset.
type IntT struct {
	v   int
	set bool
}

// SomeInt creates an optional int with an initial value of x.
func SomeInt(x int) IntT {
	return IntT{v: x, set: true}
}

// Int creates an optional int without an initial value.
func Int() IntT {
	return IntT{}
}

// Match matches o against a set of choices.
func (o IntT) Match(choices Maybe) (interface{}, error) {
	return choices.Match(o)
}

// Equals compares o to an int value. Unset options never equal any int.
func (o IntT) Equals(other int) bool {
	return o.set && o.v == other
}

// Unwrap returns the underlying value. It is 0 for unset options.
func (o IntT) Unwrap() int {
	return o.v
}

// OrElse returns the value of o if set, d otherwise.
func (o IntT) OrElse(d int) int {
	if !o.set {
		return d
	}
	return o.v
}

// IsNone returns true if o is unset.
func (o IntT) IsNone() bool {
	return !o.set
}

func (o IntT) String() string {
	if !o.set {
		return "Int.None"
	}
	return strconv.Itoa(o.v)
}

var _ Type = IntT{}
