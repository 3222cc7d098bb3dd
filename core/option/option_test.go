package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/decal/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.core")
	defer teardown()
	//
	x := option.SomeInt(42)
	y1, err := x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.Unwrap() + 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, 43, y1)
	//
	x = option.Int()
	y2, err := x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	assert.NoError(t, err)
	assert.Equal(t, "No Value", y2)
	//
	x = option.SomeInt(42)
	y3, _ := x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	assert.Equal(t, "Value = 42", y3)
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decal.core")
	defer teardown()
	//
	failure := errors.New("value required")
	_, err := option.Int().Match(option.Maybe{
		option.None: option.Fail(failure),
		option.Some: 1,
	})
	assert.ErrorIs(t, err, failure)
	//
	v, err := option.Int().Match(option.Maybe{
		option.None:  option.Fail(failure),
		option.Error: "recovered",
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", v)
	//
	_, err = option.Int().Match(option.Maybe{option.Some: 1})
	assert.ErrorIs(t, err, option.ErrCannotMatchUnsetValue)
}

func TestIntT(t *testing.T) {
	assert.True(t, option.Int().IsNone())
	assert.False(t, option.SomeInt(0).IsNone())
	assert.Equal(t, 5, option.Int().OrElse(5))
	assert.Equal(t, -3, option.SomeInt(-3).OrElse(5))
	assert.True(t, option.SomeInt(3).Equals(3))
	assert.False(t, option.Int().Equals(0))
	var zero option.IntT
	assert.True(t, zero.IsNone())
	assert.Equal(t, option.Int(), zero)
	assert.Equal(t, "Int.None", option.Int().String())
	assert.Equal(t, "12", option.SomeInt(12).String())
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
