package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISSING, "text box %q has no font", "hello")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `missing: text box "hello" has no font`, err.Error())
	//
	wrapped := fmt.Errorf("layout: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped))
	//
	assert.Equal(t, ErrorCode(0), Code(nil))
	assert.Equal(t, EFOREIGN, Code(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	err := WrapError(base, EINVALID, "bitmap of width %d", 3)
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "invalid: bitmap of width 3: boom", err.Error())
	//
	err = WrapError(nil, EINVALID, "empty markup")
	assert.Equal(t, EINVALID, Code(err))
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "invalid: empty markup", err.Error())
}
