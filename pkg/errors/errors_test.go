package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrFileNotFound, "config not found")

	assert.Equal(t, ErrFileNotFound, err.Code)
	assert.Equal(t, "config not found", err.Message)
	assert.Equal(t, "[FILE_NOT_FOUND] config not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrFileNotFound, "config not found: %s", "/tmp/config.zsh")

	assert.Equal(t, "[FILE_NOT_FOUND] config not found: /tmp/config.zsh", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrFileWrite, "failed to write config")

	require.NotNil(t, err)
	assert.Equal(t, ErrFileWrite, err.Code)
	assert.Equal(t, inner, err.Unwrap())
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrTemplateNotFound, "no template")

	assert.True(t, IsErrorCode(err, ErrTemplateNotFound))
	assert.False(t, IsErrorCode(err, ErrFileNotFound))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrTemplateNotFound))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrFileNotFound, "missing")
	outer := fmt.Errorf("while reading: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrFileNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrBackupCreate, GetErrorCode(New(ErrBackupCreate, "boom")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileRead, "read failed").WithDetail("path", "/tmp/config.zsh")

	assert.Equal(t, "/tmp/config.zsh", err.Details["path"])
}
