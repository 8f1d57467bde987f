package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("webhook 404")
	err := WrapWithCode(cause, CodeDelivery, "Failed to send post via webhook.")

	assert.True(t, IsDelivery(err))
	assert.False(t, IsRender(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to send post via webhook.", GetMessage(err))
	assert.Equal(t, "Failed to send post via webhook.: webhook 404", err.Error())
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("publish: %w", NewWithCode(CodeSessionExpired, "Reply expired. Try again."))

	assert.Equal(t, CodeSessionExpired, GetCode(err))
	assert.True(t, IsSessionExpired(err))
	assert.Equal(t, "Reply expired. Try again.", GetMessage(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, WrapWithCode(nil, CodeStore, "x"))
	assert.Equal(t, "", GetMessage(nil))
}

func TestGetMessagePlainError(t *testing.T) {
	assert.Equal(t, "boom", GetMessage(errors.New("boom")))
	assert.Equal(t, "", GetCode(errors.New("boom")))
}
