package middleware

import (
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContext struct {
	tele.Context
}

func (stubContext) Sender() *tele.User { return &tele.User{ID: 7} }
func (stubContext) Text() string       { return "boom" }

func TestRecoverMiddlewareSwallowsPanic(t *testing.T) {
	handler := RecoverMiddleware(func(tele.Context) error {
		panic("handler exploded")
	})

	assert.NotPanics(t, func() {
		require.NoError(t, handler(stubContext{}))
	})
}

func TestRecoverMiddlewarePassesThrough(t *testing.T) {
	called := false
	handler := RecoverMiddleware(func(tele.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(stubContext{}))
	assert.True(t, called)
}
