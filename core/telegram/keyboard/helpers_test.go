package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyButtons(t *testing.T) {
	markup := ReplyButtons(
		[]string{"New question", "Give up"},
		[]string{"Hint"},
	)

	require.Len(t, markup.ReplyKeyboard, 2)
	require.Len(t, markup.ReplyKeyboard[0], 2)
	require.Len(t, markup.ReplyKeyboard[1], 1)
	assert.Equal(t, "New question", markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, "Give up", markup.ReplyKeyboard[0][1].Text)
	assert.Equal(t, "Hint", markup.ReplyKeyboard[1][0].Text)
	assert.True(t, markup.ResizeKeyboard)
}
