package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

func TestFromScreenTwoColumnLayout(t *testing.T) {
	screen := dialog.Screen{
		Options: []dialog.Option{
			{Label: "a", Data: "t:0"},
			{Label: "b", Data: "t:1"},
			{Label: "c", Data: "t:2"},
			{Label: "d", Data: "t:3"},
			{Label: "e", Data: "t:4"},
		},
		Columns: 2,
	}

	kb := FromScreen(screen)
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 2)
	assert.Len(t, kb.InlineKeyboard[2], 1)
	assert.Equal(t, "e", kb.InlineKeyboard[2][0].Text)
	assert.Equal(t, "t:4", kb.InlineKeyboard[2][0].CallbackData)
}

func TestFromScreenDefaultsToSingleColumn(t *testing.T) {
	screen := dialog.Screen{
		Options: []dialog.Option{{Label: "a", Data: "x"}, {Label: "b", Data: "y"}},
	}

	kb := FromScreen(screen)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[0], 1)
}

func TestFromScreenWithoutOptions(t *testing.T) {
	kb := FromScreen(dialog.Screen{Text: "ждите"})
	assert.Empty(t, kb.InlineKeyboard)
}
