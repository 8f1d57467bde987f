package telegramimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutTokenIsDisabled(t *testing.T) {
	tg, err := New(Opts{Config: &config.Config{}, Logger: logger.NewNop()})
	require.NoError(t, err)
	assert.False(t, tg.enabled())

	// must not panic without a bot
	tg.SendMessageToUser(context.Background(), "publication failed")
	tg.SendImageToUser(context.Background(), "publication failed", []byte{1, 2, 3})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, strings.Repeat("é", 4), truncate(strings.Repeat("é", 6), 4))
}
