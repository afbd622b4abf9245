package telegram

import (
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
)

func TestBuildPollerWebhook(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Telegram.RunMode = coreconfig.RunModeWebhook
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	cfg.Webhook.URL = "https://bot.example.com/updates"

	webhook, ok := BuildPoller(cfg).(*tele.Webhook)
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0:8443", webhook.Listen)
	assert.Equal(t, "https://bot.example.com/updates", webhook.Endpoint.PublicURL)
}

func TestBuildPollerLongPoll(t *testing.T) {
	tests := []struct {
		name       string
		timeoutSec int
		want       time.Duration
	}{
		{name: "default timeout", timeoutSec: 0, want: 10 * time.Second},
		{name: "configured timeout", timeoutSec: 25, want: 25 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &coreconfig.Config{}
			cfg.Telegram.RunMode = coreconfig.RunModeLongpoll
			cfg.Telegram.LongPollTimeoutSeconds = tt.timeoutSec

			poller, ok := BuildPoller(cfg).(*tele.LongPoller)
			require.True(t, ok)
			assert.Equal(t, tt.want, poller.Timeout)
		})
	}
}
