package domain

import "time"

const (
	DefaultMaxAccountsPerUser = 1
	MaxAccountsPerUserLimit   = 10
)

type GuildConfig struct {
	GuildID            string
	ForumChannelID     string
	WebhookID          string
	WebhookToken       string
	MaxAccountsPerUser int
}

func (c *GuildConfig) HasWebhook() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Thread is a discussion container created under a forum channel.
type Thread struct {
	ID        string
	ParentID  string
	Name      string
	CreatedAt time.Time
}
