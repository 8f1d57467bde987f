package domain

import "time"

// Post is a published (or pending) simulated social post.
// MessageID and ThreadID stay empty until delivery and thread resolution succeed;
// an empty ThreadID after publication is a valid terminal state.
type Post struct {
	ID           string
	GuildID      string
	AuthorUserID string
	Handle       string
	Username     string
	Content      string
	ImageURL     string
	MessageID    string
	ThreadID     string
	WebhookID    string
	LikesCount   int
	RepliesCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Post) IsPending() bool {
	return p.MessageID == ""
}

// PostDelivery holds the identifiers learnt once a post has been delivered.
type PostDelivery struct {
	MessageID string
	ThreadID  string
	WebhookID string
}
