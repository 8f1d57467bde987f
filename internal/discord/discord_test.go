package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 175928847299117063 was created at 2016-04-30 11:18:25.796 UTC.
const snowflake = "175928847299117063"

func TestNotifierFanOut(t *testing.T) {
	n := newThreadNotifier()

	var a, b []domain.Thread
	stopA := n.Subscribe(func(th domain.Thread) { a = append(a, th) })
	stopB := n.Subscribe(func(th domain.Thread) { b = append(b, th) })
	assert.Equal(t, 2, n.Len())

	n.onThreadCreate(nil, &discordgo.ThreadCreate{Channel: &discordgo.Channel{ID: snowflake, ParentID: "forum-1", Name: "@ada: hi"}})
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "forum-1", a[0].ParentID)
	assert.Equal(t, 2016, a[0].CreatedAt.Year())

	stopA()
	stopA()
	assert.Equal(t, 1, n.Len())

	n.onThreadCreate(nil, &discordgo.ThreadCreate{Channel: &discordgo.Channel{ID: "2"}})
	assert.Len(t, a, 1)
	assert.Len(t, b, 2)

	stopB()
	assert.Zero(t, n.Len())
}

func TestNotifierIgnoresEmptyEvent(t *testing.T) {
	n := newThreadNotifier()
	called := false
	n.Subscribe(func(domain.Thread) { called = true })

	n.onThreadCreate(nil, &discordgo.ThreadCreate{})
	assert.False(t, called)
}

func TestListerMapsThreads(t *testing.T) {
	l := &ThreadLister{api: &fakeRest{threads: []*discordgo.Channel{
		{ID: snowflake, ParentID: "forum-1", Name: "@ada: hi"},
	}}}

	got, err := l.ActiveThreads(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, snowflake, got[0].ID)
	assert.Equal(t, "@ada: hi", got[0].Name)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestControlsRow(t *testing.T) {
	row := ControlsRow(delivery.Controls{
		PostID:        "p1",
		LikesCount:    1234,
		ShowLike:      true,
		ReplyToHandle: "ada",
	})
	require.Len(t, row, 1)
	buttons := row[0].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 2)

	like := buttons[0].(discordgo.Button)
	assert.Equal(t, "Likes: 1,234", like.Label)
	assert.Equal(t, "post:like:p1", like.CustomID)

	reply := buttons[1].(discordgo.Button)
	assert.Equal(t, "Reply", reply.Label)
	assert.Equal(t, "post:reply:p1:ada", reply.CustomID)
}

func TestControlsRowReplyOnly(t *testing.T) {
	row := ControlsRow(delivery.Controls{PostID: "p1"})
	buttons := row[0].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 1)
	assert.Equal(t, "post:reply:p1", buttons[0].(discordgo.Button).CustomID)
}

func TestBotPosterPostReply(t *testing.T) {
	api := &fakeRest{}
	p := &BotPoster{api: api}

	id, err := p.PostReply(context.Background(), "thread-1", "m1", []byte("png"), "reply.png")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, api.sent, 1)
	sent := api.sent[0]
	assert.Equal(t, "thread-1", api.sentTo[0])
	require.NotNil(t, sent.Reference)
	assert.Equal(t, "m1", sent.Reference.MessageID)
	assert.False(t, *sent.Reference.FailIfNotExists)
	require.NotNil(t, sent.AllowedMentions)
	assert.Empty(t, sent.AllowedMentions.Parse)
	assert.Equal(t, "reply.png", sent.Files[0].Name)
}

func TestBotPosterAttachAndSendControls(t *testing.T) {
	api := &fakeRest{}
	p := &BotPoster{api: api}

	require.NoError(t, p.AttachControls(context.Background(), "thread-1", "m5", delivery.Controls{PostID: "p1"}))
	require.Len(t, api.edits, 1)
	assert.Equal(t, "m5", api.edits[0].ID)
	assert.Equal(t, "thread-1", api.edits[0].Channel)

	id, err := p.SendControls(context.Background(), "thread-1", delivery.Controls{PostID: "p1", ShowLike: true})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, api.sent[0].Components, 1)
}
