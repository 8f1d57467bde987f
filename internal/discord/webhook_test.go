package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	mock_guildconfig "github.com/orgball2608/forum-tweet-bot/internal/repositories/guildconfig/mocks"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guildID = "g1"
	forumID = "forum-1"
)

var target = delivery.Target{GuildID: guildID, ForumChannelID: forumID}

func forum() *discordgo.Channel {
	return &discordgo.Channel{ID: forumID, Type: discordgo.ChannelTypeGuildForum}
}

func newProvider(t *testing.T, api *fakeRest) (*WebhookProvider, *mock_guildconfig.MockRepository) {
	configs := mock_guildconfig.NewMockRepository(gomock.NewController(t))
	return newWebhookProvider(api, configs, "Twitter Post", logger.NewNop()), configs
}

func TestAcquireUsesCachedWebhook(t *testing.T) {
	api := &fakeRest{channels: map[string]*discordgo.Channel{forumID: forum()}}
	p, configs := newProvider(t, api)
	configs.EXPECT().Get(gomock.Any(), guildID).Return(&domain.GuildConfig{
		GuildID:        guildID,
		ForumChannelID: forumID,
		WebhookID:      "wh-cached",
		WebhookToken:   "tok",
	}, nil)

	ch, err := p.Acquire(context.Background(), target, false)
	require.NoError(t, err)
	assert.Equal(t, "wh-cached", ch.ID())
}

func TestAcquireReusesExistingForumWebhook(t *testing.T) {
	api := &fakeRest{
		channels: map[string]*discordgo.Channel{forumID: forum()},
		hooks: []*discordgo.Webhook{
			{ID: "wh-app", Token: ""},
			{ID: "wh-incoming", Token: "tok"},
		},
	}
	p, configs := newProvider(t, api)
	configs.EXPECT().Get(gomock.Any(), guildID).Return(&domain.GuildConfig{GuildID: guildID, ForumChannelID: forumID}, nil)
	configs.EXPECT().SetWebhook(gomock.Any(), guildID, "wh-incoming", "tok").Return(nil)

	ch, err := p.Acquire(context.Background(), target, false)
	require.NoError(t, err)
	assert.Equal(t, "wh-incoming", ch.ID())
	assert.Zero(t, api.nextHook)
}

func TestAcquireCreatesWebhook(t *testing.T) {
	api := &fakeRest{
		channels: map[string]*discordgo.Channel{forumID: forum()},
		hooksErr: errors.New("missing access"),
		created:  []*discordgo.Webhook{{ID: "wh-new", Token: "tok-new"}},
	}
	p, configs := newProvider(t, api)
	configs.EXPECT().Get(gomock.Any(), guildID).Return(nil, errors.New("db down"))
	configs.EXPECT().SetWebhook(gomock.Any(), guildID, "wh-new", "tok-new").Return(nil)

	ch, err := p.Acquire(context.Background(), target, false)
	require.NoError(t, err)
	assert.Equal(t, "wh-new", ch.ID())
	assert.Equal(t, "Twitter Post", api.created[0].Name)
}

func TestAcquireFreshSkipsCache(t *testing.T) {
	api := &fakeRest{
		channels: map[string]*discordgo.Channel{forumID: forum()},
		hooks:    []*discordgo.Webhook{{ID: "wh-old", Token: "tok"}},
		created:  []*discordgo.Webhook{{ID: "wh-fresh", Token: "tok-fresh"}},
	}
	p, configs := newProvider(t, api)
	configs.EXPECT().SetWebhook(gomock.Any(), guildID, "wh-fresh", "tok-fresh").Return(nil)

	ch, err := p.Acquire(context.Background(), target, true)
	require.NoError(t, err)
	assert.Equal(t, "wh-fresh", ch.ID())
}

func TestAcquireRejectsNonForum(t *testing.T) {
	api := &fakeRest{channels: map[string]*discordgo.Channel{
		forumID: {ID: forumID, Type: discordgo.ChannelTypeGuildText},
	}}
	p, _ := newProvider(t, api)

	_, err := p.Acquire(context.Background(), target, false)
	assert.ErrorIs(t, err, delivery.ErrNotForum)
}

func TestAppliedTags(t *testing.T) {
	tagged := forum()
	tagged.AvailableTags = []discordgo.ForumTag{{ID: "t1", Name: "news"}, {ID: "t2"}}
	assert.Nil(t, appliedTags(tagged), "tags are only applied when the forum requires one")

	tagged.Flags = discordgo.ChannelFlagRequireTag
	assert.Equal(t, []string{"t1"}, appliedTags(tagged))

	empty := forum()
	empty.Flags = discordgo.ChannelFlagRequireTag
	assert.Nil(t, appliedTags(empty))
}

func TestWebhookChannelSend(t *testing.T) {
	api := &fakeRest{rawResponse: []byte(`{"id":"m1","channel_id":"thread-1"}`)}
	ch := &WebhookChannel{api: api, id: "wh", token: "tok", appliedTags: []string{"t1"}}

	resp, err := ch.Send(context.Background(), delivery.Message{
		Image:    []byte("png"),
		FileName: "tweet.png",
		Title:    "@ada: hi",
		Username: "ada",
	})
	require.NoError(t, err)
	assert.Equal(t, delivery.Response{MessageID: "m1", ChannelID: "thread-1"}, resp)

	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "POST", req.method)
	assert.Equal(t, discordgo.EndpointWebhookToken("wh", "tok")+"?wait=true", req.url)
	assert.Contains(t, req.contentType, "multipart/form-data")
	assert.Contains(t, string(req.body), `"thread_name":"@ada: hi"`)
	assert.Contains(t, string(req.body), `"applied_tags":["t1"]`)
	assert.Contains(t, string(req.body), `tweet.png`)
}

func TestWebhookChannelSendError(t *testing.T) {
	api := &fakeRest{rawErr: errors.New("unknown webhook")}
	ch := &WebhookChannel{api: api, id: "wh", token: "tok"}

	_, err := ch.Send(context.Background(), delivery.Message{Image: []byte("png"), FileName: "tweet.png"})
	assert.Error(t, err)
}

func TestWebhookChannelEditControls(t *testing.T) {
	api := &fakeRest{}
	ch := &WebhookChannel{api: api, id: "wh", token: "tok"}

	err := ch.EditControls(context.Background(), "m1", "thread-1", delivery.Controls{PostID: "p1", ShowLike: true})
	require.NoError(t, err)

	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "PATCH", req.method)
	assert.Equal(t, discordgo.EndpointWebhookMessage("wh", "tok", "m1")+"?thread_id=thread-1", req.url)
	edit, ok := req.data.(*discordgo.WebhookEdit)
	require.True(t, ok)
	require.NotNil(t, edit.Components)
	assert.Len(t, *edit.Components, 1)
}

func TestWebhookChannelEditControlsWithoutThread(t *testing.T) {
	api := &fakeRest{}
	ch := &WebhookChannel{api: api, id: "wh", token: "tok"}

	require.NoError(t, ch.EditControls(context.Background(), "m1", "", delivery.Controls{PostID: "p1"}))
	assert.Equal(t, discordgo.EndpointWebhookMessage("wh", "tok", "m1"), api.requests[0].url)
}
