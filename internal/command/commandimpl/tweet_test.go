package commandimpl

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ada = &domain.Profile{
	ID:       "prof-1",
	GuildID:  testGuild,
	UserID:   testUser,
	Handle:   "ada",
	Username: "Ada",
}

func tweet(opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return slash("tweet", false, opts...)
}

func withImage(i *discordgo.Interaction, contentType string) *discordgo.Interaction {
	data := i.Data.(discordgo.ApplicationCommandInteractionData)
	data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "image",
		Type:  discordgo.ApplicationCommandOptionAttachment,
		Value: "att-1",
	})
	data.Resolved.Attachments = map[string]*discordgo.MessageAttachment{
		"att-1": {ID: "att-1", URL: "https://cdn.example/banner.png", ContentType: contentType},
	}
	i.Data = data
	return i
}

func TestTweetPublishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)
	f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{GuildID: testGuild, ForumChannelID: "forum"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req publisher.PostRequest) (*publisher.Result, error) {
			assert.Equal(t, "forum", req.ForumChannelID)
			assert.Equal(t, testUser, req.AuthorUserID)
			assert.Equal(t, "ada", req.Identity.Handle)
			assert.Equal(t, "hello world", req.Body)
			assert.Equal(t, "https://cdn.example/banner.png", req.MediaURL)
			assert.Equal(t, "ada", req.WebhookUsername)
			return &publisher.Result{ThreadID: "thread-1", Resolution: threads.TierDirect}, nil
		})

	f.cmd.HandleInteraction(ctx, withImage(tweet(str("account", "@ada"), str("content", "hello world")), "image/png"))

	require.Len(t, f.api.responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, f.api.responses[0].Type)
	assert.Equal(t, "Posted in https://discord.com/channels/g1/thread-1", f.api.lastEdit(t))
}

func TestTweetWithoutThread(t *testing.T) {
	f := newFixture(t)

	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)
	f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{ForumChannelID: "forum"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&publisher.Result{Resolution: threads.TierNone}, nil)

	f.cmd.HandleInteraction(context.Background(), tweet(str("account", "ada"), str("content", "hi")))

	assert.Equal(t, "Posted, but the thread could not be located yet.", f.api.lastEdit(t))
}

func TestTweetRejectsNonPNG(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)

	f.cmd.HandleInteraction(context.Background(), withImage(tweet(str("account", "ada"), str("content", "hi")), "image/jpeg"))

	assert.Equal(t, "Image must be a PNG.", f.api.content(t))
}

func TestTweetUnknownAccount(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "bob").Return(nil, profile.ErrNotFound)

	f.cmd.HandleInteraction(context.Background(), tweet(str("account", "bob"), str("content", "hi")))

	assert.Contains(t, f.api.content(t), "Selected account not found")
}

func TestTweetForumNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)
	f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{GuildID: testGuild}, nil)

	f.cmd.HandleInteraction(context.Background(), tweet(str("account", "ada"), str("content", "hi")))

	assert.Equal(t, "Twitter forum channel not set. Use /config forum to set it.", f.api.content(t))
}

func TestTweetRateLimited(t *testing.T) {
	f := newFixture(t)
	f.cmd.Limiter = denyLimiter{}
	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)

	f.cmd.HandleInteraction(context.Background(), tweet(str("account", "ada"), str("content", "hi")))

	assert.Contains(t, f.api.content(t), "too fast")
}

func TestTweetDeliveryFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "webhook failure",
			err:  errors.WrapWithCode(assert.AnError, errors.CodeDelivery, "Failed to send post via webhook."),
			want: "Failed to send post via webhook.",
		},
		{
			name: "not a forum",
			err:  errors.WrapWithCode(delivery.ErrNotForum, errors.CodeDelivery, "Failed to send post via webhook."),
			want: msgNotForum,
		},
		{
			name: "uncoded",
			err:  assert.AnError,
			want: msgSomethingWrong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)
			f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{ForumChannelID: "forum"}, nil)
			f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			f.cmd.HandleInteraction(context.Background(), tweet(str("account", "ada"), str("content", "hi")))

			assert.Equal(t, tt.want, f.api.lastEdit(t))
			assert.Empty(t, f.api.followups)
		})
	}
}

func TestOrgPostRequiresMembership(t *testing.T) {
	f := newFixture(t)
	f.orgs.EXPECT().GetByHandler(gomock.Any(), testGuild, "acme").Return(&domain.Organization{
		ID:          "org-1",
		GuildID:     testGuild,
		Handler:     "acme",
		OwnerUserID: "someone-else",
	}, nil)

	f.cmd.HandleInteraction(context.Background(), slash("org", false, sub("post", str("account", "acme"), str("content", "hi"))))

	assert.Equal(t, "You are not allowed to post as this organization.", f.api.content(t))
}

func TestOrgPostPublishesAsOrganization(t *testing.T) {
	f := newFixture(t)
	f.orgs.EXPECT().GetByHandler(gomock.Any(), testGuild, "acme").Return(&domain.Organization{
		ID:            "org-1",
		GuildID:       testGuild,
		Handler:       "acme",
		Username:      "Acme",
		OwnerUserID:   "owner",
		PosterUserIDs: []string{testUser},
		Verification:  domain.VerificationGold,
	}, nil)
	f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{ForumChannelID: "forum"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req publisher.PostRequest) (*publisher.Result, error) {
			assert.Equal(t, domain.IdentityOrganization, req.Identity.Kind)
			assert.Equal(t, domain.VerificationGold, req.Identity.Verification)
			return &publisher.Result{ThreadID: "t1", Resolution: threads.TierEvent}, nil
		})

	f.cmd.HandleInteraction(context.Background(), slash("org", false, sub("post", str("account", "acme"), str("content", "hi"))))

	assert.Equal(t, "Posted in https://discord.com/channels/g1/t1", f.api.lastEdit(t))
}

func TestPanicAnsweredWithGenericMessage(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().GetByHandle(gomock.Any(), testGuild, testUser, "ada").Return(ada, nil)
	f.configs.EXPECT().Get(gomock.Any(), testGuild).Return(&domain.GuildConfig{ForumChannelID: "forum"}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, publisher.PostRequest) (*publisher.Result, error) {
			panic("boom")
		})

	assert.NotPanics(t, func() {
		f.cmd.HandleInteraction(context.Background(), tweet(str("account", "ada"), str("content", "hi")))
	})

	// the deferral already acknowledged the interaction
	require.Len(t, f.api.followups, 1)
	assert.Equal(t, msgSomethingWrong, f.api.followups[0].Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, f.api.followups[0].Flags)
}

func TestCommandOutsideGuild(t *testing.T) {
	f := newFixture(t)
	i := tweet(str("account", "ada"), str("content", "hi"))
	i.GuildID = ""
	i.Member = nil
	i.User = &discordgo.User{ID: testUser}

	f.cmd.HandleInteraction(context.Background(), i)

	assert.Equal(t, msgGuildOnly, f.api.content(t))
}

func TestAutocompleteTweetAccounts(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().ListByUser(gomock.Any(), testGuild, testUser, maxChoices).Return([]*domain.Profile{
		{ID: "1", Handle: "ada", Username: "Ada"},
		{ID: "2", Handle: "grace", Username: "Grace"},
	}, nil)

	focused := str("account", "GRA")
	focused.Focused = true
	i := tweet(focused)
	i.Type = discordgo.InteractionApplicationCommandAutocomplete

	f.cmd.HandleInteraction(context.Background(), i)

	require.Len(t, f.api.responses, 1)
	resp := f.api.responses[0]
	assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, resp.Type)
	require.Len(t, resp.Data.Choices, 1)
	assert.Equal(t, "@grace (Grace)", resp.Data.Choices[0].Name)
	assert.Equal(t, "grace", resp.Data.Choices[0].Value)
}

func TestAutocompleteOrganizations(t *testing.T) {
	f := newFixture(t)
	f.orgs.EXPECT().ListPostable(gomock.Any(), testGuild, testUser, maxChoices).Return([]*domain.Organization{
		{ID: "o1", Handler: "acme", Username: "Acme"},
	}, nil)

	focused := str("account", "")
	focused.Focused = true
	i := slash("org", false, sub("post", focused))
	i.Type = discordgo.InteractionApplicationCommandAutocomplete

	f.cmd.HandleInteraction(context.Background(), i)

	require.Len(t, f.api.responses[0].Data.Choices, 1)
	assert.Equal(t, "acme", f.api.responses[0].Data.Choices[0].Value)
}

func TestFilterChoicesCapsResults(t *testing.T) {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for range 40 {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: "@x", Value: "x"})
	}
	assert.Len(t, filterChoices(choices, ""), maxChoices)
	assert.Empty(t, filterChoices(choices, "nomatch"))
}
