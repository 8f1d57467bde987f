package commandimpl

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func configForum(ch *discordgo.Channel) *discordgo.Interaction {
	i := slash("config", true, sub("forum", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "channel",
		Type:  discordgo.ApplicationCommandOptionChannel,
		Value: ch.ID,
	}))
	data := i.Data.(discordgo.ApplicationCommandInteractionData)
	data.Resolved.Channels = map[string]*discordgo.Channel{ch.ID: ch}
	i.Data = data
	return i
}

func TestConfigForum(t *testing.T) {
	f := newFixture(t)
	f.configs.EXPECT().SetForumChannel(gomock.Any(), testGuild, "forum-1").Return(nil)

	f.cmd.HandleInteraction(context.Background(), configForum(&discordgo.Channel{ID: "forum-1", Type: discordgo.ChannelTypeGuildForum}))

	require.Len(t, f.api.responses, 1)
	assert.Equal(t, "Saved Twitter forum channel: <#forum-1>", f.api.responses[0].Data.Embeds[0].Description)

	require.Len(t, f.api.threads, 1)
	thread := f.api.threads[0]
	assert.Equal(t, "forum-1", thread.forumID)
	assert.Equal(t, "Social Media", thread.name)
	assert.Equal(t, 1440, thread.archive)
	assert.Contains(t, thread.content, "**Quick start**")
	assert.Contains(t, thread.content, "/account register")
	assert.Equal(t, []string{"thread-forum-1/thread-forum-1"}, f.api.pins)
}

func TestConfigForumIgnoresQuickStartFailure(t *testing.T) {
	f := newFixture(t)
	f.api.threadErr = assert.AnError
	f.configs.EXPECT().SetForumChannel(gomock.Any(), testGuild, "forum-1").Return(nil)

	f.cmd.HandleInteraction(context.Background(), configForum(&discordgo.Channel{ID: "forum-1", Type: discordgo.ChannelTypeGuildForum}))

	require.Len(t, f.api.responses, 1)
	assert.Equal(t, "Configuration Updated", f.api.responses[0].Data.Embeds[0].Title)
	assert.Empty(t, f.api.pins)
}

func TestConfigForumRejectsTextChannel(t *testing.T) {
	f := newFixture(t)

	f.cmd.HandleInteraction(context.Background(), configForum(&discordgo.Channel{ID: "c1", Type: discordgo.ChannelTypeGuildText}))

	assert.Equal(t, "Please select a forum channel.", f.api.content(t))
}

func TestConfigRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	i := configForum(&discordgo.Channel{ID: "forum-1", Type: discordgo.ChannelTypeGuildForum})
	i.Member.Permissions = 0

	f.cmd.HandleInteraction(context.Background(), i)

	assert.Equal(t, msgAdminOnly, f.api.content(t))
}

func TestConfigMaxAccounts(t *testing.T) {
	count := func(n float64) *discordgo.ApplicationCommandInteractionDataOption {
		return &discordgo.ApplicationCommandInteractionDataOption{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: n}
	}

	t.Run("saves", func(t *testing.T) {
		f := newFixture(t)
		f.configs.EXPECT().SetMaxAccounts(gomock.Any(), testGuild, 3).Return(nil)

		f.cmd.HandleInteraction(context.Background(), slash("config", true, sub("max-accounts", count(3))))

		assert.Equal(t, "Max accounts per user: 3", f.api.responses[0].Data.Embeds[0].Description)
	})

	t.Run("out of range", func(t *testing.T) {
		f := newFixture(t)

		f.cmd.HandleInteraction(context.Background(), slash("config", true, sub("max-accounts", count(11))))

		assert.Equal(t, "Max accounts must be between 1 and 10.", f.api.content(t))
	})
}

func TestAdminVerifyByMention(t *testing.T) {
	f := newFixture(t)
	const target = "123456789012345678"
	f.orgs.EXPECT().SetVerification(gomock.Any(), testGuild, target, "", domain.VerificationGold).Return(int64(1), nil)
	f.profiles.EXPECT().SetVerification(gomock.Any(), profile.Filter{GuildID: testGuild, UserID: target}, domain.VerificationGold).Return(int64(2), nil)

	f.cmd.HandleInteraction(context.Background(), slash("admin", true,
		sub("verify", str("target", "<@"+target+">"), str("type", "gold"))))

	assert.Equal(t, "Organizations updated: 1 | Profiles updated: 2", f.api.content(t))
}

func TestAdminVerifyByHandle(t *testing.T) {
	f := newFixture(t)
	f.orgs.EXPECT().SetVerification(gomock.Any(), testGuild, "", "ada", domain.VerificationNone).Return(int64(0), nil)
	f.profiles.EXPECT().SetVerification(gomock.Any(), profile.Filter{GuildID: testGuild, Handle: "ada"}, domain.VerificationNone).Return(int64(1), nil)

	f.cmd.HandleInteraction(context.Background(), slash("admin", true,
		sub("verify", str("target", "@ada"), str("type", "none"))))

	assert.Equal(t, "Organizations updated: 0 | Profiles updated: 1", f.api.content(t))
}

func TestAdminVerifyRejectsUnknownType(t *testing.T) {
	f := newFixture(t)

	f.cmd.HandleInteraction(context.Background(), slash("admin", true,
		sub("verify", str("target", "@ada"), str("type", "purple"))))

	assert.Equal(t, "Provide a valid verification type.", f.api.content(t))
}
