package commandimpl

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	mock_publisher "github.com/orgball2608/forum-tweet-bot/internal/publisher/mocks"
	"github.com/orgball2608/forum-tweet-bot/internal/ratelimit"
	"github.com/orgball2608/forum-tweet-bot/internal/replysession"
	mock_guildconfig "github.com/orgball2608/forum-tweet-bot/internal/repositories/guildconfig/mocks"
	mock_organization "github.com/orgball2608/forum-tweet-bot/internal/repositories/organization/mocks"
	mock_profile "github.com/orgball2608/forum-tweet-bot/internal/repositories/profile/mocks"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const (
	testGuild = "g1"
	testUser  = "u1"
)

var errAcknowledged = errors.New("interaction has already been acknowledged")

// fakeResponder records what the bot answered. Like Discord, it refuses a
// second initial response to the same interaction.
type fakeResponder struct {
	mu         sync.Mutex
	responses  []*discordgo.InteractionResponse
	edits      []*discordgo.WebhookEdit
	followups  []*discordgo.WebhookParams
	registered []*discordgo.ApplicationCommand
	guildID    string
	threads    []fakeThread
	pins       []string
	sent       map[string][]*discordgo.MessageSend
	threadErr  error
	dmErr      error
}

type fakeThread struct {
	forumID string
	name    string
	archive int
	content string
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) > 0 {
		return errAcknowledged
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) ApplicationCommandBulkOverwrite(_, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guildID = guildID
	f.registered = cmds
	return cmds, nil
}

func (f *fakeResponder) ForumThreadStart(channelID, name string, archiveDuration int, content string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.threadErr != nil {
		return nil, f.threadErr
	}
	f.threads = append(f.threads, fakeThread{forumID: channelID, name: name, archive: archiveDuration, content: content})
	return &discordgo.Channel{ID: "thread-" + channelID, ParentID: channelID}, nil
}

func (f *fakeResponder) ChannelMessagePin(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pins = append(f.pins, channelID+"/"+messageID)
	return nil
}

func (f *fakeResponder) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dmErr != nil {
		return nil, f.dmErr
	}
	return &discordgo.Channel{ID: "dm-" + recipientID, Type: discordgo.ChannelTypeDM}, nil
}

func (f *fakeResponder) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = make(map[string][]*discordgo.MessageSend)
	}
	f.sent[channelID] = append(f.sent[channelID], data)
	return &discordgo.Message{ID: "msg-" + channelID, ChannelID: channelID}, nil
}

// content returns the text of the only initial response.
func (f *fakeResponder) content(t *testing.T) string {
	t.Helper()
	if len(f.responses) != 1 {
		t.Fatalf("expected one response, got %d", len(f.responses))
	}
	if f.responses[0].Data == nil {
		return ""
	}
	return f.responses[0].Data.Content
}

func (f *fakeResponder) lastEdit(t *testing.T) string {
	t.Helper()
	if len(f.edits) == 0 {
		t.Fatal("expected an edited response")
	}
	edit := f.edits[len(f.edits)-1]
	if edit.Content == nil {
		return ""
	}
	return *edit.Content
}

type denyLimiter struct{}

func (denyLimiter) Allow(string) bool { return false }

type fixture struct {
	cmd       *CommandImpl
	api       *fakeResponder
	publisher *mock_publisher.MockClient
	profiles  *mock_profile.MockRepository
	orgs      *mock_organization.MockRepository
	configs   *mock_guildconfig.MockRepository
	sessions  *replysession.Store
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		api:       &fakeResponder{},
		publisher: mock_publisher.NewMockClient(ctrl),
		profiles:  mock_profile.NewMockRepository(ctrl),
		orgs:      mock_organization.NewMockRepository(ctrl),
		configs:   mock_guildconfig.NewMockRepository(ctrl),
		sessions:  replysession.NewStore(clockwork.NewFakeClock(), time.Minute),
	}

	cfg := &config.Config{}
	cfg.Discord.Token = "token"
	cfg.Discord.AppID = "app"
	cfg.Discord.GuildID = testGuild

	f.cmd = &CommandImpl{
		API:              f.api,
		Publisher:        f.publisher,
		ProfileRepo:      f.profiles,
		OrganizationRepo: f.orgs,
		GuildConfigRepo:  f.configs,
		Sessions:         f.sessions,
		Limiter:          ratelimit.NewInMemoryLimiter(1, time.Second, 100),
		Logger:           logger.NewNop(),
		Config:           cfg,
	}
	return f
}

func member(admin bool) *discordgo.Member {
	m := &discordgo.Member{User: &discordgo.User{ID: testUser, Username: "ada"}}
	if admin {
		m.Permissions = discordgo.PermissionAdministrator
	}
	return m
}

func str(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func sub(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

func slash(name string, admin bool, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: testGuild,
		Member:  member(admin),
		Data: discordgo.ApplicationCommandInteractionData{
			Name:     name,
			Options:  opts,
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{},
		},
	}
}

func button(customID string, values ...string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: testGuild,
		Member:  member(false),
		Data: discordgo.MessageComponentInteractionData{
			CustomID: customID,
			Values:   values,
		},
	}
}

func modal(customID, text string) *discordgo.Interaction {
	return modalInput(customID, replyTextInputID, text)
}

func modalInput(customID, inputID, text string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionModalSubmit,
		GuildID: testGuild,
		Member:  member(false),
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: customID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: inputID, Value: text},
				}},
			},
		},
	}
}
