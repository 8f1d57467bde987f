package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type request struct {
	method      string
	url         string
	contentType string
	body        []byte
	data        interface{}
}

// fakeRest records calls and answers from canned values.
type fakeRest struct {
	channels map[string]*discordgo.Channel
	hooks    []*discordgo.Webhook
	hooksErr error
	created  []*discordgo.Webhook
	nextHook int

	rawResponse []byte
	rawErr      error
	requests    []request

	sent    []*discordgo.MessageSend
	sentTo  []string
	edits   []*discordgo.MessageEdit
	sendErr error
	editErr error
	threads []*discordgo.Channel
}

var errNotFound = errors.New("404 Not Found")

func (f *fakeRest) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, errNotFound
	}
	return ch, nil
}

func (f *fakeRest) ChannelWebhooks(string, ...discordgo.RequestOption) ([]*discordgo.Webhook, error) {
	return f.hooks, f.hooksErr
}

func (f *fakeRest) WebhookCreate(channelID, name, _ string, _ ...discordgo.RequestOption) (*discordgo.Webhook, error) {
	if f.nextHook >= len(f.created) {
		return nil, errors.New("maximum number of webhooks reached")
	}
	h := f.created[f.nextHook]
	f.nextHook++
	h.ChannelID = channelID
	h.Name = name
	return h, nil
}

func (f *fakeRest) RequestRaw(method, urlStr, contentType string, b []byte, _ string, _ int, _ ...discordgo.RequestOption) ([]byte, error) {
	f.requests = append(f.requests, request{method: method, url: urlStr, contentType: contentType, body: b})
	return f.rawResponse, f.rawErr
}

func (f *fakeRest) RequestWithBucketID(method, urlStr string, data interface{}, _ string, _ ...discordgo.RequestOption) ([]byte, error) {
	f.requests = append(f.requests, request{method: method, url: urlStr, data: data})
	return []byte(`{}`), f.rawErr
}

func (f *fakeRest) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, data)
	f.sentTo = append(f.sentTo, channelID)
	return &discordgo.Message{ID: fmt.Sprintf("sent-%d", len(f.sent)), ChannelID: channelID}, nil
}

func (f *fakeRest) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeRest) GuildThreadsActive(string, ...discordgo.RequestOption) (*discordgo.ThreadsList, error) {
	return &discordgo.ThreadsList{Threads: f.threads}, nil
}
