package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
)

type ThreadLister struct {
	api rest
}

func NewThreadLister(session *discordgo.Session) *ThreadLister {
	return &ThreadLister{api: session}
}

var _ threads.Lister = (*ThreadLister)(nil)

func (l *ThreadLister) ActiveThreads(ctx context.Context, guildID string) ([]domain.Thread, error) {
	list, err := l.api.GuildThreadsActive(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Thread, 0, len(list.Threads))
	for _, ch := range list.Threads {
		out = append(out, toThread(ch))
	}
	return out, nil
}
