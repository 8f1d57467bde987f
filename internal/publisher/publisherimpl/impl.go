package publisherimpl

import (
	"github.com/orgball2608/forum-tweet-bot/internal/compositor"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/post"
	"github.com/orgball2608/forum-tweet-bot/internal/telegram"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"github.com/orgball2608/forum-tweet-bot/pkg/retry"
	"go.uber.org/fx"
)

const (
	postFileName  = "tweet.png"
	replyFileName = "reply.png"
)

type Opts struct {
	fx.In

	Renderer compositor.Renderer
	PostRepo post.Repository
	Provider delivery.Provider
	Poster   delivery.ThreadPoster
	Resolver *threads.Resolver
	Telegram telegram.Client
	Logger   logger.Logger
}

type PublisherImpl struct {
	renderer compositor.Renderer
	postRepo post.Repository
	provider delivery.Provider
	poster   delivery.ThreadPoster
	resolver *threads.Resolver
	telegram telegram.Client
	logger   logger.Logger
	retry    retry.Config
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		renderer: opts.Renderer,
		postRepo: opts.PostRepo,
		provider: opts.Provider,
		poster:   opts.Poster,
		resolver: opts.Resolver,
		telegram: opts.Telegram,
		logger:   opts.Logger.WithComponent("Publisher"),
		retry:    retry.OnceConfig(),
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)
