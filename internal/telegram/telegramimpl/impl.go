package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/forum-tweet-bot/internal/telegram"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// TelegramImpl is a no-op when no bot token is configured.
type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	UserID int64
}

func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Telegram")
	if opts.Config.Telegram.Token == "" || opts.Config.Telegram.User == 0 {
		log.Info("Telegram alerts disabled")
		return &TelegramImpl{Logger: log}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		UserID: opts.Config.Telegram.User,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) enabled() bool {
	return tg.TgBot != nil
}
