package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Discord struct {
		Token       string `env:"DISCORD_BOT_TOKEN"`
		AppID       string `env:"DISCORD_APP_ID"`
		GuildID     string `env:"DISCORD_GUILD_ID"`
		WebhookName string `env:"DISCORD_WEBHOOK_NAME" env-default:"Twitter Post"`
	}
	// Telegram is only used for operator alerts. Leave the token empty to disable.
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Render struct {
		FetchTimeout  time.Duration `env:"RENDER_FETCH_TIMEOUT" env-default:"10s"`
		MaxAssetBytes int64         `env:"RENDER_MAX_ASSET_BYTES" env-default:"20971520"`
		BadgeBlue     string        `env:"RENDER_BADGE_BLUE" env-default:"https://upload.wikimedia.org/wikipedia/commons/archive/1/12/20241227105040%21Verification-badge.png"`
		BadgeGrey     string        `env:"RENDER_BADGE_GREY" env-default:"https://upload.wikimedia.org/wikipedia/commons/thumb/6/68/Twitter_Verified_Badge_Gray.svg/1024px-Twitter_Verified_Badge_Gray.svg.png"`
		BadgeGold     string        `env:"RENDER_BADGE_GOLD" env-default:"https://upload.wikimedia.org/wikipedia/commons/thumb/8/81/Twitter_Verified_Badge_Gold.svg/1024px-Twitter_Verified_Badge_Gold.svg.png"`
	}
	Threads struct {
		EventTimeout  time.Duration `env:"THREADS_EVENT_TIMEOUT" env-default:"5s"`
		RecencyWindow time.Duration `env:"THREADS_RECENCY_WINDOW" env-default:"60s"`
	}
	Replies struct {
		TTL           time.Duration `env:"REPLIES_TTL" env-default:"15m"`
		SweepInterval time.Duration `env:"REPLIES_SWEEP_INTERVAL" env-default:"1m"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"1"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"5s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"3"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the lib/pq style connection string used by goose.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		dsnValue(c.Postgres.Name),
		dsnValue(c.Postgres.User),
		dsnValue(c.Postgres.Pass),
		dsnValue(c.Postgres.Host),
		c.Postgres.Port,
		dsnValue(c.Postgres.SslMode),
	)
}

// GetPoolURL returns the URL form accepted by pgxpool.
func (c *Config) GetPoolURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:     net.JoinHostPort(c.Postgres.Host, strconv.Itoa(c.Postgres.Port)),
		Path:     "/" + c.Postgres.Name,
		RawQuery: url.Values{"sslmode": {c.Postgres.SslMode}}.Encode(),
	}
	return u.String()
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// dsnValue quotes a keyword/value pair value.
func dsnValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
