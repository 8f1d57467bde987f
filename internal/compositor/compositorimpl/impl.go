package compositorimpl

import (
	"bytes"
	"context"
	"fmt"

	"github.com/orgball2608/forum-tweet-bot/internal/asset"
	"github.com/orgball2608/forum-tweet-bot/internal/compositor"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher asset.Fetcher
	Config  *config.Config
	Logger  logger.Logger
}

type Impl struct {
	fetcher asset.Fetcher
	metrics Metrics
	palette Palette
	badges  map[domain.Verification]string
	logger  logger.Logger
}

var _ compositor.Renderer = (*Impl)(nil)

func New(opts Opts) *Impl {
	return NewRenderer(opts.Fetcher, DefaultMetrics(), map[domain.Verification]string{
		domain.VerificationBlue: opts.Config.Render.BadgeBlue,
		domain.VerificationGrey: opts.Config.Render.BadgeGrey,
		domain.VerificationGold: opts.Config.Render.BadgeGold,
	}, opts.Logger)
}

func NewRenderer(fetcher asset.Fetcher, m Metrics, badges map[domain.Verification]string, log logger.Logger) *Impl {
	return &Impl{
		fetcher: fetcher,
		metrics: m,
		palette: DefaultPalette(),
		badges:  badges,
		logger:  log.WithComponent("Compositor"),
	}
}

func (r *Impl) Metrics() Metrics {
	return r.metrics
}

// Render measures the request, fetching every asset, and then draws it.
func (r *Impl) Render(ctx context.Context, req domain.RenderRequest) ([]byte, error) {
	plan, err := r.Measure(ctx, req)
	if err != nil {
		return nil, err
	}

	img, err := r.Draw(plan)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeRender, "Failed to encode image.")
	}

	r.logger.Debug("Rendered post image",
		"handle", req.Handle,
		"reply", req.IsReply(),
		"lines", len(plan.Lines),
		"height", plan.Height,
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

func renderError(err error) error {
	return errors.WrapWithCode(fmt.Errorf("render: %w", err), errors.CodeRender, "Failed to render image.")
}
