package compositorimpl

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/asset"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/layout"
	"golang.org/x/sync/errgroup"
)

// Plan is the result of the measuring pass. Every asset is already resolved,
// so drawing never changes the layout.
type Plan struct {
	Request      domain.RenderRequest
	Lines        []layout.Line
	TextY        int
	BannerHeight int
	Height       int

	Avatar      asset.Result
	Badge       asset.Result
	Affiliation asset.Result
	Media       asset.Result
}

func (p *Plan) TextHeight(m Metrics) int {
	return len(p.Lines) * m.LineHeight()
}

// Measure tokenizes and wraps the body, fetches all assets and computes the
// canvas height.
func (r *Impl) Measure(ctx context.Context, req domain.RenderRequest) (*Plan, error) {
	fs, err := newFaces(r.metrics)
	if err != nil {
		return nil, renderError(err)
	}
	defer fs.Close()

	lines, err := layout.Wrap(layout.Tokenize(req.Body), measureWith(fs.body), float64(r.metrics.ContentWidth()))
	if err != nil {
		return nil, renderError(err)
	}

	plan := &Plan{Request: req, Lines: lines}
	r.fetchAssets(ctx, plan)

	m := r.metrics
	plan.TextY = m.Padding + m.AvatarSize + m.HeaderGap
	if req.IsReply() {
		plan.TextY += m.ReplyLineHeight() + m.ReplyGap
	}
	if plan.Media.Ok() {
		plan.BannerHeight = max(0, BannerHeight(plan.Media.Width(), plan.Media.Height(), m.ContentWidth(), m.MaxBannerHeight))
	}
	plan.Height = plan.TextY + plan.TextHeight(m) + plan.BannerHeight + m.Padding
	return plan, nil
}

func (r *Impl) fetchAssets(ctx context.Context, plan *Plan) {
	req := plan.Request
	targets := []struct {
		name string
		url  string
		dst  *asset.Result
	}{
		{"avatar", req.AvatarURL, &plan.Avatar},
		{"badge", r.badges[req.Verification], &plan.Badge},
		{"affiliation", req.AffiliatedIconURL, &plan.Affiliation},
		{"media", req.MediaURL, &plan.Media},
	}

	// each goroutine writes a distinct field of plan
	var g errgroup.Group
	for _, t := range targets {
		if t.url == "" {
			continue
		}
		g.Go(func() error {
			res := asset.Load(ctx, r.fetcher, t.url)
			if res.Err != nil {
				r.logger.Warn("Asset unavailable, omitting it", "element", t.name, "url", t.url, "error", res.Err)
			}
			*t.dst = res
			return nil
		})
	}
	_ = g.Wait()
}
