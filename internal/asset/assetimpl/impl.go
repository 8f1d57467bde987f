package assetimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orgball2608/forum-tweet-bot/internal/asset"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

const userAgent = "Mozilla/5.0"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
	logger   logger.Logger
}

var _ asset.Fetcher = (*HTTPFetcher)(nil)

func New(opts Opts) *HTTPFetcher {
	return NewHTTPFetcher(opts.Config.Render.FetchTimeout, opts.Config.Render.MaxAssetBytes, opts.Logger)
}

func NewHTTPFetcher(timeout time.Duration, maxBytes int64, log logger.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
		logger:   log.WithComponent("AssetFetcher"),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &asset.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &asset.FetchError{URL: url, Err: err}
	}
	defer safeClose(resp.Body, f.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &asset.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &asset.FetchError{URL: url, Err: err}
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, &asset.FetchError{URL: url, Err: fmt.Errorf("asset larger than %d bytes", f.maxBytes)}
	}
	if len(data) == 0 {
		return nil, &asset.FetchError{URL: url, Err: fmt.Errorf("empty body")}
	}
	return data, nil
}

func safeClose(closer io.ReadCloser, log logger.Logger) {
	if err := closer.Close(); err != nil {
		log.Error("Error closing response body", "error", err)
	}
}
