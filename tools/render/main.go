package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orgball2608/forum-tweet-bot/internal/asset"
	"github.com/orgball2608/forum-tweet-bot/internal/asset/assetimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/compositor/compositorimpl"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type renderFlags struct {
	out          string
	name         string
	handle       string
	avatar       string
	media        string
	icon         string
	verification string
	replyTo      string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:          "render [text]",
		Short:        "Render a post or reply image to a PNG file",
		Long:         "Render a post the way the bot would publish it. Asset arguments accept http(s) URLs or local file paths.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.out, "out", "o", "tweet.png", "output file")
	flags.StringVar(&f.name, "name", "Display Name", "display name")
	flags.StringVar(&f.handle, "handle", "handle", "handle without @")
	flags.StringVar(&f.avatar, "avatar", "", "avatar image")
	flags.StringVar(&f.media, "media", "", "media banner image")
	flags.StringVar(&f.icon, "icon", "", "affiliation icon")
	flags.StringVar(&f.verification, "verification", "none", "badge tier: gold, blue, grey or none")
	flags.StringVar(&f.replyTo, "reply-to", "", "render as a reply to this handle")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, f renderFlags, text string) error {
	verification, err := domain.ParseVerification(f.verification)
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	env := "production"
	if f.verbose {
		env = "development"
	}
	log := logger.New(logger.Opts{Env: env, Writer: os.Stderr})

	fetcher := localFetcher{remote: assetimpl.NewHTTPFetcher(cfg.Render.FetchTimeout, cfg.Render.MaxAssetBytes, log)}
	renderer := compositorimpl.NewRenderer(fetcher, compositorimpl.DefaultMetrics(), map[domain.Verification]string{
		domain.VerificationBlue: cfg.Render.BadgeBlue,
		domain.VerificationGrey: cfg.Render.BadgeGrey,
		domain.VerificationGold: cfg.Render.BadgeGold,
	}, log)

	png, err := renderer.Render(ctx, domain.RenderRequest{
		AvatarURL:         f.avatar,
		DisplayName:       f.name,
		Handle:            strings.TrimPrefix(f.handle, "@"),
		Body:              text,
		MediaURL:          f.media,
		Verification:      verification,
		AffiliatedIconURL: f.icon,
		ReplyToHandle:     strings.TrimPrefix(f.replyTo, "@"),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.out, png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", f.out, len(png))
	return nil
}

// localFetcher reads plain paths from disk and hands URLs to remote.
type localFetcher struct {
	remote asset.Fetcher
}

func (l localFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return l.remote.Fetch(ctx, url)
	}
	data, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	if err != nil {
		return nil, &asset.FetchError{URL: url, Err: err}
	}
	return data, nil
}
