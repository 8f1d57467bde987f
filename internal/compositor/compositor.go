package compositor

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/domain"
)

// Renderer turns a post or reply into PNG bytes. The caller owns the result.
//
//go:generate go run go.uber.org/mock/mockgen -source=compositor.go -destination=mocks/mock.go
type Renderer interface {
	Render(ctx context.Context, req domain.RenderRequest) ([]byte, error)
}
