package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Fetcher downloads remote images used in rendered posts.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchError is returned for network failures, non-2xx responses and timeouts.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is a fetched and decoded image, or the reason it is absent.
type Result struct {
	Image image.Image
	Err   error
}

func (r Result) Ok() bool {
	return r.Err == nil && r.Image != nil
}

// Width and Height are zero when the image is absent.
func (r Result) Width() int {
	if !r.Ok() {
		return 0
	}
	return r.Image.Bounds().Dx()
}

func (r Result) Height() int {
	if !r.Ok() {
		return 0
	}
	return r.Image.Bounds().Dy()
}

// Absent is the result for an element with no source at all.
var Absent = Result{}

// Load fetches and decodes url. Failures never escape: they are carried in
// the returned Result so the caller can omit the element.
func Load(ctx context.Context, f Fetcher, url string) Result {
	if url == "" {
		return Absent
	}
	raw, err := f.Fetch(ctx, url)
	if err != nil {
		return Result{Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Result{Err: &FetchError{URL: url, Err: fmt.Errorf("decode: %w", err)}}
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return Result{Err: &FetchError{URL: url, Err: fmt.Errorf("empty image")}}
	}
	return Result{Image: img}
}
