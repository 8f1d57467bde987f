package compositorimpl

import "math"

// Metrics is the fixed geometry of a rendered post, in pixels.
type Metrics struct {
	Width           int
	Padding         int
	AvatarSize      int
	AvatarGap       int
	HeaderGap       int
	NameBaseline    int
	HandleOffset    int
	IconGap         int
	BodyFontPx      float64
	NameFontPx      float64
	HandleFontPx    float64
	ReplyGap        int
	MaxBannerHeight int
	CornerRadius    float64
	BadgeScale      float64
	IconBorder      float64
}

func DefaultMetrics() Metrics {
	return Metrics{
		Width:           2400,
		Padding:         80,
		AvatarSize:      160,
		AvatarGap:       40,
		HeaderGap:       100,
		NameBaseline:    70,
		HandleOffset:    80,
		IconGap:         14,
		BodyFontPx:      72,
		NameFontPx:      72,
		HandleFontPx:    64,
		ReplyGap:        30,
		MaxBannerHeight: 1000,
		CornerRadius:    60,
		BadgeScale:      1.25,
		IconBorder:      1.2,
	}
}

func (m Metrics) LineHeight() int {
	return int(math.Round(m.BodyFontPx * 1.25))
}

func (m Metrics) ReplyFontPx() float64 {
	return math.Round(m.BodyFontPx * 0.8)
}

func (m Metrics) ReplyLineHeight() int {
	return int(math.Round(m.ReplyFontPx() * 1.1))
}

// ContentWidth is the width available to body text and the media banner.
func (m Metrics) ContentWidth() int {
	return m.Width - m.Padding*2
}

type Palette struct {
	Background string
	Name       string
	Muted      string
	Body       string
	Accent     string
}

func DefaultPalette() Palette {
	return Palette{
		Background: "#15202B",
		Name:       "#FFFFFF",
		Muted:      "#8899A6",
		Body:       "#E1E8ED",
		Accent:     "#1DA1F2",
	}
}
