package compositorimpl

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontPair struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var parseFonts = sync.OnceValues(func() (fontPair, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fontPair{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fontPair{}, fmt.Errorf("parse bold font: %w", err)
	}
	return fontPair{regular: regular, bold: bold}, nil
})

// faces are not safe for concurrent use, so every render builds its own set.
type faces struct {
	body   font.Face
	name   font.Face
	handle font.Face
	reply  font.Face
}

func newFaces(m Metrics) (*faces, error) {
	fp, err := parseFonts()
	if err != nil {
		return nil, err
	}

	f := &faces{}
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&f.body, fp.regular, m.BodyFontPx},
		{&f.name, fp.bold, m.NameFontPx},
		{&f.handle, fp.regular, m.HandleFontPx},
		{&f.reply, fp.regular, m.ReplyFontPx()},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("create %vpx face: %w", s.size, err)
		}
		*s.dst = face
	}
	return f, nil
}

func (f *faces) Close() {
	for _, face := range []font.Face{f.body, f.name, f.handle, f.reply} {
		if face != nil {
			_ = face.Close()
		}
	}
}

func measureWith(face font.Face) func(string) float64 {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}

// ascentOf returns how far s rises above the baseline when drawn with face.
func ascentOf(face font.Face, s string, fallback float64) float64 {
	bounds, _ := font.BoundString(face, s)
	ascent := float64(-bounds.Min.Y) / 64
	if ascent <= 0 {
		return fallback
	}
	return ascent
}
