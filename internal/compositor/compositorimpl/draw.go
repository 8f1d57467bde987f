package compositorimpl

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/orgball2608/forum-tweet-bot/internal/layout"
)

const replyPrefix = "Replying to "

// Draw paints a measured plan. It performs no I/O.
func (r *Impl) Draw(plan *Plan) (*gg.Context, error) {
	fs, err := newFaces(r.metrics)
	if err != nil {
		return nil, renderError(err)
	}
	defer fs.Close()

	m, p := r.metrics, r.palette
	req := plan.Request
	dc := gg.NewContext(m.Width, plan.Height)

	dc.SetHexColor(p.Background)
	dc.DrawRoundedRectangle(0, 0, float64(m.Width), float64(plan.Height), m.CornerRadius)
	dc.Fill()

	if plan.Avatar.Ok() {
		r.drawAvatar(dc, plan.Avatar.Image)
	}

	textX := float64(m.Padding + m.AvatarSize + m.AvatarGap)
	nameY := float64(m.Padding + m.NameBaseline)
	handleY := nameY + float64(m.HandleOffset)

	dc.SetFontFace(fs.name)
	dc.SetHexColor(p.Name)
	dc.DrawString(req.DisplayName, textX, nameY)
	nameWidth, _ := dc.MeasureString(req.DisplayName)

	ascent := ascentOf(fs.name, req.DisplayName, m.NameFontPx)
	iconSize := int(math.Round(ascent * m.BadgeScale))
	iconY := int(math.Round(nameY - ascent/2 - float64(iconSize)/2))
	nextX := int(math.Round(textX+nameWidth)) + m.IconGap

	if plan.Badge.Ok() {
		dc.DrawImage(imaging.Resize(plan.Badge.Image, iconSize, iconSize, imaging.Lanczos), nextX, iconY)
		nextX += iconSize + m.IconGap
	}
	if plan.Affiliation.Ok() {
		dc.SetHexColor(p.Muted)
		dc.SetLineWidth(m.IconBorder)
		dc.DrawRectangle(float64(nextX-1), float64(iconY-1), float64(iconSize+2), float64(iconSize+2))
		dc.Stroke()
		dc.DrawImage(imaging.Resize(plan.Affiliation.Image, iconSize, iconSize, imaging.Lanczos), nextX, iconY)
	}

	dc.SetFontFace(fs.handle)
	dc.SetHexColor(p.Muted)
	dc.DrawString("@"+req.Handle, textX, handleY)

	if req.IsReply() {
		replyX := float64(m.Padding)
		replyY := float64(m.Padding + m.AvatarSize + m.HeaderGap)
		dc.SetFontFace(fs.reply)
		dc.SetHexColor(p.Muted)
		dc.DrawString(replyPrefix, replyX, replyY)
		prefixWidth, _ := dc.MeasureString(replyPrefix)
		dc.SetHexColor(p.Accent)
		dc.DrawString("@"+req.ReplyToHandle, replyX+prefixWidth, replyY)
	}

	dc.SetFontFace(fs.body)
	r.drawLines(dc, plan.Lines, float64(m.Padding), float64(plan.TextY))

	if plan.BannerHeight > 0 && plan.Media.Ok() {
		bannerY := plan.TextY + plan.TextHeight(m)
		dc.DrawImage(coverImage(plan.Media.Image, m.ContentWidth(), plan.BannerHeight), m.Padding, bannerY)
	}

	return dc, nil
}

func (r *Impl) drawAvatar(dc *gg.Context, avatar image.Image) {
	m := r.metrics
	radius := float64(m.AvatarSize) / 2
	dc.Push()
	dc.DrawCircle(float64(m.Padding)+radius, float64(m.Padding)+radius, radius)
	dc.Clip()
	dc.DrawImage(imaging.Resize(avatar, m.AvatarSize, m.AvatarSize, imaging.Lanczos), m.Padding, m.Padding)
	dc.ResetClip()
	dc.Pop()
}

func (r *Impl) drawLines(dc *gg.Context, lines []layout.Line, x, y float64) {
	space, _ := dc.MeasureString(" ")
	lineHeight := float64(r.metrics.LineHeight())
	for i, line := range lines {
		drawX := x
		for _, tok := range line {
			if tok.Class.Highlighted() {
				dc.SetHexColor(r.palette.Accent)
			} else {
				dc.SetHexColor(r.palette.Body)
			}
			dc.DrawString(tok.Text, drawX, y+float64(i)*lineHeight)
			w, _ := dc.MeasureString(tok.Text)
			drawX += w + space
		}
	}
}

func coverImage(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	crop := CoverRect(b.Dx(), b.Dy(), w, h).Add(b.Min)
	return imaging.Resize(imaging.Crop(src, crop), w, h, imaging.Lanczos)
}
