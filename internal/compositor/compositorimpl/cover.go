package compositorimpl

import (
	"image"
	"math"
)

// CoverRect returns the centred region of a srcW×srcH image that has the
// aspect ratio of dstW×dstH, cropping left/right for wider sources and
// top/bottom for taller ones.
func CoverRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}
	imageAspect := float64(srcW) / float64(srcH)
	bannerAspect := float64(dstW) / float64(dstH)

	if imageAspect > bannerAspect {
		sw := clamp(int(math.Round(float64(srcH)*bannerAspect)), 1, srcW)
		sx := (srcW - sw) / 2
		return image.Rect(sx, 0, sx+sw, srcH)
	}
	sh := clamp(int(math.Round(float64(srcW)/bannerAspect)), 1, srcH)
	sy := (srcH - sh) / 2
	return image.Rect(0, sy, srcW, sy+sh)
}

// BannerHeight scales the media to the banner width and caps the result.
func BannerHeight(srcW, srcH, bannerW, maxHeight int) int {
	if srcW <= 0 || srcH <= 0 {
		return 0
	}
	h := int(math.Round(float64(bannerW) * float64(srcH) / float64(srcW)))
	return min(h, maxHeight)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
