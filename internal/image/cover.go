package imagepkg

import (
	"image"
	"math"
)

// CoverRect scales src uniformly so it fills dst, cropping the overflow,
// and centers it. The returned rectangle always contains dst.
func CoverRect(dst, src image.Point) (float64, image.Rectangle) {
	if src.X <= 0 || src.Y <= 0 {
		return 0, image.Rectangle{}
	}
	scale := math.Max(float64(dst.X)/float64(src.X), float64(dst.Y)/float64(src.Y))
	w := int(math.Round(float64(src.X) * scale))
	h := int(math.Round(float64(src.Y) * scale))
	x := (dst.X - w) / 2
	y := (dst.Y - h) / 2
	return scale, image.Rect(x, y, x+w, y+h)
}

// coverCrop returns the part of src that lands on dst after CoverRect, as a
// whole-pixel source rectangle sr, and where that crop goes on dst. Both
// edges of dr are the exact images of sr's edges rounded to the nearest
// pixel, so dr may overhang dst but the crop keeps the cover scale instead
// of being stretched to the visible area.
func coverCrop(dst, src image.Rectangle) (sr, dr image.Rectangle) {
	scale, r := CoverRect(dst.Size(), src.Size())
	r = r.Add(dst.Min)
	vis := r.Intersect(dst)
	if vis.Empty() {
		return image.Rectangle{}, image.Rectangle{}
	}
	toSrc := func(v, origin int, round func(float64) float64) int {
		return int(round(float64(v-origin) / scale))
	}
	sr = image.Rect(
		src.Min.X+toSrc(vis.Min.X, r.Min.X, math.Floor),
		src.Min.Y+toSrc(vis.Min.Y, r.Min.Y, math.Floor),
		src.Min.X+toSrc(vis.Max.X, r.Min.X, math.Ceil),
		src.Min.Y+toSrc(vis.Max.Y, r.Min.Y, math.Ceil),
	).Intersect(src)
	toDst := func(v, origin, base int) int {
		return base + int(math.Round(float64(v-origin)*scale))
	}
	dr = image.Rect(
		toDst(sr.Min.X, src.Min.X, r.Min.X),
		toDst(sr.Min.Y, src.Min.Y, r.Min.Y),
		toDst(sr.Max.X, src.Min.X, r.Min.X),
		toDst(sr.Max.Y, src.Min.Y, r.Min.Y),
	)
	return sr, dr
}
