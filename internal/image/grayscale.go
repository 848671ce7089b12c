package imagepkg

import "image"

// Luma returns round(0.299r + 0.587g + 0.114b).
func Luma(r, g, b uint8) uint8 {
	v := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return uint8(v + 0.5)
}

// Grayscale replaces R, G and B of every pixel with its luma, leaving
// alpha alone. The whole buffer is converted, not just the photo's area.
func Grayscale(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			gray := Luma(row[i], row[i+1], row[i+2])
			row[i], row[i+1], row[i+2] = gray, gray, gray
		}
	}
}
