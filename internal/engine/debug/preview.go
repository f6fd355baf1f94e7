package debug

import (
	"image"

	"golang.org/x/image/draw"
)

// TilePreview repeats img tiles x tiles times and scales the result to a
// size x size square, which makes tiling seams easy to spot.
func TilePreview(img image.Image, tiles, size int) *image.RGBA {
	if tiles < 1 {
		tiles = 1
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	sheet := image.NewRGBA(image.Rect(0, 0, w*tiles, h*tiles))
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			r := image.Rect(tx*w, ty*h, (tx+1)*w, (ty+1)*h)
			draw.Draw(sheet, r, img, b.Min, draw.Src)
		}
	}

	if size <= 0 || (size == sheet.Bounds().Dx() && size == sheet.Bounds().Dy()) {
		return sheet
	}
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(out, out.Bounds(), sheet, sheet.Bounds(), draw.Src, nil)
	return out
}
