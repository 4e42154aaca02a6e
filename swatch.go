package colortool

import (
	"image"

	"golang.org/x/image/draw"
)

// SwatchSize is the width and height of every generated image.
const SwatchSize = 32

// Render returns a SwatchSize x SwatchSize image filled with c.
func Render(c Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SwatchSize, SwatchSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.RGBA8()), image.Point{}, draw.Src)
	return img
}
