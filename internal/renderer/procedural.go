package renderer

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters tuned for a soft, paper-like grain at 256px.
const (
	fallbackAlpha   = 2.0
	fallbackBeta    = 2.0
	fallbackOctaves = 3
	fallbackScale   = 8.0
)

// FallbackTexture generates a deterministic Perlin noise image for a tag
// whose texture file could not be loaded. The same tag always yields the
// same pixels, so a missing file renders consistently between runs.
func FallbackTexture(tag string, size int) *image.RGBA {
	if size <= 0 {
		size = 256
	}

	noise := perlin.NewPerlin(fallbackAlpha, fallbackBeta, fallbackOctaves, tagSeed(tag))
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			nx := float64(x) / float64(size) * fallbackScale
			ny := float64(y) / float64(size) * fallbackScale
			// Noise2D returns roughly [-1, 1]
			n := noise.Noise2D(nx, ny)
			v := (n + 1.0) / 2.0

			// Warm gray ramp so missing textures are visible but not garish
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(90 + v*110),
				G: uint8(80 + v*100),
				B: uint8(70 + v*90),
				A: 255,
			})
		}
	}
	return img
}

func tagSeed(tag string) int64 {
	h := fnv.New64a()
	h.Write([]byte(tag))
	return int64(h.Sum64())
}
