package renderer

import (
	"testing"
)

func TestFallbackTextureDeterministic(t *testing.T) {
	a := FallbackTexture("oak", 64)
	b := FallbackTexture("oak", 64)

	if len(a.Pix) != len(b.Pix) {
		t.Fatal("Same tag should produce images of the same size")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Pixels differ at %d; fallback must be deterministic per tag", i)
		}
	}
}

func TestFallbackTextureVariesByTag(t *testing.T) {
	a := FallbackTexture("oak", 64)
	b := FallbackTexture("granite", 64)

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different tags should produce different noise")
	}
}

func TestFallbackTextureSize(t *testing.T) {
	img := FallbackTexture("oak", 128)

	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Errorf("Expected 128x128, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestFallbackTextureDefaultSize(t *testing.T) {
	img := FallbackTexture("oak", 0)

	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Errorf("Non-positive size should default to 256, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestFallbackTextureOpaque(t *testing.T) {
	img := FallbackTexture("fabric", 32)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d,%d) is not opaque", x, y)
			}
		}
	}
}
