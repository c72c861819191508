package renderer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"deskscene/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// MaxTextureSlots bounds the registry to the texture units the shader can
// address at once.
const MaxTextureSlots = 16

// TextureNotFound is the sentinel returned for lookups of unknown tags.
const TextureNotFound int32 = -1

// TextureStats provides debugging and profiling information
type TextureStats struct {
	Loads        int
	Fallbacks    int
	LookupHits   int
	LookupMisses int
}

type textureEntry struct {
	tag string
	id  uint32
}

// TextureRegistry maps programmer-chosen tags to GPU texture handles.
// Entries are appended at load time and only released in bulk.
type TextureRegistry struct {
	mu      sync.RWMutex
	entries []textureEntry
	stats   TextureStats
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{
		entries: make([]textureEntry, 0, MaxTextureSlots),
	}
}

// Load reads an image file, uploads it as a mipmapped repeating texture
// and registers the handle under tag.
func (tr *TextureRegistry) Load(path, tag string) error {
	imgFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open texture %s: %w", path, err)
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("decode texture %s: %w", path, err)
	}

	if err := tr.CreateFromImage(img, tag); err != nil {
		return err
	}

	bounds := img.Bounds()
	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))
	return nil
}

// CreateFromImage uploads an in-memory image and registers it under tag.
// Used for procedurally generated fallback textures.
func (tr *TextureRegistry) CreateFromImage(img image.Image, tag string) error {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	// Image rows come top-down; GL expects the first row at the bottom.
	flipVertical(rgba)

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := tr.add(tag, textureID); err != nil {
		gl.DeleteTextures(1, &textureID)
		return err
	}
	return nil
}

// add registers a handle under tag. Separate from the GL upload so the
// bookkeeping can be exercised without a GL context.
func (tr *TextureRegistry) add(tag string, id uint32) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if len(tr.entries) >= MaxTextureSlots {
		return fmt.Errorf("texture registry full: %d slots", MaxTextureSlots)
	}
	tr.entries = append(tr.entries, textureEntry{tag: tag, id: id})
	tr.stats.Loads++
	return nil
}

// FindID returns the GPU handle registered under tag, or TextureNotFound.
func (tr *TextureRegistry) FindID(tag string) int32 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i := range tr.entries {
		if tr.entries[i].tag == tag {
			tr.stats.LookupHits++
			return int32(tr.entries[i].id)
		}
	}
	tr.stats.LookupMisses++
	return TextureNotFound
}

// FindSlot returns the texture unit index for tag, or TextureNotFound.
// Slot order is load order, which is also bind order.
func (tr *TextureRegistry) FindSlot(tag string) int32 {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i := range tr.entries {
		if tr.entries[i].tag == tag {
			tr.stats.LookupHits++
			return int32(i)
		}
	}
	tr.stats.LookupMisses++
	return TextureNotFound
}

// Bind binds every registered texture to its slot's texture unit.
func (tr *TextureRegistry) Bind() {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	for i := range tr.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tr.entries[i].id)
	}
}

// DestroyAll releases every GPU handle and empties the registry. Textures
// are never removed individually.
func (tr *TextureRegistry) DestroyAll() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i := range tr.entries {
		gl.DeleteTextures(1, &tr.entries[i].id)
	}
	tr.entries = tr.entries[:0]
	logger.Log.Info("Texture registry destroyed")
}

func (tr *TextureRegistry) Count() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return len(tr.entries)
}

// Stats returns a copy of the registry counters.
func (tr *TextureRegistry) Stats() TextureStats {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.stats
}

func (tr *TextureRegistry) recordFallback() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.stats.Fallbacks++
}

// LogStats logs the registry counters.
func (tr *TextureRegistry) LogStats() {
	stats := tr.Stats()
	logger.Log.Info("Texture registry stats",
		zap.Int("loads", stats.Loads),
		zap.Int("fallbacks", stats.Fallbacks),
		zap.Int("lookupHits", stats.LookupHits),
		zap.Int("lookupMisses", stats.LookupMisses))
}

// flipVertical mirrors the image rows in place.
func flipVertical(rgba *image.RGBA) {
	height := rgba.Rect.Dy()
	rowLen := rgba.Stride
	tmp := make([]uint8, rowLen)
	for y := 0; y < height/2; y++ {
		top := rgba.Pix[y*rowLen : (y+1)*rowLen]
		bottom := rgba.Pix[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
