package renderer

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Material holds the lighting response of one surface, looked up by tag
// before each draw call.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an append-only list of materials. Tag uniqueness is
// by convention; lookups take the first match.
type MaterialRegistry struct {
	mu        sync.RWMutex
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material. Called once per material at startup;
// materials are never mutated afterwards.
func (mr *MaterialRegistry) Define(material Material) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.materials = append(mr.materials, material)
}

// Find scans for the material registered under tag. The second return
// value is false when the tag is unknown.
func (mr *MaterialRegistry) Find(tag string) (Material, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	for i := range mr.materials {
		if mr.materials[i].Tag == tag {
			return mr.materials[i], true
		}
	}
	return Material{}, false
}

func (mr *MaterialRegistry) Count() int {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return len(mr.materials)
}
