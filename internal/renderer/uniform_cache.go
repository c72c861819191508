package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache caches uniform locations to avoid repeated
// gl.GetUniformLocation calls; the desk scene sets the same handful of
// uniforms for every object, every frame.
type UniformCache struct {
	locations map[string]int32
	program   uint32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	uc.locations[name] = loc
	return loc
}

// SetFloat sets a float uniform using cached location
func (uc *UniformCache) SetFloat(name string, value float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

// SetVec2 sets a vec2 uniform using cached location
func (uc *UniformCache) SetVec2(name string, x, y float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform2f(loc, x, y)
	}
}

// SetVec3 sets a vec3 uniform using cached location
func (uc *UniformCache) SetVec3(name string, x, y, z float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform3f(loc, x, y, z)
	}
}

// SetVec4 sets a vec4 uniform using cached location
func (uc *UniformCache) SetVec4(name string, x, y, z, w float32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform4f(loc, x, y, z, w)
	}
}

// SetMat4 sets a mat4 uniform using cached location
func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// SetInt sets an int uniform using cached location
func (uc *UniformCache) SetInt(name string, value int32) {
	loc := uc.GetLocation(name)
	if loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// SetBool sets a bool uniform using cached location
func (uc *UniformCache) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	uc.SetInt(name, v)
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
