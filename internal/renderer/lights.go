package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLightSources matches the fixed lightSources array in the fragment
// shader. Slots are written once at startup and never touched per frame.
const MaxLightSources = 4

// LightSource is one fixed-slot point light.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32 // Specular exponent contribution of this light
	SpecularIntensity float32 // Scales the specular term
}

// DefaultLights is the light rig for the desk scene: two warm overhead
// lights simulating sunlight, a blue accent in front and a cool fill
// behind.
func DefaultLights() []LightSource {
	warmAmbient := mgl32.Vec3{0.3, 0.24, 0.1}
	warmDiffuse := mgl32.Vec3{0.8, 0.7, 0.5}
	warmSpecular := mgl32.Vec3{1.0, 0.9, 0.8}

	return []LightSource{
		{
			Position:          mgl32.Vec3{3.0, 14.0, 0.0},
			AmbientColor:      warmAmbient,
			DiffuseColor:      warmDiffuse,
			SpecularColor:     warmSpecular,
			FocalStrength:     32.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{-3.0, 14.0, 0.0},
			AmbientColor:      warmAmbient,
			DiffuseColor:      warmDiffuse,
			SpecularColor:     warmSpecular,
			FocalStrength:     32.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{0.6, 5.0, 6.0},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.4},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.8},
			SpecularColor:     mgl32.Vec3{0.5, 0.5, 1.0},
			FocalStrength:     12.0,
			SpecularIntensity: 0.5,
		},
		{
			Position:          mgl32.Vec3{-0.6, 7.0, -6.0},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.1},
			DiffuseColor:      mgl32.Vec3{0.6, 0.6, 0.6},
			SpecularColor:     mgl32.Vec3{0.9, 0.9, 0.9},
			FocalStrength:     12.0,
			SpecularIntensity: 0.5,
		},
	}
}
