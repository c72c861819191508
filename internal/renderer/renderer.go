package renderer

import (
	"image"

	"deskscene/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

var Debug bool = false
var DepthTestEnabled bool = true // Depth testing for correct object overlap
var ClearColorR float32 = 0.05   // Background clear color red
var ClearColorG float32 = 0.05   // Background clear color green
var ClearColorB float32 = 0.08   // Background clear color blue

// Render is the drawing surface the scene is replayed onto each frame.
// OpenGL is the only backend; the interface keeps the engine loop from
// reaching into GL state directly.
type Render interface {
	Init(width, height int32) error
	LoadMesh(kind shapes.Kind, mesh *shapes.Mesh) error
	LoadTexture(path, tag string) error
	CreateTextureFromImage(img image.Image, tag string) error
	DefineMaterial(material Material)
	SetupLights(lights []LightSource) error
	BeginFrame(camera *Camera)
	SetTransformations(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3)
	SetShaderColor(r, g, b, a float32)
	SetShaderTexture(tag string)
	SetTextureUVScale(u, v float32)
	SetShaderMaterial(tag string)
	DrawMesh(kind shapes.Kind) error
	UpdateViewport(width, height int32)
	Cleanup()
}
