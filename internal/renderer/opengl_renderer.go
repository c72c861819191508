package renderer

import (
	"fmt"
	"image"

	"deskscene/internal/logger"
	"deskscene/internal/shapes"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// OpenGLRenderer draws the scene with a single forward pass. Meshes are
// uploaded once at startup and redrawn with fresh transforms every frame.
type OpenGLRenderer struct {
	shader    Shader
	uniforms  *UniformCache
	Textures  *TextureRegistry
	Materials *MaterialRegistry
	meshes    map[shapes.Kind]*glMesh
}

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func NewOpenGLRenderer() *OpenGLRenderer {
	return &OpenGLRenderer{
		Textures:  NewTextureRegistry(),
		Materials: NewMaterialRegistry(),
		meshes:    make(map[shapes.Kind]*glMesh),
	}
}

func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)

	rend.shader = InitShader()
	rend.shader.Compile()
	rend.uniforms = NewUniformCache(rend.shader.program)

	logger.Log.Info("OpenGL renderer initialized",
		zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

// LoadMesh uploads tessellated geometry for a shape kind. Each kind is
// uploaded once no matter how many scene objects draw it.
func (rend *OpenGLRenderer) LoadMesh(kind shapes.Kind, mesh *shapes.Mesh) error {
	if _, exists := rend.meshes[kind]; exists {
		return nil
	}
	if mesh.VertexCount() == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("empty mesh for shape %q", kind)
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Interleaved)*4, gl.Ptr(mesh.Interleaved), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(shapes.Stride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	rend.meshes[kind] = &glMesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(mesh.Indices)),
	}

	logger.Log.Debug("Mesh uploaded",
		zap.String("kind", string(kind)),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("indices", len(mesh.Indices)))
	return nil
}

// LoadTexture registers the image file under tag. A file that cannot be
// read or decoded falls back to a generated noise texture so the scene
// still renders with every object in place.
func (rend *OpenGLRenderer) LoadTexture(path, tag string) error {
	err := rend.Textures.Load(path, tag)
	if err == nil {
		return nil
	}

	logger.Log.Warn("Texture load failed, generating fallback",
		zap.String("path", path), zap.String("tag", tag), zap.Error(err))

	if fbErr := rend.Textures.CreateFromImage(FallbackTexture(tag, 256), tag); fbErr != nil {
		return fmt.Errorf("fallback texture for %q: %w", tag, fbErr)
	}
	rend.Textures.recordFallback()
	return nil
}

func (rend *OpenGLRenderer) CreateTextureFromImage(img image.Image, tag string) error {
	return rend.Textures.CreateFromImage(img, tag)
}

func (rend *OpenGLRenderer) DefineMaterial(material Material) {
	rend.Materials.Define(material)
}

// SetupLights writes the fixed light slots into the shader. Called once
// at startup; unused slots are zeroed so they contribute nothing.
func (rend *OpenGLRenderer) SetupLights(lights []LightSource) error {
	if len(lights) > MaxLightSources {
		return fmt.Errorf("%d lights configured, shader supports %d", len(lights), MaxLightSources)
	}

	rend.shader.Use()
	rend.uniforms.SetBool("bUseLighting", true)

	for i := 0; i < MaxLightSources; i++ {
		var light LightSource
		if i < len(lights) {
			light = lights[i]
		}
		prefix := fmt.Sprintf("lightSources[%d]", i)
		rend.uniforms.SetVec3(prefix+".position", light.Position.X(), light.Position.Y(), light.Position.Z())
		rend.uniforms.SetVec3(prefix+".ambientColor", light.AmbientColor.X(), light.AmbientColor.Y(), light.AmbientColor.Z())
		rend.uniforms.SetVec3(prefix+".diffuseColor", light.DiffuseColor.X(), light.DiffuseColor.Y(), light.DiffuseColor.Z())
		rend.uniforms.SetVec3(prefix+".specularColor", light.SpecularColor.X(), light.SpecularColor.Y(), light.SpecularColor.Z())
		rend.uniforms.SetFloat(prefix+".focalStrength", light.FocalStrength)
		rend.uniforms.SetFloat(prefix+".specularIntensity", light.SpecularIntensity)
	}

	logger.Log.Info("Scene lights configured", zap.Int("count", len(lights)))
	return nil
}

// BeginFrame clears the buffers and sets the per-frame camera uniforms.
func (rend *OpenGLRenderer) BeginFrame(camera *Camera) {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	rend.shader.Use()
	rend.uniforms.SetMat4("viewProjection", camera.GetViewProjection())
	rend.uniforms.SetVec3("viewPos", camera.Position.X(), camera.Position.Y(), camera.Position.Z())

	rend.Textures.Bind()
}

// SetTransformations composes the model matrix for the next draw call and
// pushes it to the shader. Nothing is retained between frames.
func (rend *OpenGLRenderer) SetTransformations(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) {
	model := ComposeTransform(scale, xRotDeg, yRotDeg, zRotDeg, position)
	rend.uniforms.SetMat4("model", model)
}

// SetShaderColor switches the next draw call to a solid color.
func (rend *OpenGLRenderer) SetShaderColor(r, g, b, a float32) {
	rend.uniforms.SetBool("bUseTexture", false)
	rend.uniforms.SetVec4("objectColor", r, g, b, a)
}

// SetShaderTexture selects the texture registered under tag for the next
// draw call. Unknown tags are logged and leave the previous state alone.
func (rend *OpenGLRenderer) SetShaderTexture(tag string) {
	slot := rend.Textures.FindSlot(tag)
	if slot == TextureNotFound {
		logger.Log.Warn("Unknown texture tag", zap.String("tag", tag))
		return
	}

	rend.uniforms.SetBool("bUseTexture", true)
	rend.uniforms.SetInt("objectTexture", slot)
}

func (rend *OpenGLRenderer) SetTextureUVScale(u, v float32) {
	rend.uniforms.SetVec2("UVscale", u, v)
}

// SetShaderMaterial pushes the tagged material's lighting response.
func (rend *OpenGLRenderer) SetShaderMaterial(tag string) {
	material, ok := rend.Materials.Find(tag)
	if !ok {
		logger.Log.Warn("Unknown material tag", zap.String("tag", tag))
		return
	}

	rend.uniforms.SetVec3("material.ambientColor",
		material.AmbientColor.X(), material.AmbientColor.Y(), material.AmbientColor.Z())
	rend.uniforms.SetFloat("material.ambientStrength", material.AmbientStrength)
	rend.uniforms.SetVec3("material.diffuseColor",
		material.DiffuseColor.X(), material.DiffuseColor.Y(), material.DiffuseColor.Z())
	rend.uniforms.SetVec3("material.specularColor",
		material.SpecularColor.X(), material.SpecularColor.Y(), material.SpecularColor.Z())
	rend.uniforms.SetFloat("material.shininess", material.Shininess)
}

// DrawMesh renders the shape with whatever transform, color/texture and
// material uniforms are currently set.
func (rend *OpenGLRenderer) DrawMesh(kind shapes.Kind) error {
	mesh, ok := rend.meshes[kind]
	if !ok {
		return fmt.Errorf("mesh %q not loaded", kind)
	}

	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, mesh := range rend.meshes {
		gl.DeleteVertexArrays(1, &mesh.vao)
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
	}
	rend.meshes = make(map[shapes.Kind]*glMesh)

	rend.Textures.LogStats()
	rend.Textures.DestroyAll()
}
