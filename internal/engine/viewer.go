package engine

import (
	"fmt"
	"runtime"

	"deskscene/internal/logger"
	"deskscene/internal/renderer"
	"deskscene/internal/scene"
	"deskscene/internal/shapes"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mouse look state: the cursor delta is only meaningful once we have seen
// a first position.
var lastX, lastY float64
var firstMouse bool = true

// Viewer owns the window and replays the scene every frame. The scene
// itself is static; only the camera moves.
type Viewer struct {
	Width             int32
	Height            int32
	Camera            *renderer.Camera
	EnableCameraInput bool

	scene       *scene.Scene
	rendererAPI renderer.Render
	window      *glfw.Window
}

func NewViewer(scn *scene.Scene) *Viewer {
	logger.Init()
	logger.Log.Info("Desk scene viewer initializing...")
	return &Viewer{
		Width:             1024,
		Height:            768,
		EnableCameraInput: true,
		scene:             scn,
		rendererAPI:       renderer.NewOpenGLRenderer(),
	}
}

// Run opens the window at the given position and blocks until it closes.
func (v *Viewer) Run(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.Width), int(v.Height), "Desk Scene", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	v.window = window
	v.window.MakeContextCurrent()
	v.window.SetPos(x, y)

	if err := v.rendererAPI.Init(v.Width, v.Height); err != nil {
		return err
	}
	if err := v.prepareScene(); err != nil {
		return err
	}

	v.Camera = renderer.NewDefaultCamera(v.Width, v.Height)
	lastX, lastY = float64(v.Width/2), float64(v.Height/2)
	v.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	v.window.SetCursorPosCallback(v.mouseCallback)

	v.renderLoop()
	return nil
}

// prepareScene loads every mesh, texture, material and light before the
// first frame. Any reference problem surfaces here, not mid-render.
func (v *Viewer) prepareScene() error {
	if err := v.scene.Validate(); err != nil {
		return err
	}

	for _, kind := range shapes.Kinds() {
		mesh, err := shapes.Build(kind)
		if err != nil {
			return err
		}
		if err := v.rendererAPI.LoadMesh(kind, mesh); err != nil {
			return err
		}
	}

	for _, tex := range v.scene.Textures {
		if err := v.rendererAPI.LoadTexture(tex.Path, tex.Tag); err != nil {
			return err
		}
	}

	for _, mat := range v.scene.Materials {
		v.rendererAPI.DefineMaterial(mat.RendererMaterial())
	}

	lights := make([]renderer.LightSource, 0, len(v.scene.Lights))
	for _, light := range v.scene.Lights {
		lights = append(lights, light.RendererLight())
	}
	if err := v.rendererAPI.SetupLights(lights); err != nil {
		return err
	}

	logger.Log.Info("Scene prepared",
		zap.Int("textures", len(v.scene.Textures)),
		zap.Int("materials", len(v.scene.Materials)),
		zap.Int("lights", len(v.scene.Lights)),
		zap.Int("objects", len(v.scene.Objects)))
	return nil
}

func (v *Viewer) renderLoop() {
	var lastTime = glfw.GetTime()
	var lastWidth, lastHeight = v.Width, v.Height

	for !v.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		actualWidth, actualHeight := v.window.GetSize()
		if int32(actualWidth) != v.Width || int32(actualHeight) != v.Height {
			v.Width = int32(actualWidth)
			v.Height = int32(actualHeight)
		}
		if v.Width != lastWidth || v.Height != lastHeight {
			v.rendererAPI.UpdateViewport(v.Width, v.Height)
			v.Camera.SetAspectRatio(float32(v.Width) / float32(v.Height))
			lastWidth, lastHeight = v.Width, v.Height
		}

		if v.EnableCameraInput {
			v.Camera.ProcessKeyboard(v.window, float32(deltaTime))
		}

		v.rendererAPI.BeginFrame(v.Camera)
		v.drawScene()

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	v.rendererAPI.Cleanup()
}

// drawScene replays the object list in declaration order. Transforms are
// composed fresh for every draw call and never kept between frames.
func (v *Viewer) drawScene() {
	for i := range v.scene.Objects {
		obj := &v.scene.Objects[i]

		v.rendererAPI.SetTransformations(
			mgl32.Vec3{obj.Scale[0], obj.Scale[1], obj.Scale[2]},
			obj.RotationDeg[0], obj.RotationDeg[1], obj.RotationDeg[2],
			mgl32.Vec3{obj.Position[0], obj.Position[1], obj.Position[2]},
		)

		if obj.Color != nil {
			v.rendererAPI.SetShaderColor(obj.Color[0], obj.Color[1], obj.Color[2], obj.Color[3])
		} else {
			v.rendererAPI.SetShaderTexture(obj.Texture)
		}
		v.rendererAPI.SetTextureUVScale(obj.UVScale[0], obj.UVScale[1])
		v.rendererAPI.SetShaderMaterial(obj.Material)

		if err := v.rendererAPI.DrawMesh(obj.Shape); err != nil {
			logger.Log.Error("Draw failed", zap.String("object", obj.Name), zap.Error(err))
		}
	}
}

func (v *Viewer) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

// GetWindow returns the GLFW window (for advanced use)
func (v *Viewer) GetWindow() *glfw.Window {
	return v.window
}

// Mouse callback: look around while the right mouse button is held.
func (v *Viewer) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if v.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		v.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
