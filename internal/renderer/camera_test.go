package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}

	if !approxEqual(cam.AspectRatio, 800.0/600.0) {
		t.Errorf("Expected aspect ratio 800/600, got %f", cam.AspectRatio)
	}
}

func TestCameraFrontIsNormalized(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	length := cam.Front.Len()
	if math.Abs(float64(length)-1.0) > 0.001 {
		t.Errorf("Front vector should be unit length, got %f", length)
	}
}

func TestCameraLooksDownAtScene(t *testing.T) {
	cam := NewDefaultCamera(1024, 768)

	if cam.Pitch >= 0 {
		t.Error("Default camera should pitch down toward the desk")
	}
	if cam.Front.Y() >= 0 {
		t.Error("Front vector should point downward")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraSetFov(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetFov(90)

	if cam.Fov != 90 {
		t.Errorf("Expected FOV 90, got %f", cam.Fov)
	}
	if cam.Projection == before {
		t.Error("Changing FOV should update the projection matrix")
	}
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(21.0 / 9.0)

	if cam.Projection == before {
		t.Error("Changing aspect ratio should update the projection matrix")
	}
}

func TestCameraMousePitchClamp(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.ProcessMouseMovement(0, 10000, true)
	if cam.Pitch > 89.0 {
		t.Errorf("Pitch should clamp at 89, got %f", cam.Pitch)
	}

	cam.ProcessMouseMovement(0, -20000, true)
	if cam.Pitch < -89.0 {
		t.Errorf("Pitch should clamp at -89, got %f", cam.Pitch)
	}
}

func TestCameraInvertMouse(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Pitch = 0
	cam.InvertMouse = true

	cam.ProcessMouseMovement(0, 10, true)

	if cam.Pitch >= 0 {
		t.Error("With inverted mouse, positive y offset should pitch down")
	}
}
