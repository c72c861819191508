package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds a model matrix from the per-object placement
// values in the fixed order the whole scene relies on: scale first, then
// rotation about X, Y and Z, then translation. Matrices multiply
// right-to-left, so the composition is T * Rz * Ry * Rx * S.
func ComposeTransform(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	scaleM := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xRotDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yRotDeg))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zRotDeg))
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return translation.Mul4(rotationZ).Mul4(rotationY).Mul4(rotationX).Mul4(scaleM)
}
