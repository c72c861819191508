package scene

import (
	"deskscene/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
)

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func color(r, g, b, a float32) *[4]float32 {
	return &[4]float32{r, g, b, a}
}

// Default is the built-in desk scene: a wooden desk top carrying a pen cup
// with two pens, a lamp, a digital clock and a soap bottle. Used when no
// scene file is given.
func Default() *Scene {
	scn := &Scene{
		Textures: []TextureRef{
			{Tag: "ashberry", Path: "textures/ashberrysmooth.jpg"},
			{Tag: "flagstone", Path: "textures/flagstonerubble.jpg"},
			{Tag: "granite", Path: "textures/granite.jpg"},
			{Tag: "marmoreal", Path: "textures/marmoreal.jpg"},
			{Tag: "oak", Path: "textures/oak.jpg"},
			{Tag: "charredtimber", Path: "textures/charredtimber.jpg"},
			{Tag: "black-leather", Path: "textures/black-leather.jpg"},
			{Tag: "fabric", Path: "textures/fabric.jpg"},
			{Tag: "gray-surface", Path: "textures/gray-surface.jpg"},
			{Tag: "green-blue-surface", Path: "textures/green-blue-surface.jpg"},
			{Tag: "clock-face", Path: "textures/clock-face.jpg"},
		},
		Materials: defaultMaterials(),
		Lights:    defaultLights(),
		Objects:   defaultObjects(),
	}
	scn.normalize()
	return scn
}

func defaultMaterials() []MaterialDef {
	// Shared ambient response; surfaces differ in diffuse, specular and
	// shininess only.
	ambient := [3]float32{0.05, 0.05, 0.05}
	const ambientStrength = 0.1

	return []MaterialDef{
		{
			Tag:             "charredtimber",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.2, 0.1, 0.05}, // Dark brown
			SpecularColor:   [3]float32{0.5, 0.5, 0.5},
			Shininess:       32.0,
		},
		{
			Tag:             "ashberry",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.6, 0.2, 0.2}, // Berry red
			SpecularColor:   [3]float32{0.7, 0.7, 0.7},
			Shininess:       64.0,
		},
		{
			Tag:             "flagstone",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.4, 0.4, 0.4},
			SpecularColor:   [3]float32{0.3, 0.3, 0.3},
			Shininess:       16.0,
		},
		{
			Tag:             "granite",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.5, 0.5, 0.5},
			SpecularColor:   [3]float32{0.8, 0.8, 0.8},
			Shininess:       128.0,
		},
		{
			Tag:             "marmoreal",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.8, 0.8, 0.8},
			SpecularColor:   [3]float32{0.9, 0.9, 0.9},
			Shininess:       256.0,
		},
		{
			Tag:             "black-leather",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.1, 0.1, 0.1},
			SpecularColor:   [3]float32{0.2, 0.2, 0.2},
			Shininess:       8.0,
		},
		{
			Tag:             "fabric",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.2, 0.2, 0.2},
			SpecularColor:   [3]float32{0.3, 0.3, 0.3},
			Shininess:       16.0,
		},
		{
			Tag:             "gray-surface",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.5, 0.5, 0.5},
			SpecularColor:   [3]float32{0.6, 0.6, 0.6},
			Shininess:       32.0,
		},
		{
			Tag:             "green-blue-surface",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.0, 0.5, 0.5}, // Greenish aqua
			SpecularColor:   [3]float32{0.6, 0.6, 0.6},
			Shininess:       32.0,
		},
		{
			Tag:             "clock-face",
			AmbientColor:    ambient,
			AmbientStrength: ambientStrength,
			DiffuseColor:    [3]float32{0.8, 0.8, 0.8},
			SpecularColor:   [3]float32{0.9, 0.9, 0.9},
			Shininess:       256.0,
		},
	}
}

func defaultLights() []LightDef {
	warmAmbient := [3]float32{0.3, 0.24, 0.1}
	warmDiffuse := [3]float32{0.8, 0.7, 0.5}
	warmSpecular := [3]float32{1.0, 0.9, 0.8}

	return []LightDef{
		// Two warm overhead lights standing in for sunlight
		{
			Position:          [3]float32{3.0, 14.0, 0.0},
			AmbientColor:      warmAmbient,
			DiffuseColor:      warmDiffuse,
			SpecularColor:     warmSpecular,
			FocalStrength:     32.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          [3]float32{-3.0, 14.0, 0.0},
			AmbientColor:      warmAmbient,
			DiffuseColor:      warmDiffuse,
			SpecularColor:     warmSpecular,
			FocalStrength:     32.0,
			SpecularIntensity: 0.05,
		},
		// Blue accent in front of the desk
		{
			Position:          [3]float32{0.6, 5.0, 6.0},
			AmbientColor:      [3]float32{0.2, 0.2, 0.4},
			DiffuseColor:      [3]float32{0.4, 0.4, 0.8},
			SpecularColor:     [3]float32{0.5, 0.5, 1.0},
			FocalStrength:     12.0,
			SpecularIntensity: 0.5,
		},
		// Cool fill from behind
		{
			Position:          [3]float32{-0.6, 7.0, -6.0},
			AmbientColor:      [3]float32{0.1, 0.1, 0.1},
			DiffuseColor:      [3]float32{0.6, 0.6, 0.6},
			SpecularColor:     [3]float32{0.9, 0.9, 0.9},
			FocalStrength:     12.0,
			SpecularIntensity: 0.5,
		},
	}
}

func defaultObjects() []Object {
	return []Object{
		{
			Name:     "desk top",
			Shape:    shapes.Plane,
			Scale:    [3]float32{20.0, 1.0, 10.0},
			Position: [3]float32{0.0, 0.0, 0.0},
			Texture:  "charredtimber",
			Material: "charredtimber",
		},

		// Pen cup: a tall cylinder with a tapered collar, two tori as the
		// rim beads and a narrower inner cylinder.
		{
			Name:     "cup body",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{1.0, 2.0, 1.0},
			Position: [3]float32{9.0, 0.0, 0.0},
			Texture:  "ashberry",
			Material: "ashberry",
		},
		{
			Name:     "cup collar",
			Shape:    shapes.TaperedCylinder,
			Scale:    [3]float32{1.0, 0.5, 1.0},
			Position: [3]float32{9.0, 2.0, 0.0},
			Texture:  "flagstone",
			Material: "flagstone",
		},
		{
			Name:        "cup rim lower",
			Shape:       shapes.Torus,
			Scale:       [3]float32{0.8, 0.8, 0.2},
			RotationDeg: [3]float32{90.0, 0.0, 0.0},
			Position:    [3]float32{9.0, 2.2, 0.0},
			Texture:     "granite",
			Material:    "granite",
		},
		{
			Name:     "cup inner wall",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{0.75, 0.5, 0.75},
			Position: [3]float32{9.0, 2.0, 0.0},
			Texture:  "flagstone",
			Material: "flagstone",
		},
		{
			Name:        "cup rim upper",
			Shape:       shapes.Torus,
			Scale:       [3]float32{0.8, 0.8, 0.2},
			RotationDeg: [3]float32{90.0, 0.0, 0.0},
			Position:    [3]float32{9.0, 2.4, 0.0},
			Texture:     "granite",
			Material:    "granite",
		},

		// Two pens leaning out of the cup
		{
			Name:        "red pen",
			Shape:       shapes.Cylinder,
			Scale:       [3]float32{0.1, 0.7, 0.1},
			RotationDeg: [3]float32{-30.0, 0.0, 0.0},
			Position:    [3]float32{8.8, 2.5, 0.0},
			Color:       color(1.0, 0.0, 0.0, 1.0),
			Material:    "flagstone",
		},
		{
			Name:        "blue pen",
			Shape:       shapes.Cylinder,
			Scale:       [3]float32{0.1, 0.7, 0.1},
			RotationDeg: [3]float32{30.0, 0.0, 0.0},
			Position:    [3]float32{9.4, 2.5, 0.0},
			Color:       color(0.0, 0.0, 1.0, 1.0),
			Material:    "flagstone",
		},

		// Desk lamp: base, stem and cone shade
		{
			Name:     "lamp base",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{1.0, 0.2, 1.0},
			Position: [3]float32{-5.0, 0.1, 0.0},
			Texture:  "gray-surface",
			Material: "gray-surface",
		},
		{
			Name:     "lamp stem",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{0.2, 3.0, 0.2},
			Position: [3]float32{-5.0, 0.5, 0.0},
			Texture:  "gray-surface",
			Material: "gray-surface",
		},
		{
			Name:     "lamp shade",
			Shape:    shapes.Cone,
			Scale:    [3]float32{1.5, 1.5, 1.5},
			Position: [3]float32{-5.0, 3.0, 0.0},
			Texture:  "fabric",
			Material: "fabric",
		},

		// Digital clock: leather body with an inset screen
		{
			Name:     "clock body",
			Shape:    shapes.Box,
			Scale:    [3]float32{1.0, 0.5, 1.0},
			Position: [3]float32{-7.0, 0.5, 0.0},
			Texture:  "black-leather",
			Material: "black-leather",
		},
		{
			Name:     "clock screen",
			Shape:    shapes.Box,
			Scale:    [3]float32{0.9, 0.4, 0.9},
			Position: [3]float32{-7.0, 0.5, 0.075},
			Texture:  "clock-face",
			Material: "clock-face",
		},

		// Soap bottle with its pump
		{
			Name:     "bottle body",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{0.5, 1.5, 0.5},
			Position: [3]float32{7.0, 0.1, 0.0},
			Texture:  "black-leather",
			Material: "green-blue-surface",
		},
		{
			Name:     "bottle pump",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{0.2, 0.5, 0.2},
			Position: [3]float32{7.0, 1.5, 0.0},
			Texture:  "gray-surface",
			Material: "gray-surface",
		},
		{
			Name:     "pump nozzle",
			Shape:    shapes.Cylinder,
			Scale:    [3]float32{0.1, 0.2, 0.1},
			Position: [3]float32{7.0, 2.0, 0.0},
			Texture:  "gray-surface",
			Material: "gray-surface",
		},
	}
}
