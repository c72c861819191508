package scene

import (
	"os"
	"path/filepath"
	"testing"

	"deskscene/internal/renderer"
	"deskscene/internal/shapes"
)

func TestDefaultSceneIsValid(t *testing.T) {
	scn := Default()

	if err := scn.Validate(); err != nil {
		t.Fatalf("Default scene should validate: %v", err)
	}
}

func TestDefaultSceneContents(t *testing.T) {
	scn := Default()

	if len(scn.Lights) != 4 {
		t.Errorf("Expected 4 lights, got %d", len(scn.Lights))
	}
	if len(scn.Textures) != 11 {
		t.Errorf("Expected 11 textures, got %d", len(scn.Textures))
	}
	if len(scn.Materials) != 10 {
		t.Errorf("Expected 10 materials, got %d", len(scn.Materials))
	}
	if len(scn.Objects) == 0 {
		t.Fatal("Default scene has no objects")
	}

	// The desk top renders first so everything else sits on top of it.
	if scn.Objects[0].Shape != shapes.Plane {
		t.Errorf("First object should be the desk plane, got %q", scn.Objects[0].Shape)
	}
}

func TestDefaultSceneUsesEveryPrimitiveButSphere(t *testing.T) {
	used := make(map[shapes.Kind]bool)
	for _, obj := range Default().Objects {
		used[obj.Shape] = true
	}

	for _, kind := range []shapes.Kind{shapes.Plane, shapes.Box, shapes.Cylinder, shapes.TaperedCylinder, shapes.Cone, shapes.Torus} {
		if !used[kind] {
			t.Errorf("Default scene should draw at least one %q", kind)
		}
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	scn := &Scene{
		Objects: []Object{{Name: "bare", Shape: shapes.Box}},
	}
	scn.normalize()

	obj := scn.Objects[0]
	if obj.Scale != ([3]float32{1, 1, 1}) {
		t.Errorf("Zero scale should default to unit, got %v", obj.Scale)
	}
	if obj.UVScale != ([2]float32{1, 1}) {
		t.Errorf("Zero UV scale should default to unit, got %v", obj.UVScale)
	}
}

func TestValidateRejectsTooManyLights(t *testing.T) {
	scn := &Scene{
		Lights: make([]LightDef, renderer.MaxLightSources+1),
	}

	if err := scn.Validate(); err == nil {
		t.Error("Validate should reject more lights than the shader supports")
	}
}

func TestValidateRejectsUnknownShape(t *testing.T) {
	scn := &Scene{
		Objects: []Object{{
			Name:  "mystery",
			Shape: "dodecahedron",
			Scale: [3]float32{1, 1, 1},
			Color: color(1, 0, 0, 1),
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("Validate should reject an unknown shape")
	}
}

func TestValidateRejectsTextureAndColor(t *testing.T) {
	scn := &Scene{
		Textures:  []TextureRef{{Tag: "oak", Path: "oak.jpg"}},
		Materials: []MaterialDef{{Tag: "oak"}},
		Objects: []Object{{
			Name:     "both",
			Shape:    shapes.Box,
			Scale:    [3]float32{1, 1, 1},
			Texture:  "oak",
			Color:    color(1, 0, 0, 1),
			Material: "oak",
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("Texture and color on the same object should be rejected")
	}
}

func TestValidateRejectsNeitherTextureNorColor(t *testing.T) {
	scn := &Scene{
		Materials: []MaterialDef{{Tag: "oak"}},
		Objects: []Object{{
			Name:     "invisible",
			Shape:    shapes.Box,
			Scale:    [3]float32{1, 1, 1},
			Material: "oak",
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("An object needs a texture or a color")
	}
}

func TestValidateRejectsUndeclaredTextureTag(t *testing.T) {
	scn := &Scene{
		Materials: []MaterialDef{{Tag: "oak"}},
		Objects: []Object{{
			Name:     "phantom",
			Shape:    shapes.Box,
			Scale:    [3]float32{1, 1, 1},
			Texture:  "mahogany",
			Material: "oak",
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("Validate should reject a texture tag that was never declared")
	}
}

func TestValidateRejectsUndeclaredMaterialTag(t *testing.T) {
	scn := &Scene{
		Objects: []Object{{
			Name:     "phantom",
			Shape:    shapes.Box,
			Scale:    [3]float32{1, 1, 1},
			Color:    color(1, 1, 1, 1),
			Material: "velvet",
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("Validate should reject a material tag that was never defined")
	}
}

func TestValidateRejectsZeroScale(t *testing.T) {
	scn := &Scene{
		Materials: []MaterialDef{{Tag: "oak"}},
		Objects: []Object{{
			Name:     "flatlined",
			Shape:    shapes.Box,
			Scale:    [3]float32{1, 0, 1},
			Color:    color(1, 1, 1, 1),
			Material: "oak",
		}},
	}

	if err := scn.Validate(); err == nil {
		t.Error("Validate should reject a zero scale component")
	}
}

func TestLoadSceneFile(t *testing.T) {
	yamlDoc := `
textures:
  - tag: oak
    path: textures/oak.jpg
materials:
  - tag: oak
    ambient_color: [0.05, 0.05, 0.05]
    ambient_strength: 0.1
    diffuse_color: [0.6, 0.4, 0.2]
    specular_color: [0.5, 0.5, 0.5]
    shininess: 32
lights:
  - position: [0, 10, 0]
    ambient_color: [0.2, 0.2, 0.2]
    diffuse_color: [0.8, 0.8, 0.8]
    specular_color: [1, 1, 1]
    focal_strength: 32
    specular_intensity: 0.1
objects:
  - name: table
    shape: plane
    scale: [10, 1, 5]
    texture: oak
    material: oak
  - name: marker
    shape: cylinder
    position: [1, 0, 0]
    color: [1, 0, 0, 1]
    material: oak
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	scn, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(scn.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(scn.Objects))
	}
	if scn.Objects[0].Scale != ([3]float32{10, 1, 5}) {
		t.Errorf("Unexpected scale %v", scn.Objects[0].Scale)
	}
	// Omitted scale defaults to unit after normalize.
	if scn.Objects[1].Scale != ([3]float32{1, 1, 1}) {
		t.Errorf("Omitted scale should normalize to unit, got %v", scn.Objects[1].Scale)
	}
	if scn.Objects[1].Color == nil || *scn.Objects[1].Color != [4]float32{1, 0, 0, 1} {
		t.Error("Color object did not round-trip")
	}
}

func TestLoadRejectsInvalidScene(t *testing.T) {
	yamlDoc := `
objects:
  - name: broken
    shape: pyramid
    color: [1, 0, 0, 1]
    material: none
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a scene that fails validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestRendererConversions(t *testing.T) {
	mat := MaterialDef{
		Tag:             "granite",
		AmbientColor:    [3]float32{0.05, 0.05, 0.05},
		AmbientStrength: 0.1,
		DiffuseColor:    [3]float32{0.5, 0.5, 0.5},
		SpecularColor:   [3]float32{0.8, 0.8, 0.8},
		Shininess:       128,
	}
	rm := mat.RendererMaterial()
	if rm.Tag != "granite" || rm.Shininess != 128 {
		t.Error("Material conversion lost fields")
	}
	if rm.DiffuseColor.Y() != 0.5 {
		t.Error("Material conversion mangled the diffuse color")
	}

	light := LightDef{
		Position:          [3]float32{3, 14, 0},
		FocalStrength:     32,
		SpecularIntensity: 0.05,
	}
	rl := light.RendererLight()
	if rl.Position.Y() != 14 || rl.FocalStrength != 32 {
		t.Error("Light conversion lost fields")
	}
}
