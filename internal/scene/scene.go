// Package scene describes the desk scene as data: which textures and
// materials exist, where the four lights sit, and the ordered list of
// primitive draws that make up the objects on the desk.
package scene

import (
	"fmt"
	"os"

	"deskscene/internal/renderer"
	"deskscene/internal/shapes"

	"gopkg.in/yaml.v3"
)

type TextureRef struct {
	Tag  string `yaml:"tag"`
	Path string `yaml:"path"`
}

type MaterialDef struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    [3]float32 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    [3]float32 `yaml:"diffuse_color"`
	SpecularColor   [3]float32 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

type LightDef struct {
	Position          [3]float32 `yaml:"position"`
	AmbientColor      [3]float32 `yaml:"ambient_color"`
	DiffuseColor      [3]float32 `yaml:"diffuse_color"`
	SpecularColor     [3]float32 `yaml:"specular_color"`
	FocalStrength     float32    `yaml:"focal_strength"`
	SpecularIntensity float32    `yaml:"specular_intensity"`
}

// Object is one draw call: a primitive shape with its placement and
// surface. Either Texture or Color is set, never both.
type Object struct {
	Name        string      `yaml:"name"`
	Shape       shapes.Kind `yaml:"shape"`
	Scale       [3]float32  `yaml:"scale"`
	RotationDeg [3]float32  `yaml:"rotation_deg"`
	Position    [3]float32  `yaml:"position"`
	Texture     string      `yaml:"texture,omitempty"`
	Color       *[4]float32 `yaml:"color,omitempty"`
	Material    string      `yaml:"material"`
	UVScale     [2]float32  `yaml:"uv_scale,omitempty"`
}

// Scene holds everything the renderer needs to prepare and replay the
// scene. Objects render in declaration order.
type Scene struct {
	Textures  []TextureRef  `yaml:"textures"`
	Materials []MaterialDef `yaml:"materials"`
	Lights    []LightDef    `yaml:"lights"`
	Objects   []Object      `yaml:"objects"`
}

// Load reads a scene description from a YAML file and validates it.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var scn Scene
	if err := yaml.Unmarshal(data, &scn); err != nil {
		return nil, fmt.Errorf("parse scene file %s: %w", path, err)
	}

	scn.normalize()
	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return &scn, nil
}

// normalize fills in defaults the YAML may omit.
func (s *Scene) normalize() {
	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.Scale == ([3]float32{}) {
			obj.Scale = [3]float32{1, 1, 1}
		}
		if obj.UVScale == ([2]float32{}) {
			obj.UVScale = [2]float32{1, 1}
		}
	}
}

// Validate checks every reference before the first frame: shapes must be
// known, lights must fit the fixed slots and every object must resolve to
// a registered texture or an explicit color plus a defined material.
func (s *Scene) Validate() error {
	if len(s.Lights) > renderer.MaxLightSources {
		return fmt.Errorf("%d lights configured, at most %d supported", len(s.Lights), renderer.MaxLightSources)
	}
	if len(s.Textures) > renderer.MaxTextureSlots {
		return fmt.Errorf("%d textures configured, at most %d supported", len(s.Textures), renderer.MaxTextureSlots)
	}

	knownShapes := make(map[shapes.Kind]bool)
	for _, kind := range shapes.Kinds() {
		knownShapes[kind] = true
	}
	textureTags := make(map[string]bool)
	for _, tex := range s.Textures {
		if tex.Tag == "" {
			return fmt.Errorf("texture with path %q has no tag", tex.Path)
		}
		textureTags[tex.Tag] = true
	}
	materialTags := make(map[string]bool)
	for _, mat := range s.Materials {
		if mat.Tag == "" {
			return fmt.Errorf("material without a tag")
		}
		materialTags[mat.Tag] = true
	}

	for i, obj := range s.Objects {
		name := obj.Name
		if name == "" {
			name = fmt.Sprintf("object %d", i)
		}
		if !knownShapes[obj.Shape] {
			return fmt.Errorf("%s: unknown shape %q", name, obj.Shape)
		}
		if obj.Texture == "" && obj.Color == nil {
			return fmt.Errorf("%s: needs a texture tag or a color", name)
		}
		if obj.Texture != "" && obj.Color != nil {
			return fmt.Errorf("%s: texture and color are mutually exclusive", name)
		}
		if obj.Texture != "" && !textureTags[obj.Texture] {
			return fmt.Errorf("%s: texture tag %q not declared", name, obj.Texture)
		}
		if obj.Material == "" {
			return fmt.Errorf("%s: no material tag", name)
		}
		if !materialTags[obj.Material] {
			return fmt.Errorf("%s: material tag %q not declared", name, obj.Material)
		}
		if obj.Scale[0] == 0 || obj.Scale[1] == 0 || obj.Scale[2] == 0 {
			return fmt.Errorf("%s: zero scale component", name)
		}
	}
	return nil
}

// RendererMaterial converts a material definition into the renderer type.
func (m MaterialDef) RendererMaterial() renderer.Material {
	return renderer.Material{
		Tag:             m.Tag,
		AmbientColor:    vec3(m.AmbientColor),
		AmbientStrength: m.AmbientStrength,
		DiffuseColor:    vec3(m.DiffuseColor),
		SpecularColor:   vec3(m.SpecularColor),
		Shininess:       m.Shininess,
	}
}

// RendererLight converts a light definition into the renderer type.
func (l LightDef) RendererLight() renderer.LightSource {
	return renderer.LightSource{
		Position:          vec3(l.Position),
		AmbientColor:      vec3(l.AmbientColor),
		DiffuseColor:      vec3(l.DiffuseColor),
		SpecularColor:     vec3(l.SpecularColor),
		FocalStrength:     l.FocalStrength,
		SpecularIntensity: l.SpecularIntensity,
	}
}
