package renderer

import (
	"strings"

	"deskscene/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;          // Per-object transform, recomputed every draw
uniform mat4 viewProjection;
uniform vec2 UVscale;        // Texture coordinate tiling

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord * UVscale;

    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

#define MAX_LIGHT_SOURCES 4

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

uniform sampler2D objectTexture;
uniform vec4 objectColor;
uniform bool bUseTexture;  // Solid color when false
uniform bool bUseLighting;
uniform vec3 viewPos;
uniform Material material;
uniform LightSource lightSources[MAX_LIGHT_SOURCES];

out vec4 FragColor;

void main() {
    vec4 baseColor = bUseTexture ? texture(objectTexture, fragTexCoord) : objectColor;

    if (!bUseLighting) {
        FragColor = baseColor;
        return;
    }

    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 lighting = material.ambientColor * material.ambientStrength;

    for (int i = 0; i < MAX_LIGHT_SOURCES; i++) {
        vec3 lightDir = normalize(lightSources[i].position - FragPos);

        vec3 ambient = lightSources[i].ambientColor * material.ambientStrength;

        float diff = max(dot(norm, lightDir), 0.0);
        vec3 diffuse = diff * lightSources[i].diffuseColor * material.diffuseColor;

        vec3 reflectDir = reflect(-lightDir, norm);
        float spec = pow(max(dot(viewDir, reflectDir), 0.0),
                         max(lightSources[i].focalStrength, 1.0));
        vec3 specular = spec * lightSources[i].specularIntensity
                      * lightSources[i].specularColor * material.specularColor;

        lighting += ambient + diffuse + specular;
    }

    FragColor = vec4(lighting, 1.0) * baseColor;
}
` + "\x00"

func InitShader() Shader {
	return Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

// Compile builds and links the shader program.
func (shader *Shader) Compile() {
	vertexShader := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragmentShader := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertexShader, fragmentShader)
	shader.isCompiled = true
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader",
			zap.Uint32("shaderType", shaderType), zap.String("log", log))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link shader program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
