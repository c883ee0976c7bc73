package main

const dataBlock = `
layout (binding = 0, std140) uniform Data {
	mat4 mvp;
	mat4 world;
	vec3 color;
	float ambientIntensity;
	vec3 direction;
	float diffuseIntensity;
} uData;
`

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 2) in vec3 normal;
layout (location = 0) out vec2 vTexCoord;
layout (location = 1) out vec3 vNormal;
` + dataBlock + `
void main() {
	gl_Position = uData.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
	vNormal = mat3(uData.world) * normal;
}
`

const fragShader = `#version 450

layout (location = 0) in vec2 vTexCoord;
layout (location = 1) in vec3 vNormal;
layout (location = 0) out vec4 fColor;

uniform sampler2D uImage;
` + dataBlock + `
void main() {
	vec4 ambientColor = vec4(uData.color * uData.ambientIntensity, 1.0);
	float diffuseFactor = dot(normalize(vNormal), -uData.direction);
	vec4 diffuseColor = vec4(0.0);
	if (diffuseFactor > 0.0) {
		diffuseColor = vec4(uData.color * uData.diffuseIntensity * diffuseFactor, 1.0);
	}
	fColor = texture(uImage, vTexCoord) * (ambientColor + diffuseColor);
}
`
