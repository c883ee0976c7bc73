package main

const dataBlock = `
layout (binding = 0, std140) uniform Data {
	mat4 mvp;
	vec4 color;
	float ambientIntensity;
} uData;
`

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 0) out vec2 vTexCoord;
` + dataBlock + `
void main() {
	gl_Position = uData.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
}
`

const fragShader = `#version 450

layout (location = 0) in vec2 vTexCoord;
layout (location = 0) out vec4 fColor;

uniform sampler2D uImage;
` + dataBlock + `
void main() {
	fColor = vec4(texture(uImage, vTexCoord).rgb * uData.color.rgb, 1.0);
	fColor *= uData.ambientIntensity;
}
`
