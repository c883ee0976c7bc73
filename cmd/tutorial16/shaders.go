package main

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 0) out vec2 vTexCoord;

uniform mat4 uMvp;

void main() {
	gl_Position = uMvp * vec4(position, 1.0);
	vTexCoord = texcoord;
}
`

const fragShader = `#version 450

layout (location = 0) in vec2 vTexCoord;
layout (location = 0) out vec4 fColor;

uniform sampler2D uImage;

void main() {
	fColor = vec4(texture(uImage, vTexCoord).rgb, 1.0);
}
`
