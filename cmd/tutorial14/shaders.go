package main

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 0) out vec3 color;

uniform mat4 uMvp;

void main() {
	gl_Position = uMvp * vec4(position, 1.0);
	color = clamp(position, 0.0, 1.0);
}
`

const fragShader = `#version 450

layout (location = 0) in vec3 vColor;
layout (location = 0) out vec4 fColor;

void main() {
	fColor = vec4(vColor, 1.0);
}
`
