package main

const vertShader = `#version 450

layout (location = 0) in vec3 position;

uniform mat4 uModel;

void main() {
	gl_Position = uModel * vec4(position, 1.0);
}
`

const fragShader = `#version 450

layout (location = 0) out vec4 color;

void main() {
	color = vec4(1.0, 0.0, 0.0, 1.0);
}
`
