package main

const vertShader = `#version 110

attribute vec3 position;

void main() {
	gl_Position = vec4(position, 1.0);
}
`

const fragShader = `#version 110

void main() {
	gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`
