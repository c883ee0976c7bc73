package main

const dataBlock = `
layout (binding = 0, std140) uniform Data {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 color;
	vec4 direction;
	vec4 eye;
	float ambientIntensity;
	float diffuseIntensity;
	float specularIntensity;
	float specularPower;
} uData;
`

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 2) in vec3 normal;
layout (location = 0) out vec2 vTexCoord;
layout (location = 1) out vec3 vNormal;
layout (location = 2) out vec3 vWorldPos;
` + dataBlock + `
void main() {
	gl_Position = uData.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
	vNormal = mat3(uData.normal) * normal;
	vWorldPos = (uData.world * vec4(position, 1.0)).xyz;
}
`

const fragShader = `#version 450

layout (location = 0) in vec2 vTexCoord;
layout (location = 1) in vec3 vNormal;
layout (location = 2) in vec3 vWorldPos;
layout (location = 0) out vec4 fColor;

uniform sampler2D uImage;
` + dataBlock + `
void main() {
	vec4 ambientColor = vec4(uData.color.rgb * uData.ambientIntensity, 1.0);
	vec3 normal = normalize(vNormal);
	float diffuseFactor = dot(normal, -uData.direction.xyz);
	vec4 diffuseColor = vec4(0.0);
	vec4 specularColor = vec4(0.0);

	if (diffuseFactor > 0.0) {
		diffuseColor = vec4(uData.color.rgb * uData.diffuseIntensity * diffuseFactor, 1.0);

		vec3 vertexToEye = normalize(uData.eye.xyz - vWorldPos);
		vec3 lightReflect = normalize(reflect(uData.direction.xyz, normal));
		float specularFactor = dot(vertexToEye, lightReflect);
		if (specularFactor > 0.0) {
			specularFactor = pow(specularFactor, uData.specularPower);
			specularColor = vec4(uData.color.rgb * uData.specularIntensity * specularFactor, 1.0);
		}
	}
	fColor = texture(uImage, vTexCoord) * (ambientColor + diffuseColor + specularColor);
}
`
