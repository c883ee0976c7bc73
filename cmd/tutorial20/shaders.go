package main

const cameraBlock = `
layout (binding = 0, std140) uniform CameraData {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 eye;
	int numPointLights;
	int numSpotLights;
} uCamera;
`

const vertShader = `#version 450

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 2) in vec3 normal;
layout (location = 0) out vec2 vTexCoord;
layout (location = 1) out vec3 vNormal;
layout (location = 2) out vec3 vWorldPos;
` + cameraBlock + `
void main() {
	gl_Position = uCamera.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
	vNormal = mat3(uCamera.normal) * normal;
	vWorldPos = (uCamera.world * vec4(position, 1.0)).xyz;
}
`

const lightBlocks = `
layout (binding = 1, std140) uniform Material {
	float specularIntensity;
	float specularPower;
} uMaterial;

layout (binding = 2, std140) uniform DirectionalLight {
	vec4 color;
	vec4 direction;
	float ambientIntensity;
	float diffuseIntensity;
} uSun;

const int MAX_POINT_LIGHTS = 8;

struct PointLight {
	vec4 color;
	vec4 position;
	float ambientIntensity;
	float diffuseIntensity;
	float attenuationConstant;
	float attenuationLinear;
	float attenuationExponential;
};

layout (binding = 3, std140) uniform PointLights {
	PointLight light[MAX_POINT_LIGHTS];
} uPointLights;
`

const lightFuncs = `
vec3 calcLight(vec3 color, float ambientIntensity, float diffuseIntensity, vec3 direction, vec3 normal) {
	vec3 ambientColor = color * ambientIntensity;
	float diffuseFactor = dot(normal, -direction);
	vec3 diffuseColor = vec3(0.0);
	vec3 specularColor = vec3(0.0);

	if (diffuseFactor > 0.0) {
		diffuseColor = color * diffuseIntensity * diffuseFactor;

		vec3 vertexToEye = normalize(uCamera.eye.xyz - vWorldPos);
		vec3 lightReflect = normalize(reflect(direction, normal));
		float specularFactor = dot(vertexToEye, lightReflect);
		if (specularFactor > 0.0) {
			specularFactor = pow(specularFactor, uMaterial.specularPower);
			specularColor = color * uMaterial.specularIntensity * specularFactor;
		}
	}
	return ambientColor + diffuseColor + specularColor;
}

vec3 calcDirectionalLight(vec3 normal) {
	return calcLight(uSun.color.rgb, uSun.ambientIntensity, uSun.diffuseIntensity, uSun.direction.xyz, normal);
}

vec3 calcPointLight(PointLight light, vec3 normal) {
	vec3 lightDirection = vWorldPos - light.position.xyz;
	float distance = length(lightDirection);
	lightDirection = normalize(lightDirection);

	vec3 color = calcLight(light.color.rgb, light.ambientIntensity, light.diffuseIntensity, lightDirection, normal);
	float attenuation = light.attenuationConstant +
		light.attenuationLinear * distance +
		light.attenuationExponential * distance * distance;
	return color / attenuation;
}
`

const fragShader = `#version 450

layout (location = 0) in vec2 vTexCoord;
layout (location = 1) in vec3 vNormal;
layout (location = 2) in vec3 vWorldPos;
layout (location = 0) out vec4 fColor;

uniform sampler2D uImage;
` + cameraBlock + lightBlocks + lightFuncs + `
void main() {
	vec3 normal = normalize(vNormal);
	vec3 totalLight = calcDirectionalLight(normal);

	for (int i = 0; i < uCamera.numPointLights; i++) {
		totalLight += calcPointLight(uPointLights.light[i], normal);
	}

	fColor = texture(uImage, vTexCoord) * vec4(totalLight, 1.0);
}
`
