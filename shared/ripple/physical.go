package ripple

// PhysicalVertex é o vertex shader do material fisicamente iluminado usado pelos
// prédios e pelo chão. Os nomes de atributos e matrizes seguem o padrão da raylib
// para que ela preencha mvp/matModel/matNormal automaticamente.
const PhysicalVertex = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;

void main()
{
    vec4 worldPosition = matModel * vec4(vertexPosition, 1.0);
    fragPosition = worldPosition.xyz;
    fragTexCoord = vertexTexCoord;
    fragNormal = normalize(mat3(matNormal) * vertexNormal);
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// PhysicalFragment implementa um BRDF Cook-Torrance (GGX + Smith + Schlick)
// iluminado por uma única luz spot. A escrita final de cor é o ponto onde a
// onda é injetada.
const PhysicalFragment = `
#version 330

in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;

uniform vec4 colDiffuse;
uniform float roughness;
uniform float metalness;
uniform vec3 viewPos;
uniform vec3 ambientColor;

uniform vec3 lightPos;
uniform vec3 lightTarget;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float lightCosOuter;
uniform float lightCosInner;

out vec4 finalColor;

const float PI = 3.14159265359;

float distributionGGX(float NdotH, float alpha) {
    float a2 = alpha * alpha;
    float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float geometrySmith(float NdotV, float NdotL, float rough) {
    float k = (rough + 1.0) * (rough + 1.0) / 8.0;
    float gV = NdotV / (NdotV * (1.0 - k) + k);
    float gL = NdotL / (NdotL * (1.0 - k) + k);
    return gV * gL;
}

vec3 fresnelSchlick(float cosTheta, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

void main()
{
    vec4 diffuseColor = colDiffuse;
    float rough = clamp(roughness, 0.04, 1.0);

    vec3 N = normalize(fragNormal);
    vec3 V = normalize(viewPos - fragPosition);
    vec3 L = normalize(lightPos - fragPosition);
    vec3 H = normalize(V + L);

    float NdotL = max(dot(N, L), 0.0);
    float NdotV = max(dot(N, V), 0.001);
    float NdotH = max(dot(N, H), 0.0);

    // Cone da luz spot
    vec3 spotDir = normalize(lightTarget - lightPos);
    float theta = dot(-L, spotDir);
    float spot = smoothstep(lightCosOuter, lightCosInner, theta);
    vec3 irradiance = lightColor * lightIntensity * spot * NdotL * PI;

    vec3 F0 = mix(vec3(0.04), diffuseColor.rgb, metalness);
    vec3 F = fresnelSchlick(max(dot(H, V), 0.0), F0);
    float D = distributionGGX(NdotH, rough * rough);
    float G = geometrySmith(NdotV, NdotL, rough);
    vec3 specular = (D * G * F) / (4.0 * NdotV * max(NdotL, 0.001));

    vec3 kD = (vec3(1.0) - F) * (1.0 - metalness);
    vec3 diffuse = kD * diffuseColor.rgb / PI;

    vec3 outgoingLight = ambientColor * diffuseColor.rgb + (diffuse + specular) * irradiance;

    finalColor = vec4(outgoingLight, diffuseColor.a);

    finalColor.rgb = pow(finalColor.rgb, vec3(1.0 / 2.2));
}
`

// PhysicalProgram retorna o programa base sem nenhum uniform customizado.
func PhysicalProgram() Program {
	return Program{Source: Source{Vertex: PhysicalVertex, Fragment: PhysicalFragment}}
}
