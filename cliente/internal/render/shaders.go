package render

import (
	"log"
	"unsafe"

	"CityRipple/shared/ripple"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RippleShader é o programa físico compilado com (ou, em caso de falha do patch, sem) a onda.
type RippleShader struct {
	Shader  rl.Shader
	Program ripple.Program
	Patched bool

	uniformLocs map[string]int32

	roughnessLoc      int32
	metalnessLoc      int32
	viewPosLoc        int32
	ambientLoc        int32
	lightPosLoc       int32
	lightTargetLoc    int32
	lightColorLoc     int32
	lightIntensityLoc int32
	lightCosOuterLoc  int32
	lightCosInnerLoc  int32
}

// NewRippleShader aplica o patch ao programa base e compila o resultado.
// Se as âncoras não existirem a onda é simplesmente desligada.
func NewRippleShader(patch func(*ripple.Program) error) *RippleShader {
	s := &RippleShader{Program: ripple.PhysicalProgram()}

	if err := patch(&s.Program); err != nil {
		log.Printf("[Render] AVISO: onda desativada, patch do shader falhou: %v", err)
	} else {
		s.Patched = true
	}

	s.Shader = rl.LoadShaderFromMemory(s.Program.Vertex, s.Program.Fragment)
	if s.Shader.ID == 0 {
		log.Printf("[Render] FALHA ao compilar o shader físico")
		return s
	}

	// matModel/matNormal/colDiffuse são preenchidos pela raylib via Locs
	locs := unsafe.Slice(s.Shader.Locs, 32)
	locs[9] = rl.GetShaderLocation(s.Shader, "matModel")    // SHADER_LOC_MATRIX_MODEL
	locs[10] = rl.GetShaderLocation(s.Shader, "matNormal")  // SHADER_LOC_MATRIX_NORMAL
	locs[12] = rl.GetShaderLocation(s.Shader, "colDiffuse") // SHADER_LOC_COLOR_DIFFUSE

	s.uniformLocs = make(map[string]int32, len(s.Program.Uniforms))
	for name := range s.Program.Uniforms {
		s.uniformLocs[name] = rl.GetShaderLocation(s.Shader, name)
	}

	s.roughnessLoc = rl.GetShaderLocation(s.Shader, "roughness")
	s.metalnessLoc = rl.GetShaderLocation(s.Shader, "metalness")
	s.viewPosLoc = rl.GetShaderLocation(s.Shader, "viewPos")
	s.ambientLoc = rl.GetShaderLocation(s.Shader, "ambientColor")
	s.lightPosLoc = rl.GetShaderLocation(s.Shader, "lightPos")
	s.lightTargetLoc = rl.GetShaderLocation(s.Shader, "lightTarget")
	s.lightColorLoc = rl.GetShaderLocation(s.Shader, "lightColor")
	s.lightIntensityLoc = rl.GetShaderLocation(s.Shader, "lightIntensity")
	s.lightCosOuterLoc = rl.GetShaderLocation(s.Shader, "lightCosOuter")
	s.lightCosInnerLoc = rl.GetShaderLocation(s.Shader, "lightCosInner")

	log.Printf("[Render] Shader físico compilado (onda: %v)", s.Patched)
	return s
}

// Ready informa se o programa foi compilado.
func (s *RippleShader) Ready() bool {
	return s.Shader.ID != 0
}

// SyncUniforms envia a cada frame os valores atuais das células ligadas ao programa.
func (s *RippleShader) SyncUniforms() {
	for name, cell := range s.Program.Uniforms {
		rl.SetShaderValue(s.Shader, s.uniformLocs[name], []float32{cell.Value()}, rl.ShaderUniformFloat)
	}
}

// SetView atualiza a posição da câmera usada no termo especular.
func (s *RippleShader) SetView(pos rl.Vector3) {
	rl.SetShaderValue(s.Shader, s.viewPosLoc, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3)
}

// SetLight configura a luz spot e a luz ambiente.
func (s *RippleShader) SetLight(l SpotLight, ambient rl.Vector3) {
	rl.SetShaderValue(s.Shader, s.lightPosLoc, []float32{l.Position.X, l.Position.Y, l.Position.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(s.Shader, s.lightTargetLoc, []float32{l.Target.X, l.Target.Y, l.Target.Z}, rl.ShaderUniformVec3)
	c := rl.ColorNormalize(l.Color)
	rl.SetShaderValue(s.Shader, s.lightColorLoc, []float32{c.X, c.Y, c.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(s.Shader, s.lightIntensityLoc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	outer, inner := l.cone()
	rl.SetShaderValue(s.Shader, s.lightCosOuterLoc, []float32{outer}, rl.ShaderUniformFloat)
	rl.SetShaderValue(s.Shader, s.lightCosInnerLoc, []float32{inner}, rl.ShaderUniformFloat)
	rl.SetShaderValue(s.Shader, s.ambientLoc, []float32{ambient.X, ambient.Y, ambient.Z}, rl.ShaderUniformVec3)
}

// SetSurface define os parâmetros PBR do próximo desenho.
func (s *RippleShader) SetSurface(surf Surface) {
	rl.SetShaderValue(s.Shader, s.roughnessLoc, []float32{surf.Roughness}, rl.ShaderUniformFloat)
	rl.SetShaderValue(s.Shader, s.metalnessLoc, []float32{surf.Metalness}, rl.ShaderUniformFloat)
}

// Unload libera o programa da GPU.
func (s *RippleShader) Unload() {
	if s.Shader.ID != 0 {
		rl.UnloadShader(s.Shader)
		s.Shader = rl.Shader{}
	}
}
