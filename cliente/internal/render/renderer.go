package render

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"unsafe"

	"CityRipple/shared/ripple"
	"CityRipple/shared/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// SpotLight é a única luz da cena.
type SpotLight struct {
	Position  rl.Vector3
	Target    rl.Vector3
	Color     color.RGBA
	Intensity float32
	Angle     float32 // meia abertura do cone, em radianos
	Penumbra  float32 // 0..1
}

// cone retorna os cossenos externo e interno usados no smoothstep do shader.
func (l SpotLight) cone() (outer, inner float32) {
	outer = float32(math.Cos(float64(l.Angle)))
	inner = float32(math.Cos(float64(l.Angle * (1 - l.Penumbra))))
	if inner <= outer {
		inner = outer + 0.001
	}
	return
}

// Surface são os parâmetros PBR de um material.
type Surface struct {
	Material  rl.Material
	Roughness float32
	Metalness float32
}

// Renderer desenha o chão, a luz e os prédios usando o material com a onda.
type Renderer struct {
	Shader *RippleShader

	Light   SpotLight
	Ambient rl.Vector3

	// Todos os prédios compartilham o mesmo material (um patch, uma célula de tempo).
	Building Surface
	Ground   Surface
	backdrop rl.Material

	groundMesh   rl.Mesh
	backdropMesh rl.Mesh

	models     []rl.Model
	Prototypes []*Prototype
	Batches    *BatchManager
}

// NewRenderer cria o renderizador. Deve ser chamado depois de InitWindow.
func NewRenderer(cell *ripple.Uniform) *Renderer {
	r := &Renderer{
		Light: SpotLight{
			Position:  rl.Vector3{X: 0, Y: 50, Z: 30},
			Target:    rl.Vector3{X: 0, Y: 0, Z: 0},
			Color:     rl.White,
			Intensity: 1,
			Angle:     math.Pi / 3,
			Penumbra:  0.05,
		},
		Ambient: rl.Vector3{X: 0.03, Y: 0.03, Z: 0.03},
		Batches: NewBatchManager(),
	}

	// Prédios e chão recebem a mesma função de modificação e, portanto, a mesma célula.
	r.Shader = NewRippleShader(ripple.Patcher(cell))

	r.Building = Surface{Material: r.newMaterial(rl.NewColor(90, 90, 80, 255)), Roughness: 0.5, Metalness: 0.5}
	r.Ground = Surface{Material: r.newMaterial(hexColor(0x123456)), Roughness: 1, Metalness: 0}

	r.backdrop = rl.LoadMaterialDefault()
	setDiffuse(&r.backdrop, hexColor(0x222222))

	r.groundMesh = rl.GenMeshPlane(60, 60, 1, 1)
	r.backdropMesh = rl.GenMeshPlane(1000, 1000, 1, 1)

	log.Printf("[Renderer] Renderizador inicializado (shader pronto: %v)", r.Shader.Ready())
	return r
}

func (r *Renderer) newMaterial(c color.RGBA) rl.Material {
	mat := rl.LoadMaterialDefault()
	if r.Shader.Ready() {
		mat.Shader = r.Shader.Shader
	}
	setDiffuse(&mat, c)
	return mat
}

func setDiffuse(mat *rl.Material, c color.RGBA) {
	maps := unsafe.Slice(mat.Maps, 12)
	maps[rl.MapDiffuse].Color = c
}

func hexColor(v uint32) color.RGBA {
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}

// LoadPrototypes carrega o OBJ com o carregador da raylib. Cada objeto (o/g) do
// arquivo vira uma malha e, portanto, um protótipo, na ordem do arquivo. Uma
// nova carga substitui os protótipos desenhados (os modelos antigos só saem no Unload).
func (r *Renderer) LoadPrototypes(path string) ([]scene.Prototype, error) {
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return nil, fmt.Errorf("falha ao carregar modelo %s", path)
	}
	r.models = append(r.models, model)

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	r.Prototypes = make([]*Prototype, 0, len(meshes))
	r.Batches.Reset()
	protos := make([]scene.Prototype, 0, len(meshes))
	for i := range meshes {
		if meshes[i].VertexCount < 3 {
			continue
		}
		p := &Prototype{
			Index:  len(r.Prototypes),
			Mesh:   meshes[i],
			Bounds: rl.GetMeshBoundingBox(meshes[i]),
		}
		r.Prototypes = append(r.Prototypes, p)
		protos = append(protos, p)
	}
	log.Printf("[Renderer] Modelo carregado: %s (%d protótipos)", path, len(protos))
	return protos, nil
}

// Draw renderiza a cena do frame atual. Deve ser chamado entre BeginMode3D/EndMode3D,
// depois do tick do mundo, para que o uniform já reflita o estado novo.
func (r *Renderer) Draw(cam rl.Camera3D, world *scene.World) {
	// Chão de fundo sem iluminação, levemente abaixo do chão iluminado
	rl.DrawMesh(r.backdropMesh, r.backdrop, rl.MatrixTranslate(0, -0.01, 0))

	if !r.Shader.Ready() {
		return
	}

	r.Shader.SyncUniforms()
	r.Shader.SetView(cam.Position)
	r.Shader.SetLight(r.Light, r.Ambient)

	r.Shader.SetSurface(r.Ground)
	rl.DrawMesh(r.groundMesh, r.Ground.Material, rl.MatrixIdentity())

	if world == nil || len(world.Buildings()) == 0 || len(r.Prototypes) == 0 {
		return
	}

	r.Batches.Clear()
	origin := world.Origin()
	for _, b := range world.Buildings() {
		if b.Prototype < 0 || b.Prototype >= len(r.Prototypes) {
			continue
		}
		r.Batches.Add(r.Prototypes[b.Prototype], toMatrix(b.Transform(origin)))
	}

	r.Shader.SetSurface(r.Building)
	r.Batches.DrawAll(r.Building.Material)
}

// toMatrix converte a matriz coluna-maior da mgl32 para a raylib.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// Unload libera todos os recursos de GPU. Pode ser chamado mais de uma vez.
func (r *Renderer) Unload() {
	// As malhas pertencem aos modelos
	for _, m := range r.models {
		rl.UnloadModel(m)
	}
	r.models = nil
	r.Prototypes = nil
	r.Batches.Reset()

	if r.groundMesh.VertexCount > 0 {
		rl.UnloadMesh(&r.groundMesh)
		r.groundMesh = rl.Mesh{}
	}
	if r.backdropMesh.VertexCount > 0 {
		rl.UnloadMesh(&r.backdropMesh)
		r.backdropMesh = rl.Mesh{}
	}
	r.Shader.Unload()
	log.Println("[Renderer] Recursos de GPU liberados")
}
