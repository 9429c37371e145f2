package ripple

import (
	"errors"
	"strings"
	"testing"
)

func TestAugmentPhysicalProgram(t *testing.T) {
	patched, uniforms, err := Augment(PhysicalProgram().Source)
	if err != nil {
		t.Fatalf("Augment() erro inesperado: %v", err)
	}
	if len(uniforms) != 1 || uniforms[0] != TimeUniform {
		t.Fatalf("uniforms = %v, want [%s]", uniforms, TimeUniform)
	}

	for _, src := range []string{patched.Vertex, patched.Fragment} {
		if !strings.HasPrefix(strings.TrimSpace(src), "#version 330") {
			t.Errorf("#version deixou de ser a primeira linha:\n%s", src)
		}
	}

	// A atribuição precisa vir depois do intermediário worldPosition e antes do fechamento final.
	wp := strings.Index(patched.Vertex, "vec4 worldPosition")
	assign := strings.Index(patched.Vertex, vertexAssignment)
	last := strings.LastIndex(patched.Vertex, "}")
	if !(wp < assign && assign < last) {
		t.Errorf("ordem inválida: worldPosition=%d atribuição=%d fechamento=%d", wp, assign, last)
	}
	if !strings.Contains(patched.Vertex, vertexDeclaration) {
		t.Error("vertex sem declaração de vWorldPosition")
	}

	if strings.Contains(patched.Fragment, fragmentOutputAnchor) {
		t.Error("escrita original de cor ainda presente")
	}
	for _, want := range []string{
		"uniform float time;",
		"in vec3 vWorldPosition;",
		"vec3 col = outgoingLight + vec3(0.0, 1.0, 1.0) * ratio;",
		"finalColor = vec4(col, diffuseColor.a);",
	} {
		if !strings.Contains(patched.Fragment, want) {
			t.Errorf("fragment sem %q", want)
		}
	}

	// O restante do modelo de luz permanece intacto.
	if !strings.Contains(patched.Fragment, "vec3 outgoingLight = ambientColor * diffuseColor.rgb") {
		t.Error("termo de iluminação base foi alterado")
	}
}

func TestAugmentMissingAnchors(t *testing.T) {
	base := PhysicalProgram().Source
	tests := []struct {
		name string
		src  Source
	}{
		{"sem worldPosition", Source{Vertex: strings.ReplaceAll(base.Vertex, "worldPosition", "wp"), Fragment: base.Fragment}},
		{"sem fechamento", Source{Vertex: "#version 330\nvoid main()", Fragment: base.Fragment}},
		{"sem escrita de cor", Source{Vertex: base.Vertex, Fragment: strings.Replace(base.Fragment, fragmentOutputAnchor, "finalColor = vec4(1.0);", 1)}},
	}

	for _, tt := range tests {
		got, uniforms, err := Augment(tt.src)
		if !errors.Is(err, ErrAnchorNotFound) {
			t.Errorf("%s: err = %v, want ErrAnchorNotFound", tt.name, err)
		}
		if got != tt.src {
			t.Errorf("%s: código alterado apesar da âncora ausente", tt.name)
		}
		if uniforms != nil {
			t.Errorf("%s: uniforms = %v, want nil", tt.name, uniforms)
		}
	}
}

func TestAugmentIsIdempotent(t *testing.T) {
	once, _, err := Augment(PhysicalProgram().Source)
	if err != nil {
		t.Fatal(err)
	}
	twice, _, err := Augment(once)
	if err != nil {
		t.Fatalf("segunda aplicação falhou: %v", err)
	}
	if once != twice {
		t.Error("reaplicar o patch alterou o código")
	}
	if strings.Count(twice.Fragment, "uniform float time;") != 1 {
		t.Error("declaração de time duplicada")
	}
}

func TestPatcherBindsSharedCell(t *testing.T) {
	cell := NewUniform(0)
	patch := Patcher(cell)

	building := PhysicalProgram()
	ground := PhysicalProgram()
	for _, p := range []*Program{&building, &ground, &building} {
		if err := patch(p); err != nil {
			t.Fatalf("patch: %v", err)
		}
	}

	if len(building.Uniforms) != 1 {
		t.Fatalf("uniforms duplicados: %v", building.Uniforms)
	}
	if building.Uniforms[TimeUniform] != cell || ground.Uniforms[TimeUniform] != cell {
		t.Fatal("materiais não compartilham a mesma célula")
	}

	cell.Set(42)
	if got := ground.Uniforms[TimeUniform].Value(); got != 42 {
		t.Errorf("valor visto pelo chão = %v, want 42", got)
	}
}

func TestPatcherLeavesProgramOnMismatch(t *testing.T) {
	p := Program{Source: Source{Vertex: "void main() {}", Fragment: "void main() {}"}}
	err := Patcher(NewUniform(0))(&p)
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("err = %v, want ErrAnchorNotFound", err)
	}
	if p.Uniforms != nil {
		t.Error("uniform registrado mesmo sem patch")
	}
}

func TestInsertHeader(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"#version 330\nvoid main(){}", "#version 330\nDECL\nvoid main(){}"},
		{"\n#version 330\nx", "\n#version 330\nDECL\nx"},
		{"void main(){}", "DECL\nvoid main(){}"},
		{"#version 330", "#version 330\nDECL\n"},
	}
	for _, tt := range tests {
		if got := insertHeader(tt.code, "DECL"); got != tt.want {
			t.Errorf("insertHeader(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
