package ripple

import (
	"errors"
	"fmt"
	"strings"
)

// TimeUniform é o nome do uniform lido pelo fragment shader aumentado.
const TimeUniform = "time"

// Largura da faixa luminosa (em unidades de cena) e sua cor aditiva.
const (
	RippleWidth = 2.0
	rippleColor = "vec3(0.0, 1.0, 1.0)"
)

// Pontos de ancoragem procurados no programa base.
const (
	worldPositionAnchor = "vec4 worldPosition"
	fragmentOutputAnchor = "finalColor = vec4(outgoingLight, diffuseColor.a);"
)

const (
	vertexDeclaration   = "out vec3 vWorldPosition;"
	vertexAssignment    = "vWorldPosition = worldPosition.xyz;"
	fragmentDeclaration = "uniform float " + TimeUniform + ";\nin vec3 vWorldPosition;"
	fragmentMarker      = "float rippleWidth"
)

// ErrAnchorNotFound indica que o shader base mudou e o patch não pôde ser aplicado.
var ErrAnchorNotFound = errors.New("âncora do shader não encontrada")

// Source agrupa o código dos dois estágios de um programa GLSL.
type Source struct {
	Vertex   string
	Fragment string
}

// rippleFragment substitui a escrita final de cor do programa base.
var rippleFragment = fmt.Sprintf(`float rippleWidth = %.1f;
    float rippleDist = length(vec2(vWorldPosition.x, vWorldPosition.z));
    float ratio = step(time - rippleWidth, rippleDist) * step(rippleDist, time + rippleWidth);
    ratio *= smoothstep(time - rippleWidth, time, rippleDist) * smoothstep(time, time + rippleWidth, rippleDist);
    vec3 col = outgoingLight + %s * ratio;
    finalColor = vec4(col, diffuseColor.a);`, RippleWidth, rippleColor)

// IsAugmented informa se os dois estágios já carregam o patch da onda.
func IsAugmented(src Source) bool {
	return strings.Contains(src.Vertex, vertexAssignment) && strings.Contains(src.Fragment, fragmentMarker)
}

// Augment injeta a onda em um programa fisicamente iluminado sem tocar no resto
// do modelo de luz. A função é pura: devolve novas strings e o conjunto de
// uniforms que o programa passa a exigir.
//
// O patch é tudo-ou-nada. Se qualquer âncora faltar, o código sem modificação volta
// intacto junto com um erro que embrulha ErrAnchorNotFound; o chamador deve
// apenas registrar o aviso e seguir com o shader sem a onda.
func Augment(src Source) (Source, []string, error) {
	uniforms := []string{TimeUniform}

	if IsAugmented(src) {
		return src, uniforms, nil
	}

	end := strings.LastIndex(src.Vertex, "}")
	if end < 0 {
		return src, nil, fmt.Errorf("vertex sem bloco final: %w", ErrAnchorNotFound)
	}
	if !strings.Contains(src.Vertex[:end], worldPositionAnchor) {
		return src, nil, fmt.Errorf("vertex sem %q: %w", worldPositionAnchor, ErrAnchorNotFound)
	}
	if !strings.Contains(src.Fragment, fragmentOutputAnchor) {
		return src, nil, fmt.Errorf("fragment sem %q: %w", fragmentOutputAnchor, ErrAnchorNotFound)
	}

	vertex := src.Vertex[:end] + "    " + vertexAssignment + "\n" + src.Vertex[end:]
	vertex = insertHeader(vertex, vertexDeclaration)

	fragment := strings.Replace(src.Fragment, fragmentOutputAnchor, rippleFragment, 1)
	fragment = insertHeader(fragment, fragmentDeclaration)

	return Source{Vertex: vertex, Fragment: fragment}, uniforms, nil
}

// insertHeader coloca as declarações logo após a diretiva #version (que precisa
// continuar sendo a primeira linha) ou no topo quando ela não existe.
func insertHeader(code, decl string) string {
	trimmed := strings.TrimLeft(code, " \t\r\n")
	if !strings.HasPrefix(trimmed, "#version") {
		return decl + "\n" + code
	}
	start := len(code) - len(trimmed)
	nl := strings.IndexByte(code[start:], '\n')
	if nl < 0 {
		return code + "\n" + decl + "\n"
	}
	cut := start + nl + 1
	return code[:cut] + decl + "\n" + code[cut:]
}

// Program é o programa de um material antes da compilação: código fonte mais os
// uniforms customizados ligados por referência.
type Program struct {
	Source
	Uniforms map[string]*Uniform
}

// Patcher devolve a função de modificação aplicada antes da compilação de cada
// material que deve exibir a onda. Todos os materiais que recebem a mesma função
// compartilham a mesma célula de tempo, então uma escrita por frame alcança todos.
//
// Reaplicar a função no mesmo programa sobrescreve a entrada "time" (nunca duplica)
// e não altera o código já aumentado.
func Patcher(cell *Uniform) func(p *Program) error {
	return func(p *Program) error {
		patched, uniforms, err := Augment(p.Source)
		if err != nil {
			return err
		}
		if p.Uniforms == nil {
			p.Uniforms = make(map[string]*Uniform, len(uniforms))
		}
		for _, name := range uniforms {
			p.Uniforms[name] = cell
		}
		p.Source = patched
		return nil
	}
}
