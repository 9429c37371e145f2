package assets

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotOBJ indica um arquivo sem geometria OBJ reconhecível.
var ErrNotOBJ = errors.New("arquivo não contém geometria OBJ")

// CheckOBJ confere, antes do carregador de modelos, que o arquivo tem vértices e
// faces. A raylib troca arquivos ilegíveis por um cubo padrão sem reportar erro,
// então a falha precisa ser detectada aqui. Retorna quantos objetos (o/g) existem.
func CheckOBJ(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("falha ao abrir %s: %w", path, err)
	}
	defer f.Close()

	var objects, vertices, faces int
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "o "), strings.HasPrefix(line, "g "):
			objects++
		case strings.HasPrefix(line, "v "):
			vertices++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	if vertices < 3 || faces == 0 {
		return 0, fmt.Errorf("%s: %w", path, ErrNotOBJ)
	}
	if objects == 0 {
		objects = 1 // geometria solta vira um único objeto
	}
	return objects, nil
}
