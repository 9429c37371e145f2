package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// target é um executável do projeto.
type target struct {
	name   string
	pkg    string // pacote relativo à raiz do módulo
	output string // sem extensão
	cgo    bool   // raylib e SQLite exigem CGO
	gui    bool   // sem console no Windows
}

var targets = []target{
	{name: "PREFETCH", pkg: "cliente/prefetch", output: "cliente/prefetch", cgo: true},
	{name: "CLIENTE", pkg: "cliente", output: "cliente/client", cgo: true, gui: true},
	{name: "LAUNCHER", pkg: "launcher", output: "CityRipple"},
}

func main() {
	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      CityRipple Native Builder       ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()
	setupEnvironment()

	for i, t := range targets {
		fmt.Printf(ColorYellow+"\n[%d/%d] Compilando %s..."+ColorReset+"\n", i+1, len(targets), t.name)
		if err := build(t); err != nil {
			fatal(err)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' para abrir a cena."+ColorReset+"\n", exeName("CityRipple"))
}

// setupEnvironment coloca o gcc do MSYS2 no PATH quando compilando no Windows.
func setupEnvironment() {
	if runtime.GOOS != "windows" {
		return
	}
	msysPath := `C:\msys64\mingw64\bin`
	currentPath := os.Getenv("PATH")
	if !strings.Contains(currentPath, msysPath) {
		os.Setenv("PATH", msysPath+";"+currentPath)
		fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
	}
	os.Setenv("CC", "gcc")
}

func exeName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

// ldflags monta as flags de link: binário enxuto sempre, estático e sem
// console apenas no Windows (distribuição sem DLLs do MSYS2).
func ldflags(t target) string {
	flags := []string{"-s", "-w"}
	if runtime.GOOS == "windows" {
		if t.cgo {
			flags = append(flags, "-extldflags=-static")
		}
		if t.gui {
			flags = append(flags, "-H=windowsgui")
		}
	}
	return strings.Join(flags, " ")
}

func build(t target) error {
	output := exeName(t.output)

	cmd := exec.Command("go", "build", "-ldflags", ldflags(t), "-o", output, "./"+t.pkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cgo := "0"
	if t.cgo {
		cgo = "1"
	}
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgo)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", t.name, err)
	}
	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", t.name, output)
	return nil
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	os.Exit(1)
}
