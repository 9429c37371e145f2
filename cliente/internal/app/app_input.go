package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	// Processa input (Mouse, Zoom)
	a.Cam.HandleInput()

	// Atualiza a interpolação da câmera
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Tela cheia
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.Config.Fullscreen = !a.Config.Fullscreen
	}

	// Força um novo ciclo da onda
	if rl.IsKeyPressed(rl.KeyR) {
		a.world.Reset()
		log.Printf("[App] Ciclo reiniciado manualmente (%d)", a.world.Cycles())
	}
}
