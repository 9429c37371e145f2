package app

import (
	"fmt"

	"CityRipple/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(0x22, 0x22, 0x22, 255))

	a.drawScene()
	a.drawStatus()
	a.drawHUD()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)
	if a.renderer != nil {
		a.renderer.Draw(a.Cam.RLCamera, a.world)
	}
	rl.EndMode3D()
}

// drawStatus mostra o andamento do download enquanto os prédios não chegam.
func (a *App) drawStatus() {
	if a.AssetState == AssetReady {
		return
	}

	color := rl.LightGray
	if a.AssetState == AssetFailed {
		color = rl.Red
	}
	text := fmt.Sprintf("%s: %s", a.AssetState, a.AssetStatus)
	w := rl.MeasureText(text, 18)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-w)/2, int32(rl.GetScreenHeight())-40, 18, color)
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(170)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(fmt.Sprintf("%.1f ms", util.Mean(a.frameTimes)*1000), x+150, y+14, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("ONDA", x+10, y+45, 12, rl.Gray)
	st := a.world.State()
	rl.DrawText(fmt.Sprintf("Tempo: %.2fs  Uniform: %.1f", st.Elapsed, st.Value()), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Ciclos: %d  Prédios: %d", a.world.Cycles(), len(a.world.Buildings())), x+10, y+80, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Assets: %s", a.AssetState), x+10, y+100, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+120, x+width-10, y+120, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("Arrastar: Girar | Scroll: Zoom", x+10, y+130, 14, rl.LightGray)
	rl.DrawText("R: Reiniciar | F11: Tela Cheia | F3: HUD", x+10, y+148, 14, rl.SkyBlue)
}
