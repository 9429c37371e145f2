package app

import (
	"fmt"
	"log"
	"math/rand"

	"CityRipple/cliente/internal/assets"
	"CityRipple/shared/scene"
)

// pollAssets verifica, sem bloquear o frame, se o download terminou.
func (a *App) pollAssets() {
	if a.assetCh == nil {
		return
	}

	select {
	case res := <-a.assetCh:
		a.assetCh = nil
		if a.fetchCancel != nil {
			a.fetchCancel()
			a.fetchCancel = nil
		}
		a.handleAsset(res)
	default:
	}
}

// handleAsset carrega o OBJ baixado e posiciona os prédios. Qualquer falha
// apenas é registrada: a cena segue com chão e luz.
func (a *App) handleAsset(res assets.Result) {
	if res.Err != nil {
		a.fail(fmt.Errorf("download de %s: %w", res.URL, res.Err))
		return
	}

	if _, err := assets.CheckOBJ(res.Path); err != nil {
		a.fail(err)
		return
	}

	protos, err := a.renderer.LoadPrototypes(res.Path)
	if err != nil {
		a.fail(err)
		return
	}
	a.populate(protos)
}

// populate sorteia os prédios a partir dos protótipos carregados.
func (a *App) populate(protos []scene.Prototype) {
	var rng *rand.Rand
	if a.Config.Seed != 0 {
		rng = rand.New(rand.NewSource(a.Config.Seed))
	}
	if err := a.world.Populate(protos, rng); err != nil {
		a.fail(err)
		return
	}

	a.AssetState = AssetReady
	a.AssetStatus = fmt.Sprintf("%d prédios (%d protótipos)", len(a.world.Buildings()), len(protos))
	log.Printf("[App] Cena pronta: %s", a.AssetStatus)
}

func (a *App) fail(err error) {
	a.AssetState = AssetFailed
	a.AssetStatus = err.Error()
	log.Printf("[App] ERRO ao carregar prédios: %v", err)
}
