package app

import (
	"context"
	"log"
	"sync"
	"time"

	"CityRipple/cliente/internal/assets"
	"CityRipple/cliente/internal/camera"
	"CityRipple/cliente/internal/render"
	"CityRipple/shared/assetcache"
	"CityRipple/shared/config"
	"CityRipple/shared/scene"
	"CityRipple/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AssetState representa o andamento da carga do pacote de prédios.
type AssetState int

const (
	AssetPending AssetState = iota // Download em andamento
	AssetReady                     // Prédios posicionados
	AssetFailed                    // Falhou: cena fica só com chão e luz
)

func (s AssetState) String() string {
	switch s {
	case AssetPending:
		return "Carregando"
	case AssetReady:
		return "Pronto"
	case AssetFailed:
		return "Falhou"
	}
	return "?"
}

// App é a aplicação principal do CityRipple.
type App struct {
	Config *config.Config

	// Controlador de Câmera
	Cam *camera.CameraController

	world    *scene.World
	renderer *render.Renderer
	cache    *assetcache.Cache
	fetcher  *assets.Fetcher

	// Carga assíncrona do OBJ
	assetCh     <-chan assets.Result
	fetchCancel context.CancelFunc
	AssetState  AssetState
	AssetStatus string

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once

	frameCount int
	frameTimes *util.Ring[float32] // últimos tempos de frame (HUD)
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		Config:      cfg,
		AssetState:  AssetPending,
		AssetStatus: "Baixando prédios...",
		ctx:         ctx,
		cancel:      cancel,
		frameTimes:  util.NewRing[float32](64),
	}
}

// Run abre a janela, monta a cena e executa o loop principal até o fechamento.
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	log.Println("[CityRipple] Janela inicializada com sucesso")
	log.Printf("[CityRipple] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	if err := a.start(); err != nil {
		rl.CloseWindow()
		return err
	}

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// start monta o mundo, o renderizador e dispara o download dos prédios.
func (a *App) start() error {
	pos := a.Config.CameraPosition
	a.Cam = camera.New(rl.Vector3{X: pos[0], Y: pos[1], Z: pos[2]}, rl.Vector3{}, a.Config.FOV)
	a.Cam.RotateSpeed = a.Config.RotateSpeed
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed

	world, err := scene.NewWorld(a.Config.Grid(), a.Config.WorldOptions())
	if err != nil {
		return err
	}
	a.world = world
	a.renderer = render.NewRenderer(world.Uniform())

	// Sem cache a aplicação continua: o fetcher baixa para um arquivo temporário.
	cache, err := assetcache.Open(a.Config.CacheDir)
	if err != nil {
		log.Printf("[App] AVISO: cache indisponível: %v", err)
	}
	a.cache = cache

	a.fetcher = assets.NewFetcher(cache, a.Config.FetchRetries)
	fetchCtx, cancel := context.WithTimeout(a.ctx, time.Duration(a.Config.FetchTimeout)*time.Second)
	a.fetchCancel = cancel
	a.assetCh = a.fetcher.FetchAsync(fetchCtx, a.Config.AssetURL)

	a.world.Start()
	log.Printf("[App] Mundo iniciado, aguardando %s", a.Config.AssetURL)
	return nil
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()
	a.frameTimes.Push(dt)

	a.pollAssets()
	a.world.Tick(float64(dt))
	a.updateCamera()
	a.updateInput()
}

// Stop para o mundo e libera os recursos. Pode ser chamado mais de uma vez.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		if a.fetchCancel != nil {
			a.fetchCancel()
		}
		a.cancel()
		if a.world != nil {
			a.world.Dispose()
		}
		if a.renderer != nil {
			a.renderer.Unload()
		}
		if a.cache != nil {
			a.cache.Close()
		}
	})
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")
	a.Stop()

	if err := a.Config.Save(); err != nil {
		log.Printf("[CityRipple] Erro ao salvar configurações: %v", err)
	}
}
