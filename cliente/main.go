package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"CityRipple/cliente/internal/app"
	"CityRipple/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configFile := flag.String("config", "", "Arquivo de configuração (.json ou .yaml)")
	assetURL := flag.String("asset", "", "URL do OBJ com os prédios")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	seed := flag.Int64("seed", 0, "Semente do sorteio de prédios (0 = aleatório)")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_city.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		defer f.Close()
		log.Println("--- INICIANDO CITYRIPPLE ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          CityRipple v0.1.0           ║")
	log.Println("║   Cidade 3D com onda de luz animada  ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("[CityRipple] %v", err)
		}
		cfg = loaded
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *assetURL != "" {
		cfg.AssetURL = *assetURL
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[CityRipple] Erro fatal: %v", err)
	}
}
