package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"CityRipple/cliente/internal/assets"
	"CityRipple/shared/assetcache"
	"CityRipple/shared/config"
)

// prefetch baixa o pacote de prédios para o cache SQLite antes de abrir o cliente.
func main() {
	cfg := config.DefaultConfig()

	url := flag.String("url", cfg.AssetURL, "URL do OBJ com os prédios")
	cacheDir := flag.String("cache", cfg.CacheDir, "Diretório do cache")
	force := flag.Bool("force", false, "Ignora o cache e baixa novamente")
	timeout := flag.Duration("timeout", time.Duration(cfg.FetchTimeout)*time.Second, "Tempo máximo do download")
	flag.Parse()

	log.SetFlags(log.Ltime)

	cache, err := assetcache.Open(*cacheDir)
	if err != nil {
		log.Fatalf("[Prefetch] %v", err)
	}
	defer cache.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	f := assets.NewFetcher(cache, cfg.FetchRetries)
	f.Progress = true
	f.Refresh = *force

	path, err := f.Fetch(ctx, *url)
	if err != nil {
		log.Fatalf("[Prefetch] Falha: %v", err)
	}

	// Valida o arquivo antes de declarar sucesso
	objects, err := assets.CheckOBJ(path)
	if err != nil {
		log.Fatalf("[Prefetch] OBJ inválido: %v", err)
	}

	fmt.Printf("\nOK: %d objetos em %s\n", objects, path)
}
