package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

func main() {
	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║        CityRipple Launcher           ║")
	fmt.Println("╚══════════════════════════════════════╝")

	// 1. Aquecer o cache de assets (falha não impede o cliente: ele baixa sozinho)
	fmt.Println("[1/2] Baixando prédios para o cache...")
	absPrefetchPath, err := filepath.Abs("cliente/prefetch.exe")
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do prefetch: %v", err)
	}
	prefetchCmd := exec.Command(absPrefetchPath, "-cache", "cache")
	prefetchCmd.Dir = "cliente" // Mesmo diretório de trabalho do cliente: mesmo cache
	prefetchCmd.Stdout = os.Stdout
	prefetchCmd.Stderr = os.Stderr
	if err := prefetchCmd.Run(); err != nil {
		log.Printf("AVISO: prefetch falhou (%v), o cliente tentará baixar sozinho", err)
	}

	// 2. Iniciar o Cliente silenciosamente (App GUI não precisa de CMD)
	fmt.Println("[2/2] Abrindo Cliente...")

	// Obter caminho absoluto para garantir que o Windows encontre o arquivo
	absClientPath, err := filepath.Abs("cliente/client.exe")
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(absClientPath)
	clientCmd.Dir = "cliente" // Define o diretório de trabalho para o cache e o log

	if err := clientCmd.Start(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o cliente em %s\n", absClientPath)
		fmt.Printf("Detalhes: %v\n", err)
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
		return
	}

	fmt.Println("\nSucesso! CityRipple foi iniciado.")
	fmt.Println("O Launcher fechará automaticamente em 2 segundos...")
	time.Sleep(2 * time.Second)
}
