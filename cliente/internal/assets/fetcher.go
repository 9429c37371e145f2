package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"CityRipple/shared/assetcache"

	"github.com/schollz/progressbar/v3"
)

// Result é o desfecho de uma carga assíncrona.
type Result struct {
	URL  string
	Path string // arquivo local pronto para o carregador de modelos
	Err  error
}

// Fetcher baixa assets por HTTP, consultando o cache SQLite antes da rede.
type Fetcher struct {
	Client   *http.Client
	Cache    *assetcache.Cache // opcional
	Retries  int
	Backoff  time.Duration
	Progress bool // barra de progresso no terminal
	Refresh  bool // ignora o cache e baixa de novo
}

// NewFetcher cria um fetcher com os valores padrão do cliente.
func NewFetcher(cache *assetcache.Cache, retries int) *Fetcher {
	if retries < 1 {
		retries = 1
	}
	return &Fetcher{
		Client:  &http.Client{},
		Cache:   cache,
		Retries: retries,
		Backoff: 2 * time.Second,
	}
}

// FetchAsync executa Fetch em uma goroutine. O canal recebe exatamente um resultado.
func (f *Fetcher) FetchAsync(ctx context.Context, url string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		p, err := f.Fetch(ctx, url)
		out <- Result{URL: url, Path: p, Err: err}
	}()
	return out
}

// Fetch garante o asset em disco e retorna o caminho local.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ext := path.Ext(url)

	if f.Cache != nil && !f.Refresh {
		model, err := f.Cache.Get(url)
		if err == nil {
			log.Printf("[Assets] Cache hit: %s (%d bytes)", url, model.Size)
			return f.Cache.Materialize(model, ext)
		}
		if !errors.Is(err, assetcache.ErrNotCached) {
			log.Printf("[Assets] AVISO: cache indisponível: %v", err)
		}
	}

	data, err := f.download(ctx, url)
	if err != nil {
		return "", err
	}

	if f.Cache == nil {
		return writeTemp(data, ext)
	}
	model, err := f.Cache.Put(url, data)
	if err != nil {
		log.Printf("[Assets] AVISO: %v", err)
		return writeTemp(data, ext)
	}
	return f.Cache.Materialize(model, ext)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for i := 0; i < f.Retries; i++ {
		if i > 0 {
			log.Printf("[Assets] Tentativa %d/%d em %s...", i+1, f.Retries, url)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.Backoff):
			}
		}

		data, err := f.get(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[Assets] FALHA ao baixar %s: %v", url, err)
	}
	return nil, fmt.Errorf("falha ao baixar %s após %d tentativas: %w", url, f.Retries, lastErr)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar requisição: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status inesperado: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if f.Progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "baixando "+path.Base(url))
		defer bar.Close()
		body = io.TeeReader(resp.Body, bar)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler resposta: %w", err)
	}
	return data, nil
}

func writeTemp(data []byte, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "cityripple_*"+ext)
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}
	defer tmp.Close()
	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("falha ao gravar asset: %w", err)
	}
	return tmp.Name(), nil
}
