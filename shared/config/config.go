package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"CityRipple/shared/ripple"
	"CityRipple/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config armazena as configurações do CityRipple.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" yaml:"window_width"`
	WindowHeight int32  `json:"window_height" yaml:"window_height"`
	WindowTitle  string `json:"window_title" yaml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" yaml:"target_fps"`

	// Assets
	AssetURL     string `json:"asset_url" yaml:"asset_url"`
	CacheDir     string `json:"cache_dir" yaml:"cache_dir"`
	FetchTimeout int    `json:"fetch_timeout_sec" yaml:"fetch_timeout_sec"`
	FetchRetries int    `json:"fetch_retries" yaml:"fetch_retries"`

	// Grade de prédios
	Rows         int        `json:"rows" yaml:"rows"`
	Cols         int        `json:"cols" yaml:"cols"`
	Gap          float32    `json:"gap" yaml:"gap"`
	GroupOffset  [3]float32 `json:"group_offset" yaml:"group_offset"`
	Scale        float32    `json:"scale" yaml:"scale"`
	PoolFraction float64    `json:"pool_fraction" yaml:"pool_fraction"`
	Seed         int64      `json:"seed" yaml:"seed"` // 0 = aleatório

	// Onda
	SpeedFactor    float64 `json:"speed_factor" yaml:"speed_factor"`
	ResetThreshold float64 `json:"reset_threshold" yaml:"reset_threshold"`
	DropStep       float32 `json:"drop_step" yaml:"drop_step"`

	// Câmera
	FOV            float32    `json:"fov" yaml:"fov"`
	CameraPosition [3]float32 `json:"camera_position" yaml:"camera_position"`
	RotateSpeed    float32    `json:"rotate_speed" yaml:"rotate_speed"`
	ZoomSpeed      float32    `json:"zoom_speed" yaml:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "CityRipple",
		Fullscreen:   false,
		TargetFPS:    60,

		AssetURL:     "https://raw.githubusercontent.com/iondrimba/images/master/buildings.obj",
		CacheDir:     "cache",
		FetchTimeout: 30,
		FetchRetries: 3,

		Rows:         17,
		Cols:         25,
		Gap:          2,
		GroupOffset:  [3]float32{-7, 0, 0},
		Scale:        0.01,
		PoolFraction: 0.5,

		SpeedFactor:    ripple.DefaultSpeedFactor,
		ResetThreshold: scene.DefaultResetThreshold,
		DropStep:       scene.DefaultDropStep,

		FOV:            20,
		CameraPosition: [3]float32{-80, 50, 80},
		RotateSpeed:    2.0,
		ZoomSpeed:      5.0,

		ShowDebugInfo: false,
	}
}

// Validate verifica se a configuração produz uma cena válida.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("janela inválida: %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.SpeedFactor <= 0 {
		errs = append(errs, fmt.Errorf("speed_factor deve ser positivo: %v", c.SpeedFactor))
	}
	if c.ResetThreshold <= 0 {
		errs = append(errs, fmt.Errorf("reset_threshold deve ser positivo: %v", c.ResetThreshold))
	}
	if c.DropStep <= 0 {
		errs = append(errs, fmt.Errorf("drop_step deve ser positivo: %v", c.DropStep))
	}
	if err := c.Grid().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Grid converte a configuração na grade do motor.
func (c *Config) Grid() scene.GridConfig {
	return scene.GridConfig{
		Rows:         c.Rows,
		Cols:         c.Cols,
		Gap:          c.Gap,
		Origin:       mgl32.Vec3(c.GroupOffset),
		Scale:        c.Scale,
		PoolFraction: c.PoolFraction,
	}
}

// WorldOptions converte a configuração nas opções do ciclo de animação.
func (c *Config) WorldOptions() scene.Options {
	return scene.Options{
		ResetThreshold: c.ResetThreshold,
		SpeedFactor:    c.SpeedFactor,
		DropStep:       c.DropStep,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo ao lado do executável.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFile(configPath())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFile carrega um arquivo JSON ou YAML (pela extensão) sobre os valores padrão.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida em %s: %w", path, err)
	}
	return cfg, nil
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveFile(configPath())
}

// SaveFile salva as configurações em JSON ou YAML conforme a extensão.
func (c *Config) SaveFile(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
