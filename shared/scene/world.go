package scene

import (
	"errors"
	"log"
	"math/rand"

	"CityRipple/shared/ripple"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultResetThreshold é a duração de um ciclo em segundos.
const DefaultResetThreshold = 3.0

// ErrDisposed indica uso do mundo depois de Dispose.
var ErrDisposed = errors.New("mundo já descartado")

// Options ajusta o ciclo de animação.
type Options struct {
	ResetThreshold float64
	SpeedFactor    float64
	DropStep       float32
}

// DefaultOptions retorna os valores padrão do ciclo.
func DefaultOptions() Options {
	return Options{
		ResetThreshold: DefaultResetThreshold,
		SpeedFactor:    ripple.DefaultSpeedFactor,
		DropStep:       DefaultDropStep,
	}
}

// World é o motor da cena: grade, relógio da onda e prédios. Todos os métodos
// devem ser chamados da mesma goroutine (a do loop de frames).
type World struct {
	grid GridConfig
	opts Options

	clock     *ripple.Clock
	state     ripple.State
	drop      DropAnimator
	buildings []*Building

	running  bool
	disposed bool
	cycles   int
}

// NewWorld cria um mundo vazio (apenas chão e luz) aguardando os protótipos.
func NewWorld(grid GridConfig, opts Options) (*World, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if opts.ResetThreshold <= 0 {
		opts.ResetThreshold = DefaultResetThreshold
	}
	if opts.DropStep <= 0 {
		opts.DropStep = DefaultDropStep
	}

	w := &World{
		grid:  grid,
		opts:  opts,
		clock: ripple.NewClock(),
		state: ripple.NewState(opts.SpeedFactor),
		drop:  DropAnimator{Step: opts.DropStep},
	}
	w.opts.SpeedFactor = w.state.SpeedFactor
	return w, nil
}

// Populate posiciona os prédios a partir dos protótipos carregados. Com o
// pacote vazio o grupo continua ausente e o erro é devolvido para registro.
func (w *World) Populate(protos []Prototype, rng *rand.Rand) error {
	if w.disposed {
		return ErrDisposed
	}
	buildings, err := NewPlacer(w.grid, rng).Place(protos)
	if err != nil {
		return err
	}
	w.buildings = buildings
	log.Printf("[World] %d prédios posicionados (%dx%d, %d protótipos)", len(buildings), w.grid.Rows, w.grid.Cols, len(protos))
	return nil
}

// Start inicia o loop perpétuo de ciclos.
func (w *World) Start() {
	if w.disposed {
		return
	}
	w.running = true
}

// Stop interrompe os ticks. Pode ser chamado várias vezes.
func (w *World) Stop() {
	w.running = false
}

// Dispose para o mundo e desmonta o grupo de prédios. É idempotente e seguro
// mesmo se os assets nunca chegaram.
func (w *World) Dispose() {
	if w.disposed {
		return
	}
	w.Stop()
	w.disposed = true
	w.buildings = nil
	log.Println("[World] Mundo descartado")
}

// Tick avança um frame: relógio, uniform, subida dos prédios e reset do ciclo.
func (w *World) Tick(dt float64) {
	if !w.running {
		return
	}

	// Sem prédios a onda não progride: nada para iluminar.
	elapsed := 0.0
	if len(w.buildings) > 0 {
		elapsed = w.clock.Tick(dt)
	}

	// Escrito em todo tick, então o primeiro frame após o reset já mostra a onda nova.
	w.state.Update(elapsed)

	w.drop.Advance(w.buildings)

	if elapsed > w.opts.ResetThreshold {
		w.Reset()
	}
}

// Reset encerra o ciclo: relógio novo e prédios de volta às alturas iniciais.
// Sem prédios não há ciclo em andamento, então nada é contado.
func (w *World) Reset() {
	w.clock = ripple.NewClock()
	if len(w.buildings) == 0 {
		return
	}
	w.drop.Reset(w.buildings)
	w.cycles++
}

// Buildings retorna os prédios do grupo.
func (w *World) Buildings() []*Building {
	return w.buildings
}

// Grid retorna a configuração da grade.
func (w *World) Grid() GridConfig {
	return w.grid
}

// Origin retorna o deslocamento do grupo de prédios.
func (w *World) Origin() mgl32.Vec3 {
	return w.grid.Origin
}

// State retorna uma cópia do estado da onda.
func (w *World) State() ripple.State {
	return w.state
}

// Uniform retorna a célula de tempo compartilhada com os shaders.
func (w *World) Uniform() *ripple.Uniform {
	return w.state.Uniform
}

// Cycles retorna quantos ciclos completos já ocorreram.
func (w *World) Cycles() int {
	return w.cycles
}

// Running informa se o mundo está recebendo ticks.
func (w *World) Running() bool {
	return w.running
}

// Disposed informa se Dispose já foi chamado.
func (w *World) Disposed() bool {
	return w.disposed
}
