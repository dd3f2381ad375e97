// Package loop runs the Input → Update → Draw frame loop for one terminal.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/object"
)

// Options configures a client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Tuning       config.Tuning
	Rand         object.RandSource // nil uses the global source
	Logger       zerolog.Logger
	Lobby        *Lobby // Optional; set when running inside a multi-session host
	Username     string

	// Idle limits. Zero disables the warning or the disconnect.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Client plays one round after another on a single terminal.
type Client struct {
	world        *game.World
	canvas       *draw.Canvas
	hud          *draw.HUD
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	log          zerolog.Logger

	idleWarn       time.Duration
	idleDisconnect time.Duration

	lobby   *Lobby
	lobbyID int
	events  <-chan Event

	input         input.Input
	shapes        []object.Shape
	running       bool
	lastInput     time.Time
	isInactive    bool
	shutdownTimer float64 // > 0 while the shutdown notice is showing
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	world := game.NewWorld(opts.Tuning, opts.Rand)
	screen := world.Screen()

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, screen.Width, screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		world:          world,
		canvas:         canvas,
		hud:            draw.NewHUD(w, renderWidth, offsetCol, offsetRow),
		writer:         w,
		inputStream:    input.StartStream(r),
		termSizeFunc:   termSizeFunc,
		log:            opts.Logger.With().Str("user", opts.Username).Logger(),
		idleWarn:       opts.IdleWarn,
		idleDisconnect: opts.IdleDisconnect,
		lobby:          opts.Lobby,
		running:        true,
		lastInput:      time.Now(),
	}
	if c.lobby != nil {
		c.lobbyID, c.events = c.lobby.Join()
	}
	return c
}

// World returns the simulation driven by this client.
func (c *Client) World() *game.World {
	return c.world
}

// Run starts the client loop. Blocks until the player quits, the input
// stream closes, or the host shuts down.
func (c *Client) Run() error {
	if c.lobby != nil {
		defer c.lobby.Leave(c.lobbyID)
	}
	defer c.inputStream.Close()

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.log.Info().Float64("seconds", c.world.TimeLeft()).Msg("round started")

	lastTime := time.Now()
	for c.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		c.processInput()
		c.processEvents()

		// ===== UPDATE PHASE =====
		c.updateScreen()
		c.update(dt)

		// ===== DRAW PHASE =====
		if err := c.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	c.log.Info().Int("score", c.world.Score()).Msg("session ended")
	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.input = input.ReadInput(c.inputStream)

	if len(c.input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.isInactive = false
	} else {
		idle := time.Since(c.lastInput)
		switch {
		case c.idleDisconnect > 0 && idle > c.idleDisconnect:
			c.log.Info().Dur("idle", idle).Msg("disconnecting inactive player")
			c.running = false
		case c.idleWarn > 0 && idle > c.idleWarn:
			c.isInactive = true
		}
	}

	if c.input.Quit {
		c.running = false
	}
}

// processEvents handles events from the lobby.
func (c *Client) processEvents() {
	for {
		select {
		case ev := <-c.events:
			if ev.Type == EventServerShutdown && c.shutdownTimer <= 0 {
				c.shutdownTimer = ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.SetOffset(offsetCol, offsetRow)
		c.hud.Place(renderWidth, offsetCol, offsetRow)
	}
}

// update advances the world by dt seconds using this frame's input.
func (c *Client) update(dt float64) {
	if c.shutdownTimer > 0 {
		c.shutdownTimer -= dt
		if c.shutdownTimer <= 0 {
			c.running = false
		}
		return
	}

	wasOver := c.world.GameOver()
	c.world.Step(game.FrameInput{
		Delta:   max(dt, 0),
		Left:    c.input.Left,
		Right:   c.input.Right,
		Restart: c.input.Restart,
	})

	switch {
	case !wasOver && c.world.GameOver():
		stats := c.world.Stats()
		c.log.Info().
			Int("score", c.world.Score()).
			Int("starsCaught", stats.StarsCaught).
			Int("starsSpawned", stats.StarsSpawned).
			Int("bombsHit", stats.BombsHit).
			Int("bombsSpawned", stats.BombsSpawned).
			Msg("round over")
	case wasOver && !c.world.GameOver():
		c.inputStream.Reset()
		c.log.Info().Float64("seconds", c.world.TimeLeft()).Msg("round restarted")
	}
}

// clampTermSize limits the render area and returns the offsets that center it.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
