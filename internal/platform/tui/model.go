package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/smasher"
)

// GameModel drives one smasher.Session from the terminal. Keyboard and
// mouse input are collected between ticks and applied on the next tick.
type GameModel struct {
	session    *smasher.Session
	screen     *core.Screen
	saver      smasher.ProgressSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	keyStep    float64
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	target     float64 // Desired paddle centre in canvas units
	paused     bool
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps a session whose level has already been started.
// saver and logger may be nil.
func NewGameModel(session *smasher.Session, saver smasher.ProgressSaver, cfg core.RuntimeConfig, keyStep float64, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	m := GameModel{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:      saver,
		logger:     logger,
		config:     cfg,
		keyStep:    keyStep,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.recenter()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse steers the paddle to the pointer column; a left click launches.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Point(m.viewport().canvasX(msg.X))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	m.inputFrame = core.NewInputFrame()

	if in.Has(core.ActionBack) {
		m.backToMenu = true
		return m, nil
	}

	state := m.session.State()
	switch {
	case in.Has(core.ActionRestart):
		if err := m.session.Retry(); err != nil {
			m.logger.Warn("retry failed", "level", m.session.Level(), "error", err)
		}
		m.paused = false
		m.recenter()
	case in.Has(core.ActionNext) && state == smasher.StateVictory:
		if err := m.session.Advance(); err != nil {
			m.logger.Debug("cannot advance", "level", m.session.Level(), "error", err)
		} else {
			m.recenter()
		}
	case in.Has(core.ActionPause) && !state.Terminal():
		m.paused = !m.paused
	}

	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.steer(in)
	res := m.session.Update(m.target, in.Has(core.ActionLaunch))
	m.persist(res)

	return m, tickCmd(m.config.TickRate)
}

// steer applies keyboard nudges and pointer motion to the paddle target.
func (m *GameModel) steer(in core.InputFrame) {
	if in.HasPointer {
		m.target = in.PointerX
	}
	if in.Has(core.ActionLeft) {
		m.target -= m.keyStep
	}
	if in.Has(core.ActionRight) {
		m.target += m.keyStep
	}

	arena := m.session.Config().Arena
	half := arena.PaddleW / 2
	m.target = core.ClampF(m.target, half, arena.CanvasW-half)
}

// persist stores finished attempts and newly unlocked levels. Failures are
// logged and play continues.
func (m GameModel) persist(res smasher.TickResult) {
	if m.saver == nil {
		return
	}
	if res.Result != nil {
		if err := m.saver.SaveResult(*res.Result); err != nil {
			m.logger.Warn("could not save result", "player", res.Result.Player, "level", res.Result.Level, "error", err)
		}
	}
	if res.Unlocked != 0 {
		if err := m.saver.Unlock(m.session.Player(), res.Unlocked); err != nil {
			m.logger.Warn("could not persist unlock", "player", m.session.Player(), "level", res.Unlocked, "error", err)
		}
	}
}

func (m *GameModel) recenter() {
	m.target = m.session.Config().Arena.CanvasW / 2
}

func (m GameModel) viewport() viewport {
	arena := m.session.Config().Arena
	return newViewport(m.screen.Width(), m.screen.Height(), arena.CanvasW, arena.CanvasH)
}

// render paints the current session into the screen buffer.
func (m GameModel) render() {
	m.screen.Clear()
	snap := m.session.Snapshot()
	v := m.viewport()

	drawHUD(m.screen, snap, levelTitle(snap.Level, m.threshold()), m.session.Player())
	drawArena(m.screen, v, snap)

	_, hasNext := m.session.NextLevel()
	banner, hint := stateBanner(snap.State, m.paused, hasNext)
	if banner != "" {
		mid := v.inner.Y + v.inner.H/2
		m.screen.DrawTextCentered(mid, banner)
		if snap.State.Terminal() {
			m.screen.DrawTextCentered(mid+1, fmt.Sprintf("Score %d", snap.Score))
		}
	}
	m.screen.DrawTextColored(1, m.screen.Height()-1, hint, core.ColorGray)
}

func (m GameModel) threshold() int {
	return m.session.Generator().Params().Threshold
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".smasher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.session.Level(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
