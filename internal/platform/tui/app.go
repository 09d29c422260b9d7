package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/smasher"
	"github.com/vovakirdan/block-smasher/internal/storage"
)

// AppOptions configures a SessionModel.
type AppOptions struct {
	Session *smasher.Session
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional
	Runtime core.RuntimeConfig
	KeyStep float64 // Paddle nudge per key press, in canvas units

	// StartLevel skips the picker when non-zero.
	StartLevel int
}

type appScreen int

const (
	screenPicker appScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the flow picker -> game -> picker for one player,
// with the leaderboard reachable from the picker.
type SessionModel struct {
	opts     AppOptions
	logger   *log.Logger
	screen   appScreen
	picker   LevelPickerModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel restores the player's unlocks from the store and opens
// either the picker or the requested level.
func NewSessionModel(opts AppOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	m := SessionModel{opts: opts, logger: opts.Logger}
	m.restoreUnlocks()

	if opts.StartLevel > 0 {
		if err := opts.Session.StartLevel(opts.StartLevel); err != nil {
			m.logger.Warn("cannot start level", "level", opts.StartLevel, "error", err)
		} else {
			m.enterGame()
			return m
		}
	}
	m.enterPicker()
	return m
}

func (m *SessionModel) restoreUnlocks() {
	if m.opts.Store == nil {
		return
	}
	player := m.opts.Session.Player()
	levels, err := m.opts.Store.UnlockedLevels(player)
	if err != nil {
		m.logger.Warn("could not load unlocks", "player", player, "error", err)
		return
	}
	m.opts.Session.SetUnlocked(levels)
}

func (m *SessionModel) enterPicker() {
	m.screen = screenPicker
	m.game = nil
	m.picker = NewLevelPickerModel(m.opts.Session, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	m.picker.SetPersonalBest(m.personalBest())
}

func (m *SessionModel) personalBest() int {
	if m.opts.Store == nil {
		return 0
	}
	player := m.opts.Session.Player()
	best, err := m.opts.Store.UserHighScore(player)
	if err != nil {
		m.logger.Warn("could not load best score", "player", player, "error", err)
		return 0
	}
	return best
}

func (m *SessionModel) enterGame() {
	var saver smasher.ProgressSaver
	if m.opts.Store != nil {
		saver = m.opts.Store
	}
	gm := NewGameModel(m.opts.Session, saver, m.opts.Runtime, m.opts.KeyStep, m.logger)
	m.game = &gm
	m.screen = screenGame
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updatePicker(msg)
	}
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(LevelPickerModel); ok {
		m.picker = pm
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.picker.WantsScores():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.opts.Store, m.logger, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, nil
	case m.picker.Selected() != 0:
		n := m.picker.Selected()
		if err := m.opts.Session.StartLevel(n); err != nil {
			m.logger.Warn("cannot start level", "level", n, "error", err)
			m.enterPicker()
			return m, nil
		}
		m.enterGame()
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.enterPicker()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.enterPicker()
		return m, nil
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.picker.View()
	}
}

// programOptions are shared by local and SSH sessions. All-motion mouse
// reporting lets the paddle follow the pointer without a button held.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// RunSession runs the game in the local terminal until the player quits.
func RunSession(opts AppOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), programOptions()...)
	_, err := p.Run()
	return err
}
