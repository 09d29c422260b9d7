package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-smasher/internal/level"
	"github.com/vovakirdan/block-smasher/internal/smasher"
)

// proceduralPicks is how many seeded levels the picker offers.
const proceduralPicks = 12

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pickerLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	difficultyStyles = map[string]lipgloss.Style{
		"Easy":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"Medium":  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"Hard":    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"Expert":  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		"Extreme": lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	}
)

type pickerEntry struct {
	info   level.Info
	locked bool
}

// LevelPickerModel lists curated levels (with lock state) followed by a run
// of seeded levels.
type LevelPickerModel struct {
	entries     []pickerEntry
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	selected    int
	notice      string
	best        int // Player's best score, 0 if none
	quitting    bool
	wantsScores bool
}

// NewLevelPickerModel builds the picker from the session's unlock state.
func NewLevelPickerModel(session *smasher.Session, width, height int) LevelPickerModel {
	curated := level.List()
	threshold := session.Generator().Params().Threshold

	entries := make([]pickerEntry, 0, len(curated)+proceduralPicks)
	for _, info := range curated {
		entries = append(entries, pickerEntry{info: info, locked: !session.IsPlayable(info.Number)})
	}
	for _, info := range level.ProceduralLevels(threshold, proceduralPicks) {
		entries = append(entries, pickerEntry{info: info})
	}

	m := LevelPickerModel{
		entries:   entries,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	// Start on the furthest unlocked curated level.
	for i, e := range entries {
		if !e.info.Procedural && !e.locked {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionScores:
		m.wantsScores = true
	case MenuActionSelect:
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		if e.locked {
			m.notice = fmt.Sprintf("Level %d is locked. Clear level %d first.", e.info.Number, e.info.Number-1)
			return m, nil
		}
		m.selected = e.info.Number
	}

	return m, nil
}

// window returns the slice of entries that fits on screen around the cursor.
func (m LevelPickerModel) window() (start, end int) {
	rows := max(m.height-9, 3)
	if len(m.entries) <= rows {
		return 0, len(m.entries)
	}
	start = max(m.cursor-rows/2, 0)
	end = start + rows
	if end > len(m.entries) {
		end = len(m.entries)
		start = end - rows
	}
	return start, end
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("B L O C K   S M A S H E R"), m.width))
	b.WriteString("\n\n")
	prompt := "Select a level:"
	if m.best > 0 {
		prompt = fmt.Sprintf("Select a level:  (your best: %d)", m.best)
	}
	b.WriteString(centerText(prompt, m.width))
	b.WriteString("\n\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		b.WriteString(centerText(m.renderEntry(i), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(pickerNoticeStyle.Render(m.notice), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Tab: Scores  |  Q: Quit", m.width))

	return b.String()
}

// SetPersonalBest shows the player's best score under the title.
func (m *LevelPickerModel) SetPersonalBest(score int) {
	m.best = score
}

func (m LevelPickerModel) renderEntry(i int) string {
	e := m.entries[i]

	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	name := fmt.Sprintf("%3d. %-22s", e.info.Number, e.info.Name)
	label := fmt.Sprintf("%-8s", e.info.Difficulty)

	switch {
	case e.locked:
		return pickerLockedStyle.Render(cursor + name + " " + fmt.Sprintf("%-8s", "locked"))
	case i == m.cursor:
		return pickerCursorStyle.Render(cursor+name) + " " + difficultyStyles[e.info.Difficulty].Render(label)
	default:
		return cursor + name + " " + difficultyStyles[e.info.Difficulty].Render(label)
	}
}

// Selected returns the chosen level number, or 0 while still choosing.
func (m LevelPickerModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if user asked for the leaderboard.
func (m LevelPickerModel) WantsScores() bool {
	return m.wantsScores
}
