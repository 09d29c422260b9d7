package tui

import (
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-smasher/internal/core"
	"github.com/vovakirdan/block-smasher/internal/level"
	"github.com/vovakirdan/block-smasher/internal/smasher"
	"github.com/vovakirdan/block-smasher/internal/storage"
)

// Level 80 is one wide bar that any launch clears; 81 exists so clearing
// 80 unlocks something.
const (
	barLevel  = 80
	nextLevel = 81
)

func init() {
	bar := func(level.Params) []level.Block {
		return []level.Block{{X: 50, Y: 100, W: 700, H: 20, Alive: true, Color: core.ColorOrange}}
	}
	level.Register(level.Recipe{Number: barLevel, Name: "Bar", Difficulty: "Easy", Build: bar})
	level.Register(level.Recipe{Number: nextLevel, Name: "Bar Again", Difficulty: "Easy", Build: bar})
}

var testRuntime = core.RuntimeConfig{ScreenW: 82, ScreenH: 32, TickRate: 60}

func newTestSession(t *testing.T) *smasher.Session {
	t.Helper()
	s := smasher.NewSession(smasher.DefaultConfig(), level.NewGenerator(level.DefaultParams()), 1)
	s.SetPlayer("tester")
	return s
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick() TickMsg {
	return TickMsg(time.Now())
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T, expected GameModel", next)
		}
		m = gm
	}
	return m
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"q quits", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d moves right", keyRunes("d"), core.ActionRight, false},
		{"space launches", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r retries", keyRunes("r"), core.ActionRestart, false},
		{"n advances", keyRunes("n"), core.ActionNext, false},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(82, 32, 800, 600)

	if v.inner != core.NewRect(1, 2, 80, 28) {
		t.Fatalf("inner = %+v, expected {1 2 80 28}", v.inner)
	}
	if got := v.cellX(0); got != 1 {
		t.Errorf("cellX(0) = %d, expected 1", got)
	}
	if got := v.canvasX(1); got != 5 {
		t.Errorf("canvasX(1) = %v, expected 5", got)
	}
	if got := v.canvasX(-10); got != 0 {
		t.Errorf("canvasX left of frame = %v, expected 0", got)
	}
	if got := v.canvasX(500); got != 800 {
		t.Errorf("canvasX right of frame = %v, expected 800", got)
	}

	for col := v.inner.X; col < v.inner.Right(); col++ {
		if got := v.cellX(v.canvasX(col)); got != col {
			t.Fatalf("cellX(canvasX(%d)) = %d", col, got)
		}
	}

	full := v.cells(core.Box{X: 0, Y: 0, W: 800, H: 600})
	if full != v.inner {
		t.Errorf("cells(whole canvas) = %+v, expected %+v", full, v.inner)
	}
	tiny := v.cells(core.Box{X: 400, Y: 300, W: 1, H: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box should cover one cell, got %+v", tiny)
	}
}

func TestDrawArena(t *testing.T) {
	session := newTestSession(t)
	if err := session.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}

	s := core.NewScreen(82, 32)
	v := newViewport(82, 32, 800, 600)
	drawArena(s, v, session.Snapshot())

	if s.Get(0, 1) != '┌' {
		t.Errorf("frame corner = %q, expected ┌", s.Get(0, 1))
	}
	// Served ball sits at (400, 500).
	if got := s.Get(v.cellX(400), v.cellY(500)); got != glyphBall {
		t.Errorf("ball cell = %q, expected %q", got, glyphBall)
	}
	if got := s.GetCell(v.cellX(400), v.cellY(565)); got.Rune != glyphPaddle || got.Color != core.ColorPurple {
		t.Errorf("paddle cell = %+v", got)
	}

	blocks := 0
	for y := v.inner.Y; y < v.inner.Bottom(); y++ {
		for x := v.inner.X; x < v.inner.Right(); x++ {
			if s.Get(x, y) == glyphBlock {
				blocks++
			}
		}
	}
	if blocks == 0 {
		t.Error("no block cells drawn")
	}
}

func TestStateBanner(t *testing.T) {
	tests := []struct {
		name    string
		state   smasher.State
		paused  bool
		hasNext bool
		banner  string
		hint    string
	}{
		{"paused wins", smasher.StateInPlay, true, false, "PAUSED", "resume"},
		{"awaiting", smasher.StateAwaitingLaunch, false, false, "", "launch"},
		{"victory with next", smasher.StateVictory, false, true, "LEVEL CLEARED", "N: next"},
		{"victory without next", smasher.StateVictory, false, false, "LEVEL CLEARED", "R: retry"},
		{"defeat", smasher.StateDefeat, false, false, "GAME OVER", "R: retry"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			banner, hint := stateBanner(tc.state, tc.paused, tc.hasNext)
			if banner != tc.banner {
				t.Errorf("banner = %q, expected %q", banner, tc.banner)
			}
			if !strings.Contains(hint, tc.hint) {
				t.Errorf("hint %q should mention %q", hint, tc.hint)
			}
		})
	}

	if _, hint := stateBanner(smasher.StateVictory, false, false); strings.Contains(hint, "N: next") {
		t.Error("victory without a next level should not offer N")
	}
}

func TestLevelTitle(t *testing.T) {
	if got := levelTitle(1, 100); got != "First Steps" {
		t.Errorf("levelTitle(1) = %q, expected First Steps", got)
	}
	if got := levelTitle(103, 100); got != "Random Level #3" {
		t.Errorf("levelTitle(103) = %q, expected Random Level #3", got)
	}
	if got := levelTitle(100, 100); got != "Seeded Level" {
		t.Errorf("levelTitle(100) = %q, expected Seeded Level", got)
	}
	if got := levelTitle(50, 100); got != "Unknown" {
		t.Errorf("levelTitle(50) = %q, expected Unknown", got)
	}
}

func TestGameModelSteering(t *testing.T) {
	session := newTestSession(t)
	if err := session.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	m := NewGameModel(session, nil, testRuntime, 40, nil)

	m = send(t, m, keyRunes("d"), tick())
	if got := session.Snapshot().Paddle.CenterX(); got != 440 {
		t.Errorf("after right, paddle centre = %v, expected 440", got)
	}

	// Pointer at the far left column pins the paddle to the wall.
	m = send(t, m, tea.MouseMsg{X: 1, Action: tea.MouseActionMotion}, tick())
	if got := session.Snapshot().Paddle.X; got != 0 {
		t.Errorf("after pointer, paddle x = %v, expected 0", got)
	}

	// The pointer is consumed; a later nudge is not overridden by it.
	m = send(t, m, keyRunes("d"), tick())
	if got := session.Snapshot().Paddle.CenterX(); got != 100 {
		t.Errorf("after nudge, paddle centre = %v, expected 100", got)
	}

	if session.State() != smasher.StateAwaitingLaunch {
		t.Fatalf("state = %v, expected awaiting_launch", session.State())
	}
	send(t, m, tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, tick())
	if session.State() != smasher.StateInPlay {
		t.Errorf("click should launch, state = %v", session.State())
	}
}

func TestGameModelPause(t *testing.T) {
	session := newTestSession(t)
	if err := session.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	m := NewGameModel(session, nil, testRuntime, 40, nil)

	m = send(t, m, keyRunes("p"), tick())
	if !m.paused {
		t.Fatal("p should pause")
	}

	before := session.Snapshot()
	m = send(t, m, keyRunes("d"), tick(), tick())
	if session.Snapshot().Tick != before.Tick {
		t.Error("paused model should not advance the session")
	}

	m = send(t, m, keyRunes("p"), tick())
	if m.paused || session.Snapshot().Tick == before.Tick {
		t.Error("second p should resume and tick")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	session := newTestSession(t)
	if err := session.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	m := NewGameModel(session, nil, testRuntime, 40, nil)

	next, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc}).Update(tick())
	if !next.(GameModel).BackToMenu() {
		t.Error("esc should request the level picker")
	}
	if cmd != nil {
		t.Error("back should stop the tick loop")
	}

	_, cmd = m.Update(keyRunes("q"))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestGameModelPersistsVictory(t *testing.T) {
	store := openStore(t)
	session := newTestSession(t)
	session.SetUnlocked([]int{barLevel})
	if err := session.StartLevel(barLevel); err != nil {
		t.Fatalf("StartLevel(%d) failed: %v", barLevel, err)
	}
	m := NewGameModel(session, store, testRuntime, 40, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tick())
	for i := 0; i < 300 && session.State() != smasher.StateVictory; i++ {
		m = send(t, m, tick())
	}
	if session.State() != smasher.StateVictory {
		t.Fatalf("state = %v, expected victory", session.State())
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Username != "tester" || got.Score != 100 || got.Level != barLevel || got.Outcome != "victory" {
		t.Errorf("saved %+v, expected tester/100/%d/victory", got, barLevel)
	}

	unlocked, err := store.UnlockedLevels("tester")
	if err != nil {
		t.Fatalf("UnlockedLevels failed: %v", err)
	}
	if !slices.Contains(unlocked, nextLevel) {
		t.Errorf("unlocked = %v, expected to contain %d", unlocked, nextLevel)
	}

	// More ticks after victory must not save the result again.
	m = send(t, m, tick(), tick())
	if scores, _ = store.TopScores(10); len(scores) != 1 {
		t.Errorf("got %d scores after extra ticks, expected 1", len(scores))
	}

	send(t, m, keyRunes("n"), tick())
	if session.Level() != nextLevel || session.State() != smasher.StateAwaitingLaunch {
		t.Errorf("n should start level %d, got level %d in %v", nextLevel, session.Level(), session.State())
	}
}

// recordingSaver captures progress and can be told to fail.
type recordingSaver struct {
	results  []smasher.Result
	unlocks  []int
	failWith error
}

func (r *recordingSaver) SaveResult(res smasher.Result) error {
	r.results = append(r.results, res)
	return r.failWith
}

func (r *recordingSaver) Unlock(_ string, n int) error {
	r.unlocks = append(r.unlocks, n)
	return r.failWith
}

func TestGameModelSaverFailuresKeepPlaying(t *testing.T) {
	saver := &recordingSaver{failWith: errors.New("disk full")}
	session := newTestSession(t)
	session.SetUnlocked([]int{barLevel})
	if err := session.StartLevel(barLevel); err != nil {
		t.Fatalf("StartLevel(%d) failed: %v", barLevel, err)
	}
	m := NewGameModel(session, saver, testRuntime, 40, log.New(io.Discard))

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tick())
	for i := 0; i < 300 && session.State() != smasher.StateVictory; i++ {
		m = send(t, m, tick())
	}
	if session.State() != smasher.StateVictory {
		t.Fatalf("state = %v, expected victory", session.State())
	}

	if len(saver.results) != 1 || saver.results[0].Score != 100 || saver.results[0].Outcome != smasher.StateVictory {
		t.Errorf("results = %+v, expected one victory worth 100", saver.results)
	}
	if !slices.Equal(saver.unlocks, []int{nextLevel}) {
		t.Errorf("unlocks = %v, expected [%d]", saver.unlocks, nextLevel)
	}

	send(t, m, keyRunes("n"), tick())
	if session.Level() != nextLevel {
		t.Errorf("level = %d after n, expected %d", session.Level(), nextLevel)
	}
}

func TestGameModelHUD(t *testing.T) {
	session := newTestSession(t)
	if err := session.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	m := NewGameModel(session, nil, testRuntime, 40, nil)
	m.render()

	hud := m.screen.Row(0)
	for _, want := range []string{"LEVEL 1", "First Steps", "[tester]", "SCORE 0", "♥♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}
	if !strings.Contains(m.screen.Row(31), "launch") {
		t.Errorf("footer %q should hint at launching", m.screen.Row(31))
	}
}

func TestLevelPickerLocks(t *testing.T) {
	session := newTestSession(t)
	m := NewLevelPickerModel(session, 80, 40)

	byNumber := make(map[int]pickerEntry)
	procedural := 0
	for _, e := range m.entries {
		byNumber[e.info.Number] = e
		if e.info.Procedural {
			procedural++
		}
	}

	if byNumber[1].locked {
		t.Error("level 1 should be unlocked")
	}
	if !byNumber[2].locked {
		t.Error("level 2 should be locked on a fresh session")
	}
	if procedural != proceduralPicks {
		t.Errorf("got %d procedural entries, expected %d", procedural, proceduralPicks)
	}
	if e, ok := byNumber[101]; !ok || e.locked {
		t.Error("level 101 should be listed and playable")
	}

	// Selecting a locked level leaves a notice instead of a selection.
	m.cursor = slices.IndexFunc(m.entries, func(e pickerEntry) bool { return e.info.Number == 2 })
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := next.(LevelPickerModel)
	if pm.Selected() != 0 || pm.notice == "" {
		t.Errorf("locked selection: Selected() = %d, notice = %q", pm.Selected(), pm.notice)
	}
}

func TestLevelPickerStartsOnFurthestUnlocked(t *testing.T) {
	session := newTestSession(t)
	session.SetUnlocked([]int{2, 3})
	m := NewLevelPickerModel(session, 80, 40)

	if got := m.entries[m.cursor].info.Number; got != 3 {
		t.Errorf("cursor on level %d, expected 3", got)
	}
}

func TestSessionModelFlow(t *testing.T) {
	session := newTestSession(t)
	m := NewSessionModel(AppOptions{Session: session, Runtime: testRuntime, KeyStep: 40})
	if m.screen != screenPicker {
		t.Fatalf("screen = %v, expected picker", m.screen)
	}

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || session.Level() != 1 {
		t.Fatalf("enter should start level 1, screen = %v level = %d", m.screen, session.Level())
	}

	update(tea.KeyMsg{Type: tea.KeyEsc})
	update(tick())
	if m.screen != screenPicker {
		t.Fatalf("esc should return to the picker, screen = %v", m.screen)
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenPicker {
		t.Errorf("esc should leave the scoreboard, screen = %v", m.screen)
	}
}

func TestSessionModelRestoresUnlocks(t *testing.T) {
	store := openStore(t)
	if err := store.Unlock("tester", 4); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	session := newTestSession(t)
	m := NewSessionModel(AppOptions{Session: session, Store: store, Runtime: testRuntime, StartLevel: 4})

	if !session.IsPlayable(4) {
		t.Error("stored unlock should be restored")
	}
	if m.screen != screenGame || session.Level() != 4 {
		t.Errorf("StartLevel 4 should open the game, screen = %v level = %d", m.screen, session.Level())
	}
}

func TestSessionModelShowsPersonalBest(t *testing.T) {
	store := openStore(t)
	results := []smasher.Result{
		{Player: "tester", Score: 800, Level: 1, Outcome: smasher.StateVictory},
		{Player: "tester", Score: 300, Level: 2, Outcome: smasher.StateDefeat},
		{Player: "rival", Score: 1500, Level: 1, Outcome: smasher.StateVictory},
	}
	for _, r := range results {
		if err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	m := NewSessionModel(AppOptions{Session: newTestSession(t), Store: store, Runtime: testRuntime})
	view := m.View()
	if !strings.Contains(view, "your best: 800") {
		t.Errorf("picker should show the player's best of 800:\n%s", view)
	}
	if strings.Contains(view, "1500") {
		t.Error("picker should not show another player's score")
	}

	fresh := NewSessionModel(AppOptions{Session: newTestSession(t), Runtime: testRuntime})
	if strings.Contains(fresh.View(), "your best") {
		t.Error("picker without a store should not show a best score")
	}
}

func TestSessionModelLockedStartFallsBack(t *testing.T) {
	session := newTestSession(t)
	m := NewSessionModel(AppOptions{Session: session, Runtime: testRuntime, StartLevel: 5})

	if m.screen != screenPicker {
		t.Errorf("locked start level should open the picker, screen = %v", m.screen)
	}
}
