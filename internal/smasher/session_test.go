package smasher

import (
	"errors"
	"testing"
)

func TestStartLevelResets(t *testing.T) {
	s := newTestSession(1)
	if err := s.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1): %v", err)
	}

	if s.State() != StateAwaitingLaunch {
		t.Errorf("State() = %v, expected awaiting_launch", s.State())
	}
	if s.Lives() != 3 || s.Score() != 0 || s.Level() != 1 {
		t.Errorf("lives=%d score=%d level=%d, expected 3, 0, 1", s.Lives(), s.Score(), s.Level())
	}
	if snap := s.Snapshot(); snap.Alive != 24 || len(snap.Particles) != 0 {
		t.Errorf("alive=%d particles=%d, expected 24 and 0", snap.Alive, len(snap.Particles))
	}
}

func TestStartLevelErrors(t *testing.T) {
	s := newTestSession(1)

	tests := []struct {
		level    int
		expected error
	}{
		{2, ErrLevelLocked},
		{50, ErrUnknownLevel},
		{0, ErrUnknownLevel},
		{1, nil},
		{150, nil},
	}

	for _, tc := range tests {
		err := s.StartLevel(tc.level)
		if !errors.Is(err, tc.expected) {
			t.Errorf("StartLevel(%d) = %v, expected %v", tc.level, err, tc.expected)
		}
	}
}

func TestUpdateBeforeStartIsNoop(t *testing.T) {
	s := newTestSession(1)
	res := s.Update(400, true)

	if res.Transition != nil || s.State() != StateAwaitingLaunch {
		t.Errorf("Update before StartLevel changed state: %+v", res)
	}
}

func TestLaunchTransition(t *testing.T) {
	s := newTestSession(7)
	_ = s.StartLevel(1)

	res := s.Update(400, true)
	if res.Transition == nil || res.Transition.From != StateAwaitingLaunch || res.Transition.To != StateInPlay {
		t.Fatalf("Transition = %+v, expected awaiting_launch -> in_play", res.Transition)
	}

	b := s.Snapshot().Ball
	if !b.Launched {
		t.Fatal("ball should be launched")
	}
	if b.VY != -6 {
		t.Errorf("VY = %v, expected -6", b.VY)
	}
	if b.VX < -3 || b.VX > 3 {
		t.Errorf("VX = %v, expected within [-3, 3]", b.VX)
	}
}

func TestLivesDriveDefeat(t *testing.T) {
	s := newTestSession(1)
	s.SetUnlocked([]int{oneBlockLevel})
	if err := s.StartLevel(oneBlockLevel); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}

	for i := 1; i <= 3; i++ {
		s.arena.ball = Ball{X: 400, Y: 700, VY: 1, Radius: 8, Launched: true}
		s.state = StateInPlay
		res := s.Update(400, false)

		if s.Lives() != 3-i {
			t.Errorf("fall %d: lives = %d, expected %d", i, s.Lives(), 3-i)
		}
		expected := StateAwaitingLaunch
		if i == 3 {
			expected = StateDefeat
		}
		if s.State() != expected {
			t.Errorf("fall %d: state = %v, expected %v", i, s.State(), expected)
		}
		if res.Transition == nil || res.Transition.To != expected {
			t.Errorf("fall %d: transition = %+v, expected to %v", i, res.Transition, expected)
		}
		if res.Result != nil {
			t.Errorf("fall %d: zero-score attempt should not emit a result", i)
		}
	}

	if s.Snapshot().Alive != 1 {
		t.Error("losing lives should not touch blocks")
	}

	for range 10 {
		s.Update(400, true)
	}
	if s.Lives() != 0 || s.State() != StateDefeat {
		t.Errorf("after defeat: lives=%d state=%v, expected 0 and defeat", s.Lives(), s.State())
	}
}

func TestServeAfterLifeLost(t *testing.T) {
	s := newTestSession(1)
	_ = s.StartLevel(1)
	s.arena.ball = Ball{X: 400, Y: 700, VY: 1, Radius: 8, Launched: true}
	s.state = StateInPlay

	s.Update(250, false)

	b := s.Snapshot().Ball
	if b.Launched || b.VX != 0 || b.VY != 0 || b.X != 250 || b.Y != 500 {
		t.Errorf("ball after loss = %+v, expected served on paddle at (250, 500)", b)
	}
}

func TestVictoryOnce(t *testing.T) {
	s := newTestSession(1)
	s.SetPlayer("ada")
	s.SetUnlocked([]int{oneBlockLevel})
	if err := s.StartLevel(oneBlockLevel); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}

	s.arena.ball = Ball{X: 400, Y: 125, VY: -2, Radius: 8, Launched: true}
	s.state = StateInPlay
	res := s.Update(400, false)

	if res.ScoreDelta != 100 {
		t.Errorf("ScoreDelta = %d, expected 100", res.ScoreDelta)
	}
	if s.State() != StateVictory {
		t.Fatalf("State() = %v, expected victory", s.State())
	}
	if res.Transition == nil || res.Transition.From != StateInPlay || res.Transition.To != StateVictory {
		t.Errorf("Transition = %+v, expected in_play -> victory", res.Transition)
	}
	expected := Result{Player: "ada", Score: 100, Level: oneBlockLevel, Outcome: StateVictory}
	if res.Result == nil || *res.Result != expected {
		t.Errorf("Result = %+v, expected %+v", res.Result, expected)
	}
	if res.Unlocked != twoBlockLevel {
		t.Errorf("Unlocked = %d, expected %d", res.Unlocked, twoBlockLevel)
	}

	for i := range 50 {
		again := s.Update(400, true)
		if again.Transition != nil || again.Result != nil || again.Unlocked != 0 {
			t.Fatalf("tick %d after victory re-triggered: %+v", i, again)
		}
	}
	if s.State() != StateVictory || s.Score() != 100 {
		t.Errorf("after victory: state=%v score=%d", s.State(), s.Score())
	}
}

func TestParticlesContinueAfterVictory(t *testing.T) {
	s := newTestSession(1)
	s.SetUnlocked([]int{oneBlockLevel})
	_ = s.StartLevel(oneBlockLevel)
	s.arena.ball = Ball{X: 400, Y: 125, VY: -2, Radius: 8, Launched: true}
	s.state = StateInPlay
	s.Update(400, false)

	start := len(s.Snapshot().Particles)
	if start == 0 {
		t.Fatal("block kill should have spawned particles")
	}
	frozen := s.Snapshot().Ball

	for range 100 {
		s.Update(0, true)
	}
	if n := len(s.Snapshot().Particles); n != 0 {
		t.Errorf("particles = %d after 100 ticks, expected all decayed", n)
	}
	if s.Snapshot().Ball != frozen {
		t.Error("arena should stay frozen after victory")
	}
}

func TestAdvance(t *testing.T) {
	s := newTestSession(1)
	s.SetUnlocked([]int{oneBlockLevel})
	_ = s.StartLevel(oneBlockLevel)

	if err := s.Advance(); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("Advance before victory = %v, expected ErrNotFinished", err)
	}

	s.arena.ball = Ball{X: 400, Y: 125, VY: -2, Radius: 8, Launched: true}
	s.state = StateInPlay
	s.Update(400, false)

	if n, ok := s.NextLevel(); n != twoBlockLevel || !ok {
		t.Errorf("NextLevel() = %d, %v, expected %d, true", n, ok, twoBlockLevel)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance after victory: %v", err)
	}
	if s.Level() != twoBlockLevel || s.State() != StateAwaitingLaunch || s.Score() != 0 {
		t.Errorf("after Advance: level=%d state=%v score=%d", s.Level(), s.State(), s.Score())
	}
}

func TestRetryKeepsLevel(t *testing.T) {
	s := newTestSession(1)
	_ = s.StartLevel(1)
	s.score = 700
	s.lives = 1

	if err := s.Retry(); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if s.Level() != 1 || s.Score() != 0 || s.Lives() != 3 {
		t.Errorf("after Retry: level=%d score=%d lives=%d", s.Level(), s.Score(), s.Lives())
	}
}

func TestUnlockNextRules(t *testing.T) {
	s := newTestSession(1)

	tests := []struct {
		level    int
		expected int
	}{
		{1, 2},
		{1, 0}, // already unlocked
		{6, 0}, // level 7 has no layout
		{105, 0},
	}

	for _, tc := range tests {
		s.level = tc.level
		if got := s.unlockNext(); got != tc.expected {
			t.Errorf("unlockNext() at level %d = %d, expected %d", tc.level, got, tc.expected)
		}
	}
	if !s.IsPlayable(2) {
		t.Error("level 2 should be playable after unlocking")
	}
}

func TestDefeatWithScoreEmitsResult(t *testing.T) {
	s := newTestSession(1)
	s.SetPlayer("bob")
	_ = s.StartLevel(1)
	s.score = 300
	s.lives = 1
	s.arena.ball = Ball{X: 400, Y: 700, VY: 1, Radius: 8, Launched: true}
	s.state = StateInPlay

	res := s.Update(400, false)
	expected := Result{Player: "bob", Score: 300, Level: 1, Outcome: StateDefeat}
	if res.Result == nil || *res.Result != expected {
		t.Errorf("Result = %+v, expected %+v", res.Result, expected)
	}
}

// playLevel drives a session with the paddle chasing the ball.
func playLevel(s *Session, ticks int, check func(prev, cur Snapshot)) Snapshot {
	prev := s.Snapshot()
	for range ticks {
		s.Update(prev.Ball.X, true)
		cur := s.Snapshot()
		if check != nil {
			check(prev, cur)
		}
		prev = cur
		if cur.State.Terminal() {
			break
		}
	}
	return prev
}

func TestAliveBlocksNeverIncrease(t *testing.T) {
	s := newTestSession(42)
	_ = s.StartLevel(1)

	final := playLevel(s, 20000, func(prev, cur Snapshot) {
		if cur.Alive > prev.Alive {
			t.Fatalf("tick %d: alive blocks rose from %d to %d", cur.Tick, prev.Alive, cur.Alive)
		}
		for i := range cur.Blocks {
			if cur.Blocks[i].Alive && !prev.Blocks[i].Alive {
				t.Fatalf("tick %d: block %d came back", cur.Tick, i)
			}
		}
		if cur.Lives < 0 {
			t.Fatalf("tick %d: lives = %d", cur.Tick, cur.Lives)
		}
	})

	if killed := 24 - final.Alive; final.Score != killed*100 {
		t.Errorf("score = %d, expected %d for %d blocks", final.Score, killed*100, killed)
	}
}

func TestSessionDeterministic(t *testing.T) {
	a := newTestSession(99)
	b := newTestSession(99)
	_ = a.StartLevel(101)
	_ = b.StartLevel(101)

	ha := playLevel(a, 3000, nil).Hash()
	hb := playLevel(b, 3000, nil).Hash()
	if ha != hb {
		t.Errorf("same seed and inputs gave hashes %d and %d", ha, hb)
	}
}

func TestSnapshotIsolated(t *testing.T) {
	s := newTestSession(1)
	_ = s.StartLevel(1)

	snap := s.Snapshot()
	snap.Blocks[0].Alive = false
	if !s.Snapshot().Blocks[0].Alive {
		t.Error("mutating a snapshot should not affect the session")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateAwaitingLaunch, "awaiting_launch"},
		{StateInPlay, "in_play"},
		{StateVictory, "victory"},
		{StateDefeat, "defeat"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
	if StateInPlay.Terminal() || !StateDefeat.Terminal() {
		t.Error("Terminal() mismatch")
	}
}
