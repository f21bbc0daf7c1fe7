package game

import "testing"

func TestSessionInitialState(t *testing.T) {
	s := NewSession()
	if s.State() != StateStart {
		t.Errorf("initial state = %v, want start", s.State())
	}
	if s.Elapsed() != 0 || s.Tier() != 0 {
		t.Error("new session should have zero elapsed time and tier")
	}
}

func TestBeginOnlyFromStart(t *testing.T) {
	s := NewSession()
	if !s.Begin() {
		t.Fatal("Begin from start should succeed")
	}
	if s.State() != StatePlaying {
		t.Errorf("state after Begin = %v, want playing", s.State())
	}
	if s.Begin() {
		t.Error("Begin from playing should fail")
	}

	s.Finish(OutcomeLose)
	if s.Begin() {
		t.Error("Begin from gameover should fail")
	}
}

func TestFinishOnlyFromPlaying(t *testing.T) {
	s := NewSession()

	// Start 状态下终局判定无效
	s.Finish(OutcomeLose)
	if s.State() != StateStart {
		t.Errorf("Finish before Begin changed state to %v", s.State())
	}

	s.Begin()
	s.Finish(OutcomeNone)
	if s.State() != StatePlaying {
		t.Error("Finish(OutcomeNone) should not end the session")
	}

	s.Finish(OutcomeWin)
	if s.State() != StateWin {
		t.Errorf("state = %v, want win", s.State())
	}

	// 终局后再次 Finish 无效
	s.Finish(OutcomeLose)
	if s.State() != StateWin {
		t.Error("Finish after win should be ignored")
	}
}

func TestFinishLose(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(OutcomeLose)
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", s.State())
	}
}

func TestTogglePause(t *testing.T) {
	s := NewSession()

	// Start 状态下暂停无效
	s.TogglePause()
	if s.State() != StateStart {
		t.Error("pause from start should be ignored")
	}

	s.Begin()
	s.TogglePause()
	if s.State() != StatePaused {
		t.Errorf("state = %v, want paused", s.State())
	}

	// 暂停期间不累计游戏时间
	s.Advance(1.0)
	if s.Elapsed() != 0 {
		t.Error("Advance while paused should not accumulate time")
	}

	s.TogglePause()
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing after resume", s.State())
	}
}

func TestAdvanceAccumulatesOnlyWhilePlaying(t *testing.T) {
	s := NewSession()
	s.Advance(1.0)
	if s.Elapsed() != 0 {
		t.Error("Advance before Begin should not accumulate")
	}

	s.Begin()
	s.Advance(0.5)
	s.Advance(0.25)
	if s.Elapsed() != 0.75 {
		t.Errorf("elapsed = %v, want 0.75", s.Elapsed())
	}
}

func TestRaiseTierMonotonic(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.RaiseTier(2)
	s.RaiseTier(1) // 档位只升不降
	if s.Tier() != 2 {
		t.Errorf("tier = %d, want 2", s.Tier())
	}
	s.RaiseTier(3)
	if s.Tier() != 3 {
		t.Errorf("tier = %d, want 3", s.Tier())
	}
}

func TestRestartFromTerminalStates(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeLose, OutcomeWin} {
		s := NewSession()
		s.Begin()
		s.Advance(2.0)
		s.RaiseTier(3)
		s.Finish(outcome)

		s.Restart()
		if s.State() != StateStart {
			t.Errorf("state after restart = %v, want start", s.State())
		}
		if s.Elapsed() != 0 || s.Tier() != 0 {
			t.Error("restart should clear elapsed time and tier")
		}
	}
}

func TestRestartIsIdempotent(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(OutcomeLose)

	s.Restart()
	first := *s
	s.Restart()
	s.Restart()
	if *s != first {
		t.Error("repeated restart should equal a single restart")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Advance(1.0)
	s.Restart()
	if s.State() != StatePlaying || s.Elapsed() != 1.0 {
		t.Error("restart during play should be ignored")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateStart:    "start",
		StatePlaying:  "playing",
		StatePaused:   "paused",
		StateGameOver: "gameover",
		StateWin:      "win",
		State(99):     "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
