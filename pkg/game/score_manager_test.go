package game

import "testing"

func TestHighScoreDefaultsToZero(t *testing.T) {
	sm := NewScoreManager(nil)
	if got := sm.HighScore("fish"); got != 0 {
		t.Errorf("HighScore with no record = %d, want 0", got)
	}
}

func TestRecordTracksHighScore(t *testing.T) {
	sm := NewScoreManager(nil)

	if !sm.Record("fish", 100) {
		t.Error("first score should be a new high")
	}
	if got := sm.HighScore("fish"); got != 100 {
		t.Errorf("HighScore = %d, want 100", got)
	}

	// 持平与更低的分数不构成新纪录
	if sm.Record("fish", 100) {
		t.Error("equal score should not be a new high")
	}
	if sm.Record("fish", 50) {
		t.Error("lower score should not be a new high")
	}
	if got := sm.HighScore("fish"); got != 100 {
		t.Errorf("HighScore after lower scores = %d, want 100", got)
	}

	if !sm.Record("fish", 150) {
		t.Error("higher score should be a new high")
	}
	if got := sm.HighScore("fish"); got != 150 {
		t.Errorf("HighScore = %d, want 150", got)
	}
}

func TestRecordRejectsNegativeScore(t *testing.T) {
	sm := NewScoreManager(nil)
	if sm.Record("fish", -1) {
		t.Error("negative score should be rejected")
	}
}

func TestRecordsArePerGame(t *testing.T) {
	sm := NewScoreManager(nil)
	sm.Record("fish", 100)
	sm.Record("rider", 30)

	if got := sm.HighScore("fish"); got != 100 {
		t.Errorf("fish HighScore = %d, want 100", got)
	}
	if got := sm.HighScore("rider"); got != 30 {
		t.Errorf("rider HighScore = %d, want 30", got)
	}
	if got := sm.HighScore("fighter"); got != 0 {
		t.Errorf("fighter HighScore = %d, want 0", got)
	}
}
