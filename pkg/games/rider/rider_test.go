package rider

import (
	"math/rand"
	"testing"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
)

func testConfig() *config.RiderConfig {
	return &config.RiderConfig{
		PlayerSize:     14,
		PlayerX:        120,
		GroundY:        400,
		Gravity:        1400,
		JumpSpeed:      520,
		BaseSpeed:      180,
		SpeedPerTier:   40,
		TierDistances:  []float64{1500, 3500},
		SpawnGapMin:    220,
		SpawnGapMax:    480,
		MaxObstacles:   5,
		FinishDistance: 9000,
		ScoreDivisor:   10,
		Obstacles: []config.RiderObstacle{
			{Name: "rock", Size: 14},
			{Name: "bush", Size: 11},
		},
	}
}

func newTestEngine() *Engine {
	return New(testConfig(), 640, 480, rand.New(rand.NewSource(1)), nil)
}

func press(a input.Action) input.ActionSet {
	return 1 << uint(a)
}

func TestResetPlacesRiderOnGround(t *testing.T) {
	e := newTestEngine()
	if !e.onGround {
		t.Error("rider should start on the ground")
	}
	if e.player.Pos.Y != e.groundLevel() {
		t.Errorf("player y = %v, want ground level %v", e.player.Pos.Y, e.groundLevel())
	}
	if e.Score() != 0 || e.Tier() != 0 {
		t.Error("reset should clear score and tier")
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	e := newTestEngine()

	e.Update(1.0/60, press(input.ActionPrimary))
	if e.onGround {
		t.Fatal("jump should leave the ground")
	}
	if e.player.Vel.Y >= 0 {
		t.Errorf("jump velocity = %v, want negative (upward)", e.player.Vel.Y)
	}

	// 空中再按跳跃无效
	velBefore := e.player.Vel.Y
	e.Update(1.0/60, press(input.ActionPrimary))
	// 只有重力作用
	wantVel := velBefore + e.cfg.Gravity*(1.0/60)
	if e.player.Vel.Y != wantVel {
		t.Errorf("mid-air jump changed velocity: got %v, want %v", e.player.Vel.Y, wantVel)
	}
}

func TestUpActionAlsoJumps(t *testing.T) {
	e := newTestEngine()
	e.Update(1.0/60, press(input.ActionUp))
	if e.onGround {
		t.Error("up action should also trigger the jump")
	}
}

func TestGravityReturnsRiderToGround(t *testing.T) {
	e := newTestEngine()
	e.Update(1.0/60, press(input.ActionPrimary))

	for i := 0; i < 600 && !e.onGround; i++ {
		e.Update(1.0/60, 0)
	}
	if !e.onGround {
		t.Fatal("rider should land within a few seconds")
	}
	if e.player.Pos.Y != e.groundLevel() {
		t.Errorf("landed y = %v, want exactly ground level %v", e.player.Pos.Y, e.groundLevel())
	}
	if e.player.Vel.Y != 0 {
		t.Errorf("vertical velocity after landing = %v, want 0", e.player.Vel.Y)
	}
}

func TestObstacleCollisionLoses(t *testing.T) {
	e := newTestEngine()
	ob := e.world.Spawn(entity.KindObstacle)
	ob.Size = 14
	ob.Pos = e.player.Pos

	e.resolveCollisions()
	if e.outcome != game.OutcomeLose {
		t.Errorf("outcome = %v, want lose", e.outcome)
	}
}

func TestJumpClearsObstacle(t *testing.T) {
	e := newTestEngine()
	ob := e.world.Spawn(entity.KindObstacle)
	ob.Size = 14
	ob.Pos = entity.Vec2{X: e.player.Pos.X, Y: e.cfg.GroundY - 14}

	// 把骑手挪到障碍正上方足够高的位置
	e.player.Pos.Y = e.cfg.GroundY - 100
	e.resolveCollisions()
	if e.outcome != game.OutcomeNone {
		t.Error("rider clearing the obstacle should not collide")
	}
}

func TestDistanceReachesFinishWins(t *testing.T) {
	e := newTestEngine()
	e.distance = e.cfg.FinishDistance - 1

	e.Update(1.0/60, 0)
	if e.Outcome() != game.OutcomeWin {
		t.Errorf("outcome = %v, want win at finish distance", e.Outcome())
	}
}

func TestScoreFromDistance(t *testing.T) {
	e := newTestEngine()
	e.distance = 150
	if got := e.Score(); got != 15 {
		t.Errorf("score = %d, want 15", got)
	}
}

func TestTierRaisesScrollSpeed(t *testing.T) {
	e := newTestEngine()
	base := e.speed()

	e.distance = 1500
	e.Update(1.0/60, 0)
	if e.Tier() != 1 {
		t.Fatalf("tier = %d, want 1 past first threshold", e.Tier())
	}
	if e.speed() != base+e.cfg.SpeedPerTier {
		t.Errorf("speed = %v, want %v", e.speed(), base+e.cfg.SpeedPerTier)
	}
}

func TestObstacleCapRespected(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 2000; i++ {
		e.updateObstacles(1.0/60, 10000) // 极高速度逼出密集生成
		if got := e.world.Count(entity.KindObstacle); got > e.cfg.MaxObstacles {
			t.Fatalf("obstacle count = %d exceeds cap %d", got, e.cfg.MaxObstacles)
		}
		e.world.ApplyBounds(640, 480, 50)
		e.world.Sweep()
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func(seed int64) (int, float64, int) {
		e := New(testConfig(), 640, 480, rand.New(rand.NewSource(seed)), nil)
		for i := 0; i < 600; i++ {
			var actions input.ActionSet
			if i%90 == 0 {
				actions = press(input.ActionPrimary)
			}
			e.Update(1.0/60, actions)
		}
		return e.Score(), e.player.Pos.Y, len(e.world.Entities())
	}

	s1, y1, n1 := run(7)
	s2, y2, n2 := run(7)
	if s1 != s2 || y1 != y2 || n1 != n2 {
		t.Errorf("same seed diverged: (%d, %v, %d) vs (%d, %v, %d)", s1, y1, n1, s2, y2, n2)
	}
}
