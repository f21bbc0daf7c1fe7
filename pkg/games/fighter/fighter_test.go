package fighter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
)

func testConfig() *config.FighterConfig {
	return &config.FighterConfig{
		PlayerRadius:    12,
		RotationSpeed:   0.05,
		ThrustPower:     0.12,
		Friction:        0.98,
		MaxSpeed:        5,
		BulletSpeed:     7,
		BulletRadius:    2,
		BulletLifetime:  60,
		MaxBullets:      5,
		FireCooldown:    15,
		SpawnInterval:   40,
		SafeSpawnRadius: 150,
		MaxEnemies:      8,
		EnemyRadius:     10,
		EnemySpeedMin:   0.8,
		EnemySpeedMax:   2.2,
		EnemyScore:      10,
		WinScore:        200,
	}
}

func newTestEngine() *Engine {
	return New(testConfig(), 640, 480, rand.New(rand.NewSource(1)), nil)
}

func press(a input.Action) input.ActionSet {
	return 1 << uint(a)
}

const dt = 1.0 / 60

func TestResetShipState(t *testing.T) {
	e := newTestEngine()
	if e.player.Pos != (entity.Vec2{X: 320, Y: 240}) {
		t.Errorf("ship pos = %v, want screen center", e.player.Pos)
	}
	if e.player.Angle != -math.Pi/2 {
		t.Errorf("ship angle = %v, want facing up", e.player.Angle)
	}
	if !e.player.Wrap {
		t.Error("ship should wrap at screen edges")
	}
}

func TestRotation(t *testing.T) {
	e := newTestEngine()
	start := e.player.Angle

	e.Update(dt, press(input.ActionRight))
	if e.player.Angle <= start {
		t.Error("right should rotate clockwise (increasing angle)")
	}

	e.Update(dt, press(input.ActionLeft))
	e.Update(dt, press(input.ActionLeft))
	if e.player.Angle >= start {
		t.Error("left should rotate counterclockwise")
	}
}

func TestThrustAndFriction(t *testing.T) {
	e := newTestEngine()

	e.Update(dt, press(input.ActionUp))
	if e.player.Vel.Len() == 0 {
		t.Fatal("thrust should accelerate the ship")
	}
	// 朝上推进
	if e.player.Vel.Y >= 0 {
		t.Errorf("thrust while facing up should move upward, vel = %v", e.player.Vel)
	}

	// 松开推进后摩擦衰减
	speed := e.player.Vel.Len()
	e.Update(dt, 0)
	if e.player.Vel.Len() >= speed {
		t.Error("friction should decay velocity without thrust")
	}
}

func TestSpeedClamp(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 600; i++ {
		e.Update(dt, press(input.ActionUp))
	}
	if got := e.player.Vel.Len(); got > e.cfg.MaxSpeed+1e-9 {
		t.Errorf("speed = %v exceeds max %v", got, e.cfg.MaxSpeed)
	}
}

func TestFireCooldownAndCap(t *testing.T) {
	e := newTestEngine()

	e.Update(dt, press(input.ActionPrimary))
	if got := e.world.Count(entity.KindProjectile); got != 1 {
		t.Fatalf("bullet count = %d, want 1", got)
	}

	// 冷却期内再按不发射
	e.Update(dt, press(input.ActionPrimary))
	if got := e.world.Count(entity.KindProjectile); got != 1 {
		t.Errorf("bullet count during cooldown = %d, want 1", got)
	}

	// 连续开火受同屏上限约束
	for i := 0; i < 300; i++ {
		e.Update(dt, press(input.ActionPrimary))
		if got := e.world.Count(entity.KindProjectile); got > e.cfg.MaxBullets {
			t.Fatalf("bullet count = %d exceeds cap %d", got, e.cfg.MaxBullets)
		}
	}
}

func TestBulletExpiresAfterLifetime(t *testing.T) {
	e := newTestEngine()
	e.Update(dt, press(input.ActionPrimary))

	for i := 0; i < e.cfg.BulletLifetime+1; i++ {
		e.Update(dt, 0)
	}
	if got := e.world.Count(entity.KindProjectile); got != 0 {
		t.Errorf("bullet count after lifetime = %d, want 0", got)
	}
}

func TestBulletDestroysEnemyAndScores(t *testing.T) {
	e := newTestEngine()

	enemy := e.world.Spawn(entity.KindNPC)
	enemy.Pos = entity.Vec2{X: 100, Y: 100}
	enemy.Size = e.cfg.EnemyRadius
	enemy.Hostile = true

	bullet := e.world.Spawn(entity.KindProjectile)
	bullet.Pos = enemy.Pos
	bullet.Size = e.cfg.BulletRadius
	bullet.TTL = 10

	e.resolveCollisions()

	if enemy.Alive || bullet.Alive {
		t.Error("bullet hit should destroy both bullet and enemy")
	}
	if e.Score() != e.cfg.EnemyScore {
		t.Errorf("score = %d, want %d", e.Score(), e.cfg.EnemyScore)
	}
}

func TestEnemyCollisionLoses(t *testing.T) {
	e := newTestEngine()
	enemy := e.world.Spawn(entity.KindNPC)
	enemy.Pos = e.player.Pos
	enemy.Size = e.cfg.EnemyRadius
	enemy.Hostile = true

	e.resolveCollisions()
	if e.outcome != game.OutcomeLose {
		t.Errorf("outcome = %v, want lose", e.outcome)
	}
}

func TestWinAtTargetScore(t *testing.T) {
	e := newTestEngine()
	e.score = e.cfg.WinScore

	e.Update(dt, 0)
	if e.Outcome() != game.OutcomeWin {
		t.Errorf("outcome = %v, want win", e.Outcome())
	}
}

func TestEnemiesSpawnOutsideSafeRadius(t *testing.T) {
	e := newTestEngine()

	for i := 0; i < 50; i++ {
		e.spawnTimer = e.spawnInterval() // 直接触发一次生成
		before := len(e.world.Entities())
		e.spawnEnemy()
		if len(e.world.Entities()) == before {
			continue // 达到上限或找不到安全点
		}
		spawned := e.world.Entities()[len(e.world.Entities())-1]
		dx := spawned.Pos.X - e.player.Pos.X
		dy := spawned.Pos.Y - e.player.Pos.Y
		if math.Hypot(dx, dy) < e.cfg.SafeSpawnRadius {
			t.Fatalf("enemy spawned %v px from player, want >= %v", math.Hypot(dx, dy), e.cfg.SafeSpawnRadius)
		}
		if !spawned.Hostile || !spawned.Wrap {
			t.Error("spawned enemy should be hostile and wrapping")
		}
		e.Reset()
	}
}

func TestEnemyCapRespected(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 2000; i++ {
		e.spawnEnemy()
		if got := e.world.Count(entity.KindNPC); got > e.cfg.MaxEnemies {
			t.Fatalf("enemy count = %d exceeds cap %d", got, e.cfg.MaxEnemies)
		}
	}
}

func TestTierFromKills(t *testing.T) {
	e := newTestEngine()

	// 每 tierKills 次击毁提升一档
	for kill := 0; kill < tierKills*2; kill++ {
		enemy := e.world.Spawn(entity.KindNPC)
		enemy.Pos = entity.Vec2{X: 100, Y: 100}
		enemy.Size = e.cfg.EnemyRadius
		enemy.Hostile = true
		bullet := e.world.Spawn(entity.KindProjectile)
		bullet.Pos = enemy.Pos
		bullet.Size = e.cfg.BulletRadius
		e.resolveCollisions()
		e.world.Sweep()
	}
	if e.Tier() != 2 {
		t.Errorf("tier after %d kills = %d, want 2", tierKills*2, e.Tier())
	}

	// 档位提升缩短生成间隔，但不低于下限
	if e.spawnInterval() >= e.cfg.SpawnInterval {
		t.Error("higher tier should shorten the spawn interval")
	}
	e.tier = 100
	if e.spawnInterval() < e.cfg.SpawnInterval/4 {
		t.Error("spawn interval must not drop below the floor")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func(seed int64) (int, entity.Vec2, int) {
		e := New(testConfig(), 640, 480, rand.New(rand.NewSource(seed)), nil)
		for i := 0; i < 600; i++ {
			actions := press(input.ActionUp)
			if i%40 < 20 {
				actions |= press(input.ActionLeft)
			}
			if i%7 == 0 {
				actions |= press(input.ActionPrimary)
			}
			e.Update(dt, actions)
			if e.Outcome() != game.OutcomeNone {
				break
			}
		}
		return e.Score(), e.player.Pos, len(e.world.Entities())
	}

	s1, p1, n1 := run(99)
	s2, p2, n2 := run(99)
	if s1 != s2 || p1 != p2 || n1 != n2 {
		t.Errorf("same seed diverged: (%d, %v, %d) vs (%d, %v, %d)", s1, p1, n1, s2, p2, n2)
	}
}
