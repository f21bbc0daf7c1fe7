// Package fighter 太空战斗游戏的规则引擎
//
// 玩法：旋转+推进操控飞船（带惯性和摩擦），射击漂来的敌机。
// 被敌机撞上即失败，得分达到目标即获胜。
// 飞船与敌机在屏幕边界环绕，子弹出界即销毁。
package fighter

import (
	"math"
	"math/rand"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/internal/sfx"
)

// ID 游戏标识
const ID = "fighter"

const collisionFactor = 0.7

// tierKills 每击毁多少敌机提升一档难度
const tierKills = 5

// Engine 实现 game.Rules
type Engine struct {
	cfg           *config.FighterConfig
	width, height float64
	world         *entity.World
	rng           *rand.Rand
	sounder       game.Sounder

	player       *entity.Entity
	score        int
	tier         int
	outcome      game.Outcome
	fireCooldown int
	spawnTimer   int
}

// New 创建 fighter 规则引擎并完成开局初始化
func New(cfg *config.FighterConfig, width, height int, rng *rand.Rand, sounder game.Sounder) *Engine {
	if sounder == nil {
		sounder = game.NopSounder{}
	}
	e := &Engine{
		cfg:     cfg,
		width:   float64(width),
		height:  float64(height),
		world:   entity.NewWorld(),
		rng:     rng,
		sounder: sounder,
	}
	e.Reset()
	return e
}

// Reset 从头重建实体模型与内部状态
func (e *Engine) Reset() {
	e.world.Reset()
	e.score = 0
	e.tier = 0
	e.outcome = game.OutcomeNone
	e.fireCooldown = 0
	e.spawnTimer = 0

	e.player = e.world.Spawn(entity.KindPlayer)
	e.player.Pos = entity.Vec2{X: e.width / 2, Y: e.height / 2}
	e.player.Size = e.cfg.PlayerRadius
	e.player.Angle = -math.Pi / 2 // 朝上
	e.player.Wrap = true
}

// Outcome 返回本 tick 的终局判定
func (e *Engine) Outcome() game.Outcome { return e.outcome }

// Score 返回当前分数
func (e *Engine) Score() int { return e.score }

// Tier 每击毁 tierKills 架敌机提升一档，单调不减
func (e *Engine) Tier() int { return e.tier }

// spawnInterval 生成间隔随档位缩短，但不低于下限
func (e *Engine) spawnInterval() int {
	interval := e.cfg.SpawnInterval - e.tier*4
	if interval < e.cfg.SpawnInterval/4 {
		interval = e.cfg.SpawnInterval / 4
	}
	return interval
}

// Update 推进一个固定时间步
// 配置中的速度/加速度按 tick 标定，steps 把 dt 换算回 tick 数
func (e *Engine) Update(dt float64, actions input.ActionSet) {
	e.outcome = game.OutcomeNone
	steps := dt * 60

	e.updatePlayer(steps, actions)
	e.updateProjectiles(steps)
	e.updateEnemies(steps)
	e.resolveCollisions()
	e.spawnEnemy()

	if e.score >= e.cfg.WinScore && e.outcome == game.OutcomeNone {
		e.outcome = game.OutcomeWin
		e.sounder.Play(sfx.SoundWin)
	}

	e.world.ApplyBounds(e.width, e.height, 10)
	e.world.Sweep()
}

func (e *Engine) updatePlayer(steps float64, actions input.ActionSet) {
	p := e.player
	if actions.Has(input.ActionLeft) {
		p.Angle -= e.cfg.RotationSpeed * steps
	}
	if actions.Has(input.ActionRight) {
		p.Angle += e.cfg.RotationSpeed * steps
	}
	if actions.Has(input.ActionUp) {
		p.Vel.X += math.Cos(p.Angle) * e.cfg.ThrustPower * steps
		p.Vel.Y += math.Sin(p.Angle) * e.cfg.ThrustPower * steps
	}

	// 摩擦与限速
	friction := math.Pow(e.cfg.Friction, steps)
	p.Vel = p.Vel.Scale(friction)
	if speed := p.Vel.Len(); speed > e.cfg.MaxSpeed {
		p.Vel = p.Vel.Scale(e.cfg.MaxSpeed / speed)
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(steps))

	if e.fireCooldown > 0 {
		e.fireCooldown--
	}
	if actions.Has(input.ActionPrimary) {
		e.fire()
	}
}

// fire 发射子弹：受连射冷却和同屏数量上限约束
func (e *Engine) fire() {
	if e.fireCooldown > 0 || e.world.Count(entity.KindProjectile) >= e.cfg.MaxBullets {
		return
	}
	p := e.player
	b := e.world.Spawn(entity.KindProjectile)
	b.Pos = entity.Vec2{
		X: p.Pos.X + math.Cos(p.Angle)*p.Size,
		Y: p.Pos.Y + math.Sin(p.Angle)*p.Size,
	}
	b.Vel = entity.Vec2{
		X: math.Cos(p.Angle) * e.cfg.BulletSpeed,
		Y: math.Sin(p.Angle) * e.cfg.BulletSpeed,
	}
	b.Size = e.cfg.BulletRadius
	b.TTL = e.cfg.BulletLifetime
	e.fireCooldown = e.cfg.FireCooldown
	e.sounder.Play(sfx.SoundShoot)
}

func (e *Engine) updateProjectiles(steps float64) {
	for _, b := range e.world.Entities() {
		if !b.Alive || b.Kind != entity.KindProjectile {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(steps))
		b.TTL--
		if b.TTL <= 0 {
			e.world.Destroy(b)
		}
	}
}

func (e *Engine) updateEnemies(steps float64) {
	for _, en := range e.world.Entities() {
		if en.Alive && en.Kind == entity.KindNPC {
			en.Pos = en.Pos.Add(en.Vel.Scale(steps))
		}
	}
}

// spawnEnemy 按间隔在远离玩家的位置生成敌机，朝玩家漂移
// 同屏上限达到后抑制；找不到安全点时放弃本次生成
func (e *Engine) spawnEnemy() {
	e.spawnTimer++
	if e.spawnTimer < e.spawnInterval() {
		return
	}
	e.spawnTimer = 0
	if e.world.Count(entity.KindNPC) >= e.cfg.MaxEnemies {
		return
	}

	var pos entity.Vec2
	found := false
	for try := 0; try < 10; try++ {
		pos = entity.Vec2{X: e.rng.Float64() * e.width, Y: e.rng.Float64() * e.height}
		dx := pos.X - e.player.Pos.X
		dy := pos.Y - e.player.Pos.Y
		if math.Hypot(dx, dy) >= e.cfg.SafeSpawnRadius {
			found = true
			break
		}
	}
	if !found {
		return
	}

	speed := e.cfg.EnemySpeedMin + e.rng.Float64()*(e.cfg.EnemySpeedMax-e.cfg.EnemySpeedMin)
	angle := math.Atan2(e.player.Pos.Y-pos.Y, e.player.Pos.X-pos.X)
	en := e.world.Spawn(entity.KindNPC)
	en.Pos = pos
	en.Size = e.cfg.EnemyRadius
	en.Vel = entity.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	en.Hostile = true
	en.Wrap = true
	en.Variant = e.rng.Intn(3)
}

// resolveCollisions 按生成顺序结算子弹-敌机与玩家-敌机碰撞
func (e *Engine) resolveCollisions() {
	for _, en := range e.world.Entities() {
		if !en.Alive || en.Kind != entity.KindNPC {
			continue
		}
		for _, b := range e.world.Entities() {
			if !b.Alive || b.Kind != entity.KindProjectile {
				continue
			}
			if en.CollidesWith(b, 1.0) {
				e.world.Destroy(en)
				e.world.Destroy(b)
				e.score += e.cfg.EnemyScore
				if t := e.score / (e.cfg.EnemyScore * tierKills); t > e.tier {
					e.tier = t
				}
				e.sounder.Play(sfx.SoundCrash)
				break
			}
		}
		if en.Alive && e.player.CollidesWith(en, collisionFactor) {
			e.outcome = game.OutcomeLose
			e.sounder.Play(sfx.SoundGameOver)
			return
		}
	}
}
