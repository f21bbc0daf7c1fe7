// Package rider 横版骑行障碍游戏的规则引擎
//
// 玩法：卷轴自动前进，按跳跃键越过迎面而来的障碍物；
// 撞上障碍即失败，坚持到通关里程即获胜。
// 卷轴速度随里程档位提升，档位只升不降。
package rider

import (
	"math/rand"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/internal/sfx"
)

// ID 游戏标识
const ID = "rider"

// collisionFactor 圆形碰撞宽容系数（框架惯例取值）
const collisionFactor = 0.7

// Engine 实现 game.Rules
type Engine struct {
	cfg           *config.RiderConfig
	width, height float64
	world         *entity.World
	rng           *rand.Rand
	sounder       game.Sounder

	player   *entity.Entity
	distance float64
	tier     int
	outcome  game.Outcome
	onGround bool
	nextGap  float64 // 距离下一个障碍生成还差的里程
}

// New 创建 rider 规则引擎并完成开局初始化
func New(cfg *config.RiderConfig, width, height int, rng *rand.Rand, sounder game.Sounder) *Engine {
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
	e.distance = 0
	e.tier = 0
	e.outcome = game.OutcomeNone
	e.onGround = true
	e.nextGap = e.randRange(e.cfg.SpawnGapMin, e.cfg.SpawnGapMax)

	e.player = e.world.Spawn(entity.KindPlayer)
	e.player.Size = e.cfg.PlayerSize
	e.player.Pos = entity.Vec2{X: e.cfg.PlayerX, Y: e.groundLevel()}
}

// groundLevel 骑手落地时的中心高度
func (e *Engine) groundLevel() float64 {
	return e.cfg.GroundY - e.cfg.PlayerSize
}

// Outcome 返回本 tick 的终局判定
func (e *Engine) Outcome() game.Outcome { return e.outcome }

// Score 分数为里程的线性换算，Playing 期间单调不减
func (e *Engine) Score() int { return int(e.distance / e.cfg.ScoreDivisor) }

// Tier 返回当前难度档位
func (e *Engine) Tier() int { return e.tier }

// Distance 返回已行驶里程（HUD 用）
func (e *Engine) Distance() float64 { return e.distance }

// speed 当前卷轴速度：基础速度 + 档位加成
func (e *Engine) speed() float64 {
	return e.cfg.BaseSpeed + float64(e.tier)*e.cfg.SpeedPerTier
}

// Update 推进一个固定时间步
func (e *Engine) Update(dt float64, actions input.ActionSet) {
	e.outcome = game.OutcomeNone

	speed := e.speed()
	e.distance += speed * dt
	if t := e.cfg.TierFor(e.distance); t > e.tier {
		e.tier = t
	}

	e.updatePlayer(dt, actions)
	e.updateObstacles(dt, speed)
	e.resolveCollisions()

	if e.distance >= e.cfg.FinishDistance && e.outcome == game.OutcomeNone {
		e.outcome = game.OutcomeWin
		e.sounder.Play(sfx.SoundWin)
	}

	e.world.ApplyBounds(e.width, e.height, 50)
	e.world.Sweep()
}

func (e *Engine) updatePlayer(dt float64, actions input.ActionSet) {
	if e.onGround && (actions.Has(input.ActionPrimary) || actions.Has(input.ActionUp)) {
		e.player.Vel.Y = -e.cfg.JumpSpeed
		e.onGround = false
		e.sounder.Play(sfx.SoundJump)
	}
	if !e.onGround {
		e.player.Vel.Y += e.cfg.Gravity * dt
		e.player.Pos.Y += e.player.Vel.Y * dt
		if e.player.Pos.Y >= e.groundLevel() {
			e.player.Pos.Y = e.groundLevel()
			e.player.Vel.Y = 0
			e.onGround = true
		}
	}
}

// updateObstacles 障碍随卷轴左移；按里程间隔在右缘生成新障碍
// 同屏数量达到上限时抑制生成
func (e *Engine) updateObstacles(dt float64, speed float64) {
	for _, ob := range e.world.Entities() {
		if ob.Alive && ob.Kind == entity.KindObstacle {
			ob.Pos.X -= speed * dt
		}
	}

	e.nextGap -= speed * dt
	if e.nextGap > 0 {
		return
	}
	e.nextGap = e.randRange(e.cfg.SpawnGapMin, e.cfg.SpawnGapMax)
	if e.world.Count(entity.KindObstacle) >= e.cfg.MaxObstacles {
		return
	}

	variant := e.rng.Intn(len(e.cfg.Obstacles))
	size := e.cfg.Obstacles[variant].Size
	ob := e.world.Spawn(entity.KindObstacle)
	ob.Variant = variant
	ob.Size = size
	ob.Pos = entity.Vec2{X: e.width + size, Y: e.cfg.GroundY - size}
}

func (e *Engine) resolveCollisions() {
	for _, ob := range e.world.Entities() {
		if !ob.Alive || ob.Kind != entity.KindObstacle {
			continue
		}
		if e.player.CollidesWith(ob, collisionFactor) {
			e.outcome = game.OutcomeLose
			e.sounder.Play(sfx.SoundCrash)
			return
		}
	}
}

func (e *Engine) randRange(min, max float64) float64 {
	return min + e.rng.Float64()*(max-min)
}
