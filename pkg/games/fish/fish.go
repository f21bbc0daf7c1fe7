// Package fish 成长生存游戏的规则引擎
//
// 玩法：玩家控制一条鱼，吞下体型不大于自己的鱼成长，
// 躲开顶级掠食者（鲨鱼）；体型反超鲨鱼后吃掉它即获胜。
// 本引擎只消费逻辑动作集合和固定时间步，全部随机性
// 来自注入的随机源，相同种子与输入序列可完整复现一局。
package fish

import (
	"math"
	"math/rand"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/internal/sfx"
)

// ID 游戏标识，用于启动器和最高分记录
const ID = "fish"

// Engine 实现 game.Rules
type Engine struct {
	cfg           *config.FishConfig
	width, height float64
	world         *entity.World
	rng           *rand.Rand
	sounder       game.Sounder

	player  *entity.Entity
	shark   *entity.Entity
	score   int
	level   int
	outcome game.Outcome
}

// New 创建 fish 规则引擎并完成开局初始化
func New(cfg *config.FishConfig, width, height int, rng *rand.Rand, sounder game.Sounder) *Engine {
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

// Reset 从头重建实体模型与内部状态，无任何继承
func (e *Engine) Reset() {
	e.world.Reset()
	e.score = 0
	e.level = 1
	e.outcome = game.OutcomeNone

	// 玩家：屏幕中央，边界环绕
	e.player = e.world.Spawn(entity.KindPlayer)
	e.player.Pos = entity.Vec2{X: e.width / 2, Y: e.height / 2}
	e.player.Size = e.cfg.PlayerSize
	e.player.Wrap = true
	e.player.Variant = 1 // 朝右

	// 顶级掠食者：右缘入场向左巡游，边界环绕
	e.shark = e.world.Spawn(entity.KindNPC)
	e.shark.Pos = entity.Vec2{X: e.width - 1, Y: e.randRange(50, e.height-50)}
	e.shark.Size = e.cfg.SharkSize
	e.shark.Vel = entity.Vec2{X: -e.cfg.SharkSpeed}
	e.shark.Hostile = true
	e.shark.Wrap = true

	// 开局鱼群
	tier := e.cfg.Tier(e.level)
	for i := 0; i < e.cfg.InitialFish && e.foodCount() < tier.MaxNPC; i++ {
		e.spawnFish(tier)
	}
}

// Outcome 返回本 tick 的终局判定
func (e *Engine) Outcome() game.Outcome { return e.outcome }

// Score 返回当前分数
func (e *Engine) Score() int { return e.score }

// Tier 难度档位即玩家等级
func (e *Engine) Tier() int { return e.level }

// Level 返回玩家等级（从 1 开始）
func (e *Engine) Level() int { return e.level }

// PlayerSize 返回玩家当前尺寸（HUD 用）
func (e *Engine) PlayerSize() float64 { return e.player.Size }

// Update 推进一个固定时间步
//
// 顺序固定：移动 → 顶级掠食者AI → 碰撞结算（按生成顺序）→
// 生成 → 边界策略 → 清扫。碰撞每 tick 对每一对只结算一次。
func (e *Engine) Update(dt float64, actions input.ActionSet) {
	e.outcome = game.OutcomeNone

	e.updatePlayer(dt, actions)
	e.updateFish(dt)
	e.updateShark(dt)
	e.resolveCollisions()
	e.spawn()
	e.world.ApplyBounds(e.width, e.height, e.cfg.EdgeMargin)
	e.world.Sweep()
}

func (e *Engine) updatePlayer(dt float64, actions input.ActionSet) {
	mx, my := actions.MoveAxes()
	e.player.Vel = entity.Vec2{X: mx * e.cfg.PlayerSpeed, Y: my * e.cfg.PlayerSpeed}
	e.player.Pos = e.player.Pos.Add(e.player.Vel.Scale(dt))
	if mx > 0 {
		e.player.Variant = 1
	} else if mx < 0 {
		e.player.Variant = 0
	}
}

func (e *Engine) updateFish(dt float64) {
	for _, f := range e.world.Entities() {
		if !f.Alive || f.Kind != entity.KindNPC || f.Hostile {
			continue
		}
		f.Pos.X += f.Vel.X * dt
		f.Phase += f.PhaseRate * dt
		f.Pos.Y += math.Sin(f.Phase) * f.Amplitude * dt
	}
	// 气泡上浮
	for _, b := range e.world.Entities() {
		if !b.Alive || b.Kind != entity.KindParticle {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}

// updateShark 顶级掠食者的巡游AI
// 以配置的激进程度随机转向/垂直逼近玩家（概率按 60 tick/秒标定）
func (e *Engine) updateShark(dt float64) {
	s := e.shark
	steps := dt * 60
	if e.rng.Float64() < e.cfg.SharkAggression*0.02*steps {
		if e.player.Pos.X > s.Pos.X {
			s.Vel.X = e.cfg.SharkSpeed
		} else {
			s.Vel.X = -e.cfg.SharkSpeed
		}
	}
	if e.rng.Float64() < e.cfg.SharkAggression*0.05*steps {
		if e.player.Pos.Y > s.Pos.Y {
			s.Pos.Y += 60 * dt
		} else {
			s.Pos.Y -= 60 * dt
		}
	}
	s.Pos.X += s.Vel.X * dt
}

// resolveCollisions 按生成顺序结算玩家与每条NPC的重叠
//
// 玩家尺寸 >= 对方：吞食（销毁对方、按比例成长、计分、检查升级）。
// 玩家尺寸更小：仅当对方是致命类型时触发终局；更大的普通鱼可穿过。
// 与顶级掠食者的碰撞在尺寸反超时构成胜利。
func (e *Engine) resolveCollisions() {
	for _, f := range e.world.Entities() {
		if !f.Alive || f.Kind != entity.KindNPC {
			continue
		}
		if !e.player.CollidesWith(f, e.cfg.CollisionFactor) {
			continue
		}
		if e.player.Size >= f.Size {
			if f.Hostile {
				// 体型已反超顶级掠食者：吃掉它即获胜
				e.world.Destroy(f)
				e.outcome = game.OutcomeWin
				e.sounder.Play(sfx.SoundWin)
				return
			}
			e.consume(f)
			continue
		}
		if f.Hostile {
			e.outcome = game.OutcomeLose
			e.sounder.Play(sfx.SoundGameOver)
			return
		}
		// 更大的普通鱼：穿过，不产生效果
	}
}

func (e *Engine) consume(f *entity.Entity) {
	e.world.Destroy(f)
	e.player.Size += f.Size * e.cfg.GrowthFraction
	e.score += int(f.Size)
	e.sounder.Play(sfx.SoundEat)
	e.checkLevelUp()
}

// checkLevelUp 按固定尺寸阈值重新计算等级
// 只升不降；升级触发一次性音效
func (e *Engine) checkLevelUp() {
	newLevel := 1
	for _, th := range e.cfg.LevelThresholds {
		if e.player.Size >= th {
			newLevel++
		}
	}
	if newLevel > e.level {
		e.level = newLevel
		e.sounder.Play(sfx.SoundLevelUp)
	}
}
