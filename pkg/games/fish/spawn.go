package fish

import (
	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/entity"
)

// fishColorCount 普通鱼的可选配色数量（见 draw.go 的颜色表）
const fishColorCount = 10

// spawn 每 tick 的生成逻辑
//
// 普通鱼：按当前档位的概率生成，达到档位的并发上限时抑制；
// 气泡：按固定概率从底部生成（纯装饰，Particle 类型）。
func (e *Engine) spawn() {
	tier := e.cfg.Tier(e.level)
	if e.foodCount() < tier.MaxNPC && e.rng.Float64() < tier.SpawnChance {
		e.spawnFish(tier)
	}

	if e.rng.Float64() < e.cfg.BubbleChance {
		b := e.world.Spawn(entity.KindParticle)
		b.Pos = entity.Vec2{X: e.randRange(0, e.width), Y: e.height + 10}
		b.Size = e.randRange(2, 8)
		b.Vel = entity.Vec2{X: e.randRange(-15, 15), Y: -e.randRange(60, 180)}
	}
}

// spawnFish 在左右一侧屏幕外生成一条鱼，游向对侧
//
// 尺寸落在档位的 [sizeMin, sizeMax] 内，并按 smallBias 概率
// 偏向小鱼子区间（原作：70% 概率生成小鱼）。
func (e *Engine) spawnFish(tier config.FishTier) {
	size := e.randRange(tier.SizeMin, tier.SizeMax)
	if e.rng.Float64() < tier.SmallBias {
		size = e.randRange(tier.SizeMin, tier.SmallMax)
	}

	speed := e.randRange(e.cfg.FishSpeedMin, e.cfg.FishSpeedMax)
	x := -50.0
	if e.rng.Intn(2) == 1 {
		x = e.width + 50
		speed = -speed
	}

	f := e.world.Spawn(entity.KindNPC)
	f.Pos = entity.Vec2{X: x, Y: e.randRange(50, e.height-50)}
	f.Size = size
	f.Vel = entity.Vec2{X: speed}
	f.Variant = e.rng.Intn(fishColorCount)
	f.PhaseRate = e.randRange(3, 6)
	f.Amplitude = e.randRange(30, 90)
}

// foodCount 统计存活的普通鱼数量（不含顶级掠食者）
func (e *Engine) foodCount() int {
	n := 0
	for _, f := range e.world.Entities() {
		if f.Alive && f.Kind == entity.KindNPC && !f.Hostile {
			n++
		}
	}
	return n
}

func (e *Engine) randRange(min, max float64) float64 {
	return min + e.rng.Float64()*(max-min)
}
