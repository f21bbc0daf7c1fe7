package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hblok/max-blok-games/pkg/input"
)

// Rules 单个游戏的规则引擎
//
// 框架持有循环和状态机，通过该接口调用注入的规则引擎
// （组合而非继承）。实现方在 Update 中推进实体模型一个固定
// 时间步，并把终局判定缓存在内部，由 Outcome 返回给框架。
type Rules interface {
	// Reset 重新初始化实体模型和内部状态（开局/重新开始）
	Reset()
	// Update 用当前动作集推进一个固定时间步
	// 仅在 Playing 状态下被调用
	Update(dt float64, actions input.ActionSet)
	// Outcome 返回本 tick 的终局判定
	Outcome() Outcome
	// Score 返回当前分数（非负，Playing 期间单调不减）
	Score() int
	// Tier 返回规则引擎计算出的难度档位（单调不减）
	Tier() int
	// Draw 把当前实体模型绘制到逻辑表面
	Draw(surface *ebiten.Image)
}

// Sounder 离散事件音效回调（碰撞、升级、终局）
// fire-and-forget，实现方可为空实现
type Sounder interface {
	Play(soundID string)
}

// NopSounder 空音效实现，测试和静音模式使用
type NopSounder struct{}

// Play 丢弃音效请求
func (NopSounder) Play(string) {}
