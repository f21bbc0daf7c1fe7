// Package entity 提供游戏实体模型
//
// 所有游戏共用同一种实体表示：一个带类型标签（Kind）的结构体，
// 公共字段为位置、速度、尺寸和存活标志，少量按类型使用的附加字段。
// 实体存放在 World 的单一有序容器中，按生成顺序遍历，
// 保证相同随机种子下的更新结果可复现。
package entity

import "math"

// Kind 实体类型标签
type Kind int

const (
	// KindPlayer 玩家实体（Playing 状态下全局唯一）
	KindPlayer Kind = iota
	// KindNPC 非玩家角色（鱼、敌机等）
	KindNPC
	// KindProjectile 弹药（出界即销毁，不环绕）
	KindProjectile
	// KindParticle 粒子/装饰（气泡、爆炸碎片）
	KindParticle
	// KindObstacle 障碍物（骑行游戏的岩石等）
	KindObstacle
)

// String 返回类型标签的可读名称（用于日志）
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Vec2 二维向量（逻辑坐标系）
type Vec2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale 标量乘法
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len 向量长度
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Entity 单个游戏实体
//
// Size 同时用作渲染半径和碰撞/吞食比较的依据。
// Wrap 决定边界策略：true 表示从屏幕一侧穿出后从对侧进入，
// false 表示完全离开可见范围后被移除。
type Entity struct {
	ID    uint64
	Kind  Kind
	Pos   Vec2
	Vel   Vec2
	Size  float64
	Alive bool

	// 按类型使用的附加字段
	Hostile bool    // NPC：体型更大时碰撞是否致命
	Wrap    bool    // 边界策略（见上）
	Angle   float64 // fighter：朝向（弧度）
	TTL     int     // projectile/particle：剩余存活 tick 数，<0 表示无限制
	Variant int     // 每游戏自定义子类型（颜色、障碍种类等）

	// fish：垂直摆动参数
	Phase     float64
	PhaseRate float64
	Amplitude float64
}

// CollidesWith 圆形碰撞检测
// factor 缩小碰撞半径使判定更宽容（原作使用 0.7）
func (e *Entity) CollidesWith(o *Entity, factor float64) bool {
	dx := e.Pos.X - o.Pos.X
	dy := e.Pos.Y - o.Pos.Y
	return math.Hypot(dx, dy) < (e.Size+o.Size)*factor
}
