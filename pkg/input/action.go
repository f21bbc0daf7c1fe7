// Package input 提供输入归一化
//
// 把键盘和手柄的原始状态翻译成一小组逻辑动作（方向、主/副动作、
// 暂停、确认、取消）。游戏逻辑只消费逻辑动作，不接触具体设备。
package input

// Action 逻辑动作
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionPrimary
	ActionSecondary
	ActionPause
	ActionConfirm
	ActionCancel

	actionCount
)

// actionNames 配置文件中使用的动作名称
var actionNames = map[string]Action{
	"up":        ActionUp,
	"down":      ActionDown,
	"left":      ActionLeft,
	"right":     ActionRight,
	"primary":   ActionPrimary,
	"secondary": ActionSecondary,
	"pause":     ActionPause,
	"confirm":   ActionConfirm,
	"cancel":    ActionCancel,
}

// ActionSet 当前帧处于激活状态的逻辑动作集合
// 位掩码表示，值语义，可直接比较
type ActionSet uint16

// Has 判断动作是否激活
func (s ActionSet) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

func (s *ActionSet) add(a Action) {
	*s |= 1 << uint(a)
}

// JustPressed 边沿检测：动作在本帧激活且上一帧未激活
// Mapper 本身无状态，调用方保存上一帧的 ActionSet
func JustPressed(cur, prev ActionSet, a Action) bool {
	return cur.Has(a) && !prev.Has(a)
}

// MoveAxes 把方向动作折算成 [-1,0,1] 的数字轴
// 对角线移动归一化为 0.707，避免斜向速度偏快（原作同款处理）
func (s ActionSet) MoveAxes() (x, y float64) {
	if s.Has(ActionLeft) {
		x--
	}
	if s.Has(ActionRight) {
		x++
	}
	if s.Has(ActionUp) {
		y--
	}
	if s.Has(ActionDown) {
		y++
	}
	if x != 0 && y != 0 {
		x *= 0.707
		y *= 0.707
	}
	return x, y
}
