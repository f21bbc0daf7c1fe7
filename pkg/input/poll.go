package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll 采集当前帧的原始设备状态
//
// 键盘总是可用；手柄取第一个已连接的设备，
// 拔出手柄后退化为仅键盘输入，不产生错误。
func Poll() Snapshot {
	snap := Snapshot{
		Keys:    make(map[ebiten.Key]bool),
		Buttons: make(map[int]bool),
	}

	for _, key := range inpututil.AppendPressedKeys(nil) {
		snap.Keys[key] = true
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return snap
	}
	id := ids[0]
	snap.GamepadConnected = true

	for b := 0; b < ebiten.GamepadButtonNum(id); b++ {
		if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b)) {
			snap.Buttons[b] = true
		}
	}
	snap.AxisX = ebiten.GamepadAxisValue(id, 0)
	snap.AxisY = ebiten.GamepadAxisValue(id, 1)
	return snap
}
