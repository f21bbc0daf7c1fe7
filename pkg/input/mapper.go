package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hblok/max-blok-games/pkg/config"
)

// keyNames 配置文件按键名 -> ebiten 键码
// 只收录本仓库游戏实际绑定过的按键；未知名称是配置错误
var keyNames = map[string]ebiten.Key{
	"Up":        ebiten.KeyArrowUp,
	"Down":      ebiten.KeyArrowDown,
	"Left":      ebiten.KeyArrowLeft,
	"Right":     ebiten.KeyArrowRight,
	"W":         ebiten.KeyW,
	"A":         ebiten.KeyA,
	"S":         ebiten.KeyS,
	"D":         ebiten.KeyD,
	"X":         ebiten.KeyX,
	"Z":         ebiten.KeyZ,
	"P":         ebiten.KeyP,
	"Q":         ebiten.KeyQ,
	"R":         ebiten.KeyR,
	"Space":     ebiten.KeySpace,
	"Enter":     ebiten.KeyEnter,
	"Escape":    ebiten.KeyEscape,
	"Backspace": ebiten.KeyBackspace,
	"Shift":     ebiten.KeyShiftLeft,
}

// Snapshot 一帧的原始设备状态
//
// 由 Poll 从 ebiten 采集；测试可以直接构造，
// 让映射逻辑与真实设备解耦。
type Snapshot struct {
	Keys             map[ebiten.Key]bool // 当前按住的键盘按键
	Buttons          map[int]bool        // 当前按住的手柄按钮序号
	AxisX, AxisY     float64             // 左摇杆轴值 -1.0 ~ 1.0
	GamepadConnected bool                // 是否有可用手柄
}

// Mapper 把原始设备状态翻译成逻辑动作集合
//
// Mapper 自身无状态（不保存跨帧信息），Actions 是纯函数，
// 边沿检测由调用方通过 JustPressed 比较相邻两帧完成。
type Mapper struct {
	deadzone float64
	keys     map[ebiten.Key][]Action
	buttons  map[int][]Action
}

// NewMapper 根据输入配置构建映射器
// 未知的动作名或按键名视为配置错误
func NewMapper(cfg config.InputConfig) (*Mapper, error) {
	m := &Mapper{
		deadzone: cfg.Deadzone,
		keys:     make(map[ebiten.Key][]Action),
		buttons:  make(map[int][]Action),
	}
	for name, binding := range cfg.Bindings {
		action, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown action %q in input bindings", name)
		}
		for _, keyName := range binding.Keys {
			key, ok := keyNames[keyName]
			if !ok {
				return nil, fmt.Errorf("unknown key %q bound to action %q", keyName, name)
			}
			m.keys[key] = append(m.keys[key], action)
		}
		for _, btn := range binding.Buttons {
			m.buttons[btn] = append(m.buttons[btn], action)
		}
	}
	return m, nil
}

// Actions 计算当前帧激活的逻辑动作集合
//
// 摇杆轴值按死区数字化：低于死区视为无输入，高于死区映射为
// 对应方向动作（游戏只消费数字方向，不消费模拟量）。
// 手柄断开时 Snapshot 不含手柄状态，键盘仍然可用。
func (m *Mapper) Actions(snap Snapshot) ActionSet {
	var set ActionSet
	for key, pressed := range snap.Keys {
		if !pressed {
			continue
		}
		for _, a := range m.keys[key] {
			set.add(a)
		}
	}
	if snap.GamepadConnected {
		for btn, pressed := range snap.Buttons {
			if !pressed {
				continue
			}
			for _, a := range m.buttons[btn] {
				set.add(a)
			}
		}
		if snap.AxisX < -m.deadzone {
			set.add(ActionLeft)
		} else if snap.AxisX > m.deadzone {
			set.add(ActionRight)
		}
		if snap.AxisY < -m.deadzone {
			set.add(ActionUp)
		} else if snap.AxisY > m.deadzone {
			set.add(ActionDown)
		}
	}
	return set
}

// Deadzone 返回配置的死区值
func (m *Mapper) Deadzone() float64 {
	return m.deadzone
}
