package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hblok/max-blok-games/pkg/config"
)

func testMapper(t *testing.T) *Mapper {
	t.Helper()
	m, err := NewMapper(config.DefaultConfig().Input)
	if err != nil {
		t.Fatalf("NewMapper failed with default config: %v", err)
	}
	return m
}

func TestNewMapperRejectsUnknownAction(t *testing.T) {
	cfg := config.InputConfig{
		Deadzone: 0.25,
		Bindings: map[string]config.Binding{
			"teleport": {Keys: []string{"T"}},
		},
	}
	if _, err := NewMapper(cfg); err == nil {
		t.Error("expected error for unknown action name")
	}
}

func TestNewMapperRejectsUnknownKey(t *testing.T) {
	cfg := config.InputConfig{
		Deadzone: 0.25,
		Bindings: map[string]config.Binding{
			"up": {Keys: []string{"NoSuchKey"}},
		},
	}
	if _, err := NewMapper(cfg); err == nil {
		t.Error("expected error for unknown key name")
	}
}

func TestKeyboardBindings(t *testing.T) {
	m := testMapper(t)

	// 方向键与 WASD 映射到同一组动作
	set := m.Actions(Snapshot{Keys: map[ebiten.Key]bool{ebiten.KeyW: true}})
	if !set.Has(ActionUp) {
		t.Error("W should map to up")
	}
	set = m.Actions(Snapshot{Keys: map[ebiten.Key]bool{ebiten.KeyArrowUp: true}})
	if !set.Has(ActionUp) {
		t.Error("ArrowUp should map to up")
	}

	set = m.Actions(Snapshot{Keys: map[ebiten.Key]bool{ebiten.KeySpace: true}})
	if !set.Has(ActionPrimary) || !set.Has(ActionConfirm) {
		t.Error("Space should map to both primary and confirm")
	}

	if set.Has(ActionDown) || set.Has(ActionCancel) {
		t.Error("unbound actions should not be active")
	}
}

func TestGamepadIgnoredWhenDisconnected(t *testing.T) {
	m := testMapper(t)

	snap := Snapshot{
		Buttons:          map[int]bool{0: true},
		AxisX:            1.0,
		GamepadConnected: false,
	}
	if set := m.Actions(snap); set != 0 {
		t.Errorf("disconnected gamepad should produce no actions, got %b", set)
	}

	// 手柄断开不影响键盘
	snap.Keys = map[ebiten.Key]bool{ebiten.KeyP: true}
	if set := m.Actions(snap); !set.Has(ActionPause) {
		t.Error("keyboard should still work with gamepad disconnected")
	}
}

func TestAxisDeadzone(t *testing.T) {
	m := testMapper(t)

	cases := []struct {
		x, y float64
		want []Action
		none []Action
	}{
		{x: 0.2, want: nil, none: []Action{ActionLeft, ActionRight}},  // 死区内
		{x: 0.3, want: []Action{ActionRight}, none: []Action{ActionLeft}},
		{x: -0.3, want: []Action{ActionLeft}, none: []Action{ActionRight}},
		{y: -0.5, want: []Action{ActionUp}, none: []Action{ActionDown}},
		{y: 0.5, want: []Action{ActionDown}, none: []Action{ActionUp}},
	}
	for _, tc := range cases {
		set := m.Actions(Snapshot{AxisX: tc.x, AxisY: tc.y, GamepadConnected: true})
		for _, a := range tc.want {
			if !set.Has(a) {
				t.Errorf("axis (%v, %v): action %d should be active", tc.x, tc.y, a)
			}
		}
		for _, a := range tc.none {
			if set.Has(a) {
				t.Errorf("axis (%v, %v): action %d should not be active", tc.x, tc.y, a)
			}
		}
	}
}

func TestJustPressedEdgeDetection(t *testing.T) {
	var prev, cur ActionSet
	cur.add(ActionConfirm)

	if !JustPressed(cur, prev, ActionConfirm) {
		t.Error("newly active action should be just-pressed")
	}
	// 持续按住不再触发
	if JustPressed(cur, cur, ActionConfirm) {
		t.Error("held action should not be just-pressed")
	}
	if JustPressed(prev, cur, ActionConfirm) {
		t.Error("released action should not be just-pressed")
	}
}

func TestMoveAxesDiagonalNormalization(t *testing.T) {
	var set ActionSet
	set.add(ActionRight)
	set.add(ActionDown)

	x, y := set.MoveAxes()
	if x != 0.707 || y != 0.707 {
		t.Errorf("diagonal = (%v, %v), want (0.707, 0.707)", x, y)
	}

	var single ActionSet
	single.add(ActionLeft)
	if x, y := single.MoveAxes(); x != -1 || y != 0 {
		t.Errorf("left = (%v, %v), want (-1, 0)", x, y)
	}

	// 相反方向抵消
	var both ActionSet
	both.add(ActionLeft)
	both.add(ActionRight)
	if x, _ := both.MoveAxes(); x != 0 {
		t.Errorf("opposing directions should cancel, got x=%v", x)
	}
}
