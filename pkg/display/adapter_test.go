package display

import "testing"

// layout 是纯函数，直接构造 Adapter 测试（不分配 GPU 图像）
func testAdapter(integerScaling bool) *Adapter {
	return &Adapter{width: 640, height: 480, integerScaling: integerScaling}
}

func TestLayoutExactMultiple(t *testing.T) {
	a := testAdapter(true)
	scale, ox, oy := a.layout(1280, 960)
	if scale != 2 || ox != 0 || oy != 0 {
		t.Errorf("layout(1280, 960) = (%v, %v, %v), want (2, 0, 0)", scale, ox, oy)
	}
}

func TestLayoutIntegerScalingFloors(t *testing.T) {
	a := testAdapter(true)
	// min(1920/640, 1080/480) = 2.25，整数倍模式下取 2
	scale, ox, oy := a.layout(1920, 1080)
	if scale != 2 {
		t.Fatalf("scale = %v, want 2", scale)
	}
	if ox != 320 || oy != 60 {
		t.Errorf("offsets = (%v, %v), want (320, 60) for centered image", ox, oy)
	}
}

func TestLayoutFractionalScaling(t *testing.T) {
	a := testAdapter(false)
	scale, ox, oy := a.layout(1920, 1080)
	if scale != 2.25 {
		t.Fatalf("scale = %v, want 2.25", scale)
	}
	// 640*2.25 = 1440，水平居中；480*2.25 = 1080，垂直铺满
	if ox != 240 || oy != 0 {
		t.Errorf("offsets = (%v, %v), want (240, 0)", ox, oy)
	}
}

func TestLayoutKeepsAspectRatioOnWideScreen(t *testing.T) {
	a := testAdapter(false)
	// 超宽屏：高度是限制方向，两侧留黑边
	scale, ox, oy := a.layout(2560, 480)
	if scale != 1 {
		t.Fatalf("scale = %v, want 1", scale)
	}
	if ox != 960 || oy != 0 {
		t.Errorf("offsets = (%v, %v), want (960, 0)", ox, oy)
	}
}

func TestLayoutDownscaleIgnoresIntegerMode(t *testing.T) {
	a := testAdapter(true)
	// 缩小时保持分数倍，向下取整会变成 0
	scale, _, _ := a.layout(320, 240)
	if scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", scale)
	}
}
