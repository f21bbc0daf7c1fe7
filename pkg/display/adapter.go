// Package display 提供固定逻辑分辨率的显示适配
//
// 游戏每帧绘制到固定尺寸的逻辑表面（默认 640x480），
// 适配器再把逻辑表面保持纵横比地缩放到物理屏幕上，
// 纵横比不一致时两侧留黑边；可选限制为整数倍缩放，
// 避免掌机屏幕上的像素抖动。
package display

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hblok/max-blok-games/pkg/config"
)

// Adapter 显示适配器
type Adapter struct {
	logical        *ebiten.Image
	width, height  int
	integerScaling bool
}

// NewAdapter 按显示配置创建适配器并分配逻辑表面
func NewAdapter(cfg config.DisplayConfig) *Adapter {
	return &Adapter{
		logical:        ebiten.NewImage(cfg.Width, cfg.Height),
		width:          cfg.Width,
		height:         cfg.Height,
		integerScaling: cfg.IntegerScaling,
	}
}

// Size 返回逻辑分辨率
func (a *Adapter) Size() (int, int) {
	return a.width, a.height
}

// Frame 返回清空后的逻辑表面，供本帧绘制使用
func (a *Adapter) Frame() *ebiten.Image {
	a.logical.Clear()
	return a.logical
}

// Present 把逻辑表面缩放绘制到物理屏幕
// 黑边先行填充，再按计算出的缩放与偏移贴图
func (a *Adapter) Present(screen *ebiten.Image) {
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	scale, ox, oy := a.layout(sw, sh)

	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.logical, op)
}

// layout 计算缩放系数和居中偏移
//
// 缩放取宽高两个方向的较小值以保持纵横比；
// 整数倍模式下且放大倍数 >= 1 时向下取整（缩小时保持分数倍，
// 否则画面会放不下）。
func (a *Adapter) layout(screenW, screenH int) (scale, ox, oy float64) {
	scale = math.Min(
		float64(screenW)/float64(a.width),
		float64(screenH)/float64(a.height),
	)
	if a.integerScaling && scale >= 1 {
		scale = math.Floor(scale)
	}
	ox = (float64(screenW) - float64(a.width)*scale) / 2
	oy = (float64(screenH) - float64(a.height)*scale) / 2
	return scale, ox, oy
}
