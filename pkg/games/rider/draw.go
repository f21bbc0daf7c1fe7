package rider

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/utils"
)

var (
	skyColor    = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	groundColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	riderColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	wheelColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// obstacleColors 与配置中的障碍种类按序对应，超出部分循环使用
var obstacleColors = []color.RGBA{
	{128, 128, 128, 255}, // 岩石
	{0, 128, 0, 255},     // 灌木
	{139, 90, 43, 255},   // 圆木
}

// Draw 绘制实体与游戏内HUD到逻辑表面
func (e *Engine) Draw(surface *ebiten.Image) {
	surface.Fill(skyColor)

	// 地面
	groundY := float32(e.cfg.GroundY)
	vector.DrawFilledRect(surface, 0, groundY, float32(e.width), float32(e.height)-groundY, groundColor, false)

	for _, en := range e.world.Entities() {
		if !en.Alive {
			continue
		}
		switch en.Kind {
		case entity.KindObstacle:
			clr := obstacleColors[en.Variant%len(obstacleColors)]
			vector.DrawFilledCircle(surface, float32(en.Pos.X), float32(en.Pos.Y), float32(en.Size), clr, true)
		case entity.KindPlayer:
			drawRider(surface, en)
		}
	}

	utils.DrawText(surface, fmt.Sprintf("Score: %d", e.Score()), 10, 10, 18, color.White)
	utils.DrawText(surface, fmt.Sprintf("Distance: %dm", int(e.distance/10)), 10, 34, 18, color.White)

	// 通关进度条
	progress := utils.Clamp(e.distance/e.cfg.FinishDistance, 0, 1)
	barW := e.width - 20
	vector.StrokeRect(surface, 10, float32(e.height)-20, float32(barW), 8, 1, color.White, false)
	vector.DrawFilledRect(surface, 10, float32(e.height)-20, float32(barW*progress), 8, color.RGBA{0, 200, 0, 255}, false)
}

// drawRider 车身 + 两个车轮 + 骑手头部
func drawRider(dst *ebiten.Image, p *entity.Entity) {
	x := float32(p.Pos.X)
	y := float32(p.Pos.Y)
	r := float32(p.Size)

	vector.DrawFilledCircle(dst, x-r*0.7, y+r*0.6, r*0.45, wheelColor, true)
	vector.DrawFilledCircle(dst, x+r*0.7, y+r*0.6, r*0.45, wheelColor, true)
	vector.DrawFilledRect(dst, x-r*0.8, y-r*0.2, r*1.6, r*0.6, riderColor, true)
	vector.DrawFilledCircle(dst, x, y-r*0.7, r*0.4, riderColor, true)
}
