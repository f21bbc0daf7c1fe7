package fighter

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/utils"
)

var (
	spaceColor  = color.RGBA{R: 5, G: 5, B: 20, A: 255}
	shipColor   = color.RGBA{R: 0, G: 255, B: 200, A: 255}
	bulletColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

var enemyColors = []color.RGBA{
	{255, 80, 80, 255},
	{255, 140, 0, 255},
	{200, 80, 255, 255},
}

// Draw 绘制实体与游戏内HUD到逻辑表面
func (e *Engine) Draw(surface *ebiten.Image) {
	surface.Fill(spaceColor)

	for _, en := range e.world.Entities() {
		if !en.Alive {
			continue
		}
		switch en.Kind {
		case entity.KindProjectile:
			vector.DrawFilledCircle(surface, float32(en.Pos.X), float32(en.Pos.Y), float32(en.Size), bulletColor, true)
		case entity.KindNPC:
			clr := enemyColors[en.Variant%len(enemyColors)]
			vector.StrokeCircle(surface, float32(en.Pos.X), float32(en.Pos.Y), float32(en.Size), 2, clr, true)
		case entity.KindPlayer:
			drawShip(surface, en)
		}
	}

	utils.DrawText(surface, fmt.Sprintf("Score: %d / %d", e.score, e.cfg.WinScore), 10, 10, 18, color.White)
}

// drawShip 三角形船体，顶点指向当前朝向
func drawShip(dst *ebiten.Image, p *entity.Entity) {
	r := p.Size
	nose := shipPoint(p, r*1.2, 0)
	left := shipPoint(p, r, math.Pi*3/4)
	right := shipPoint(p, r, -math.Pi*3/4)

	vector.StrokeLine(dst, nose[0], nose[1], left[0], left[1], 2, shipColor, true)
	vector.StrokeLine(dst, left[0], left[1], right[0], right[1], 2, shipColor, true)
	vector.StrokeLine(dst, right[0], right[1], nose[0], nose[1], 2, shipColor, true)
}

func shipPoint(p *entity.Entity, dist, offset float64) [2]float32 {
	a := p.Angle + offset
	return [2]float32{
		float32(p.Pos.X + math.Cos(a)*dist),
		float32(p.Pos.Y + math.Sin(a)*dist),
	}
}
