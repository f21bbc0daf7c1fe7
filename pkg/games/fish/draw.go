package fish

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hblok/max-blok-games/pkg/entity"
	"github.com/hblok/max-blok-games/pkg/utils"
)

// 海水背景色
var backgroundColor = color.RGBA{R: 0, G: 105, B: 148, A: 255}

// 玩家专属配色（青色，不在普通鱼的颜色表中）
var playerColor = color.RGBA{R: 0, G: 200, B: 200, A: 255}

var sharkColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}

// fishColors 普通鱼的颜色表（与 fishColorCount 对应）
var fishColors = [fishColorCount]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{255, 165, 0, 255},
	{128, 0, 128, 255},
	{0, 128, 0, 255},
	{70, 130, 180, 255},
	{255, 105, 180, 255},
}

// Draw 绘制实体与游戏内HUD到逻辑表面
func (e *Engine) Draw(surface *ebiten.Image) {
	surface.Fill(backgroundColor)

	for _, en := range e.world.Entities() {
		if !en.Alive {
			continue
		}
		switch en.Kind {
		case entity.KindParticle:
			drawBubble(surface, en)
		case entity.KindNPC:
			if en.Hostile {
				drawShark(surface, en)
			} else {
				drawFish(surface, en, fishColors[en.Variant], en.Vel.X > 0)
			}
		case entity.KindPlayer:
			drawFish(surface, en, playerColor, en.Variant == 1)
		}
	}

	utils.DrawText(surface, fmt.Sprintf("Score: %d", e.score), 10, 10, 18, color.White)
	utils.DrawText(surface, fmt.Sprintf("Size: %d", int(e.player.Size)), 10, 34, 18, color.White)
	utils.DrawText(surface, fmt.Sprintf("Level: %d", e.level), 10, 58, 18, color.White)
}

func drawBubble(dst *ebiten.Image, b *entity.Entity) {
	clr := color.RGBA{R: 255, G: 255, B: 255, A: 140}
	vector.StrokeCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Size), 1, clr, true)
}

// drawFish 身体圆 + 三角尾鳍 + 眼睛，朝向由速度/输入决定
func drawFish(dst *ebiten.Image, f *entity.Entity, clr color.RGBA, facingRight bool) {
	x := float32(f.Pos.X)
	y := float32(f.Pos.Y)
	r := float32(f.Size)

	vector.DrawFilledCircle(dst, x, y, r, clr, true)

	// 尾鳍在运动方向的反侧
	dir := float32(1)
	if facingRight {
		dir = -1
	}
	tailX := x + dir*r*1.5
	vector.StrokeLine(dst, x+dir*r, y, tailX, y-r/2, 2, clr, true)
	vector.StrokeLine(dst, x+dir*r, y, tailX, y+r/2, 2, clr, true)
	vector.StrokeLine(dst, tailX, y-r/2, tailX, y+r/2, 2, clr, true)

	eyeX := x - dir*r/2
	eyeY := y - r/4
	eyeR := r / 5
	if eyeR < 2 {
		eyeR = 2
	}
	vector.DrawFilledCircle(dst, eyeX, eyeY, eyeR, color.White, true)
	vector.DrawFilledCircle(dst, eyeX, eyeY, eyeR/2, color.Black, true)
}

func drawShark(dst *ebiten.Image, s *entity.Entity) {
	drawFish(dst, s, sharkColor, s.Vel.X > 0)

	// 背鳍
	x := float32(s.Pos.X)
	y := float32(s.Pos.Y)
	r := float32(s.Size)
	vector.StrokeLine(dst, x, y-r/2, x, y-r, 2, sharkColor, true)
	vector.StrokeLine(dst, x, y-r, x+r/2, y-r/2, 2, sharkColor, true)
}
