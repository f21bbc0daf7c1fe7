package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hblok/max-blok-games/pkg/games"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/pkg/utils"
)

var (
	menuBackgroundColor = color.RGBA{R: 20, G: 24, B: 40, A: 255}
	menuTitleColor      = color.RGBA{R: 255, G: 220, B: 100, A: 255}
	menuSelectedColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	menuDimColor        = color.RGBA{R: 140, G: 150, B: 170, A: 255}
)

// MenuScene 启动器主菜单
// 上下选择游戏，确认启动；每个条目旁显示历史最高分
type MenuScene struct {
	deps     *Deps
	entries  []games.Info
	selected int

	prevActions input.ActionSet
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(deps *Deps) *MenuScene {
	return &MenuScene{
		deps:    deps,
		entries: games.List(),
	}
}

// Update 处理菜单导航
func (s *MenuScene) Update(deltaTime float64) {
	actions := s.deps.Mapper.Actions(input.Poll())
	defer func() { s.prevActions = actions }()

	if len(s.entries) == 0 {
		return
	}

	if input.JustPressed(actions, s.prevActions, input.ActionDown) {
		s.selected = (s.selected + 1) % len(s.entries)
	}
	if input.JustPressed(actions, s.prevActions, input.ActionUp) {
		s.selected = (s.selected + len(s.entries) - 1) % len(s.entries)
	}
	if input.JustPressed(actions, s.prevActions, input.ActionConfirm) ||
		input.JustPressed(actions, s.prevActions, input.ActionPrimary) {
		s.deps.Scenes.LaunchGame(s.entries[s.selected].ID)
	}
}

// Draw 绘制菜单列表
func (s *MenuScene) Draw(surface *ebiten.Image) {
	surface.Fill(menuBackgroundColor)

	cx := float64(s.deps.Width) / 2
	utils.DrawTextCentered(surface, "MAX BLOK GAMES", cx, 60, 32, menuTitleColor)

	y := 140.0
	for i, entry := range s.entries {
		clr := menuDimColor
		label := entry.Title
		if i == s.selected {
			clr = menuSelectedColor
			label = "> " + label + " <"
		}
		utils.DrawTextCentered(surface, label, cx, y, 22, clr)

		if high := s.deps.Scores.HighScore(entry.ID); high > 0 {
			utils.DrawTextCentered(surface, fmt.Sprintf("best %d", high), cx, y+24, 14, menuDimColor)
		}
		y += 64
	}

	if len(s.entries) > 0 {
		utils.DrawTextCentered(surface, s.entries[s.selected].Tagline, cx, float64(s.deps.Height)-70, 16, menuDimColor)
	}
	utils.DrawTextCentered(surface, "Up/Down: select   Enter: play", cx, float64(s.deps.Height)-40, 14, menuDimColor)
}
