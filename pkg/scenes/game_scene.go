package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/games"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/pkg/utils"
)

var (
	overlayColor     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	overlayTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlayWinColor  = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	overlayLoseColor = color.RGBA{R: 255, G: 110, B: 110, A: 255}
)

// GameScene 运行单个游戏的一局
//
// 持有会话状态机（Start/Playing/Paused/GameOver/Win）和规则引擎。
// 每 tick 轮询一次输入并按状态分发：
//   - Start 下确认进入 Playing
//   - Playing 下推进规则引擎一个固定时间步
//   - 终局后确认重新开始（从头重建，无继承），取消回到菜单
type GameScene struct {
	deps    *Deps
	info    games.Info
	session *game.Session
	engine  game.Rules

	prevActions input.ActionSet
	newHigh     bool
	finalScore  int
}

// NewGameScene 创建指定游戏的场景
// 规则引擎创建失败时返回 nil（调用方回落到菜单）
func NewGameScene(deps *Deps, gameID string) *GameScene {
	info, ok := games.Lookup(gameID)
	if !ok {
		log.Printf("[GameScene] Unknown game: %s", gameID)
		return nil
	}

	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := games.NewEngine(gameID, games.Deps{
		Width:   deps.Width,
		Height:  deps.Height,
		Rng:     rand.New(rand.NewSource(seed)),
		Sounder: deps.sounder(),
	})
	if err != nil {
		log.Printf("[GameScene] Failed to create engine for %s: %v", gameID, err)
		return nil
	}

	log.Printf("[GameScene] Starting %s (seed=%d)", gameID, seed)
	return &GameScene{
		deps:    deps,
		info:    info,
		session: game.NewSession(),
		engine:  engine,
	}
}

// Update 推进一个固定时间步
func (s *GameScene) Update(deltaTime float64) {
	actions := s.deps.Mapper.Actions(input.Poll())
	defer func() { s.prevActions = actions }()

	confirm := input.JustPressed(actions, s.prevActions, input.ActionConfirm)
	pause := input.JustPressed(actions, s.prevActions, input.ActionPause)
	cancel := input.JustPressed(actions, s.prevActions, input.ActionCancel)

	switch s.session.State() {
	case game.StateStart:
		if cancel {
			s.backToMenu()
			return
		}
		if confirm {
			s.session.Begin()
		}

	case game.StatePlaying:
		if cancel {
			s.backToMenu()
			return
		}
		if pause {
			s.session.TogglePause()
			return
		}
		s.engine.Update(deltaTime, actions)
		s.session.Advance(deltaTime)
		s.session.RaiseTier(s.engine.Tier())
		if outcome := s.engine.Outcome(); outcome != game.OutcomeNone {
			s.session.Finish(outcome)
			s.finalScore = s.engine.Score()
			s.newHigh = s.deps.Scores.Record(s.info.ID, s.finalScore)
			log.Printf("[GameScene] %s finished: state=%s score=%d newHigh=%v",
				s.info.ID, s.session.State(), s.finalScore, s.newHigh)
		}

	case game.StatePaused:
		if pause || confirm {
			s.session.TogglePause()
		}
		if cancel {
			s.backToMenu()
		}

	case game.StateGameOver, game.StateWin:
		if cancel {
			s.backToMenu()
			return
		}
		if confirm {
			s.restart()
		}
	}
}

// restart 从头重建一局：状态机回到 Start，规则引擎完全重置
func (s *GameScene) restart() {
	s.session.Restart()
	s.engine.Reset()
	s.newHigh = false
	s.finalScore = 0
}

func (s *GameScene) backToMenu() {
	s.deps.Scenes.SwitchTo(NewMenuScene(s.deps))
}

// Draw 绘制游戏画面与状态遮罩
func (s *GameScene) Draw(surface *ebiten.Image) {
	s.engine.Draw(surface)

	cx := float64(s.deps.Width) / 2
	cy := float64(s.deps.Height) / 2

	switch s.session.State() {
	case game.StateStart:
		s.drawOverlay(surface)
		utils.DrawTextCentered(surface, s.info.Title, cx, cy-60, 28, overlayTextColor)
		utils.DrawTextCentered(surface, s.info.Tagline, cx, cy-20, 16, overlayTextColor)
		utils.DrawTextCentered(surface, "Press Enter to start", cx, cy+30, 18, overlayTextColor)

	case game.StatePaused:
		s.drawOverlay(surface)
		utils.DrawTextCentered(surface, "PAUSED", cx, cy-20, 28, overlayTextColor)
		utils.DrawTextCentered(surface, "P: resume   Esc: menu", cx, cy+20, 16, overlayTextColor)

	case game.StateGameOver:
		s.drawOverlay(surface)
		utils.DrawTextCentered(surface, "GAME OVER", cx, cy-60, 28, overlayLoseColor)
		s.drawFinalScore(surface, cx, cy)

	case game.StateWin:
		s.drawOverlay(surface)
		utils.DrawTextCentered(surface, "YOU WIN!", cx, cy-60, 28, overlayWinColor)
		s.drawFinalScore(surface, cx, cy)
	}
}

func (s *GameScene) drawOverlay(surface *ebiten.Image) {
	vector.DrawFilledRect(surface, 0, 0, float32(s.deps.Width), float32(s.deps.Height), overlayColor, false)
}

func (s *GameScene) drawFinalScore(surface *ebiten.Image, cx, cy float64) {
	utils.DrawTextCentered(surface, fmt.Sprintf("Score: %d", s.finalScore), cx, cy-15, 20, overlayTextColor)
	if s.newHigh {
		utils.DrawTextCentered(surface, "New high score!", cx, cy+15, 16, overlayWinColor)
	} else if high := s.deps.Scores.HighScore(s.info.ID); high > 0 {
		utils.DrawTextCentered(surface, fmt.Sprintf("Best: %d", high), cx, cy+15, 16, overlayTextColor)
	}
	utils.DrawTextCentered(surface, "Enter: play again   Esc: menu", cx, cy+55, 14, overlayTextColor)
}
