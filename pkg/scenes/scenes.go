// Package scenes 实现启动器菜单场景和游戏场景
//
// 场景是顶层状态：同一时刻只有一个场景在运行（由 game.SceneManager
// 调度）。菜单场景负责选游戏，游戏场景持有一局会话的状态机和
// 规则引擎。
package scenes

import (
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/input"
)

// Deps 场景共享的依赖集合
// 由 app 在启动时构建，随场景切换传递
type Deps struct {
	Scenes   *game.SceneManager
	Settings *game.SettingsManager
	Scores   *game.ScoreManager
	Audio    *game.AudioManager
	Mapper   *input.Mapper

	// Width/Height 逻辑分辨率（场景绘制坐标系）
	Width, Height int

	// Seed 非零时作为每局随机源的种子（可复现对局）
	// 为零时每局用时钟播种
	Seed int64
}

// sounder 返回注入规则引擎的音效回调
// 音频不可用时落回空实现
func (d *Deps) sounder() game.Sounder {
	if d.Audio == nil {
		return game.NopSounder{}
	}
	return d.Audio
}
