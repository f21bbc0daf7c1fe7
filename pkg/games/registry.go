// Package games 汇总本仓库的所有游戏
//
// 每个游戏是一个实现 game.Rules 的规则引擎子包，
// 调参从嵌入的 data/games/<id>.yaml 加载。
// 启动器菜单和 CLI 都通过本包的注册表枚举/创建游戏。
package games

import (
	"fmt"
	"math/rand"

	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/embedded"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/games/fighter"
	"github.com/hblok/max-blok-games/pkg/games/fish"
	"github.com/hblok/max-blok-games/pkg/games/rider"
)

// Info 游戏元数据（启动器菜单显示用）
type Info struct {
	ID      string // 游戏标识（注册表键、最高分记录键）
	Title   string // 显示名称
	Tagline string // 一句话玩法说明
}

// Deps 创建规则引擎所需的依赖
type Deps struct {
	Width, Height int        // 逻辑分辨率
	Rng           *rand.Rand // 注入的随机源（决定一局的可复现性）
	Sounder       game.Sounder
}

// registry 按菜单顺序排列
var registry = []Info{
	{ID: fish.ID, Title: "Fish Feeding Frenzy", Tagline: "Eat smaller fish, avoid the shark"},
	{ID: rider.ID, Title: "Dog Rider", Tagline: "Jump the obstacles, reach the finish"},
	{ID: fighter.ID, Title: "Starfighter", Tagline: "Thrust, shoot, survive"},
}

// List 返回全部游戏的元数据（菜单顺序）
func List() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Lookup 按ID查找游戏元数据
func Lookup(id string) (Info, bool) {
	for _, info := range registry {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// NewEngine 创建指定游戏的规则引擎
// 调参加载或校验失败返回错误（配置错误不进入游戏循环）
func NewEngine(id string, deps Deps) (game.Rules, error) {
	data, err := embedded.ReadFile(fmt.Sprintf("data/games/%s.yaml", id))
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning for game %q: %w", id, err)
	}

	switch id {
	case fish.ID:
		cfg, err := config.ParseFishConfig(data)
		if err != nil {
			return nil, err
		}
		return fish.New(cfg, deps.Width, deps.Height, deps.Rng, deps.Sounder), nil
	case rider.ID:
		cfg, err := config.ParseRiderConfig(data)
		if err != nil {
			return nil, err
		}
		return rider.New(cfg, deps.Width, deps.Height, deps.Rng, deps.Sounder), nil
	case fighter.ID:
		cfg, err := config.ParseFighterConfig(data)
		if err != nil {
			return nil, err
		}
		return fighter.New(cfg, deps.Width, deps.Height, deps.Rng, deps.Sounder), nil
	}
	return nil, fmt.Errorf("unknown game %q", id)
}
