// maxblok is a launcher for a small collection of 2D arcade games.
//
// Usage:
//
//	maxblok                  - Start the launcher menu
//	maxblok list             - List available games
//	maxblok play <game>      - Play a game directly
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--fullscreen    - Force fullscreen on
//	--windowed      - Force windowed mode
//	--verbose       - Enable verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/hblok/max-blok-games/pkg/app"
	"github.com/hblok/max-blok-games/pkg/embedded"
	"github.com/hblok/max-blok-games/pkg/games"
)

var (
	flagSeed       int64
	flagFullscreen bool
	flagWindowed   bool
	flagVerbose    bool
)

func main() {
	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maxblok",
	Short: "Max Blok Games - a small collection of 2D arcade games",
	Long: `Max Blok Games is a launcher for a small collection of 2D arcade games:
eat smaller fish while dodging the shark, jump obstacles on a bike,
or fight off enemy ships in space.

Examples:
  maxblok
  maxblok list
  maxblok play fish
  maxblok play fighter --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range games.List() {
			fmt.Printf("%-10s %s - %s\n", info.ID, info.Title, info.Tagline)
		}
	},
}

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game directly, skipping the menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagFullscreen, "fullscreen", false, "Force fullscreen on")
	rootCmd.PersistentFlags().BoolVar(&flagWindowed, "windowed", false, "Force windowed mode")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

// run 构建应用并进入游戏循环
// gameID 为空时从启动器菜单开始
func run(gameID string) error {
	a, err := app.NewApp(app.Config{
		Verbose: flagVerbose,
		Game:    gameID,
		Seed:    flagSeed,
	})
	if err != nil {
		return err
	}

	display := a.DisplayConfig()
	ebiten.SetWindowSize(display.Width, display.Height)
	ebiten.SetWindowTitle("Max Blok Games")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(display.TPS)

	// 命令行开关优先于配置和存档里的全屏设置
	fullscreen := display.Fullscreen || a.Settings().Fullscreen
	if flagFullscreen {
		fullscreen = true
	}
	if flagWindowed {
		fullscreen = false
	}
	ebiten.SetFullscreen(fullscreen)

	return ebiten.RunGame(a)
}
