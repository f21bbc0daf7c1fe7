// Package app 提供游戏应用的核心包装器
//
// 该包将启动器初始化逻辑从 main 包提取出来，使其可以被桌面端和
// 移动端共用。桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/hblok/max-blok-games/internal/sfx"
	"github.com/hblok/max-blok-games/pkg/config"
	"github.com/hblok/max-blok-games/pkg/display"
	"github.com/hblok/max-blok-games/pkg/embedded"
	"github.com/hblok/max-blok-games/pkg/game"
	"github.com/hblok/max-blok-games/pkg/games"
	"github.com/hblok/max-blok-games/pkg/input"
	"github.com/hblok/max-blok-games/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 指定直接启动的游戏ID，为空则进入启动器菜单
	Game string
	// Seed 非零时固定每局随机种子（可复现对局）
	Seed int64
}

// App 是启动器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	adapter      *display.Adapter
	settings     *game.SettingsManager
	displayCfg   config.DisplayConfig
	deltaTime    float64
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化启动器应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(appCfg Config) (*App, error) {
	// 配置日志输出
	if !appCfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载框架配置（显示 + 输入绑定）
	data, err := embedded.ReadFile("data/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	cfg, err := config.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	mapper, err := input.NewMapper(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to build input mapper: %w", err)
	}

	adapter := display.NewAdapter(cfg.Display)

	// 跨平台存档：打开失败进入降级模式（设置和最高分仅保留在内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "max-blok-games"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	scoreManager := game.NewScoreManager(gdataManager)

	// 初始化音频：注册程序生成的全部音效
	audioContext := audio.NewContext(sfx.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	for soundID, pcm := range sfx.All() {
		audioManager.Register(soundID, pcm)
	}
	log.Printf("[App] AudioManager initialized with %d sounds", len(sfx.All()))

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	deps := &scenes.Deps{
		Scenes:   sceneManager,
		Settings: settingsManager,
		Scores:   scoreManager,
		Audio:    audioManager,
		Mapper:   mapper,
		Width:    cfg.Display.Width,
		Height:   cfg.Display.Height,
		Seed:     appCfg.Seed,
	}
	sceneManager.SetSceneFactory(func(gameID string) game.Scene {
		sc := scenes.NewGameScene(deps, gameID)
		if sc == nil {
			return nil
		}
		return sc
	})

	// 确定启动场景
	if appCfg.Game != "" {
		if _, ok := games.Lookup(appCfg.Game); !ok {
			return nil, fmt.Errorf("unknown game %q", appCfg.Game)
		}
		log.Printf("[App] Launching game directly: %s", appCfg.Game)
		sceneManager.LaunchGame(appCfg.Game)
	} else {
		sceneManager.SwitchTo(scenes.NewMenuScene(deps))
	}

	return &App{
		sceneManager: sceneManager,
		adapter:      adapter,
		settings:     settingsManager,
		displayCfg:   cfg.Display,
		deltaTime:    1.0 / float64(cfg.Display.TPS),
		verbose:      appCfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，时间步长固定为 1/TPS 秒
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.displayCfg.Width, a.displayCfg.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.displayCfg.Width, a.displayCfg.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := !a.settings.Get().SoundEnabled
		a.settings.SetSoundEnabled(enabled)
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	a.sceneManager.Update(a.deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 场景绘制到固定分辨率的逻辑表面，再由适配器缩放上屏
func (a *App) Draw(screen *ebiten.Image) {
	frame := a.adapter.Frame()
	a.sceneManager.Draw(frame)
	a.adapter.Present(screen)
}

// Layout 返回实际窗口尺寸
// 缩放和黑边由 display.Adapter 自行处理，不依赖 Ebitengine 的缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// DisplayConfig 返回显示配置（main 设置窗口用）
func (a *App) DisplayConfig() config.DisplayConfig {
	return a.displayCfg
}

// Settings 返回全局设置（main 决定是否全屏启动用）
func (a *App) Settings() *game.Settings {
	return a.settings.Get()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
