// Package config 提供全部可调配置的加载与校验
//
// 所有常量（分辨率、物理参数、生成表、按键映射）都是数据，
// 启动时从 YAML 加载一次，校验通过后以不可变值传给需要的组件。
// 越界取值（负尺寸、死区超出范围等）属于配置错误，在加载阶段拒绝，
// 不进入游戏循环。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DisplayConfig 显示配置
type DisplayConfig struct {
	Width          int  `yaml:"width"`          // 逻辑分辨率宽度
	Height         int  `yaml:"height"`         // 逻辑分辨率高度
	Fullscreen     bool `yaml:"fullscreen"`     // 启动时是否全屏
	IntegerScaling bool `yaml:"integerScaling"` // 是否限制为整数倍缩放
	TPS            int  `yaml:"tps"`            // 固定时间步频率（每秒 tick 数）
}

// Binding 单个逻辑动作的物理绑定
type Binding struct {
	Keys    []string `yaml:"keys"`    // 键盘按键名列表，如 ["Up", "W"]
	Buttons []int    `yaml:"buttons"` // 手柄按钮序号列表
}

// InputConfig 输入配置
type InputConfig struct {
	Deadzone float64            `yaml:"deadzone"` // 摇杆死区 0.0 ~ 1.0
	Bindings map[string]Binding `yaml:"bindings"` // 动作名 -> 物理绑定
}

// Config 框架级配置（显示 + 输入）
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
}

// DefaultConfig 返回默认框架配置
// 逻辑分辨率与原作掌机版一致（640x480），死区 0.25
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:          640,
			Height:         480,
			Fullscreen:     false,
			IntegerScaling: true,
			TPS:            60,
		},
		Input: InputConfig{
			Deadzone: 0.25,
			Bindings: map[string]Binding{
				"up":        {Keys: []string{"Up", "W"}, Buttons: []int{11}},
				"down":      {Keys: []string{"Down", "S"}, Buttons: []int{13}},
				"left":      {Keys: []string{"Left", "A"}, Buttons: []int{14}},
				"right":     {Keys: []string{"Right", "D"}, Buttons: []int{12}},
				"primary":   {Keys: []string{"Space"}, Buttons: []int{0}},
				"secondary": {Keys: []string{"X"}, Buttons: []int{2}},
				"pause":     {Keys: []string{"P", "Escape"}, Buttons: []int{9}},
				"confirm":   {Keys: []string{"Enter", "Space", "R"}, Buttons: []int{0, 9}},
				"cancel":    {Keys: []string{"Q", "Backspace"}, Buttons: []int{1}},
			},
		},
	}
}

// ParseConfig 从 YAML 字节解析并校验框架配置
// 未给出的字段落回默认值
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig 从文件加载框架配置（--config 覆盖时使用）
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

func validateConfig(cfg *Config) error {
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return fmt.Errorf("display resolution must be positive, got %dx%d",
			cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Display.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", cfg.Display.TPS)
	}
	if cfg.Input.Deadzone < 0 || cfg.Input.Deadzone > 1 {
		return fmt.Errorf("deadzone must be in [0, 1], got %v", cfg.Input.Deadzone)
	}
	for action, b := range cfg.Input.Bindings {
		for _, btn := range b.Buttons {
			if btn < 0 {
				return fmt.Errorf("button index for action %q must be >= 0, got %d", action, btn)
			}
		}
	}
	return nil
}
