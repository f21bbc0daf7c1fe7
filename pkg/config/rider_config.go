package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RiderObstacle 单种障碍物的参数
type RiderObstacle struct {
	Name string  `yaml:"name"` // 障碍物名称（仅用于日志/渲染选择）
	Size float64 `yaml:"size"` // 碰撞半径
}

// RiderConfig 横版骑行障碍游戏（rider）的全部调参
type RiderConfig struct {
	PlayerSize float64 `yaml:"playerSize"` // 骑手碰撞半径
	PlayerX    float64 `yaml:"playerX"`    // 骑手固定水平位置
	GroundY    float64 `yaml:"groundY"`    // 地面高度（逻辑坐标）
	Gravity    float64 `yaml:"gravity"`    // 重力加速度（像素/秒²）
	JumpSpeed  float64 `yaml:"jumpSpeed"`  // 起跳初速度（像素/秒，向上）

	BaseSpeed     float64   `yaml:"baseSpeed"`     // 初始卷轴速度（像素/秒）
	SpeedPerTier  float64   `yaml:"speedPerTier"`  // 每档位增加的速度
	TierDistances []float64 `yaml:"tierDistances"` // 难度档位的里程阈值（递增）

	SpawnGapMin    float64 `yaml:"spawnGapMin"`    // 相邻障碍最小间距（像素）
	SpawnGapMax    float64 `yaml:"spawnGapMax"`    // 相邻障碍最大间距
	MaxObstacles   int     `yaml:"maxObstacles"`   // 同屏障碍上限
	FinishDistance float64 `yaml:"finishDistance"` // 通关里程
	ScoreDivisor   float64 `yaml:"scoreDivisor"`   // 里程换算分数的除数

	Obstacles []RiderObstacle `yaml:"obstacles"` // 障碍物种类表，至少一种
}

// ParseRiderConfig 从 YAML 字节解析并校验 rider 调参
func ParseRiderConfig(data []byte) (*RiderConfig, error) {
	var cfg RiderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rider config YAML: %w", err)
	}
	if err := validateRiderConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid rider config: %w", err)
	}
	return &cfg, nil
}

// LoadRiderConfig 从文件加载 rider 调参
func LoadRiderConfig(path string) (*RiderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rider config file %s: %w", path, err)
	}
	return ParseRiderConfig(data)
}

func validateRiderConfig(cfg *RiderConfig) error {
	if cfg.PlayerSize <= 0 {
		return fmt.Errorf("playerSize must be positive, got %v", cfg.PlayerSize)
	}
	if cfg.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", cfg.Gravity)
	}
	if cfg.JumpSpeed <= 0 {
		return fmt.Errorf("jumpSpeed must be positive, got %v", cfg.JumpSpeed)
	}
	if cfg.BaseSpeed <= 0 {
		return fmt.Errorf("baseSpeed must be positive, got %v", cfg.BaseSpeed)
	}
	if cfg.SpeedPerTier < 0 {
		return fmt.Errorf("speedPerTier must be >= 0, got %v", cfg.SpeedPerTier)
	}
	prev := 0.0
	for i, d := range cfg.TierDistances {
		if d <= prev {
			return fmt.Errorf("tierDistances must be strictly increasing, got %v at index %d", d, i)
		}
		prev = d
	}
	if cfg.SpawnGapMin <= 0 || cfg.SpawnGapMax < cfg.SpawnGapMin {
		return fmt.Errorf("spawn gap range invalid: [%v, %v]", cfg.SpawnGapMin, cfg.SpawnGapMax)
	}
	if cfg.MaxObstacles <= 0 {
		return fmt.Errorf("maxObstacles must be positive, got %d", cfg.MaxObstacles)
	}
	if cfg.FinishDistance <= 0 {
		return fmt.Errorf("finishDistance must be positive, got %v", cfg.FinishDistance)
	}
	if cfg.ScoreDivisor <= 0 {
		return fmt.Errorf("scoreDivisor must be positive, got %v", cfg.ScoreDivisor)
	}
	if len(cfg.Obstacles) == 0 {
		return fmt.Errorf("obstacles cannot be empty")
	}
	for i, ob := range cfg.Obstacles {
		if ob.Size <= 0 {
			return fmt.Errorf("obstacle %d (%s): size must be positive, got %v", i, ob.Name, ob.Size)
		}
	}
	return nil
}

// TierFor 根据已行驶里程计算难度档位（从 0 开始，单调不减）
func (c *RiderConfig) TierFor(distance float64) int {
	tier := 0
	for _, th := range c.TierDistances {
		if distance >= th {
			tier++
		}
	}
	return tier
}
