package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FishTier 成长游戏单个难度档位的生成规则
// 档位由玩家当前等级决定，随等级单调提升
type FishTier struct {
	SpawnChance float64 `yaml:"spawnChance"` // 每 tick 生成新鱼的概率 0.0 ~ 1.0
	MaxNPC      int     `yaml:"maxNpc"`      // 同时存在的鱼数量上限（达到后抑制生成）
	SizeMin     float64 `yaml:"sizeMin"`     // 生成尺寸下界
	SizeMax     float64 `yaml:"sizeMax"`     // 生成尺寸上界
	SmallBias   float64 `yaml:"smallBias"`   // 偏向小鱼的概率（原作 0.7）
	SmallMax    float64 `yaml:"smallMax"`    // 小鱼子区间的上界
}

// FishConfig 成长生存游戏（fish）的全部调参
type FishConfig struct {
	PlayerSize      float64   `yaml:"playerSize"`      // 玩家初始尺寸
	PlayerSpeed     float64   `yaml:"playerSpeed"`     // 玩家速度（逻辑像素/秒）
	GrowthFraction  float64   `yaml:"growthFraction"`  // 吞食后按被吞尺寸的比例成长
	CollisionFactor float64   `yaml:"collisionFactor"` // 圆形碰撞宽容系数
	LevelThresholds []float64 `yaml:"levelThresholds"` // 升级尺寸阈值（递增）

	SharkSize       float64 `yaml:"sharkSize"`       // 顶级掠食者尺寸
	SharkSpeed      float64 `yaml:"sharkSpeed"`      // 顶级掠食者水平速度
	SharkAggression float64 `yaml:"sharkAggression"` // 追踪玩家的激进程度 0.0 ~ 1.0

	FishSpeedMin float64 `yaml:"fishSpeedMin"` // NPC鱼速度下界
	FishSpeedMax float64 `yaml:"fishSpeedMax"` // NPC鱼速度上界
	InitialFish  int     `yaml:"initialFish"`  // 开局生成的鱼数量
	BubbleChance float64 `yaml:"bubbleChance"` // 每 tick 生成气泡的概率
	EdgeMargin   float64 `yaml:"edgeMargin"`   // 出界销毁的边界余量

	Tiers []FishTier `yaml:"tiers"` // 按档位索引的生成规则，至少一档
}

// ParseFishConfig 从 YAML 字节解析并校验 fish 调参
func ParseFishConfig(data []byte) (*FishConfig, error) {
	var cfg FishConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fish config YAML: %w", err)
	}
	if err := validateFishConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid fish config: %w", err)
	}
	return &cfg, nil
}

// LoadFishConfig 从文件加载 fish 调参
func LoadFishConfig(path string) (*FishConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fish config file %s: %w", path, err)
	}
	return ParseFishConfig(data)
}

func validateFishConfig(cfg *FishConfig) error {
	if cfg.PlayerSize <= 0 {
		return fmt.Errorf("playerSize must be positive, got %v", cfg.PlayerSize)
	}
	if cfg.PlayerSpeed <= 0 {
		return fmt.Errorf("playerSpeed must be positive, got %v", cfg.PlayerSpeed)
	}
	if cfg.GrowthFraction <= 0 || cfg.GrowthFraction > 1 {
		return fmt.Errorf("growthFraction must be in (0, 1], got %v", cfg.GrowthFraction)
	}
	if cfg.CollisionFactor <= 0 || cfg.CollisionFactor > 1 {
		return fmt.Errorf("collisionFactor must be in (0, 1], got %v", cfg.CollisionFactor)
	}
	prev := 0.0
	for i, th := range cfg.LevelThresholds {
		if th <= prev {
			return fmt.Errorf("levelThresholds must be positive and strictly increasing, got %v at index %d", th, i)
		}
		prev = th
	}
	if cfg.SharkSize <= 0 {
		return fmt.Errorf("sharkSize must be positive, got %v", cfg.SharkSize)
	}
	if cfg.SharkAggression < 0 || cfg.SharkAggression > 1 {
		return fmt.Errorf("sharkAggression must be in [0, 1], got %v", cfg.SharkAggression)
	}
	if cfg.FishSpeedMin <= 0 || cfg.FishSpeedMax < cfg.FishSpeedMin {
		return fmt.Errorf("fish speed range invalid: [%v, %v]", cfg.FishSpeedMin, cfg.FishSpeedMax)
	}
	if cfg.BubbleChance < 0 || cfg.BubbleChance > 1 {
		return fmt.Errorf("bubbleChance must be in [0, 1], got %v", cfg.BubbleChance)
	}
	if len(cfg.Tiers) == 0 {
		return fmt.Errorf("tiers cannot be empty")
	}
	for i, tier := range cfg.Tiers {
		if tier.SpawnChance < 0 || tier.SpawnChance > 1 {
			return fmt.Errorf("tier %d: spawnChance must be in [0, 1], got %v", i, tier.SpawnChance)
		}
		if tier.MaxNPC <= 0 {
			return fmt.Errorf("tier %d: maxNpc must be positive, got %d", i, tier.MaxNPC)
		}
		if tier.SizeMin <= 0 || tier.SizeMax < tier.SizeMin {
			return fmt.Errorf("tier %d: size range invalid: [%v, %v]", i, tier.SizeMin, tier.SizeMax)
		}
		if tier.SmallBias < 0 || tier.SmallBias > 1 {
			return fmt.Errorf("tier %d: smallBias must be in [0, 1], got %v", i, tier.SmallBias)
		}
		if tier.SmallBias > 0 && (tier.SmallMax < tier.SizeMin || tier.SmallMax > tier.SizeMax) {
			return fmt.Errorf("tier %d: smallMax must lie within [sizeMin, sizeMax], got %v", i, tier.SmallMax)
		}
	}
	return nil
}

// Tier 返回指定等级对应的生成规则
// 等级从 1 开始；超出配置档位时停留在最后一档
func (c *FishConfig) Tier(level int) FishTier {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Tiers) {
		idx = len(c.Tiers) - 1
	}
	return c.Tiers[idx]
}
