package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FighterConfig 太空战斗游戏（fighter）的全部调参
//
// 所有位置、速度、半径均为逻辑坐标系下的值；
// 以帧计数的字段按 60 tick/秒标定。
type FighterConfig struct {
	PlayerRadius  float64 `yaml:"playerRadius"`  // 飞船碰撞半径
	RotationSpeed float64 `yaml:"rotationSpeed"` // 旋转速度（弧度/tick）
	ThrustPower   float64 `yaml:"thrustPower"`   // 推进加速度（像素/tick²）
	Friction      float64 `yaml:"friction"`      // 每 tick 速度保留系数 (0, 1]
	MaxSpeed      float64 `yaml:"maxSpeed"`      // 速度上限（像素/tick）

	BulletSpeed    float64 `yaml:"bulletSpeed"`    // 子弹速度（像素/tick）
	BulletRadius   float64 `yaml:"bulletRadius"`   // 子弹半径
	BulletLifetime int     `yaml:"bulletLifetime"` // 子弹存活 tick 数
	MaxBullets     int     `yaml:"maxBullets"`     // 同屏玩家子弹上限
	FireCooldown   int     `yaml:"fireCooldown"`   // 连射间隔（tick）

	SpawnInterval   int     `yaml:"spawnInterval"`   // 敌机生成间隔（tick）
	SafeSpawnRadius float64 `yaml:"safeSpawnRadius"` // 敌机生成时与玩家的最小距离
	MaxEnemies      int     `yaml:"maxEnemies"`      // 同屏敌机上限
	EnemyRadius     float64 `yaml:"enemyRadius"`     // 敌机半径
	EnemySpeedMin   float64 `yaml:"enemySpeedMin"`   // 敌机速度下界（像素/tick）
	EnemySpeedMax   float64 `yaml:"enemySpeedMax"`   // 敌机速度上界
	EnemyScore      int     `yaml:"enemyScore"`      // 击毁一架敌机的得分

	WinScore int `yaml:"winScore"` // 达到该分数即获胜
}

// ParseFighterConfig 从 YAML 字节解析并校验 fighter 调参
func ParseFighterConfig(data []byte) (*FighterConfig, error) {
	var cfg FighterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fighter config YAML: %w", err)
	}
	if err := validateFighterConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid fighter config: %w", err)
	}
	return &cfg, nil
}

// LoadFighterConfig 从文件加载 fighter 调参
func LoadFighterConfig(path string) (*FighterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fighter config file %s: %w", path, err)
	}
	return ParseFighterConfig(data)
}

func validateFighterConfig(cfg *FighterConfig) error {
	if cfg.PlayerRadius <= 0 {
		return fmt.Errorf("playerRadius must be positive, got %v", cfg.PlayerRadius)
	}
	if cfg.RotationSpeed <= 0 {
		return fmt.Errorf("rotationSpeed must be positive, got %v", cfg.RotationSpeed)
	}
	if cfg.ThrustPower <= 0 {
		return fmt.Errorf("thrustPower must be positive, got %v", cfg.ThrustPower)
	}
	if cfg.Friction <= 0 || cfg.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %v", cfg.Friction)
	}
	if cfg.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed must be positive, got %v", cfg.MaxSpeed)
	}
	if cfg.BulletSpeed <= 0 || cfg.BulletRadius <= 0 || cfg.BulletLifetime <= 0 {
		return fmt.Errorf("bullet parameters must be positive")
	}
	if cfg.MaxBullets <= 0 || cfg.FireCooldown <= 0 {
		return fmt.Errorf("maxBullets and fireCooldown must be positive")
	}
	if cfg.SpawnInterval <= 0 {
		return fmt.Errorf("spawnInterval must be positive, got %d", cfg.SpawnInterval)
	}
	if cfg.SafeSpawnRadius <= 0 {
		return fmt.Errorf("safeSpawnRadius must be positive, got %v", cfg.SafeSpawnRadius)
	}
	if cfg.MaxEnemies <= 0 {
		return fmt.Errorf("maxEnemies must be positive, got %d", cfg.MaxEnemies)
	}
	if cfg.EnemyRadius <= 0 {
		return fmt.Errorf("enemyRadius must be positive, got %v", cfg.EnemyRadius)
	}
	if cfg.EnemySpeedMin <= 0 || cfg.EnemySpeedMax < cfg.EnemySpeedMin {
		return fmt.Errorf("enemy speed range invalid: [%v, %v]", cfg.EnemySpeedMin, cfg.EnemySpeedMax)
	}
	if cfg.EnemyScore <= 0 {
		return fmt.Errorf("enemyScore must be positive, got %d", cfg.EnemyScore)
	}
	if cfg.WinScore <= 0 {
		return fmt.Errorf("winScore must be positive, got %d", cfg.WinScore)
	}
	return nil
}
