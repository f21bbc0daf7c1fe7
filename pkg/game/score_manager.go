package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 单个游戏的最高分记录
type ScoreRecord struct {
	HighScore int       `yaml:"highScore"` // 历史最高分
	SetAt     time.Time `yaml:"setAt"`     // 创下纪录的时间
}

// ScoreManager 最高分管理器
//
// 每个游戏一条记录，按游戏ID持久化到 gdata。
// 与 SettingsManager 相同的降级语义：存储不可用时仅保留内存记录。
type ScoreManager struct {
	gdataManager *gdata.Manager
	records      map[string]ScoreRecord
}

const scoresObject = "scores"

// NewScoreManager 创建最高分管理器
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	return &ScoreManager{
		gdataManager: gdataManager,
		records:      make(map[string]ScoreRecord),
	}
}

// HighScore 返回指定游戏的最高分，无记录时为 0
func (sm *ScoreManager) HighScore(gameID string) int {
	if rec, ok := sm.records[gameID]; ok {
		return rec.HighScore
	}
	rec, err := sm.load(gameID)
	if err != nil {
		return 0
	}
	sm.records[gameID] = rec
	return rec.HighScore
}

// Record 提交一局的最终分数
// 打破纪录时更新并持久化，返回是否为新纪录
func (sm *ScoreManager) Record(gameID string, score int) bool {
	if score < 0 {
		return false
	}
	if score <= sm.HighScore(gameID) {
		return false
	}

	rec := ScoreRecord{HighScore: score, SetAt: time.Now()}
	sm.records[gameID] = rec
	if err := sm.save(gameID, rec); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to save high score for %s: %v", gameID, err)
	}
	return true
}

func (sm *ScoreManager) load(gameID string) (ScoreRecord, error) {
	var rec ScoreRecord
	if sm.gdataManager == nil {
		return rec, nil
	}
	if !sm.gdataManager.ObjectPropExists(scoresObject, gameID) {
		return rec, nil
	}
	data, err := sm.gdataManager.LoadObjectProp(scoresObject, gameID)
	if err != nil {
		return rec, fmt.Errorf("failed to load score record: %w", err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to unmarshal score record: %w", err)
	}
	return rec, nil
}

func (sm *ScoreManager) save(gameID string, rec ScoreRecord) error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, gameID, data); err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}
	return nil
}
