package game

// State 会话状态
type State int

const (
	// StateStart 初始画面，等待确认开始
	StateStart State = iota
	// StatePlaying 游戏进行中
	StatePlaying
	// StatePaused 暂停（可选，按游戏启用）
	StatePaused
	// StateGameOver 失败（保持到重新开始，不终止进程）
	StateGameOver
	// StateWin 胜利（保持到重新开始）
	StateWin
)

// String 返回状态的可读名称
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// Outcome 规则引擎单 tick 的终局判定结果
type Outcome int

const (
	// OutcomeNone 本 tick 无终局
	OutcomeNone Outcome = iota
	// OutcomeLose 致命条件成立
	OutcomeLose
	// OutcomeWin 胜利条件成立
	OutcomeWin
)

// Session 单局游戏的顶层状态机
//
// 状态迁移只通过下列方法发生：
//
//	Start     → Playing            Confirm
//	Playing   → GameOver / Win     规则引擎的终局判定（同一 tick 内同步生效）
//	GameOver/Win → Start           Confirm/重新开始
//	Playing   ↔ Paused             Pause
//
// 难度档位随时间/分数单调不减；Restart 从头重建，无任何继承。
type Session struct {
	state   State
	elapsed float64
	tier    int
}

// NewSession 创建处于 Start 状态的新会话
func NewSession() *Session {
	return &Session{state: StateStart}
}

// State 返回当前状态
func (s *Session) State() State { return s.state }

// Elapsed 返回 Playing 状态累计的游戏时间（秒）
func (s *Session) Elapsed() float64 { return s.elapsed }

// Tier 返回当前难度档位
func (s *Session) Tier() int { return s.tier }

// Begin 从 Start 进入 Playing；其他状态下无效
func (s *Session) Begin() bool {
	if s.state != StateStart {
		return false
	}
	s.state = StatePlaying
	return true
}

// Advance 在 Playing 状态下累计游戏时间
func (s *Session) Advance(dt float64) {
	if s.state == StatePlaying {
		s.elapsed += dt
	}
}

// Finish 根据终局判定结束本局
// 仅在 Playing 状态下生效；迁移在检测到终局的同一 tick 内同步完成
func (s *Session) Finish(outcome Outcome) {
	if s.state != StatePlaying {
		return
	}
	switch outcome {
	case OutcomeLose:
		s.state = StateGameOver
	case OutcomeWin:
		s.state = StateWin
	}
}

// TogglePause 在 Playing 和 Paused 之间切换；其他状态下无效
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// RaiseTier 提升难度档位；档位只升不降
func (s *Session) RaiseTier(tier int) {
	if tier > s.tier {
		s.tier = tier
	}
}

// Restart 回到 Start 状态并清空累计量
//
// 允许从 GameOver、Win 和 Start 调用；在 Start 状态下重复调用
// 是幂等的（结果与单次重新开始完全一致）。
func (s *Session) Restart() {
	switch s.state {
	case StateGameOver, StateWin, StateStart:
		s.state = StateStart
		s.elapsed = 0
		s.tier = 0
	}
}
