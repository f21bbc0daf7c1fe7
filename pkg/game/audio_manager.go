package game

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
//
// 职责：
//   - 统一管理所有音效的注册与播放
//   - 应用 SettingsManager 中的音量/开关设置
//
// 本仓库的音效全部是程序生成的 PCM（见 internal/sfx），
// 启动时注册一次，播放时从缓存的 player 复用。
// 播放是 fire-and-forget：失败只记日志，不影响游戏循环。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	players         map[string]*audio.Player
}

// NewAudioManager 创建音频管理器
// settingsManager 可为 nil（始终全音量播放）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
	}
}

// Register 注册一段 PCM 音效
// pcm 必须是音频上下文采样率下的 16bit 小端双声道数据
func (am *AudioManager) Register(soundID string, pcm []byte) {
	player, err := am.audioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", soundID, err)
		return
	}
	am.players[soundID] = player
}

// Play 播放指定音效
// 音效被禁用或未注册时静默忽略
func (am *AudioManager) Play(soundID string) {
	if am.settingsManager != nil && !am.settingsManager.Get().SoundEnabled {
		return
	}
	player, ok := am.players[soundID]
	if !ok {
		return
	}

	volume := 1.0
	if am.settingsManager != nil {
		volume = am.settingsManager.Get().SoundVolume
	}
	player.SetVolume(volume)

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
}
