package game

import "testing"

// 传入 nil gdata 管理器测试降级模式（仅内存，不持久化）

func TestSettingsManagerDefaults(t *testing.T) {
	sm := NewSettingsManager(nil)
	s := sm.Get()

	if s.SoundVolume != 0.8 {
		t.Errorf("default SoundVolume = %v, want 0.8", s.SoundVolume)
	}
	if !s.SoundEnabled {
		t.Error("sound should be enabled by default")
	}
}

func TestSetSoundVolumeClamps(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(1.5)
	if got := sm.Get().SoundVolume; got != 1.0 {
		t.Errorf("volume above 1 should clamp to 1, got %v", got)
	}

	sm.SetSoundVolume(-0.5)
	if got := sm.Get().SoundVolume; got != 0.0 {
		t.Errorf("negative volume should clamp to 0, got %v", got)
	}

	sm.SetSoundVolume(0.42)
	if got := sm.Get().SoundVolume; got != 0.42 {
		t.Errorf("volume = %v, want 0.42", got)
	}
}

func TestSetSoundEnabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	if sm.Get().SoundEnabled {
		t.Error("sound should be disabled after SetSoundEnabled(false)")
	}
	sm.SetSoundEnabled(true)
	if !sm.Get().SoundEnabled {
		t.Error("sound should be enabled after SetSoundEnabled(true)")
	}
}

func TestSettingsSaveInDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)
	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save with nil gdata should not fail, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load with nil gdata should not fail, got %v", err)
	}
}
