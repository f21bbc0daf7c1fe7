// Package sfx 程序生成的音效
//
// 本仓库不携带音频资源文件，所有音效在启动时合成一次：
// 16bit 小端双声道 PCM，采样率与音频上下文一致（48kHz）。
// 波形沿用原作的参数（吞食=噪声脉冲，终局=下滑音，升级=上扬音）。
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// SampleRate 合成采样率，必须与 audio.NewContext 的参数一致
const SampleRate = 48000

// 音效ID，注册与播放两侧共用
const (
	SoundEat      = "eat"
	SoundLevelUp  = "levelup"
	SoundGameOver = "gameover"
	SoundWin      = "win"
	SoundJump     = "jump"
	SoundShoot    = "shoot"
	SoundCrash    = "crash"
)

// All 返回全部音效的 ID -> PCM 映射，供启动时批量注册
func All() map[string][]byte {
	return map[string][]byte{
		SoundEat:      Eat(),
		SoundLevelUp:  LevelUp(),
		SoundGameOver: GameOver(),
		SoundWin:      Win(),
		SoundJump:     Jump(),
		SoundShoot:    Shoot(),
		SoundCrash:    Crash(),
	}
}

// render 按时长采样单声道生成函数，输出双声道 s16le PCM
// gen 的返回值应在 [-1, 1]，越界时截断
func render(duration float64, gen func(t float64) float64) []byte {
	n := int(duration * SampleRate)
	buf := make([]byte, n*4) // 2声道 x 2字节
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := gen(t)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// envelope 线性起音/释音包络
func envelope(t, duration, attack float64) float64 {
	if t < attack {
		return t / attack
	}
	return (duration - t) / (duration - attack)
}

// Eat 吞食音效：带包络的短噪声脉冲（"咕噜"声）
func Eat() []byte {
	const dur = 1.0 / 3.0
	rng := rand.New(rand.NewSource(1)) // 每次启动得到相同波形
	return render(dur, func(t float64) float64 {
		return (rng.Float64()*2 - 1) * envelope(t, dur, 0.1)
	})
}

// GameOver 失败音效：两段下滑音，约1秒
func GameOver() []byte {
	const dur = 1.0
	return render(dur, func(t float64) float64 {
		var freq float64
		if t < 0.5 {
			freq = 440 - 200*t
		} else {
			freq = 340 - 300*(t-0.5)
		}
		return 0.8 * math.Sin(2*math.Pi*freq*t)
	})
}

// LevelUp 升级音效：440Hz 上扬到 880Hz，半秒
func LevelUp() []byte {
	const dur = 0.5
	return render(dur, func(t float64) float64 {
		freq := 440 + 440*t
		return 0.7 * math.Sin(2*math.Pi*freq*t) * envelope(t, dur, 0.02)
	})
}

// Win 胜利音效：三连上行琶音
func Win() []byte {
	const dur = 0.9
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	return render(dur, func(t float64) float64 {
		idx := int(t / 0.3)
		if idx > 2 {
			idx = 2
		}
		local := t - float64(idx)*0.3
		return 0.7 * math.Sin(2*math.Pi*notes[idx]*local) * envelope(local, 0.3, 0.02)
	})
}

// Jump 起跳音效：短促上扬
func Jump() []byte {
	const dur = 0.15
	return render(dur, func(t float64) float64 {
		freq := 300 + 600*t/dur
		return 0.6 * math.Sin(2*math.Pi*freq*t) * envelope(t, dur, 0.01)
	})
}

// Shoot 射击音效：高频方波短鸣
func Shoot() []byte {
	const dur = 0.08
	return render(dur, func(t float64) float64 {
		v := -0.4
		if math.Mod(t*880*2, 2) < 1 {
			v = 0.4
		}
		return v * envelope(t, dur, 0.005)
	})
}

// Crash 碰撞/爆炸音效：较长的衰减噪声
func Crash() []byte {
	const dur = 0.5
	rng := rand.New(rand.NewSource(7))
	return render(dur, func(t float64) float64 {
		return (rng.Float64()*2 - 1) * envelope(t, dur, 0.01)
	})
}
