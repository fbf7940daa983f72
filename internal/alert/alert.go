package alert

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrPlayback 提示音无法播放（例如没有可用的音频设备）
var ErrPlayback = errors.New("could not play the alert sound")

// Alerter 倒计时结束时的提醒
type Alerter interface {
	Alert() error
}

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 1000.0
	toneLength = time.Second

	minVolume = -10.0
	maxVolume = 2.0
)

// Beeper 通过系统扬声器播放固定音高的提示音
type Beeper struct {
	volume  float64
	enabled bool
	ready   bool

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

// NewBeeper 创建提示音播放器
// volume 是以 2 为底的增益指数，0 表示原始音量
func NewBeeper(volume float64, enabled bool) *Beeper {
	return &Beeper{
		volume:      clampVolume(volume),
		enabled:     enabled,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Alert 播放提示音，不阻塞调用方
func (b *Beeper) Alert() error {
	if !b.enabled {
		return nil
	}

	// 扬声器只初始化一次；失败时下次提醒重试
	if !b.ready {
		if err := b.initSpeaker(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			return fmt.Errorf("%w: %v", ErrPlayback, err)
		}
		b.ready = true
	}

	b.play(&effects.Volume{
		Streamer: Tone(sampleRate, toneFreq, toneLength),
		Base:     2,
		Volume:   b.volume,
		Silent:   b.volume <= minVolume,
	})
	return nil
}

// SetVolume 设置音量
func (b *Beeper) SetVolume(v float64) {
	b.volume = clampVolume(v)
}

func (b *Beeper) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func clampVolume(v float64) float64 {
	return math.Max(minVolume, math.Min(maxVolume, v))
}

// Tone 生成给定频率和时长的正弦波
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	step := freq / float64(sr)
	phase := 0.0

	return beep.Take(sr.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	}))
}
