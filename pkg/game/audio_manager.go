package game

import (
	"log"

	sfx "github.com/gonewx/shmup/internal/audio"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundID 音效标识
type SoundID string

const (
	SoundShoot      SoundID = "shoot"
	SoundHit        SoundID = "hit"
	SoundExplosion  SoundID = "explosion"
	SoundPlayerHit  SoundID = "player_hit"
	SoundBossAppear SoundID = "boss_appear"
	SoundBossDown   SoundID = "boss_down"
)

// soundTones 各音效的合成参数
var soundTones = map[SoundID]sfx.Tone{
	SoundShoot:      {Wave: sfx.WaveSquare, StartFreq: 1200, EndFreq: 600, Duration: 0.06, Volume: 0.25},
	SoundHit:        {Wave: sfx.WaveSquare, StartFreq: 400, EndFreq: 200, Duration: 0.05, Volume: 0.3},
	SoundExplosion:  {Wave: sfx.WaveNoise, Duration: 0.25, Volume: 0.4},
	SoundPlayerHit:  {Wave: sfx.WaveSquare, StartFreq: 220, EndFreq: 55, Duration: 0.3, Volume: 0.5},
	SoundBossAppear: {Wave: sfx.WaveSine, StartFreq: 110, EndFreq: 220, Duration: 0.8, Volume: 0.6},
	SoundBossDown:   {Wave: sfx.WaveSine, StartFreq: 880, EndFreq: 110, Duration: 1.0, Volume: 0.6},
}

// SoundPlayer 播放音效的接口
// 模拟只依赖这个接口，无头运行时传入 nil 或空实现
type SoundPlayer interface {
	PlaySound(id SoundID) bool
}

// AudioManager 音效管理器
// 职责：
//   - 启动时合成所有音效的 PCM 数据
//   - 按 gameplay.yaml 的 audio 设置控制开关和音量
//
// audioContext 为 nil 时（测试、无头运行）所有播放请求都被忽略。
type AudioManager struct {
	audioContext *audio.Context
	enabled      bool
	volume       float64
	pcm          map[SoundID][]byte
}

// NewAudioManager 创建音效管理器并合成音效
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	am := &AudioManager{
		audioContext: ctx,
		pcm:          make(map[SoundID][]byte),
	}
	am.Apply(cfg)

	if ctx == nil {
		return am
	}
	for id, tone := range soundTones {
		stream, err := sfx.Synthesize(tone, ctx.SampleRate())
		if err != nil {
			log.Printf("[AudioManager] Warning: failed to synthesize %s: %v", id, err)
			continue
		}
		am.pcm[id] = stream.Bytes()
	}
	log.Printf("[AudioManager] 合成了 %d 个音效", len(am.pcm))
	return am
}

// Apply 应用音效设置（热重载时调用）
func (am *AudioManager) Apply(cfg config.AudioConfig) {
	am.enabled = cfg.Enabled
	am.volume = cfg.Volume
}

// PlaySound 播放音效，返回是否成功播放
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.audioContext == nil || !am.enabled {
		return false
	}

	data, ok := am.pcm[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// GetSoundVolume 返回当前音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume
}
