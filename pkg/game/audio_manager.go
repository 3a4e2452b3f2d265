package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/starblitz/pkg/types"
)

// 音频采样率（与 audio.Context 一致）
const audioSampleRate = 44100

// AudioManager 音频管理器
//
// 实现 AudioSink：引擎发出的提示音在此合成为PCM并播放。
// 提示音全部程序化合成（短促的方波/正弦扫频），不依赖资源文件；
// 音量与开关跟随 SettingsManager 的全局设置
type AudioManager struct {
	context  *audio.Context
	settings *SettingsManager

	// cues 各提示音的预合成PCM（16bit 双声道）
	cues map[types.AudioCue][]byte
}

// NewAudioManager 创建音频管理器并预合成全部提示音
//
// 参数：
//   - settings: 全局设置管理器（音量/开关）
func NewAudioManager(settings *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:  audio.NewContext(audioSampleRate),
		settings: settings,
		cues:     make(map[types.AudioCue][]byte),
	}
	am.synthesizeCues()
	log.Printf("[AudioManager] Initialized with %d synthesized cues", len(am.cues))
	return am
}

// synthesizeCues 预合成全部提示音的PCM数据
func (am *AudioManager) synthesizeCues() {
	am.cues[types.CueShoot] = synthTone(880, 660, 0.03, 0.25)
	am.cues[types.CueExplosion] = synthNoise(0.18, 0.5)
	am.cues[types.CueSpell] = synthTone(440, 1320, 0.25, 0.4)
	am.cues[types.CueBattleStart] = synthTone(523, 1046, 0.35, 0.4)
	am.cues[types.CueBossBanner] = synthTone(220, 110, 0.5, 0.5)
	am.cues[types.CuePlayerHit] = synthTone(330, 110, 0.15, 0.5)
	am.cues[types.CueGraze] = synthTone(1760, 1760, 0.02, 0.15)
}

// Play 播放指定提示音（即发即忘）
// 音效被关闭时静默丢弃；播放失败只记录日志，不影响模拟
func (am *AudioManager) Play(cue types.AudioCue) {
	s := am.settings.GetSettings()
	if !s.SoundEnabled {
		return
	}
	pcm, ok := am.cues[cue]
	if !ok {
		log.Printf("[AudioManager] No PCM for cue %d, skipped", cue)
		return
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(s.SoundVolume)
	player.Play()
}

// synthTone 合成线性扫频音
//
// 参数：
//   - fromHz, toHz: 起止频率
//   - seconds: 时长
//   - gain: 振幅增益 [0,1]
func synthTone(fromHz, toHz, seconds, gain float64) []byte {
	samples := int(float64(audioSampleRate) * seconds)
	buf := make([]byte, samples*4)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / audioSampleRate
		// 线性衰减包络，消除尾部爆音
		env := gain * (1 - t)
		v := int16(math.Sin(phase) * env * math.MaxInt16)
		writeSample(buf, i, v)
	}
	return buf
}

// synthNoise 合成衰减噪声（爆炸音）
// 使用固定线性同余序列，保证每次播放听感一致
func synthNoise(seconds, gain float64) []byte {
	samples := int(float64(audioSampleRate) * seconds)
	buf := make([]byte, samples*4)
	seed := uint32(0x2545f491)
	for i := 0; i < samples; i++ {
		seed = seed*1664525 + 1013904223
		t := float64(i) / float64(samples)
		env := gain * (1 - t) * (1 - t)
		noise := (float64(seed>>16)/32768.0 - 1.0)
		v := int16(noise * env * math.MaxInt16)
		writeSample(buf, i, v)
	}
	return buf
}

// writeSample 写入第i个采样（16bit LE，左右声道同值）
func writeSample(buf []byte, i int, v int16) {
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}
