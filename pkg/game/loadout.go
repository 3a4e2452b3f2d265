package game

import (
	"github.com/gonewx/starblitz/pkg/types"
)

// LoadoutItem 单个装备项：ID + 强化等级
type LoadoutItem struct {
	ID    string `yaml:"id"`
	Level int    `yaml:"level"`
}

// Loadout 进入战斗时的装备配置
// 由局外系统（装备界面/存档）组装后传入引擎，引擎只读
type Loadout struct {
	Weapons []LoadoutItem `yaml:"weapons"` // 有序武器列表
	Spells  []LoadoutItem `yaml:"spells"`  // 有序法术列表
}

// DefaultLoadout 返回新玩家的默认装备（1级直射机炮 + 1级清屏炸弹）
func DefaultLoadout() Loadout {
	return Loadout{
		Weapons: []LoadoutItem{{ID: types.WeaponBlaster, Level: 1}},
		Spells:  []LoadoutItem{{ID: types.SpellBomb, Level: 1}},
	}
}

// Boosts 单局生效的消耗型强化
// 所有乘数的默认中性值为 1.0；IncomingCut 为减免比例 [0,1)
type Boosts struct {
	ExtraLife    bool    // 额外一次复活
	DamageMult   float64 // 伤害乘数
	RegenMult    float64 // 脱战回复速度乘数
	CooldownMult float64 // 法术冷却乘数（<1 缩短冷却）
	LootMult     float64 // 货币掉落乘数
	IncomingCut  float64 // 受到伤害的减免比例
	AssistMult   float64 // 连败补偿（怜悯）乘数，由局外系统调节后传入
}

// DefaultBoosts 返回全部中性的强化配置
func DefaultBoosts() Boosts {
	return Boosts{
		DamageMult:   1.0,
		RegenMult:    1.0,
		CooldownMult: 1.0,
		LootMult:     1.0,
		AssistMult:   1.0,
	}
}

// Normalize 将零值字段恢复为中性值
// 调用方可能只设置了部分字段，未设置的乘数不应变成 0
func (b *Boosts) Normalize() {
	if b.DamageMult <= 0 {
		b.DamageMult = 1.0
	}
	if b.RegenMult <= 0 {
		b.RegenMult = 1.0
	}
	if b.CooldownMult <= 0 {
		b.CooldownMult = 1.0
	}
	if b.LootMult <= 0 {
		b.LootMult = 1.0
	}
	if b.AssistMult <= 0 {
		b.AssistMult = 1.0
	}
	if b.IncomingCut < 0 {
		b.IncomingCut = 0
	}
	if b.IncomingCut > 0.9 {
		b.IncomingCut = 0.9
	}
}

// PracticeSpec 练习模式的目标指定
// Enabled 时引擎只刷指定目标，关闭常规推进与货币奖励
type PracticeSpec struct {
	Enabled bool
	Target  types.EnemyType   // 练习小怪目标（连续刷新）
	Variant types.BossVariant // 练习Boss目标（只刷一次），为 BossNone 时按 Target 刷小怪

	// ForceDifficulty 为 true 时以 Difficulty 覆盖进入战斗时选择的难度
	ForceDifficulty bool
	Difficulty      types.Difficulty
}

// AudioSink 音频提示接收器
// 引擎向其发送即发即忘的提示音，不关心结果
type AudioSink interface {
	Play(cue types.AudioCue)
}

// NopAudioSink 空实现，测试与无声模式使用
type NopAudioSink struct{}

// Play 丢弃提示音
func (NopAudioSink) Play(types.AudioCue) {}
