package entities

import (
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/types"
)

// EquippedWeapon 已装备武器（强化等级由局外进度解锁后传入）
type EquippedWeapon struct {
	ID    string // 武器ID，见 types 包常量
	Level int    // 强化等级 1~3
}

// EquippedSpell 已装备法术及其冷却状态
type EquippedSpell struct {
	ID       string // 法术ID
	Level    int    // 强化等级 1~3
	Cooldown int    // 剩余冷却帧数，<=0 表示就绪
}

// Player 玩家机体
// 每局有且只有一个实例，由 World 持有
type Player struct {
	Base

	HP    int // 当前生命值，结算后收拢到 [0, MaxHP]
	MaxHP int

	InvulnFrames   int  // 剩余无敌帧数
	FramesSinceHit int  // 距上次受击的帧数（脱战回复门槛）
	Focus          bool // 低速精确移动模式

	Weapons []EquippedWeapon
	Spells  []EquippedSpell

	Shield  int // 护盾点数池，先于生命值吸收伤害
	Revives int // 复活次数存量

	// Buffs 生效中的限时增益：增益类型 -> 剩余帧数
	Buffs map[types.BuffType]int
}

// NewPlayer 创建玩家机体并放置在竞技场下方中央
func NewPlayer(id EntityID, weapons []EquippedWeapon, spells []EquippedSpell) *Player {
	return &Player{
		Base: Base{
			ID:         id,
			X:          config.ArenaWidth / 2,
			Y:          config.ArenaHeight - 80,
			HalfExtent: config.PlayerRadius,
			Color:      "cyan",
		},
		HP:      config.PlayerMaxHP,
		MaxHP:   config.PlayerMaxHP,
		Weapons: weapons,
		Spells:  spells,
		Buffs:   make(map[types.BuffType]int),
	}
}

// HasBuff 判断指定增益是否生效中
func (p *Player) HasBuff(b types.BuffType) bool {
	return p.Buffs[b] > 0
}

// AddBuff 插入或刷新限时增益
// 已存在时取较长的剩余时间，不做叠加
func (p *Player) AddBuff(b types.BuffType, frames int) {
	if p.Buffs[b] < frames {
		p.Buffs[b] = frames
	}
}

// TickBuffs 递减全部增益计时，归零的增益移除
func (p *Player) TickBuffs() {
	for b, left := range p.Buffs {
		left--
		if left <= 0 {
			delete(p.Buffs, b)
		} else {
			p.Buffs[b] = left
		}
	}
}

// ClampHP 将生命值收拢到 [0, MaxHP]
// 结算期间允许瞬时为负，步进末尾必须调用本方法恢复不变量
func (p *Player) ClampHP() {
	if p.HP < 0 {
		p.HP = 0
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// SpellReady 返回每个已装备法术的就绪标记（HUD快照用）
func (p *Player) SpellReady() []bool {
	ready := make([]bool, len(p.Spells))
	for i, s := range p.Spells {
		ready[i] = s.Cooldown <= 0
	}
	return ready
}
