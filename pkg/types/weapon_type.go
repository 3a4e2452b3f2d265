package types

// 武器ID常量 - 与 data/weapons.yaml 中的ID一致
// 武器采用字符串ID，便于配置文件引用和存档持久化
const (
	WeaponBlaster = "blaster" // 直射机炮：基础单发，升级增加弹道
	WeaponSpread  = "spread"  // 散射炮：扇形多发
	WeaponLaser   = "laser"   // 贯穿激光：高速穿透弹
	WeaponHoming  = "homing"  // 追踪导弹：锁定最近敌机
	WeaponChain   = "chain"   // 链式闪电：命中后跳跃至附近敌机
	WeaponMine    = "mine"    // 浮游水雷：减速漂浮，自带耐久，死亡时放出破片
	WeaponOrbit   = "orbit"   // 环绕浮游炮：绕玩家公转的持续判定弹
)

// AllWeaponIDs 返回全部武器ID（顺序即装备栏展示顺序）
func AllWeaponIDs() []string {
	return []string{
		WeaponBlaster, WeaponSpread, WeaponLaser,
		WeaponHoming, WeaponChain, WeaponMine, WeaponOrbit,
	}
}

// 法术ID常量 - 与 data/spells.yaml 中的ID一致
const (
	SpellBomb    = "bomb"     // 清屏炸弹：清除全场敌弹并对全体敌机造成伤害
	SpellNova    = "nova"     // 新星脉冲：以玩家为中心的范围伤害
	SpellWarp    = "timewarp" // 时间迟滞：敌方时间流速降低的限时增益
	SpellHeal    = "heal"     // 紧急维修：立即回复生命值
	SpellBarrier = "barrier"  // 能量壁障：授予吸收伤害的护盾点数
	SpellFreeze  = "freeze"   // 群体冻结：冻结全场敌机一段时间
)

// AllSpellIDs 返回全部法术ID
func AllSpellIDs() []string {
	return []string{
		SpellBomb, SpellNova, SpellWarp,
		SpellHeal, SpellBarrier, SpellFreeze,
	}
}

// BuffType 定义玩家身上的限时增益类型
// 玩家持有 buff -> 剩余帧数 的映射，由时钟每步递减
type BuffType int

const (
	// BuffTimeWarp 时间迟滞：敌方 timeScale 降为 0.5
	BuffTimeWarp BuffType = iota
	// BuffDamageUp 伤害提升：武器发射时伤害乘数 1.5
	BuffDamageUp
	// BuffRegen 持续维修：每秒回复少量生命值
	BuffRegen
)

// MaxUpgradeLevel 武器/法术的最高强化等级
// 1 = 基础，2 = 强化，3 = 觉醒；等级由局外进度系统解锁并传入
const MaxUpgradeLevel = 3

// ClampLevel 将强化等级收拢到合法区间 [1, MaxUpgradeLevel]
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxUpgradeLevel {
		return MaxUpgradeLevel
	}
	return level
}
