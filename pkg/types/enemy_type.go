// Package types 定义共享的基础类型
package types

// EnemyType 定义敌机的类型
// 这是一个封闭枚举：行为引擎按类型注册处理器，出现未注册类型视为配置错误
type EnemyType int

const (
	// EnemyUnknown 未知敌机类型
	EnemyUnknown EnemyType = iota

	// 基础敌机（第1关起进入刷怪池）
	EnemyDrone    // 无人机：直线俯冲，周期性单发
	EnemyZigzag   // 折线机：横向摆动下压
	EnemyTank     // 装甲艇：移动缓慢，血量高，三连发
	EnemySniper   // 狙击机：远距离悬停，瞄准玩家射击
	EnemySwarm    // 蜂群：低血量高速，成组出现
	EnemyOrbiter  // 环绕机：绕锚点公转并放射弹幕
	EnemyDasher   // 突袭机：蓄力后向玩家方向冲刺
	EnemySplitter // 分裂机：死亡时分裂出碎片弹

	// 进阶敌机（第3关起混入刷怪池）
	EnemyMinelayer // 布雷艇：沿途投放感应水雷
	EnemyGhost     // 幽灵机：相位潜行，潜行期间不可碰撞
	EnemyHealer    // 医疗机：周期性治疗附近敌机
	EnemyReflector // 反射盾机：正面反弹玩家弹丸
	EnemyShielder  // 护盾机：自带吸收伤害的护盾池

	// 精英敌机
	EnemyEliteGunner  // 精英炮手：蓄力计数满后定量连射
	EnemyEliteCharger // 精英冲锋：蓄力-冲刺-回位循环

	// Boss 及其从属单位
	EnemyBoss       // 关卡Boss（变体由 BossVariant 区分）
	EnemyBossMinion // Boss召唤的小型从属单位
	EnemyBossClone  // Boss幻影分身（限定时间存在）
)

// String 返回敌机类型的可读名称（用于日志和调试）
func (t EnemyType) String() string {
	switch t {
	case EnemyDrone:
		return "drone"
	case EnemyZigzag:
		return "zigzag"
	case EnemyTank:
		return "tank"
	case EnemySniper:
		return "sniper"
	case EnemySwarm:
		return "swarm"
	case EnemyOrbiter:
		return "orbiter"
	case EnemyDasher:
		return "dasher"
	case EnemySplitter:
		return "splitter"
	case EnemyMinelayer:
		return "minelayer"
	case EnemyGhost:
		return "ghost"
	case EnemyHealer:
		return "healer"
	case EnemyReflector:
		return "reflector"
	case EnemyShielder:
		return "shielder"
	case EnemyEliteGunner:
		return "elite_gunner"
	case EnemyEliteCharger:
		return "elite_charger"
	case EnemyBoss:
		return "boss"
	case EnemyBossMinion:
		return "boss_minion"
	case EnemyBossClone:
		return "boss_clone"
	default:
		return "unknown"
	}
}

// ParseEnemyType 将配置中的字符串ID解析为敌机类型
// 未知字符串返回 EnemyUnknown，由调用方决定降级策略
func ParseEnemyType(s string) EnemyType {
	for t := EnemyDrone; t <= EnemyBossClone; t++ {
		if t.String() == s {
			return t
		}
	}
	return EnemyUnknown
}

// IsElite 判断是否为精英敌机（刷怪池在关卡阈值后才会混入精英）
func (t EnemyType) IsElite() bool {
	return t == EnemyEliteGunner || t == EnemyEliteCharger
}

// IsBossFamily 判断是否属于Boss体系（Boss本体、从属、分身）
// Boss体系单位不参与常规刷怪池轮换
func (t EnemyType) IsBossFamily() bool {
	return t == EnemyBoss || t == EnemyBossMinion || t == EnemyBossClone
}

// BossVariant 定义Boss的变体
// 每一关对应一个变体，变体决定阶段攻击模式与二阶段机制
type BossVariant int

const (
	// BossNone 非Boss实体的占位变体
	BossNone BossVariant = iota
	// BossVanguard 先锋舰：第1关，扇形弹幕入门Boss
	BossVanguard
	// BossTwinstrike 双子舰：第2关，交替双侧齐射
	BossTwinstrike
	// BossMatron 螺旋母舰：第3关，螺旋弹幕+召唤从属
	BossMatron
	// BossPhantom 幻影舰：第4关，相位瞬移+幻影分身
	BossPhantom
	// BossWarden 狱守舰：第5关，持有消耗生命值的禁闭领域（门控终极技）
	BossWarden
	// BossOverlord 霸主舰：第6关（最终关），全模式轮转+门控终极技
	BossOverlord
)

// String 返回Boss变体的可读名称
func (v BossVariant) String() string {
	switch v {
	case BossVanguard:
		return "vanguard"
	case BossTwinstrike:
		return "twinstrike"
	case BossMatron:
		return "matron"
	case BossPhantom:
		return "phantom"
	case BossWarden:
		return "warden"
	case BossOverlord:
		return "overlord"
	default:
		return "none"
	}
}

// ParseBossVariant 将配置中的字符串ID解析为Boss变体
func ParseBossVariant(s string) BossVariant {
	for v := BossVanguard; v <= BossOverlord; v++ {
		if v.String() == s {
			return v
		}
	}
	return BossNone
}

// BannerName 返回Boss登场横幅显示的名称
func (v BossVariant) BannerName() string {
	switch v {
	case BossVanguard:
		return "VANGUARD"
	case BossTwinstrike:
		return "TWINSTRIKE"
	case BossMatron:
		return "SPIRAL MATRON"
	case BossPhantom:
		return "PHANTOM"
	case BossWarden:
		return "THE WARDEN"
	case BossOverlord:
		return "OVERLORD"
	default:
		return ""
	}
}
