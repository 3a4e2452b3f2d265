package entities

import (
	"github.com/gonewx/starblitz/pkg/types"
)

// Enemy 敌机实体
// 类型专属状态挂在 Data 联合体上，不同类型互斥的字段不混入本结构
type Enemy struct {
	Base

	Type    types.EnemyType
	Variant types.BossVariant // 仅Boss体系使用，其余为 BossNone

	HP    int
	MaxHP int
	Score int // 击破分数

	ParentID EntityID // 从属单位的父实体ID，0 = 无父单位

	// 通用计时器：具体含义由各类型的行为处理器约定
	PatternTimer int // 移动/模式计时
	ShotTimer    int // 射击计时
	AttackTimer  int // 攻击间隔计时

	ContactDamage int     // 碰撞伤害
	ShotDamage    int     // 敌弹伤害
	ShotSpeed     float64 // 敌弹速度
	FireInterval  int     // 射击间隔（帧）
	Speed         float64 // 基础移动速度

	Shield       int     // 吸收伤害的护盾池，先于生命扣减
	FrozenFrames int     // 剩余冻结帧数，>0 时停止行动且受额外伤害
	DamageCut    float64 // 常驻伤害减免比例 [0,1)，如二阶段转换护盾
	DamageCutFrames int  // 伤害减免剩余帧数，0 = 永久（未使用）或无减免

	Ghost bool // 相位潜行标记：不可被碰撞、不造成碰撞伤害

	Data EnemyData // 类型专属状态（带标签联合体）
}

// EnemyData 敌机类型专属状态的联合体标签接口
// 每个具体类型只携带自身行为需要的字段
type EnemyData interface {
	enemyData()
}

// DasherState 突袭机的冲刺状态机
type DasherState int

const (
	// DasherApproach 进场接近
	DasherApproach DasherState = iota
	// DasherCharging 蓄力（原地微抖）
	DasherCharging
	// DasherDashing 冲刺中
	DasherDashing
)

// DasherData 突袭机专属状态
type DasherData struct {
	State   DasherState
	Charge  int     // 蓄力计数
	TargetX float64 // 冲刺目标点（锁定时的玩家位置）
	TargetY float64
}

func (*DasherData) enemyData() {}

// OrbiterData 环绕机专属状态：绕锚点公转
type OrbiterData struct {
	AnchorX float64
	AnchorY float64
	Angle   float64
	Radius  float64
}

func (*OrbiterData) enemyData() {}

// GhostData 幽灵机专属状态：相位切换与潜行目标点
type GhostData struct {
	PhaseTimer int     // 相位切换计时
	TargetX    float64 // 潜行期间的移动目标
	TargetY    float64
}

func (*GhostData) enemyData() {}

// HealerData 医疗机专属状态
type HealerData struct {
	HealTimer int
}

func (*HealerData) enemyData() {}

// MinelayerData 布雷艇专属状态
type MinelayerData struct {
	DropTimer int
}

func (*MinelayerData) enemyData() {}

// EliteState 精英敌机的蓄力/释放循环状态
type EliteState int

const (
	// EliteGathering 蓄力积累中
	EliteGathering EliteState = iota
	// EliteReleasing 定量释放中（连射或冲刺）
	EliteReleasing
	// EliteRecovering 释放后的硬直回复
	EliteRecovering
)

// EliteData 精英敌机专属状态
type EliteData struct {
	State     EliteState
	Charge    int // 蓄力计数，达到 ChargeFrames 阈值进入释放
	BurstLeft int // 本轮剩余连射数
	Recover   int // 硬直剩余帧数
}

func (*EliteData) enemyData() {}

// MinionData Boss从属单位专属状态
type MinionData struct {
	OrbitAngle float64 // 绕父单位的公转角
	FromUltimate bool  // 是否由门控终极技召唤（终极技结束时随之清除）
}

func (*MinionData) enemyData() {}

// CloneData Boss幻影分身专属状态
type CloneData struct {
	Life int // 剩余存在帧数
}

func (*CloneData) enemyData() {}

// BossPhaseState Boss状态机的宏观状态
type BossPhaseState int

const (
	// BossEntering 入场：向锚点插值移动，不攻击
	BossEntering BossPhaseState = iota
	// BossFighting 战斗中（阶段1或阶段2）
	BossFighting
	// BossTransitioning 阶段转换动画窗口：不攻击，持有伤害减免
	BossTransitioning
	// BossDefeated 已击破
	BossDefeated
)

// BossData Boss专属状态
type BossData struct {
	State       BossPhaseState
	Phase       int  // 当前阶段 1/2
	Transitioned bool // 阶段转换是否已发生（保证恰好一次）

	FightFrames     int // 进入战斗后的累计帧数（决定模式选择）
	TransitionLeft  int // 阶段转换动画剩余帧数
	PatternIndex    int // 当前攻击子模式
	SubTimer        int // 主计时之外的高频副模式计时

	EntryTargetX float64 // 入场锚点
	EntryTargetY float64

	// 门控终极技状态（仅 Warden / Overlord 使用）
	UltimateActive bool
	UltimateLeft   int // 终极技剩余帧数
}

func (*BossData) enemyData() {}

// IsBoss 判断是否为Boss本体
func (e *Enemy) IsBoss() bool {
	return e.Type == types.EnemyBoss
}

// Collidable 判断敌机当前是否参与碰撞
// 幽灵态敌机既不被弹丸命中，也不造成碰撞伤害
func (e *Enemy) Collidable() bool {
	return !e.Dead && !e.Ghost
}

// Frozen 判断是否处于冻结状态
func (e *Enemy) Frozen() bool {
	return e.FrozenFrames > 0
}

// HPFraction 返回生命比例 [0,1]，HUD与阶段判定使用
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	f := float64(e.HP) / float64(e.MaxHP)
	if f < 0 {
		return 0
	}
	return f
}
