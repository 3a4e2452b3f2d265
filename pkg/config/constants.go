// Package config 提供数据驱动的游戏配置（YAML）与引擎常量
package config

// 模拟时钟常量
const (
	// SimTPS 固定模拟步进频率（每秒步数）
	SimTPS = 90
	// MaxCatchUpSteps 单帧最大补偿步数，超出部分丢弃，避免停顿后雪崩式追帧
	MaxCatchUpSteps = 4
)

// 竞技场边界（逻辑坐标，渲染层负责缩放）
const (
	ArenaWidth  = 960.0
	ArenaHeight = 540.0
)

// 玩家常量
const (
	// PlayerRadius 玩家碰撞半径（判定点很小，符合弹幕游戏惯例）
	PlayerRadius = 4.0
	// PlayerSpeed 常规移动速度（像素/步）
	PlayerSpeed = 3.4
	// PlayerFocusSpeed 低速（精确）模式移动速度
	PlayerFocusSpeed = 1.6
	// PlayerMaxHP 基础最大生命值
	PlayerMaxHP = 100
	// PlayerHitInvulnFrames 受击后的无敌帧数
	PlayerHitInvulnFrames = 120
	// PlayerReviveInvulnFrames 复活后的无敌帧数
	PlayerReviveInvulnFrames = 270
	// PlayerRegenGateFrames 脱战回复门槛：连续该帧数未受击后才开始回复
	PlayerRegenGateFrames = 450
	// PlayerRegenInterval 回复间隔帧数（每次回复1点）
	PlayerRegenInterval = 45
	// GrazeRadius 擦弹判定半径（大于命中半径的窄带）
	GrazeRadius = 22.0
	// GrazeScore 每次擦弹奖励分数
	GrazeScore = 10
)

// 失控增长防护上限（见错误处理设计：Runaway-growth）
const (
	// MaxPlayerProjectiles 玩家弹丸同时存在上限
	MaxPlayerProjectiles = 512
	// MaxEnemyProjectiles 敌方弹丸同时存在上限
	MaxEnemyProjectiles = 1024
	// MaxMines 水雷同时存在上限
	MaxMines = 12
	// MaxOrbitals 环绕浮游炮同时存在上限
	MaxOrbitals = 8
	// MaxBossMinions Boss从属单位同时存在上限
	MaxBossMinions = 16
	// MaxParticles 粒子同时存在上限
	MaxParticles = 768
)

// Boss 相关常量
const (
	// BossPhaseThreshold 二阶段触发的生命比例阈值
	BossPhaseThreshold = 0.40
	// BossPhaseTransitionFrames 阶段转换动画时长（期间不攻击）
	BossPhaseTransitionFrames = 300
	// BossPhaseShieldReduction 阶段转换期间的伤害减免比例
	BossPhaseShieldReduction = 0.5
	// BossEntryAnchorY Boss入场锚点的Y坐标
	BossEntryAnchorY = 110.0
	// BossUltimateHPCostFrac 门控终极技的生命消耗比例（占最大生命值）
	BossUltimateHPCostFrac = 0.08
	// InterStageDelayFrames Boss击破后到下一关开始的间隔帧数
	InterStageDelayFrames = 360
)

// FinalStage 常规模式的最终关卡，击破该关Boss即通关
const FinalStage = 6

// EliteStageThreshold 从该关卡起刷怪池混入精英敌机
const EliteStageThreshold = 3
