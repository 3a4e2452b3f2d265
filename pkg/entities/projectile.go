package entities

// Projectile 弹丸实体
// 行为语义按弹种拆分到 Data 联合体：普通弹 Data 为 nil
type Projectile struct {
	Base

	Owner    Faction
	Damage   int
	WeaponID string // 发射武器/法术的ID，敌方普通弹为空字符串
	Lifetime int    // 剩余寿命（帧），归零即标记移除
	Grazed   bool   // 擦弹标记：每颗敌弹至多产生一次擦弹奖励

	Data ProjectileData
}

// ProjectileData 弹丸行为语义的联合体标签接口
type ProjectileData interface {
	projectileData()
}

// PierceShot 穿透弹：命中后继续飞行，预算耗尽即销毁
type PierceShot struct {
	Budget int               // 剩余穿透次数，-1 = 无限
	Hit    map[EntityID]bool // 已命中实体集合，防止同一目标二次扣血
}

func (*PierceShot) projectileData() {}

// Struck 判断目标是否已被本弹命中过
func (s *PierceShot) Struck(id EntityID) bool {
	return s.Hit[id]
}

// Record 记录命中目标；命中集合只增不减
func (s *PierceShot) Record(id EntityID) {
	if s.Hit == nil {
		s.Hit = make(map[EntityID]bool)
	}
	s.Hit[id] = true
}

// HomingShot 追踪弹：每步向目标修正速度方向
type HomingShot struct {
	TargetID EntityID // 锁定目标，目标消失后直飞
	TurnRate float64  // 每步最大转向弧度
}

func (*HomingShot) projectileData() {}

// ChainShot 链式闪电弹：命中后消耗跳跃预算并转移到邻近敌机
type ChainShot struct {
	Jumps int               // 剩余跳跃预算，单调递减
	Range float64           // 跳跃搜索半径
	Hit   map[EntityID]bool // 已命中集合（跳跃不回头）
}

func (*ChainShot) projectileData() {}

// Struck 判断目标是否已被本弹命中过
func (s *ChainShot) Struck(id EntityID) bool {
	return s.Hit[id]
}

// Record 记录命中目标
func (s *ChainShot) Record(id EntityID) {
	if s.Hit == nil {
		s.Hit = make(map[EntityID]bool)
	}
	s.Hit[id] = true
}

// MineShot 水雷弹：减速漂浮，自带耐久，引爆时溅射并放出破片
type MineShot struct {
	HP           int     // 水雷耐久（敌弹可消耗它）
	Shards       int     // 引爆时放出的破片数
	SplashRadius float64 // 溅射半径
	Decel        float64 // 每步速度衰减系数
	Armed        bool    // 减速完成后进入警戒状态
}

func (*MineShot) projectileData() {}

// OrbitShot 环绕弹：绕玩家公转的持续判定弹
type OrbitShot struct {
	Angle       float64          // 当前公转角
	Radius      float64          // 公转半径
	AngularVel  float64          // 角速度（弧度/步）
	HitCooldown map[EntityID]int // 同一目标的重复判定间隔
}

func (*OrbitShot) projectileData() {}

// SplashShot 溅射弹：命中点产生范围伤害爆发，可向外链式传递
type SplashShot struct {
	Radius     float64
	ChainDepth int // 剩余链式爆发层数
}

func (*SplashShot) projectileData() {}

// BounceShot 反弹弹：命中竞技场边界时反弹，预算耗尽后飞出销毁
type BounceShot struct {
	Bounces int
}

func (*BounceShot) projectileData() {}

// DecelShot 减速弹：速度按系数衰减直至近停（敌方感应水雷）
type DecelShot struct {
	Decel float64
}

func (*DecelShot) projectileData() {}

// IsPlayerShot 判断是否为玩家方弹丸
func (p *Projectile) IsPlayerShot() bool {
	return p.Owner == FactionPlayer
}
