// Package entities 定义实体模型与世界聚合
//
// 设计原则：
//   - 共享基础字段放在 Base 中（位置、速度、碰撞半径、dead 标记）
//   - 类型专属状态通过带标签的联合体（EnemyData / ProjectileData）挂载，
//     不同类型互斥的字段不会出现在同一个扁平结构上
//   - 实体只携带数据，不携带行为；行为由 systems 包按类型分发
package entities

// EntityID 是实体的唯一标识符
// ID从1开始分配，0保留为无效ID（例如"无父单位"）
type EntityID uint64

// Faction 标识弹丸归属方
type Faction int

const (
	// FactionPlayer 玩家方
	FactionPlayer Faction = iota
	// FactionEnemy 敌方
	FactionEnemy
)

// Base 所有实体共享的基础字段
type Base struct {
	ID         EntityID
	X, Y       float64 // 位置（竞技场逻辑坐标）
	VX, VY     float64 // 速度（像素/步）
	HalfExtent float64 // 碰撞半径（圆形近似判定，阈值为双方半径之和）
	Color      string  // 外观色标签（纯装饰，渲染层使用）
	Dead       bool    // 待移除标记，步进末尾统一过滤
}

// MarkDead 标记实体待移除
// 幂等：重复标记无副作用；碰撞结算依赖该标记防止二次结算
func (b *Base) MarkDead() {
	b.Dead = true
}

// Advance 按当前速度推进一步
func (b *Base) Advance() {
	b.X += b.VX
	b.Y += b.VY
}
