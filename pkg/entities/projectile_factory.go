package entities

import (
	"math"
)

// NewEnemyShot 创建敌方普通弹
// 敌弹 WeaponID 为空字符串，Data 为 nil
func NewEnemyShot(id EntityID, x, y, vx, vy float64, damage int) *Projectile {
	return &Projectile{
		Base: Base{
			ID:         id,
			X:          x,
			Y:          y,
			VX:         vx,
			VY:         vy,
			HalfExtent: 5,
			Color:      "magenta",
		},
		Owner:    FactionEnemy,
		Damage:   damage,
		Lifetime: 420,
	}
}

// NewEnemyAimedShot 创建朝目标点飞行的敌方普通弹
func NewEnemyAimedShot(id EntityID, x, y, targetX, targetY, speed float64, damage int) *Projectile {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return NewEnemyShot(id, x, y, dx/dist*speed, dy/dist*speed, damage)
}

// NewEnemyMine 创建敌方感应水雷（减速弹）：投放后逐步减速至近停
func NewEnemyMine(id EntityID, x, y, vx, vy float64, damage int) *Projectile {
	return &Projectile{
		Base: Base{
			ID:         id,
			X:          x,
			Y:          y,
			VX:         vx,
			VY:         vy,
			HalfExtent: 8,
			Color:      "darkred",
		},
		Owner:    FactionEnemy,
		Damage:   damage,
		Lifetime: 900,
		Data:     &DecelShot{Decel: 0.96},
	}
}

// NewEnemyBounceShot 创建可在竞技场边界反弹的敌弹
func NewEnemyBounceShot(id EntityID, x, y, vx, vy float64, damage, bounces int) *Projectile {
	p := NewEnemyShot(id, x, y, vx, vy, damage)
	p.Lifetime = 600
	p.Color = "orange"
	p.Data = &BounceShot{Bounces: bounces}
	return p
}

// NewReturnShot 创建反射盾机的返还弹：沿来弹反方向回敬，速度略降
func NewReturnShot(id EntityID, incoming *Projectile, damage int) *Projectile {
	speed := math.Hypot(incoming.VX, incoming.VY)
	var vx, vy float64
	if speed == 0 {
		vy = 3.0
	} else {
		vx = -incoming.VX * 0.8
		vy = -incoming.VY * 0.8
	}
	return &Projectile{
		Base: Base{
			ID:         id,
			X:          incoming.X,
			Y:          incoming.Y,
			VX:         vx,
			VY:         vy,
			HalfExtent: 5,
			Color:      "violet",
		},
		Owner:    FactionEnemy,
		Damage:   damage,
		Lifetime: 360,
	}
}

// NewShard 创建破片弹（水雷引爆、分裂机死亡时向外放射）
func NewShard(id EntityID, owner Faction, x, y, angle, speed float64, damage int) *Projectile {
	color := "amber"
	if owner == FactionEnemy {
		color = "magenta"
	}
	return &Projectile{
		Base: Base{
			ID:         id,
			X:          x,
			Y:          y,
			VX:         math.Sin(angle) * speed,
			VY:         math.Cos(angle) * speed,
			HalfExtent: 4,
			Color:      color,
		},
		Owner:    owner,
		Damage:   damage,
		Lifetime: 150,
	}
}
