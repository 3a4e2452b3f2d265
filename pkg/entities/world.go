package entities

import (
	"github.com/gonewx/starblitz/pkg/config"
)

// World 单局战斗的全部可变状态
//
// 所有权约定：模拟时钟是唯一写者，渲染层只读快照；
// 实体创建后由本聚合持有，移除统一走 dead 标记 + 步进末尾 Prune
type World struct {
	nextID EntityID

	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	Particles   []*Particle

	// children 父实体 -> 子实体ID索引
	// 级联击杀与孤儿清理查此索引，替代按字段全表扫描
	children map[EntityID][]EntityID

	// BossID 当前在场Boss的实体ID，0 = 无Boss
	BossID EntityID
}

// NewWorld 创建空世界
func NewWorld() *World {
	return &World{
		nextID:   1,
		children: make(map[EntityID][]EntityID),
	}
}

// AllocID 分配下一个实体ID（单调递增，局内不复用）
func (w *World) AllocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddEnemy 将敌机加入世界；Boss同时占用Boss槽位
// 同一时刻至多一个Boss在场：槽位已占用时丢弃新Boss并返回 false
func (w *World) AddEnemy(e *Enemy) bool {
	if e.IsBoss() {
		if w.BossID != 0 {
			return false
		}
		w.BossID = e.ID
	}
	w.Enemies = append(w.Enemies, e)
	if e.ParentID != 0 {
		w.Link(e.ParentID, e.ID)
	}
	return true
}

// AddProjectile 将弹丸加入世界
// 超出归属方的同时存在上限时丢弃并返回 false（失控增长防护）
func (w *World) AddProjectile(p *Projectile) bool {
	limit := config.MaxEnemyProjectiles
	if p.Owner == FactionPlayer {
		limit = config.MaxPlayerProjectiles
	}
	if w.CountProjectiles(p.Owner) >= limit {
		return false
	}
	w.Projectiles = append(w.Projectiles, p)
	return true
}

// AddParticle 将粒子加入世界，超出上限时静默丢弃（纯装饰）
func (w *World) AddParticle(pt *Particle) {
	if len(w.Particles) >= config.MaxParticles {
		return
	}
	w.Particles = append(w.Particles, pt)
}

// CountProjectiles 统计指定归属方的存活弹丸数
func (w *World) CountProjectiles(owner Faction) int {
	n := 0
	for _, p := range w.Projectiles {
		if !p.Dead && p.Owner == owner {
			n++
		}
	}
	return n
}

// CountProjectilesOf 统计指定武器ID的存活弹丸数（水雷/浮游炮的种类上限用）
func (w *World) CountProjectilesOf(weaponID string) int {
	n := 0
	for _, p := range w.Projectiles {
		if !p.Dead && p.WeaponID == weaponID {
			n++
		}
	}
	return n
}

// FindEnemy 按ID查找存活敌机，未找到或已标记移除返回 nil
func (w *World) FindEnemy(id EntityID) *Enemy {
	for _, e := range w.Enemies {
		if e.ID == id && !e.Dead {
			return e
		}
	}
	return nil
}

// ActiveBoss 返回在场Boss，无Boss返回 nil
func (w *World) ActiveBoss() *Enemy {
	if w.BossID == 0 {
		return nil
	}
	return w.FindEnemy(w.BossID)
}

// Link 在父子索引中登记一条从属关系
func (w *World) Link(parent, child EntityID) {
	w.children[parent] = append(w.children[parent], child)
}

// Children 返回父实体的全部子实体ID
func (w *World) Children(parent EntityID) []EntityID {
	return w.children[parent]
}

// CascadeKill 级联标记父实体的所有后代为待移除
// 同一步进内完成，避免悬空从属单位存活到下一步
func (w *World) CascadeKill(parent EntityID) int {
	killed := 0
	for _, childID := range w.children[parent] {
		child := w.FindEnemy(childID)
		if child == nil {
			continue
		}
		child.MarkDead()
		killed++
		killed += w.CascadeKill(childID)
	}
	return killed
}

// ClearBossSlot 释放Boss槽位（Boss死亡结算时调用）
func (w *World) ClearBossSlot() {
	w.BossID = 0
}

// Prune 过滤全部已标记移除的实体并清理父子索引
// 必须且只能在步进末尾调用一次
func (w *World) Prune() {
	liveEnemies := w.Enemies[:0]
	removed := make(map[EntityID]bool)
	for _, e := range w.Enemies {
		if e.Dead {
			removed[e.ID] = true
			continue
		}
		liveEnemies = append(liveEnemies, e)
	}
	w.Enemies = liveEnemies

	liveProjectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Dead {
			liveProjectiles = append(liveProjectiles, p)
		}
	}
	w.Projectiles = liveProjectiles

	liveParticles := w.Particles[:0]
	for _, pt := range w.Particles {
		if !pt.Dead {
			liveParticles = append(liveParticles, pt)
		}
	}
	w.Particles = liveParticles

	// 清理父子索引：死亡实体既不再作为父节点，也从兄弟列表中剔除
	for id := range removed {
		delete(w.children, id)
	}
	for parent, kids := range w.children {
		liveKids := kids[:0]
		for _, kid := range kids {
			if !removed[kid] {
				liveKids = append(liveKids, kid)
			}
		}
		if len(liveKids) == 0 {
			delete(w.children, parent)
		} else {
			w.children[parent] = liveKids
		}
	}

	if w.BossID != 0 && removed[w.BossID] {
		w.BossID = 0
	}
}
