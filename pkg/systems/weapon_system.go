package systems

import (
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

// WeaponSystem 武器发射系统
//
// 职责：
//   - 按武器各自的发射节奏（对全局步进计数取模）发射弹丸
//   - 在发射时一次性应用伤害乘数（强化、怜悯补偿、限时增益）
//   - 维护水雷/浮游炮等特殊弹种的同时存在上限
//   - 每发弹丸累加会话统计的发射计数
type WeaponSystem struct {
	world *entities.World
	cfg   *config.GameConfig
	state *game.BattleState
	audio game.AudioSink
}

// NewWeaponSystem 创建武器发射系统
func NewWeaponSystem(world *entities.World, cfg *config.GameConfig, state *game.BattleState, audio game.AudioSink) *WeaponSystem {
	return &WeaponSystem{world: world, cfg: cfg, state: state, audio: audio}
}

// Update 执行本步进的武器发射
// 时间迟滞增益不改变玩家的发射节奏（只作用于敌方）
func (s *WeaponSystem) Update() {
	p := s.world.Player
	if p == nil || p.Dead {
		return
	}

	fired := false
	for _, w := range p.Weapons {
		lv, ok := s.cfg.Weapons.Level(w.ID, w.Level)
		if !ok {
			log.Printf("[WeaponSystem] Unknown weapon id %q, skipped", w.ID)
			continue
		}
		if s.state.Tick%lv.FireInterval != 0 {
			continue
		}
		if s.emit(w.ID, lv) {
			fired = true
		}
	}

	if fired {
		s.audio.Play(types.CueShoot)
	}
}

// damageFor 计算发射时刻的最终伤害
// 乘数只在发射时应用一次，已在场的弹丸不受后续乘数变化影响
func (s *WeaponSystem) damageFor(base float64) int {
	mult := s.state.Boosts.DamageMult * s.state.Boosts.AssistMult
	if s.world.Player.HasBuff(types.BuffDamageUp) {
		mult *= 1.5
	}
	dmg := int(math.Round(base * mult))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// emit 发射一件武器的本轮全部弹丸，返回是否实际发射
func (s *WeaponSystem) emit(weaponID string, lv config.WeaponLevel) bool {
	damage := s.damageFor(lv.Damage)

	switch weaponID {
	case types.WeaponMine:
		if s.world.CountProjectilesOf(types.WeaponMine) >= config.MaxMines {
			return false
		}
	case types.WeaponOrbit:
		// 浮游炮为持续存在弹：在场时不重复部署
		if s.world.CountProjectilesOf(types.WeaponOrbit) > 0 {
			return false
		}
		if lv.Count > config.MaxOrbitals {
			lv.Count = config.MaxOrbitals
		}
	}

	count := lv.Count
	if count < 1 {
		count = 1
	}

	emitted := 0
	for i := 0; i < count; i++ {
		angle := spreadAngle(i, count, lv.SpreadDeg)
		proj := s.buildProjectile(weaponID, lv, damage, angle, i, count)
		if proj == nil {
			continue
		}
		if s.world.AddProjectile(proj) {
			s.state.Stats.ShotsFired++
			emitted++
		}
	}
	return emitted > 0
}

// spreadAngle 计算扇形散布中第i发的偏转角（弧度，0 = 正上方）
func spreadAngle(i, count int, spreadDeg float64) float64 {
	if count <= 1 || spreadDeg == 0 {
		return 0
	}
	spread := spreadDeg * math.Pi / 180
	step := spread / float64(count-1)
	return -spread/2 + step*float64(i)
}

// buildProjectile 按武器种类构造弹丸（带标签联合体装配）
func (s *WeaponSystem) buildProjectile(weaponID string, lv config.WeaponLevel, damage int, angle float64, idx, count int) *entities.Projectile {
	p := s.world.Player
	vx := math.Sin(angle) * lv.Speed
	vy := -math.Cos(angle) * lv.Speed

	proj := &entities.Projectile{
		Base: entities.Base{
			ID:         s.world.AllocID(),
			X:          p.X,
			Y:          p.Y - 8,
			VX:         vx,
			VY:         vy,
			HalfExtent: 5,
			Color:      "cyan",
		},
		Owner:    entities.FactionPlayer,
		Damage:   damage,
		WeaponID: weaponID,
		Lifetime: lv.Lifetime,
	}
	if proj.Lifetime <= 0 {
		proj.Lifetime = 120
	}

	switch weaponID {
	case types.WeaponSpread:
		// 觉醒等级的散射炮发射溅射弹
		if lv.SplashRadius > 0 {
			proj.Color = "amber"
			proj.Data = &entities.SplashShot{Radius: lv.SplashRadius, ChainDepth: lv.SplashChain}
		}

	case types.WeaponLaser:
		proj.Color = "white"
		proj.Data = &entities.PierceShot{Budget: lv.Pierce}
	case types.WeaponHoming:
		target := nearestEnemy(s.world, p.X, p.Y, nil)
		var targetID entities.EntityID
		if target != nil {
			targetID = target.ID
		}
		proj.Color = "amber"
		proj.Data = &entities.HomingShot{TargetID: targetID, TurnRate: 0.08}
	case types.WeaponChain:
		proj.Color = "violet"
		proj.Data = &entities.ChainShot{Jumps: lv.ChainJumps, Range: lv.ChainRange}
	case types.WeaponMine:
		proj.HalfExtent = 9
		proj.Color = "steel"
		proj.Data = &entities.MineShot{
			HP:           lv.MineHP,
			Shards:       lv.MineShards,
			SplashRadius: lv.SplashRadius,
			Decel:        0.94,
		}
	case types.WeaponOrbit:
		// 浮游炮均匀分布在公转圆周上
		proj.HalfExtent = 7
		proj.Color = "green"
		proj.VX, proj.VY = 0, 0
		proj.Data = &entities.OrbitShot{
			Angle:       2 * math.Pi * float64(idx) / float64(count),
			Radius:      lv.OrbitRadius,
			AngularVel:  lv.OrbitSpeed,
			HitCooldown: make(map[entities.EntityID]int),
		}
	}
	return proj
}

// nearestEnemy 查找距指定点最近的可碰撞敌机
// exclude 集合中的实体ID被跳过（链式弹的已命中列表）
func nearestEnemy(w *entities.World, x, y float64, exclude map[entities.EntityID]bool) *entities.Enemy {
	var best *entities.Enemy
	bestDist := math.MaxFloat64
	for _, e := range w.Enemies {
		if !e.Collidable() {
			continue
		}
		if exclude != nil && exclude[e.ID] {
			continue
		}
		dx := e.X - x
		dy := e.Y - y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}
