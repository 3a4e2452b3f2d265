package systems

import (
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/utils"
)

// ProjectileSystem 弹丸运动系统
//
// 职责：
//   - 按弹种语义推进弹丸（直飞/追踪/环绕/减速/反弹）
//   - 递减寿命并剔除飞出竞技场的弹丸
//   - 时间迟滞生效时敌方弹丸隔步推进，玩家弹丸不受影响
type ProjectileSystem struct {
	world *entities.World
	state *game.BattleState
}

// NewProjectileSystem 创建弹丸运动系统
func NewProjectileSystem(world *entities.World, state *game.BattleState) *ProjectileSystem {
	return &ProjectileSystem{world: world, state: state}
}

// 弹丸飞出该边距后视为脱离战场
const cullMargin = 60.0

// Update 推进全部弹丸一步
func (s *ProjectileSystem) Update() {
	enemyActive := s.state.EnemyTickActive()

	for _, p := range s.world.Projectiles {
		if p.Dead {
			continue
		}
		if p.Owner == entities.FactionEnemy && !enemyActive {
			continue
		}
		s.advance(p)

		p.Lifetime--
		if p.Lifetime <= 0 {
			p.MarkDead()
			continue
		}
		if s.outOfArena(p) {
			p.MarkDead()
		}
	}
}

// advance 按弹种推进单颗弹丸
func (s *ProjectileSystem) advance(p *entities.Projectile) {
	switch d := p.Data.(type) {
	case *entities.HomingShot:
		s.steerHoming(p, d)
		p.Advance()

	case *entities.OrbitShot:
		s.followOrbit(p, d)

	case *entities.MineShot:
		// 投放后减速漂浮，近停时进入警戒状态
		p.VX *= d.Decel
		p.VY *= d.Decel
		p.Advance()
		if !d.Armed && math.Hypot(p.VX, p.VY) < 0.3 {
			d.Armed = true
		}

	case *entities.DecelShot:
		p.VX *= d.Decel
		p.VY *= d.Decel
		p.Advance()

	case *entities.BounceShot:
		p.Advance()
		s.bounce(p, d)

	default:
		p.Advance()
	}
}

// steerHoming 追踪弹转向：每步向目标方向修正至多 TurnRate 弧度
// 目标消失后保持当前方向直飞
func (s *ProjectileSystem) steerHoming(p *entities.Projectile, d *entities.HomingShot) {
	if d.TargetID == 0 {
		return
	}
	target := s.world.FindEnemy(d.TargetID)
	if target == nil || target.Ghost {
		// 目标消失时就近重锁一次，仍无目标则直飞
		next := nearestEnemy(s.world, p.X, p.Y, nil)
		if next == nil {
			d.TargetID = 0
			return
		}
		d.TargetID = next.ID
		target = next
	}

	speed := math.Hypot(p.VX, p.VY)
	if speed == 0 {
		return
	}
	current := math.Atan2(p.VX, p.VY)
	desired := utils.CalculateTargetAngle(p.X, p.Y, target.X, target.Y)
	diff := utils.NormalizeAngle(desired - current)
	diff = utils.Clamp(diff, -d.TurnRate, d.TurnRate)
	next := current + diff
	p.VX = math.Sin(next) * speed
	p.VY = math.Cos(next) * speed
}

// followOrbit 环绕弹绕玩家公转，玩家消失时原地保持
func (s *ProjectileSystem) followOrbit(p *entities.Projectile, d *entities.OrbitShot) {
	player := s.world.Player
	if player == nil {
		return
	}
	d.Angle += d.AngularVel
	p.X = player.X + math.Sin(d.Angle)*d.Radius
	p.Y = player.Y + math.Cos(d.Angle)*d.Radius

	for id, left := range d.HitCooldown {
		left--
		if left <= 0 {
			delete(d.HitCooldown, id)
		} else {
			d.HitCooldown[id] = left
		}
	}
}

// bounce 反弹弹在竞技场左右/上边界反弹，预算耗尽后允许飞出
func (s *ProjectileSystem) bounce(p *entities.Projectile, d *entities.BounceShot) {
	if d.Bounces <= 0 {
		return
	}
	if p.X < 0 && p.VX < 0 {
		p.VX = -p.VX
		d.Bounces--
	} else if p.X > config.ArenaWidth && p.VX > 0 {
		p.VX = -p.VX
		d.Bounces--
	}
	if d.Bounces <= 0 {
		return
	}
	if p.Y < 0 && p.VY < 0 {
		p.VY = -p.VY
		d.Bounces--
	}
}

// outOfArena 判断弹丸是否已脱离竞技场（含边距）
// 环绕弹跟随玩家，不做脱场判定
func (s *ProjectileSystem) outOfArena(p *entities.Projectile) bool {
	if _, ok := p.Data.(*entities.OrbitShot); ok {
		return false
	}
	return p.X < -cullMargin || p.X > config.ArenaWidth+cullMargin ||
		p.Y < -cullMargin || p.Y > config.ArenaHeight+cullMargin
}
