package behavior

import (
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/utils"
)

// cullIfGone 敌机飞出竞技场下缘/侧缘后移除，返回是否已移除
func cullIfGone(e *entities.Enemy) bool {
	if e.Y > config.ArenaHeight+60 || e.X < -80 || e.X > config.ArenaWidth+80 {
		e.MarkDead()
		return true
	}
	return false
}

// fireAimed 朝玩家当前位置发射一颗敌弹
func fireAimed(ctx *Context, e *entities.Enemy) {
	p := ctx.World.Player
	if p == nil || p.Dead {
		return
	}
	ctx.World.AddProjectile(entities.NewEnemyAimedShot(
		ctx.World.AllocID(), e.X, e.Y, p.X, p.Y, e.ShotSpeed, e.ShotDamage))
}

// fireAt 以指定角度发射一颗敌弹（弧度，正下方为0）
func fireAt(ctx *Context, e *entities.Enemy, angle, speed float64) {
	ctx.World.AddProjectile(entities.NewEnemyShot(
		ctx.World.AllocID(), e.X, e.Y,
		math.Sin(angle)*speed, math.Cos(angle)*speed, e.ShotDamage))
}

// tickShot 射击计时推进，到点时返回 true 并复位
func tickShot(e *entities.Enemy) bool {
	if e.FireInterval <= 0 {
		return false
	}
	e.ShotTimer++
	if e.ShotTimer < e.FireInterval {
		return false
	}
	e.ShotTimer = 0
	return true
}

// updateDrone 无人机：直线俯冲，周期性朝下单发
func updateDrone(ctx *Context, e *entities.Enemy) {
	e.Advance()
	if cullIfGone(e) {
		return
	}
	if tickShot(e) {
		fireAt(ctx, e, 0, e.ShotSpeed)
	}
}

// updateZigzag 折线机：横向正弦摆动下压
func updateZigzag(ctx *Context, e *entities.Enemy) {
	e.PatternTimer++
	e.VX = math.Sin(float64(e.PatternTimer)*0.05) * 2.0
	e.VY = e.Speed
	e.Advance()
	if cullIfGone(e) {
		return
	}
	if tickShot(e) {
		fireAimed(ctx, e)
	}
}

// updateTank 装甲艇：缓慢下压，周期性三连扇形射击
func updateTank(ctx *Context, e *entities.Enemy) {
	e.Advance()
	if cullIfGone(e) {
		return
	}
	if !tickShot(e) {
		return
	}
	p := ctx.World.Player
	if p == nil || p.Dead {
		return
	}
	base := utils.CalculateTargetAngle(e.X, e.Y, p.X, p.Y)
	for _, offset := range []float64{-0.25, 0, 0.25} {
		fireAt(ctx, e, base+offset, e.ShotSpeed)
	}
}

// updateSniper 狙击机：下压到悬停高度后缓慢横移，高速瞄准弹
func updateSniper(ctx *Context, e *entities.Enemy) {
	const hoverY = 120.0
	if e.Y < hoverY {
		e.VY = e.Speed
	} else {
		e.VY = 0
		e.PatternTimer++
		e.VX = math.Sin(float64(e.PatternTimer)*0.02) * 0.8
	}
	e.Advance()
	if tickShot(e) {
		fireAimed(ctx, e)
	}
}

// updateSwarm 蜂群：生成时锁定的方向直飞（速度在生成时设置）
func updateSwarm(_ *Context, e *entities.Enemy) {
	e.Advance()
	cullIfGone(e)
}

// updateOrbiter 环绕机：绕下沉锚点公转，沿切向放射敌弹
func updateOrbiter(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.OrbiterData)
	if !ok {
		e.MarkDead()
		return
	}
	d.AnchorY += e.Speed * 0.3
	d.Angle += 0.03
	e.X = d.AnchorX + math.Sin(d.Angle)*d.Radius
	e.Y = d.AnchorY + math.Cos(d.Angle)*d.Radius
	if cullIfGone(e) {
		return
	}
	if tickShot(e) {
		// 沿公转方向向外放射
		fireAt(ctx, e, d.Angle, e.ShotSpeed)
		fireAt(ctx, e, d.Angle+math.Pi, e.ShotSpeed)
	}
}

// updateDasher 突袭机：接近→蓄力（锁定玩家位置）→冲刺
func updateDasher(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.DasherData)
	if !ok {
		e.MarkDead()
		return
	}

	switch d.State {
	case entities.DasherApproach:
		e.VX, e.VY = 0, e.Speed
		e.Advance()
		if e.Y >= 140 {
			d.State = entities.DasherCharging
			charge := ctx.Cfg.Enemies.Get(e.Type).ChargeFrames
			if charge <= 0 {
				charge = 60
			}
			d.Charge = charge
		}

	case entities.DasherCharging:
		// 蓄力抖动，蓄满时锁定玩家当前位置
		e.X += (ctx.Rng.Float64() - 0.5) * 1.2
		d.Charge--
		if d.Charge <= 0 {
			p := ctx.World.Player
			if p != nil {
				d.TargetX, d.TargetY = p.X, p.Y
			} else {
				d.TargetX, d.TargetY = e.X, config.ArenaHeight+100
			}
			e.VX, e.VY = utils.VelocityToward(e.X, e.Y, d.TargetX, d.TargetY, e.Speed*3.5)
			d.State = entities.DasherDashing
		}

	case entities.DasherDashing:
		e.Advance()
		cullIfGone(e)
	}
}

// updateSplitter 分裂机：缓慢漂移下压（破片在击杀结算时放出）
func updateSplitter(_ *Context, e *entities.Enemy) {
	e.PatternTimer++
	e.VX = math.Sin(float64(e.PatternTimer)*0.03) * 0.6
	e.VY = e.Speed
	e.Advance()
	cullIfGone(e)
}

// updateMinelayer 布雷艇：下压到巡航高度后横向往返，沿途布设感应水雷
func updateMinelayer(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.MinelayerData)
	if !ok {
		e.MarkDead()
		return
	}

	const cruiseY = 100.0
	if e.Y < cruiseY {
		e.VX, e.VY = 0, e.Speed
	} else {
		e.VY = 0
		if e.VX == 0 {
			e.VX = e.Speed
		}
		if e.X < 40 && e.VX < 0 {
			e.VX = -e.VX
		} else if e.X > config.ArenaWidth-40 && e.VX > 0 {
			e.VX = -e.VX
		}
	}
	e.Advance()

	if e.FireInterval > 0 {
		d.DropTimer++
		if d.DropTimer >= e.FireInterval {
			d.DropTimer = 0
			ctx.World.AddProjectile(entities.NewEnemyMine(
				ctx.World.AllocID(), e.X, e.Y+12, 0, 1.5, e.ShotDamage))
		}
	}
}

// 幽灵机的相位周期：可见段与潜行段各占一半
const ghostPhasePeriod = 180

// updateGhost 幽灵机：相位潜行交替
// 潜行期间不可碰撞且向玩家侧方滑行，显形期间瞄准射击
func updateGhost(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.GhostData)
	if !ok {
		e.MarkDead()
		return
	}

	d.PhaseTimer++
	phased := (d.PhaseTimer/(ghostPhasePeriod/2))%2 == 1

	if phased && !e.Ghost {
		// 入潜：选取玩家上方偏移点作为潜行目标
		e.Ghost = true
		p := ctx.World.Player
		if p != nil {
			offset := (ctx.Rng.Float64() - 0.5) * 240
			d.TargetX = utils.Clamp(p.X+offset, 40, config.ArenaWidth-40)
			d.TargetY = utils.Clamp(p.Y-180, 60, config.ArenaHeight-120)
		}
	} else if !phased && e.Ghost {
		e.Ghost = false
	}

	if e.Ghost {
		e.VX, e.VY = utils.VelocityToward(e.X, e.Y, d.TargetX, d.TargetY, e.Speed*1.6)
		e.Advance()
		return
	}

	e.VX, e.VY = 0, e.Speed*0.3
	e.Advance()
	if cullIfGone(e) {
		return
	}
	if tickShot(e) {
		fireAimed(ctx, e)
	}
}

// 医疗机的治疗半径与单次治疗量
const (
	healerRadius = 140.0
	healerAmount = 8
)

// updateHealer 医疗机：压到支援高度后悬停，周期性治疗半径内友军
func updateHealer(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.HealerData)
	if !ok {
		e.MarkDead()
		return
	}

	const supportY = 90.0
	if e.Y < supportY {
		e.VX, e.VY = 0, e.Speed
	} else {
		e.VY = 0
		e.PatternTimer++
		e.VX = math.Sin(float64(e.PatternTimer)*0.015) * 0.7
	}
	e.Advance()

	if e.FireInterval <= 0 {
		return
	}
	d.HealTimer++
	if d.HealTimer < e.FireInterval {
		return
	}
	d.HealTimer = 0

	rSq := healerRadius * healerRadius
	for _, other := range ctx.World.Enemies {
		if other.Dead || other.ID == e.ID || other.HP >= other.MaxHP {
			continue
		}
		if utils.DistSq(e.X, e.Y, other.X, other.Y) > rSq {
			continue
		}
		other.HP += healerAmount
		if other.HP > other.MaxHP {
			other.HP = other.MaxHP
		}
	}
}

// updateReflector 反射盾机：压到屏障高度后悬停（反射在碰撞结算中处理）
func updateReflector(ctx *Context, e *entities.Enemy) {
	const holdY = 160.0
	if e.Y < holdY {
		e.VX, e.VY = 0, e.Speed
	} else {
		e.VX, e.VY = 0, 0
	}
	e.Advance()
	if tickShot(e) {
		fireAimed(ctx, e)
	}
}

// updateShielder 护盾机：缓慢下压（护盾池在伤害结算中先行吸收）
func updateShielder(ctx *Context, e *entities.Enemy) {
	e.Advance()
	if cullIfGone(e) {
		return
	}
	if tickShot(e) {
		fireAimed(ctx, e)
	}
}
