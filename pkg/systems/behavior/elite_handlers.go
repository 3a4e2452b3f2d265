package behavior

import (
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/utils"
)

// 精英敌机共用的蓄力-释放-硬直循环参数
const (
	eliteBurstGap      = 6  // 精英炮手连射的弹间隔（帧）
	eliteRecoverFrames = 60 // 释放后的硬直帧数
	eliteDashFrames    = 45 // 精英冲锋的冲刺持续帧数
)

// eliteCharge 读取蓄力阈值，未配置时给保底值
func eliteCharge(ctx *Context, e *entities.Enemy) int {
	charge := ctx.Cfg.Enemies.Get(e.Type).ChargeFrames
	if charge <= 0 {
		charge = 120
	}
	return charge
}

// updateEliteGunner 精英炮手：蓄力计数满后定量连射，连射间硬直
func updateEliteGunner(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.EliteData)
	if !ok {
		e.MarkDead()
		return
	}

	switch d.State {
	case entities.EliteGathering:
		// 蓄力期间缓慢压向作战高度
		if e.Y < 130 {
			e.VX, e.VY = 0, e.Speed
		} else {
			e.VX, e.VY = 0, 0
		}
		e.Advance()

		d.Charge++
		if d.Charge >= eliteCharge(ctx, e) {
			d.Charge = 0
			burst := ctx.Cfg.Enemies.Get(e.Type).BurstCount
			if burst <= 0 {
				burst = 5
			}
			d.BurstLeft = burst
			d.State = entities.EliteReleasing
		}

	case entities.EliteReleasing:
		e.AttackTimer++
		if e.AttackTimer >= eliteBurstGap {
			e.AttackTimer = 0
			fireAimed(ctx, e)
			d.BurstLeft--
			if d.BurstLeft <= 0 {
				d.Recover = eliteRecoverFrames
				d.State = entities.EliteRecovering
			}
		}

	case entities.EliteRecovering:
		d.Recover--
		if d.Recover <= 0 {
			d.State = entities.EliteGathering
		}
	}
}

// updateEliteCharger 精英冲锋：蓄力后锁定玩家位置冲刺，冲刺后硬直回位
func updateEliteCharger(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.EliteData)
	if !ok {
		e.MarkDead()
		return
	}

	switch d.State {
	case entities.EliteGathering:
		if e.Y < 110 {
			e.VX, e.VY = 0, e.Speed
			e.Advance()
		} else {
			// 蓄力抖动预告冲刺
			e.X += (ctx.Rng.Float64() - 0.5) * 1.5
		}

		d.Charge++
		if d.Charge >= eliteCharge(ctx, e) {
			d.Charge = 0
			p := ctx.World.Player
			targetX, targetY := e.X, config.ArenaHeight
			if p != nil && !p.Dead {
				targetX, targetY = p.X, p.Y
			}
			e.VX, e.VY = utils.VelocityToward(e.X, e.Y, targetX, targetY, e.Speed*4)
			d.BurstLeft = eliteDashFrames
			d.State = entities.EliteReleasing
		}

	case entities.EliteReleasing:
		e.Advance()
		d.BurstLeft--
		if cullIfGone(e) {
			return
		}
		if d.BurstLeft <= 0 {
			e.VX, e.VY = 0, 0
			d.Recover = eliteRecoverFrames
			d.State = entities.EliteRecovering
		}

	case entities.EliteRecovering:
		// 硬直期间缓慢退回作战高度
		if e.Y > 110 {
			e.Y -= 1.2
		}
		d.Recover--
		if d.Recover <= 0 {
			d.State = entities.EliteGathering
		}
	}
}
