package behavior

import (
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// runPattern 执行当前变体/阶段的常规攻击模式
// SubTimer 为模式内的高频计时（每个敌方活跃步进递增）
func runPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	d.SubTimer++

	switch e.Variant {
	case types.BossVanguard:
		vanguardPattern(ctx, e, d)
	case types.BossTwinstrike:
		twinstrikePattern(ctx, e, d)
	case types.BossMatron:
		matronPattern(ctx, e, d)
	case types.BossPhantom:
		phantomPattern(ctx, e, d)
	case types.BossWarden:
		wardenPattern(ctx, e, d)
	case types.BossOverlord:
		overlordPattern(ctx, e, d)
	default:
		// 未知变体退化为朝玩家单发
		if d.SubTimer%e.FireInterval == 0 {
			fireAimed(ctx, e)
		}
	}
}

// fireFan 以玩家方向为中心发射扇形弹幕
func fireFan(ctx *Context, e *entities.Enemy, count int, spreadRad, speed float64) {
	p := ctx.World.Player
	base := 0.0
	if p != nil && !p.Dead {
		base = utils.CalculateTargetAngle(e.X, e.Y, p.X, p.Y)
	}
	if count <= 1 {
		fireAt(ctx, e, base, speed)
		return
	}
	step := spreadRad / float64(count-1)
	for i := 0; i < count; i++ {
		fireAt(ctx, e, base-spreadRad/2+step*float64(i), speed)
	}
}

// fireRing 以自身为中心发射全向弹环，phase 控制弹环旋转偏移
func fireRing(ctx *Context, e *entities.Enemy, count int, speed, phase float64) {
	for i := 0; i < count; i++ {
		fireAt(ctx, e, phase+2*math.Pi*float64(i)/float64(count), speed)
	}
}

// vanguardPattern 先锋舰：扇形齐射入门弹幕，二阶段加宽加密
func vanguardPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	if d.SubTimer%e.FireInterval != 0 {
		return
	}
	if d.Phase == 1 {
		fireFan(ctx, e, 5, 0.9, e.ShotSpeed)
		return
	}
	fireFan(ctx, e, 7, 1.3, e.ShotSpeed*1.15)
	if d.SubTimer%(e.FireInterval*2) == 0 {
		fireAimed(ctx, e)
	}
}

// twinstrikePattern 双子舰：左右舷交替齐射，二阶段双舷同时+瞄准弹
func twinstrikePattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	if d.SubTimer%e.FireInterval != 0 {
		return
	}

	volley := func(offsetX float64) {
		for _, angle := range []float64{-0.4, -0.15, 0.15, 0.4} {
			ctx.World.AddProjectile(entities.NewEnemyShot(
				ctx.World.AllocID(), e.X+offsetX, e.Y,
				math.Sin(angle)*e.ShotSpeed, math.Cos(angle)*e.ShotSpeed, e.ShotDamage))
		}
	}

	if d.Phase == 1 {
		// 交替舷侧
		if (d.SubTimer/e.FireInterval)%2 == 0 {
			volley(-60)
		} else {
			volley(60)
		}
		return
	}
	volley(-60)
	volley(60)
	if d.SubTimer%(e.FireInterval*3) == 0 {
		fireAimed(ctx, e)
	}
}

// matronPattern 螺旋母舰：旋臂螺旋弹幕+周期性召唤从属
func matronPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	arm := float64(d.SubTimer) * 0.22
	if d.Phase == 1 {
		if d.SubTimer%6 == 0 {
			fireAt(ctx, e, arm, e.ShotSpeed)
		}
		if d.SubTimer%300 == 0 {
			spawnMinions(ctx, e, 3, false)
		}
		return
	}
	// 二阶段：双旋臂加速
	if d.SubTimer%5 == 0 {
		fireAt(ctx, e, arm*1.3, e.ShotSpeed*1.1)
		fireAt(ctx, e, arm*1.3+math.Pi, e.ShotSpeed*1.1)
	}
	if d.SubTimer%240 == 0 {
		spawnMinions(ctx, e, 4, false)
	}
}

// phantomPattern 幻影舰：相位瞬移+瞬移后弹环，二阶段召唤幻影分身
func phantomPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	if d.SubTimer%240 == 0 {
		// 瞬移到随机横向位置并放出弹环
		e.X = 120 + ctx.Rng.Float64()*(config.ArenaWidth-240)
		d.EntryTargetX = e.X
		fireRing(ctx, e, 12, e.ShotSpeed, ctx.Rng.Float64()*math.Pi)
	}

	if d.SubTimer%e.FireInterval == 0 {
		fireAimed(ctx, e)
	}

	if d.Phase == 2 && d.SubTimer%420 == 0 {
		spawnClones(ctx, e)
	}
}

// spawnClones 幻影舰召唤左右两具分身（分身限时存在）
func spawnClones(ctx *Context, boss *entities.Enemy) {
	stats := ctx.Cfg.Enemies.Get(types.EnemyBossClone)
	hpScale := ctx.Cfg.Difficulty.Get(ctx.State.Difficulty).HPScale
	for _, offset := range []float64{-150, 150} {
		x := utils.Clamp(boss.X+offset, 60, config.ArenaWidth-60)
		ctx.World.AddEnemy(entities.NewBossClone(
			ctx.World.AllocID(), boss, stats, hpScale, x, boss.Y+30))
	}
}

// wardenPattern 狱守舰：旋转弹环压制，二阶段的终极技为禁闭领域
func wardenPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	if d.SubTimer%e.FireInterval == 0 {
		fireRing(ctx, e, 10, e.ShotSpeed*0.9, float64(d.SubTimer)*0.05)
	}
	if d.Phase == 2 && d.SubTimer%(e.FireInterval*2) == 0 {
		fireFan(ctx, e, 3, 0.5, e.ShotSpeed*1.2)
	}
}

// overlordPattern 霸主舰：按子模式轮转借用其他变体的全部武库
func overlordPattern(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	switch d.PatternIndex % 3 {
	case 0:
		vanguardPattern(ctx, e, d)
	case 1:
		matronPattern(ctx, e, d)
	default:
		wardenPattern(ctx, e, d)
	}
}

// runUltimate 执行门控终极技（仅 Warden / Overlord 到达此处）
//
// 发动后的首个活跃步进召唤终极技从属；从属全灭或持续时间耗尽时
// 终极技消散（消散判定在 runBossAttack）
// Warden：禁闭领域 —— 从属看守 + 边界反弹弹充满竞技场
// Overlord：从属环卫 + 领域弹幕压制
func runUltimate(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	d.SubTimer++

	if d.UltimateLeft == bossUltimateFrames-1 {
		spawnMinions(ctx, e, ultimateMinionCount(e.Variant), true)
	}

	switch e.Variant {
	case types.BossWarden:
		if d.SubTimer%18 == 0 {
			angle := ctx.Rng.Float64() * 2 * math.Pi
			ctx.World.AddProjectile(entities.NewEnemyBounceShot(
				ctx.World.AllocID(), e.X, e.Y,
				math.Sin(angle)*e.ShotSpeed, math.Cos(angle)*e.ShotSpeed,
				e.ShotDamage, 3))
		}

	case types.BossOverlord:
		if d.SubTimer%20 == 0 {
			fireRing(ctx, e, 14, e.ShotSpeed, float64(d.SubTimer)*0.04)
		}
	}
}

// ultimateMinionCount 各变体终极技召唤的从属数量
func ultimateMinionCount(v types.BossVariant) int {
	if v == types.BossOverlord {
		return 4
	}
	return 3
}
