package behavior

import (
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// Boss行为节奏常量
const (
	bossPatternPeriod  = 360 // 攻击子模式轮换周期（帧）
	bossUltimatePeriod = 600 // 门控终极技的尝试周期（帧）
	bossUltimateFrames = 180 // 终极技持续帧数
)

// updateBoss Boss状态机：入场 → 战斗（阶段1/2）→ 阶段转换 → 击破
func updateBoss(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.BossData)
	if !ok {
		e.MarkDead()
		return
	}

	switch d.State {
	case entities.BossEntering:
		// 向入场锚点插值，入场期间不攻击也不受玩家干扰节奏影响
		e.X = utils.Lerp(e.X, d.EntryTargetX, 0.04)
		e.Y = utils.Lerp(e.Y, d.EntryTargetY, 0.04)
		if math.Abs(e.Y-d.EntryTargetY) < 2 {
			e.Y = d.EntryTargetY
			d.State = entities.BossFighting
			d.FightFrames = 0
			log.Printf("[BehaviorSystem] Boss %s entered the arena", e.Variant)
		}

	case entities.BossFighting:
		d.FightFrames++
		bossSway(e, d)

		// 二阶段转换恰好触发一次：生命比例跌破阈值时进入转换窗口
		if d.Phase == 1 && !d.Transitioned && e.HPFraction() < config.BossPhaseThreshold {
			beginPhaseTransition(ctx, e, d)
			return
		}

		runBossAttack(ctx, e, d)

	case entities.BossTransitioning:
		d.TransitionLeft--
		if d.TransitionLeft <= 0 {
			d.Phase = 2
			d.State = entities.BossFighting
			d.FightFrames = 0
			d.PatternIndex = 0
			d.SubTimer = 0
			e.DamageCut = 0
			log.Printf("[BehaviorSystem] Boss %s entered phase 2", e.Variant)
		}

	case entities.BossDefeated:
		// 击杀结算已接管，无行为
	}
}

// bossSway Boss战斗期间的横向摆动巡航
func bossSway(e *entities.Enemy, d *entities.BossData) {
	e.X = d.EntryTargetX + math.Sin(float64(d.FightFrames)*0.008)*160
	e.Y = d.EntryTargetY + math.Sin(float64(d.FightFrames)*0.013)*18
}

// beginPhaseTransition 进入阶段转换窗口
// 窗口期间不攻击、持有伤害减免，并清除玩家在场弹丸（转换演出）
func beginPhaseTransition(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	d.Transitioned = true
	d.State = entities.BossTransitioning
	d.TransitionLeft = config.BossPhaseTransitionFrames
	d.UltimateActive = false
	e.DamageCut = config.BossPhaseShieldReduction

	for _, proj := range ctx.World.Projectiles {
		if !proj.Dead && proj.Owner == entities.FactionPlayer {
			proj.MarkDead()
		}
	}
	log.Printf("[BehaviorSystem] Boss %s phase transition started (hp=%d/%d)", e.Variant, e.HP, e.MaxHP)
}

// runBossAttack 分发当前变体/阶段的攻击模式
// Warden 与 Overlord 在二阶段持有门控终极技：发动消耗自身生命，
// 生命不足以支付时回退到本阶段的0号模式，绝不停摆
func runBossAttack(ctx *Context, e *entities.Enemy, d *entities.BossData) {
	// 子模式轮换
	if d.FightFrames%bossPatternPeriod == 0 {
		d.PatternIndex++
		d.SubTimer = 0
	}

	if d.UltimateActive {
		d.UltimateLeft--
		ended := d.UltimateLeft <= 0
		// 从属全灭时终极技提前消散（召唤发生在发动后的首个活跃步进）
		if !ended && d.UltimateLeft < bossUltimateFrames-1 && liveUltimateMinionCount(ctx, e) == 0 {
			ended = true
		}
		if ended {
			d.UltimateActive = false
			expireUltimateMinions(ctx, e)
		} else {
			runUltimate(ctx, e, d)
			return
		}
	}

	if hasGatedUltimate(e.Variant) && d.Phase == 2 && d.FightFrames%bossUltimatePeriod == 0 {
		cost := int(math.Ceil(float64(e.MaxHP) * config.BossUltimateHPCostFrac))
		if e.HP > cost {
			e.HP -= cost
			d.UltimateActive = true
			d.UltimateLeft = bossUltimateFrames
			log.Printf("[BehaviorSystem] Boss %s paid %d hp for ultimate", e.Variant, cost)
			return
		}
		// 支付不起：回退为本阶段0号模式继续压制
		d.PatternIndex = 0
	}

	runPattern(ctx, e, d)
}

// hasGatedUltimate 判断变体是否持有门控终极技
func hasGatedUltimate(v types.BossVariant) bool {
	return v == types.BossWarden || v == types.BossOverlord
}

// expireUltimateMinions 终极技结束时清理由它召唤的从属单位
func expireUltimateMinions(ctx *Context, boss *entities.Enemy) {
	for _, id := range ctx.World.Children(boss.ID) {
		m := ctx.World.FindEnemy(id)
		if m == nil {
			continue
		}
		if md, ok := m.Data.(*entities.MinionData); ok && md.FromUltimate {
			m.MarkDead()
		}
	}
}

// liveUltimateMinionCount 统计终极技召唤的存活从属数
func liveUltimateMinionCount(ctx *Context, boss *entities.Enemy) int {
	n := 0
	for _, id := range ctx.World.Children(boss.ID) {
		m := ctx.World.FindEnemy(id)
		if m == nil {
			continue
		}
		if md, ok := m.Data.(*entities.MinionData); ok && md.FromUltimate {
			n++
		}
	}
	return n
}

// liveMinionCount 统计Boss当前存活的从属单位数
func liveMinionCount(ctx *Context, boss *entities.Enemy) int {
	n := 0
	for _, id := range ctx.World.Children(boss.ID) {
		if m := ctx.World.FindEnemy(id); m != nil && m.Type == types.EnemyBossMinion {
			n++
		}
	}
	return n
}

// spawnMinions 围绕Boss召唤一圈从属单位，受同场上限约束
func spawnMinions(ctx *Context, boss *entities.Enemy, count int, fromUltimate bool) {
	stats := ctx.Cfg.Enemies.Get(types.EnemyBossMinion)
	hpScale := ctx.Cfg.Difficulty.Get(ctx.State.Difficulty).HPScale
	for i := 0; i < count; i++ {
		if liveMinionCount(ctx, boss) >= config.MaxBossMinions {
			return
		}
		angle := 2 * math.Pi * float64(i) / float64(count)
		ctx.World.AddEnemy(entities.NewBossMinion(
			ctx.World.AllocID(), boss, stats, hpScale, angle, fromUltimate))
	}
}

// updateBossMinion Boss从属单位：绕父单位公转，周期性瞄准射击
func updateBossMinion(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.MinionData)
	if !ok {
		e.MarkDead()
		return
	}
	parent := ctx.World.FindEnemy(e.ParentID)
	if parent == nil {
		e.MarkDead()
		return
	}

	d.OrbitAngle += 0.04
	e.X = parent.X + math.Sin(d.OrbitAngle)*80
	e.Y = parent.Y + math.Cos(d.OrbitAngle)*80

	if tickShot(e) {
		fireAimed(ctx, e)
	}
}

// updateBossClone Boss幻影分身：限时存在，漂移+瞄准射击
func updateBossClone(ctx *Context, e *entities.Enemy) {
	d, ok := e.Data.(*entities.CloneData)
	if !ok {
		e.MarkDead()
		return
	}
	d.Life--
	if d.Life <= 0 {
		e.MarkDead()
		return
	}

	e.PatternTimer++
	e.X += math.Sin(float64(e.PatternTimer)*0.02) * 1.1
	e.X = utils.Clamp(e.X, 60, config.ArenaWidth-60)

	if tickShot(e) {
		fireAimed(ctx, e)
	}
}
