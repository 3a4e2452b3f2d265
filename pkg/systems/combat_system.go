package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// CombatSystem 碰撞与伤害结算系统
//
// 职责：
//   - 玩家弹丸 vs 敌机：命中判定、弹种专属结算（穿透/链式/溅射/水雷/环绕）
//   - 敌方弹丸 vs 玩家：擦弹窄带奖励、受击结算（护盾→生命→复活或败北）
//   - 敌方弹丸 vs 玩家水雷：水雷耐久消耗与引爆
//   - 敌机碰撞 vs 玩家：接触伤害（无敌帧抑制连续结算）
//
// 击杀分账恰好一次：所有伤害来源（武器、法术、溅射）统一经过
// DamageEnemy，由 dead 标记保证同一敌机不被二次结算
type CombatSystem struct {
	world *entities.World
	cfg   *config.GameConfig
	state *game.BattleState
	rng   *rand.Rand
	audio game.AudioSink
}

// NewCombatSystem 创建碰撞与伤害结算系统
func NewCombatSystem(world *entities.World, cfg *config.GameConfig, state *game.BattleState, rng *rand.Rand, audio game.AudioSink) *CombatSystem {
	return &CombatSystem{world: world, cfg: cfg, state: state, rng: rng, audio: audio}
}

// Resolve 执行本步进的全部碰撞结算
// 顺序固定：玩家弹丸→敌弹vs水雷→敌方vs玩家，保证结果可复现
func (c *CombatSystem) Resolve() {
	c.playerShotsVsEnemies()
	c.enemyShotsVsMines()
	c.enemyVsPlayer()
}

// circleHit 圆形近似判定：双方半径之和为命中阈值
func circleHit(x1, y1, r1, x2, y2, r2 float64) bool {
	sum := r1 + r2
	return utils.DistSq(x1, y1, x2, y2) <= sum*sum
}

// playerShotsVsEnemies 玩家弹丸对敌机的命中结算
func (c *CombatSystem) playerShotsVsEnemies() {
	enemies := snapshotEnemies(c.world)

	for _, proj := range c.world.Projectiles {
		if proj.Dead || proj.Owner != entities.FactionPlayer {
			continue
		}
		// 未减速完成的水雷不参与主动判定
		if mine, ok := proj.Data.(*entities.MineShot); ok && !mine.Armed {
			continue
		}

		for _, e := range enemies {
			if !e.Collidable() {
				continue
			}
			if c.alreadyStruck(proj, e.ID) {
				continue
			}
			if !circleHit(proj.X, proj.Y, proj.HalfExtent, e.X, e.Y, e.HalfExtent) {
				continue
			}

			// 反射盾机：正面来弹被原路返还，不造成伤害
			if e.Type == types.EnemyReflector && proj.VY < 0 {
				c.world.AddProjectile(entities.NewReturnShot(c.world.AllocID(), proj, e.ShotDamage))
				SpawnSparkle(c.world, c.rng, proj.X, proj.Y, "violet")
				proj.MarkDead()
				break
			}

			c.hitEnemy(proj, e, enemies)
			if proj.Dead {
				break
			}
		}
	}
}

// alreadyStruck 查询弹丸的已命中集合（穿透弹/链式弹不回头）
func (c *CombatSystem) alreadyStruck(proj *entities.Projectile, id entities.EntityID) bool {
	switch d := proj.Data.(type) {
	case *entities.PierceShot:
		return d.Struck(id)
	case *entities.ChainShot:
		return d.Struck(id)
	case *entities.OrbitShot:
		return d.HitCooldown[id] > 0
	}
	return false
}

// hitEnemy 单次命中的弹种专属结算
func (c *CombatSystem) hitEnemy(proj *entities.Projectile, e *entities.Enemy, enemies []*entities.Enemy) {
	c.DamageEnemy(e, proj.Damage, true)

	switch d := proj.Data.(type) {
	case *entities.PierceShot:
		// 穿透预算耗尽即销毁；-1 为无限穿透
		d.Record(e.ID)
		if d.Budget == 0 {
			proj.MarkDead()
		} else if d.Budget > 0 {
			d.Budget--
		}

	case *entities.ChainShot:
		c.chainJump(proj, d, e, enemies)

	case *entities.MineShot:
		c.detonateMine(proj, d)

	case *entities.OrbitShot:
		// 环绕弹为持续判定：命中后进入对该目标的重复判定冷却
		if d.HitCooldown == nil {
			d.HitCooldown = make(map[entities.EntityID]int)
		}
		d.HitCooldown[e.ID] = 30

	case *entities.SplashShot:
		c.splashBurst(proj.X, proj.Y, d.Radius, proj.Damage/2, d.ChainDepth,
			map[entities.EntityID]bool{e.ID: true})
		proj.MarkDead()

	default:
		// 普通弹/追踪弹：单次命中即销毁
		proj.MarkDead()
	}
}

// chainJump 链式闪电的跳跃转移
// 命中后消耗一次跳跃预算，弹丸瞬移到命中点并转向范围内最近的
// 未命中敌机；预算耗尽或无可跳目标时销毁
func (c *CombatSystem) chainJump(proj *entities.Projectile, d *entities.ChainShot, struck *entities.Enemy, enemies []*entities.Enemy) {
	d.Record(struck.ID)
	if d.Jumps <= 0 {
		proj.MarkDead()
		return
	}
	d.Jumps--

	next := nearestEnemy(c.world, struck.X, struck.Y, d.Hit)
	if next == nil || utils.DistSq(struck.X, struck.Y, next.X, next.Y) > d.Range*d.Range {
		proj.MarkDead()
		return
	}

	speed := math.Hypot(proj.VX, proj.VY)
	if speed == 0 {
		speed = 6.0
	}
	proj.X, proj.Y = struck.X, struck.Y
	proj.VX, proj.VY = utils.VelocityToward(struck.X, struck.Y, next.X, next.Y, speed)
	SpawnSparkle(c.world, c.rng, struck.X, struck.Y, "violet")
}

// detonateMine 引爆玩家水雷：溅射伤害 + 放射破片
func (c *CombatSystem) detonateMine(proj *entities.Projectile, d *entities.MineShot) {
	if proj.Dead {
		return
	}
	c.splash(proj.X, proj.Y, d.SplashRadius, proj.Damage)
	phase := c.rng.Float64() * 2 * math.Pi
	for i := 0; i < d.Shards; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(d.Shards)
		shard := entities.NewShard(c.world.AllocID(), entities.FactionPlayer,
			proj.X, proj.Y, angle, 4.5, proj.Damage/3)
		c.world.AddProjectile(shard)
	}
	SpawnExplosion(c.world, c.rng, proj.X, proj.Y, "amber", 16)
	c.audio.Play(types.CueExplosion)
	proj.MarkDead()
}

// splashBurst 溅射爆发：命中点范围伤害后向邻近敌机链式传递额外爆发
// 每层爆发伤害减半；visited 集合防止爆发链在同一目标间往返
func (c *CombatSystem) splashBurst(x, y, radius float64, damage, depth int, visited map[entities.EntityID]bool) {
	c.splash(x, y, radius, damage)
	SpawnExplosion(c.world, c.rng, x, y, "amber", 8)
	if depth <= 0 {
		return
	}

	next := nearestEnemy(c.world, x, y, visited)
	if next == nil || utils.DistSq(x, y, next.X, next.Y) > radius*radius {
		return
	}
	visited[next.ID] = true
	c.splashBurst(next.X, next.Y, radius, damage/2, depth-1, visited)
}

// splash 对半径内全部可碰撞敌机施加范围伤害
func (c *CombatSystem) splash(x, y, radius float64, damage int) {
	if damage < 1 {
		damage = 1
	}
	rSq := radius * radius
	for _, e := range snapshotEnemies(c.world) {
		if !e.Collidable() {
			continue
		}
		if utils.DistSq(x, y, e.X, e.Y) <= rSq {
			c.DamageEnemy(e, damage, false)
		}
	}
}

// DamageEnemy 对敌机施加伤害并在致死时结算击杀
//
// 参数：
//   - damage: 基础伤害值
//   - direct: 是否为武器直接命中（冻结易伤加成只对直接命中生效，
//     溅射与法术不重复吃加成）
//
// 扣减顺序：冻结加成 → 伤害减免 → 护盾池 → 生命值
func (c *CombatSystem) DamageEnemy(e *entities.Enemy, damage int, direct bool) {
	if e == nil || e.Dead || damage <= 0 {
		return
	}

	if direct && e.Frozen() {
		damage = int(math.Round(float64(damage) * 1.5))
	}
	if e.DamageCut > 0 {
		damage = int(math.Round(float64(damage) * (1 - e.DamageCut)))
		if damage < 1 {
			damage = 1
		}
	}

	if e.Shield > 0 {
		if damage <= e.Shield {
			e.Shield -= damage
			return
		}
		damage -= e.Shield
		e.Shield = 0
	}

	e.HP -= damage
	if e.HP <= 0 {
		c.killEnemy(e)
	}
}

// killEnemy 击杀结算：分数、货币、统计、死亡派生物、Boss流程
// dead 标记保证对同一敌机恰好执行一次
func (c *CombatSystem) killEnemy(e *entities.Enemy) {
	if e.Dead {
		return
	}
	e.MarkDead()

	c.state.AddScore(e.Score)
	loot := c.cfg.Difficulty.Get(c.state.Difficulty).LootMultiplier
	currency := int(math.Round(float64(e.Score) / 10 * loot * c.state.Boosts.LootMult))
	c.state.AddCurrency(currency)

	if e.IsBoss() {
		c.state.Stats.BossKills++
	} else {
		c.state.Stats.Kills++
	}

	// 分裂机死亡时向外放射破片弹（破片环相位随机）
	if e.Type == types.EnemySplitter {
		phase := c.rng.Float64() * 2 * math.Pi
		for i := 0; i < 6; i++ {
			angle := phase + 2*math.Pi*float64(i)/6
			shard := entities.NewShard(c.world.AllocID(), entities.FactionEnemy,
				e.X, e.Y, angle, 2.2, e.ShotDamage)
			c.world.AddProjectile(shard)
		}
	}

	SpawnExplosion(c.world, c.rng, e.X, e.Y, e.Color, 12)
	c.audio.Play(types.CueExplosion)

	if e.IsBoss() {
		c.onBossDefeated(e)
	}
}

// onBossDefeated Boss击破流程：级联清理从属、释放槽位、推进或终局
func (c *CombatSystem) onBossDefeated(boss *entities.Enemy) {
	if d, ok := boss.Data.(*entities.BossData); ok {
		d.State = entities.BossDefeated
	}
	cascaded := c.world.CascadeKill(boss.ID)
	c.world.ClearBossSlot()
	c.state.BossActive = false
	c.state.BossBanner = ""
	c.state.Dialogue = ""
	log.Printf("[CombatSystem] Boss %s defeated (cascade removed %d units)", boss.Variant, cascaded)

	// 残留敌弹清场，给玩家一个干净的间歇期
	for _, proj := range c.world.Projectiles {
		if !proj.Dead && proj.Owner == entities.FactionEnemy {
			proj.MarkDead()
		}
	}

	if c.state.Practice.Enabled {
		c.state.Finish(true)
		return
	}

	if c.state.Stage >= config.FinalStage && !c.state.Difficulty.IsEndless() {
		c.state.Finish(true)
		return
	}
	c.state.AdvanceStage(config.InterStageDelayFrames)
}

// enemyShotsVsMines 敌弹消耗玩家水雷的耐久，耗尽即引爆
func (c *CombatSystem) enemyShotsVsMines() {
	for _, mine := range c.world.Projectiles {
		if mine.Dead || mine.Owner != entities.FactionPlayer {
			continue
		}
		d, ok := mine.Data.(*entities.MineShot)
		if !ok {
			continue
		}

		for _, proj := range c.world.Projectiles {
			if proj.Dead || proj.Owner != entities.FactionEnemy {
				continue
			}
			if !circleHit(mine.X, mine.Y, mine.HalfExtent, proj.X, proj.Y, proj.HalfExtent) {
				continue
			}
			proj.MarkDead()
			SpawnSparkle(c.world, c.rng, proj.X, proj.Y, "steel")
			d.HP--
			if d.HP <= 0 {
				c.detonateMine(mine, d)
				break
			}
		}
	}
}

// enemyVsPlayer 敌方弹丸与敌机本体对玩家的结算
// 擦弹窄带：敌弹进入擦弹半径但未命中时发放一次性奖励
func (c *CombatSystem) enemyVsPlayer() {
	p := c.world.Player
	if p == nil || p.Dead || c.state.Finished {
		return
	}

	grazeSq := config.GrazeRadius * config.GrazeRadius

	for _, proj := range c.world.Projectiles {
		if proj.Dead || proj.Owner != entities.FactionEnemy {
			continue
		}

		if circleHit(proj.X, proj.Y, proj.HalfExtent, p.X, p.Y, p.HalfExtent) {
			proj.MarkDead()
			c.hitPlayer(proj.Damage)
			if p.Dead || c.state.Finished {
				return
			}
			continue
		}

		if !proj.Grazed && utils.DistSq(proj.X, proj.Y, p.X, p.Y) <= grazeSq {
			proj.Grazed = true
			c.state.AddScore(config.GrazeScore)
			c.state.Stats.GrazeCount++
			SpawnSparkle(c.world, c.rng, p.X, p.Y, "white")
			c.audio.Play(types.CueGraze)
		}
	}

	for _, e := range c.world.Enemies {
		if !e.Collidable() {
			continue
		}
		if circleHit(e.X, e.Y, e.HalfExtent, p.X, p.Y, p.HalfExtent) {
			c.hitPlayer(e.ContactDamage)
			if p.Dead || c.state.Finished {
				return
			}
		}
	}
}

// hitPlayer 玩家受击结算
// 顺序：无敌帧抑制 → 减免强化 → 护盾池 → 生命值 → 复活或败北
func (c *CombatSystem) hitPlayer(damage int) {
	p := c.world.Player
	if p.InvulnFrames > 0 || damage <= 0 {
		return
	}

	if c.state.Boosts.IncomingCut > 0 {
		damage = int(math.Round(float64(damage) * (1 - c.state.Boosts.IncomingCut)))
		if damage < 1 {
			damage = 1
		}
	}

	p.FramesSinceHit = 0
	c.audio.Play(types.CuePlayerHit)

	if p.Shield > 0 {
		if damage <= p.Shield {
			p.Shield -= damage
			p.InvulnFrames = config.PlayerHitInvulnFrames
			return
		}
		damage -= p.Shield
		p.Shield = 0
	}

	p.HP -= damage
	if p.HP > 0 {
		p.InvulnFrames = config.PlayerHitInvulnFrames
		return
	}

	if p.Revives > 0 {
		c.revivePlayer()
		return
	}

	p.ClampHP()
	p.MarkDead()
	SpawnExplosion(c.world, c.rng, p.X, p.Y, "cyan", 24)
	log.Printf("[CombatSystem] Player destroyed at stage %d (score=%d)", c.state.Stage, c.state.Score)
	c.state.Finish(false)
}

// revivePlayer 消耗一次复活：满血复原、长无敌、清空全部敌弹
func (c *CombatSystem) revivePlayer() {
	p := c.world.Player
	p.Revives--
	p.HP = p.MaxHP
	p.InvulnFrames = config.PlayerReviveInvulnFrames
	for _, proj := range c.world.Projectiles {
		if !proj.Dead && proj.Owner == entities.FactionEnemy {
			proj.MarkDead()
		}
	}
	SpawnExplosion(c.world, c.rng, p.X, p.Y, "white", 20)
	log.Printf("[CombatSystem] Player revived (%d revives left)", p.Revives)
}
