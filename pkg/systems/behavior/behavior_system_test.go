package behavior

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

// testCfg 构造测试用的内存配置
func testCfg() *config.GameConfig {
	return &config.GameConfig{
		Difficulty: &config.DifficultyConfig{Difficulties: map[string]config.DifficultyEntry{
			"normal": {HPScale: 1.0, SpawnInterval: 90, SpawnFloor: 30, StageStep: 10, LootMultiplier: 1.0, BossHPScale: 1.0},
		}},
		Enemies: &config.EnemyStatsConfig{Enemies: map[string]config.EnemyStatsEntry{
			"drone":        {HP: 20, Speed: 1.5, Score: 100, Radius: 12, FireInterval: 120, ShotSpeed: 2.2, ShotDamage: 8, ContactDamage: 12},
			"dasher":       {HP: 26, Speed: 1.6, Score: 180, Radius: 12, ContactDamage: 16, ChargeFrames: 30},
			"elite_gunner": {HP: 120, Speed: 1.0, Score: 600, Radius: 16, ShotSpeed: 2.4, ShotDamage: 10, ContactDamage: 18, ChargeFrames: 40, BurstCount: 3},
			"boss_minion":  {HP: 25, Speed: 1.0, Score: 80, Radius: 10, FireInterval: 120, ShotSpeed: 2.0, ShotDamage: 6, ContactDamage: 10},
		}},
	}
}

func newTestSystem() *System {
	cfg := testCfg()
	state := game.NewBattleState(types.ModeNormal, types.DifficultyNormal, game.DefaultBoosts(), game.PracticeSpec{})
	world := entities.NewWorld()
	world.Player = entities.NewPlayer(world.AllocID(), nil, nil)
	return NewSystem(world, cfg, state, rand.New(rand.NewSource(7)))
}

func (s *System) addEnemy(t types.EnemyType, x, y float64) *entities.Enemy {
	e := entities.NewEnemy(s.ctx.World.AllocID(), t, s.ctx.Cfg.Enemies.Get(t), 1.0, x, y)
	s.ctx.World.AddEnemy(e)
	return e
}

// fightingBoss 放置一只已进入战斗状态的Boss
func (s *System) fightingBoss(variant types.BossVariant, hp int) (*entities.Enemy, *entities.BossData) {
	boss := entities.NewBoss(s.ctx.World.AllocID(), variant, hp, 1.0, 5000)
	d := boss.Data.(*entities.BossData)
	d.State = entities.BossFighting
	boss.Y = config.BossEntryAnchorY
	s.ctx.World.AddEnemy(boss)
	return boss, d
}

// TestUnknownTypeRemoved 未注册类型的敌机被记录并移除
func TestUnknownTypeRemoved(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyUnknown, 100, 100)

	s.Update()

	if !e.Dead {
		t.Error("enemy of an unregistered type should be removed")
	}
}

// TestFrozenEnemySkipsBehavior 冻结期间只消耗冻结计时，不移动不射击
func TestFrozenEnemySkipsBehavior(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyDrone, 100, 100)
	e.FrozenFrames = 2

	s.Update()

	if e.Y != 100 {
		t.Errorf("frozen enemy must not move, got Y=%v", e.Y)
	}
	if e.FrozenFrames != 1 {
		t.Errorf("expected frozen frames 1, got %d", e.FrozenFrames)
	}
	if len(s.ctx.World.Projectiles) != 0 {
		t.Error("frozen enemy must not fire")
	}
}

// TestWarpSkipsEnemyTicks 时间迟滞在跳过步进整体暂停敌方行为
func TestWarpSkipsEnemyTicks(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyDrone, 100, 100)
	s.ctx.State.TimeWarp = true
	s.ctx.State.Tick = 11

	s.Update()

	if e.Y != 100 {
		t.Errorf("behavior must pause on a skipped warp tick, got Y=%v", e.Y)
	}
}

// TestOrphanFollowerRemoved 父实体消失后从属单位同帧自我移除
func TestOrphanFollowerRemoved(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyDrone, 100, 100)
	e.ParentID = 9999

	s.Update()

	if !e.Dead {
		t.Error("follower without a living parent should be removed")
	}
}

// TestDamageCutExpires 限时伤害减免到期自动清零
func TestDamageCutExpires(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyDrone, 100, 100)
	e.DamageCut = 0.3
	e.DamageCutFrames = 1

	s.Update()

	if e.DamageCut != 0 {
		t.Errorf("expired damage cut should reset, got %v", e.DamageCut)
	}
}

// TestDasherLocksPlayerPositionAtDash 突袭机蓄力满时锁定玩家当时位置冲刺
func TestDasherLocksPlayerPositionAtDash(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyDasher, 480, 139)
	d := e.Data.(*entities.DasherData)

	// 接近：一步压过冲刺触发高度
	updateDasher(s.ctx, e)
	if d.State != entities.DasherCharging {
		t.Fatalf("expected charging state, got %v", d.State)
	}
	if d.Charge != 30 {
		t.Fatalf("expected configured charge 30, got %d", d.Charge)
	}

	// 蓄力耗尽后锁定玩家位置
	for i := 0; i < 30; i++ {
		updateDasher(s.ctx, e)
	}
	if d.State != entities.DasherDashing {
		t.Fatalf("expected dashing state, got %v", d.State)
	}
	p := s.ctx.World.Player
	if d.TargetX != p.X || d.TargetY != p.Y {
		t.Errorf("dash target should lock the player position, got (%v, %v)", d.TargetX, d.TargetY)
	}
	if e.VY <= 0 {
		t.Error("dash toward the player below should move downward")
	}
}

// TestEliteGunnerBurstCycle 精英炮手蓄力满后定量连射并进入硬直
func TestEliteGunnerBurstCycle(t *testing.T) {
	s := newTestSystem()
	e := s.addEnemy(types.EnemyEliteGunner, 480, 130)
	d := e.Data.(*entities.EliteData)

	for i := 0; i < 40; i++ {
		updateEliteGunner(s.ctx, e)
	}
	if d.State != entities.EliteReleasing {
		t.Fatalf("expected releasing after charge threshold, got %v", d.State)
	}
	if d.BurstLeft != 3 {
		t.Fatalf("expected configured burst 3, got %d", d.BurstLeft)
	}

	// 3发 × 6帧弹间隔
	for i := 0; i < 18; i++ {
		updateEliteGunner(s.ctx, e)
	}
	if got := len(s.ctx.World.Projectiles); got != 3 {
		t.Errorf("expected 3 burst shots, got %d", got)
	}
	if d.State != entities.EliteRecovering {
		t.Errorf("expected recovering after the burst, got %v", d.State)
	}
}

// TestBossPhaseTransitionExactlyOnce 二阶段转换恰好触发一次
func TestBossPhaseTransitionExactlyOnce(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossVanguard, 1000)
	boss.HP = 399 // 阈值0.40以下
	stray := &entities.Projectile{
		Base:  entities.Base{ID: s.ctx.World.AllocID(), X: 100, Y: 100, HalfExtent: 5},
		Owner: entities.FactionPlayer, Damage: 10, Lifetime: 120,
	}
	s.ctx.World.AddProjectile(stray)

	updateBoss(s.ctx, boss)

	if d.State != entities.BossTransitioning {
		t.Fatalf("expected transition to start, got state %v", d.State)
	}
	if !d.Transitioned {
		t.Fatal("transition flag should be set")
	}
	if boss.DamageCut != 0.5 {
		t.Errorf("expected transition damage cut 0.5, got %v", boss.DamageCut)
	}
	if !stray.Dead {
		t.Error("player projectiles should be cleared at transition start")
	}

	// 转换窗口结束后进入二阶段，减免解除
	for i := 0; i < 300; i++ {
		updateBoss(s.ctx, boss)
	}
	if d.Phase != 2 || d.State != entities.BossFighting {
		t.Fatalf("expected phase 2 fighting, got phase %d state %v", d.Phase, d.State)
	}
	if boss.DamageCut != 0 {
		t.Errorf("damage cut should lift after the transition, got %v", boss.DamageCut)
	}

	// 二阶段继续掉血不会再次触发转换
	boss.HP = 100
	updateBoss(s.ctx, boss)
	if d.State == entities.BossTransitioning {
		t.Error("transition must not trigger a second time")
	}
}

// TestBossUltimatePaysHPCost 门控终极技消耗自身最大生命的8%
func TestBossUltimatePaysHPCost(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossWarden, 6000)
	d.Phase = 2
	d.Transitioned = true
	d.FightFrames = 599 // 下一步到达尝试周期

	updateBoss(s.ctx, boss)

	if !d.UltimateActive {
		t.Fatal("affordable ultimate should activate")
	}
	if boss.HP != 6000-480 {
		t.Errorf("expected hp 5520 after paying the cost, got %d", boss.HP)
	}
	if d.UltimateLeft != 180 {
		t.Errorf("expected ultimate duration 180, got %d", d.UltimateLeft)
	}
}

// TestBossUltimateFallbackWhenUnaffordable 生命不足以支付时回退到0号模式
func TestBossUltimateFallbackWhenUnaffordable(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossWarden, 6000)
	d.Phase = 2
	d.Transitioned = true
	d.PatternIndex = 2
	d.FightFrames = 599
	boss.HP = 400 // 消耗480，不足以支付

	updateBoss(s.ctx, boss)

	if d.UltimateActive {
		t.Fatal("unaffordable ultimate must not activate")
	}
	if boss.HP != 400 {
		t.Errorf("hp must not be consumed on fallback, got %d", boss.HP)
	}
	if d.PatternIndex != 0 {
		t.Errorf("expected fallback to pattern 0, got %d", d.PatternIndex)
	}
}

// TestUltimateMinionsExpireWithUltimate 终极技结束时清除由它召唤的从属
func TestUltimateMinionsExpireWithUltimate(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossWarden, 6000)
	d.Phase = 2
	d.Transitioned = true
	d.UltimateActive = true
	d.UltimateLeft = 1
	d.FightFrames = 10

	stats := s.ctx.Cfg.Enemies.Get(types.EnemyBossMinion)
	summoned := entities.NewBossMinion(s.ctx.World.AllocID(), boss, stats, 1.0, 0, true)
	regular := entities.NewBossMinion(s.ctx.World.AllocID(), boss, stats, 1.0, 1, false)
	s.ctx.World.AddEnemy(summoned)
	s.ctx.World.AddEnemy(regular)

	updateBoss(s.ctx, boss)

	if d.UltimateActive {
		t.Fatal("ultimate should expire")
	}
	if !summoned.Dead {
		t.Error("ultimate-summoned minion should expire with the ultimate")
	}
	if regular.Dead {
		t.Error("regular minion should survive the ultimate expiry")
	}
}

// TestMinionSpawnRespectsCap 从属单位召唤受同场上限约束
func TestMinionSpawnRespectsCap(t *testing.T) {
	s := newTestSystem()
	boss, _ := s.fightingBoss(types.BossMatron, 2400)

	spawnMinions(s.ctx, boss, config.MaxBossMinions+8, false)

	if got := liveMinionCount(s.ctx, boss); got != config.MaxBossMinions {
		t.Errorf("expected minion count capped at %d, got %d", config.MaxBossMinions, got)
	}
}

// TestUltimateSummonsMinionsOnFirstActiveTick 终极技在发动后的首个活跃步进召唤从属
func TestUltimateSummonsMinionsOnFirstActiveTick(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossWarden, 6000)
	d.Phase = 2
	d.Transitioned = true
	d.UltimateActive = true
	d.UltimateLeft = bossUltimateFrames

	updateBoss(s.ctx, boss)

	if got := liveUltimateMinionCount(s.ctx, boss); got != 3 {
		t.Errorf("expected 3 summoned minions, got %d", got)
	}
	if d.UltimateActive != true {
		t.Error("ultimate should stay active with summons on the field")
	}
}

// TestUltimateEndsEarlyWhenMinionsCleared 从属全灭时终极技提前消散
func TestUltimateEndsEarlyWhenMinionsCleared(t *testing.T) {
	s := newTestSystem()
	boss, d := s.fightingBoss(types.BossWarden, 6000)
	d.Phase = 2
	d.Transitioned = true
	d.UltimateActive = true
	d.UltimateLeft = 100

	updateBoss(s.ctx, boss)

	if d.UltimateActive {
		t.Error("ultimate with all summons cleared should dissipate early")
	}
}
