package systems

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/types"
)

// TestDamageEnemyShieldFirst 护盾池先于生命值吸收伤害
func TestDamageEnemyShieldFirst(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	e := r.addDrone(480, 200)
	e.Shield = 15
	hp := e.HP

	r.combat.DamageEnemy(e, 10, false)
	if e.Shield != 5 {
		t.Errorf("expected shield 5 after absorbing 10, got %d", e.Shield)
	}
	if e.HP != hp {
		t.Errorf("hp should be untouched while shield holds, got %d want %d", e.HP, hp)
	}

	// 穿透护盾的剩余伤害进入生命值
	r.combat.DamageEnemy(e, 12, false)
	if e.Shield != 0 {
		t.Errorf("expected shield depleted, got %d", e.Shield)
	}
	if e.HP != hp-7 {
		t.Errorf("expected hp %d, got %d", hp-7, e.HP)
	}
}

// TestFrozenBonusOnlyOnDirectHits 冻结易伤只对武器直接命中生效
func TestFrozenBonusOnlyOnDirectHits(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	e := r.addDrone(480, 200)
	e.HP = 100
	e.MaxHP = 100
	e.FrozenFrames = 60

	r.combat.DamageEnemy(e, 10, true)
	if e.HP != 85 {
		t.Errorf("direct hit on frozen enemy should deal 15, hp=%d", e.HP)
	}
	r.combat.DamageEnemy(e, 10, false)
	if e.HP != 75 {
		t.Errorf("indirect damage should not get the frozen bonus, hp=%d", e.HP)
	}
}

// TestKillPayoutExactlyOnce 致死后的重复伤害不再产生分数
func TestKillPayoutExactlyOnce(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	e := r.addDrone(480, 200)

	r.combat.DamageEnemy(e, 999, false)
	score := r.state.Score
	kills := r.state.Stats.Kills
	if kills != 1 || score != e.Score {
		t.Fatalf("expected single payout (score=%d kills=%d), got score=%d kills=%d",
			e.Score, 1, score, kills)
	}

	r.combat.DamageEnemy(e, 999, false)
	if r.state.Score != score || r.state.Stats.Kills != kills {
		t.Errorf("dead enemy produced a second payout")
	}
}

// TestChainJumpTransfersToNeighbor 链式弹命中后消耗预算并转向邻近敌机
func TestChainJumpTransfersToNeighbor(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	a := r.addDrone(480, 200)
	b := r.addDrone(540, 200)

	proj := r.playerShot(480, 200, 8)
	proj.Data = &entities.ChainShot{Jumps: 2, Range: 160}

	r.combat.Resolve()

	d := proj.Data.(*entities.ChainShot)
	if proj.Dead {
		t.Fatal("chain shot should survive the first hit with jumps remaining")
	}
	if d.Jumps != 1 {
		t.Errorf("expected 1 jump left, got %d", d.Jumps)
	}
	if !d.Struck(a.ID) {
		t.Error("first target should be recorded in the hit set")
	}
	if proj.X != a.X || proj.Y != a.Y {
		t.Errorf("projectile should relocate to the struck enemy, at (%f,%f)", proj.X, proj.Y)
	}
	if proj.VX <= 0 {
		t.Errorf("projectile should head toward the neighbor at x=%f, vx=%f", b.X, proj.VX)
	}
}

// TestChainJumpDiesWithoutTarget 无可跳目标时链式弹销毁
func TestChainJumpDiesWithoutTarget(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	r.addDrone(480, 200)

	proj := r.playerShot(480, 200, 8)
	proj.Data = &entities.ChainShot{Jumps: 2, Range: 160}

	r.combat.Resolve()
	if !proj.Dead {
		t.Error("chain shot with no reachable neighbor should die")
	}
}

// TestGrazeOncePerProjectile 每颗敌弹至多产生一次擦弹奖励
func TestGrazeOncePerProjectile(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	p := r.world.Player
	r.enemyShot(p.X+15, p.Y, 0, 1, 8)

	r.combat.Resolve()
	if r.state.Stats.GrazeCount != 1 {
		t.Fatalf("expected 1 graze, got %d", r.state.Stats.GrazeCount)
	}
	if r.state.Score != config.GrazeScore {
		t.Errorf("expected graze score %d, got %d", config.GrazeScore, r.state.Score)
	}

	r.combat.Resolve()
	if r.state.Stats.GrazeCount != 1 {
		t.Errorf("same projectile grazed twice")
	}
}

// TestPlayerReviveConsumesStockAndClearsBullets 复活消耗存量、满血复原并清空敌弹
func TestPlayerReviveConsumesStockAndClearsBullets(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	p := r.world.Player
	p.HP = 5
	p.Revives = 1
	stray := r.enemyShot(100, 100, 0, 1, 8)
	r.enemyShot(p.X, p.Y, 0, 1, 50)

	r.combat.Resolve()

	if p.Dead {
		t.Fatal("player with a revive in stock should not die")
	}
	if p.Revives != 0 {
		t.Errorf("expected revive consumed, got %d", p.Revives)
	}
	if p.HP != p.MaxHP {
		t.Errorf("expected full hp after revive, got %d", p.HP)
	}
	if p.InvulnFrames != config.PlayerReviveInvulnFrames {
		t.Errorf("expected revive invuln %d, got %d", config.PlayerReviveInvulnFrames, p.InvulnFrames)
	}
	if !stray.Dead {
		t.Error("revive should clear all enemy projectiles")
	}
	if r.state.Finished {
		t.Error("battle should continue after a revive")
	}
}

// TestPlayerDeathFinishesOnce 无复活存量时死亡发出恰好一次败北事件
func TestPlayerDeathFinishesOnce(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	p := r.world.Player
	p.HP = 5
	r.enemyShot(p.X, p.Y, 0, 1, 50)

	r.combat.Resolve()

	if !p.Dead || !r.state.Finished {
		t.Fatal("player should die and battle should finish")
	}
	if r.state.Outcome == nil || r.state.Outcome.Victory {
		t.Error("expected a defeat outcome")
	}

	// 重复结束被忽略
	outcome := r.state.Outcome
	r.state.Finish(true)
	if r.state.Outcome != outcome || r.state.Outcome.Victory {
		t.Error("finish must be idempotent")
	}
}

// TestInvulnSuppressesContactDamage 无敌帧期间碰撞不重复结算
func TestInvulnSuppressesContactDamage(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	p := r.world.Player
	e := r.addDrone(p.X, p.Y)

	r.combat.Resolve()
	hpAfterFirst := p.HP
	if hpAfterFirst != p.MaxHP-e.ContactDamage {
		t.Fatalf("expected contact damage %d, hp=%d", e.ContactDamage, hpAfterFirst)
	}

	r.combat.Resolve()
	if p.HP != hpAfterFirst {
		t.Errorf("contact damage applied during invuln frames")
	}
}

// TestEnemyShotConsumesMine 敌弹消耗水雷耐久，耗尽即引爆
func TestEnemyShotConsumesMine(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	mine := &entities.Projectile{
		Base:     entities.Base{ID: r.world.AllocID(), X: 300, Y: 300, HalfExtent: 9},
		Owner:    entities.FactionPlayer,
		Damage:   20,
		WeaponID: types.WeaponMine,
		Lifetime: 600,
		Data:     &entities.MineShot{HP: 2, Shards: 4, SplashRadius: 60, Armed: true},
	}
	r.world.AddProjectile(mine)

	shot := r.enemyShot(300, 300, 0, 0, 8)
	r.combat.Resolve()
	if !shot.Dead {
		t.Error("enemy shot should be absorbed by the mine")
	}
	if mine.Dead {
		t.Fatal("mine should survive the first hit")
	}

	r.enemyShot(300, 300, 0, 0, 8)
	r.combat.Resolve()
	if !mine.Dead {
		t.Error("mine should detonate once its durability is gone")
	}
	// 引爆放出玩家方破片
	shards := 0
	for _, proj := range r.world.Projectiles {
		if !proj.Dead && proj.Owner == entities.FactionPlayer && proj.ID != mine.ID {
			shards++
		}
	}
	if shards != 4 {
		t.Errorf("expected 4 shards after detonation, got %d", shards)
	}
}

// TestBossDefeatAdvancesStage Boss击破推进关卡并级联清理从属
func TestBossDefeatAdvancesStage(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	boss := r.addBoss(types.BossVanguard, 1000)
	minion := entities.NewBossMinion(r.world.AllocID(), boss,
		r.cfg.Enemies.Get(types.EnemyBossMinion), 1.0, 0, false)
	r.world.AddEnemy(minion)
	stray := r.enemyShot(100, 100, 0, 1, 8)

	r.combat.DamageEnemy(boss, 99999, false)

	if !boss.Dead || !minion.Dead {
		t.Fatal("boss death must cascade to its minions")
	}
	if r.state.BossActive {
		t.Error("boss flag should clear on defeat")
	}
	if r.state.Stage != 2 {
		t.Errorf("expected stage 2 after defeat, got %d", r.state.Stage)
	}
	if r.state.StageDelay != config.InterStageDelayFrames {
		t.Errorf("expected inter-stage delay %d, got %d", config.InterStageDelayFrames, r.state.StageDelay)
	}
	if !stray.Dead {
		t.Error("boss defeat should clear leftover enemy projectiles")
	}
	if r.state.Stats.BossKills != 1 {
		t.Errorf("expected 1 boss kill, got %d", r.state.Stats.BossKills)
	}
}

// TestFinalBossVictory 最终关Boss击破在常规难度下触发胜利
func TestFinalBossVictory(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	r.state.Stage = config.FinalStage
	boss := r.addBoss(types.BossOverlord, 10000)

	r.combat.DamageEnemy(boss, 99999, false)

	if !r.state.Finished || r.state.Outcome == nil || !r.state.Outcome.Victory {
		t.Fatal("final stage boss defeat should finish the battle with a victory")
	}
}

// TestEndlessNeverDeclaresVictory 无尽难度最终关之后继续推进
func TestEndlessNeverDeclaresVictory(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyEndless)
	r.state.Stage = config.FinalStage
	boss := r.addBoss(types.BossOverlord, 10000)

	r.combat.DamageEnemy(boss, 99999, false)

	if r.state.Finished {
		t.Fatal("endless difficulty must not declare victory")
	}
	if r.state.Stage != config.FinalStage+1 {
		t.Errorf("expected stage %d, got %d", config.FinalStage+1, r.state.Stage)
	}
}

// TestSplitterReleasesShards 分裂机死亡时放出敌方破片
func TestSplitterReleasesShards(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	e := entities.NewEnemy(r.world.AllocID(), types.EnemySplitter,
		r.cfg.Enemies.Get(types.EnemySplitter), 1.0, 400, 200)
	r.world.AddEnemy(e)

	r.combat.DamageEnemy(e, 999, false)

	shards := 0
	for _, proj := range r.world.Projectiles {
		if !proj.Dead && proj.Owner == entities.FactionEnemy {
			shards++
		}
	}
	if shards != 6 {
		t.Errorf("expected 6 enemy shards, got %d", shards)
	}
}

// TestSplashBurstChains 溅射弹命中后范围爆发并向邻近敌机链式传递
func TestSplashBurstChains(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	a := r.addDrone(480, 200)
	b := r.addDrone(540, 200)
	a.HP, a.MaxHP = 100, 100
	b.HP, b.MaxHP = 100, 100

	proj := r.playerShot(480, 200, 20)
	proj.Data = &entities.SplashShot{Radius: 80, ChainDepth: 1}

	r.combat.Resolve()

	if !proj.Dead {
		t.Fatal("splash shot should be consumed on first hit")
	}
	// 直击20 + 首层爆发10 + 链式爆发5
	if a.HP != 65 {
		t.Errorf("expected struck enemy hp 65, got %d", a.HP)
	}
	// 首层爆发10 + 链式爆发中心5
	if b.HP != 85 {
		t.Errorf("expected chained enemy hp 85, got %d", b.HP)
	}
}

// TestSplashBurstStopsAtDepth 链式预算耗尽后不再传递爆发
func TestSplashBurstStopsAtDepth(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	a := r.addDrone(480, 200)
	b := r.addDrone(540, 200)
	a.HP, a.MaxHP = 100, 100
	b.HP, b.MaxHP = 100, 100

	proj := r.playerShot(480, 200, 20)
	proj.Data = &entities.SplashShot{Radius: 80}

	r.combat.Resolve()

	if a.HP != 70 {
		t.Errorf("expected struck enemy hp 70 without chaining, got %d", a.HP)
	}
	if b.HP != 90 {
		t.Errorf("expected neighbor hp 90 without chaining, got %d", b.HP)
	}
}
