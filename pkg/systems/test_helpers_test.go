package systems

import (
	"math/rand"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

// testConfig 构造测试用的内存配置，绕过YAML加载
func testConfig() *config.GameConfig {
	return &config.GameConfig{
		Difficulty: &config.DifficultyConfig{Difficulties: map[string]config.DifficultyEntry{
			"normal":  {HPScale: 1.0, SpawnInterval: 90, SpawnFloor: 30, StageStep: 10, LootMultiplier: 1.0, BossHPScale: 1.0},
			"endless": {HPScale: 1.2, SpawnInterval: 80, SpawnFloor: 24, StageStep: 10, LootMultiplier: 1.5, BossHPScale: 1.2},
		}},
		Weapons: &config.WeaponsConfig{Weapons: map[string]config.WeaponEntry{
			types.WeaponBlaster: {Name: "Blaster", Levels: []config.WeaponLevel{
				{Damage: 10, FireInterval: 6, Speed: 8, Count: 1},
				{Damage: 14, FireInterval: 6, Speed: 8, Count: 2, SpreadDeg: 10},
				{Damage: 18, FireInterval: 5, Speed: 9, Count: 3, SpreadDeg: 16},
			}},
			types.WeaponSpread: {Name: "Spread", Levels: []config.WeaponLevel{
				{Damage: 5, FireInterval: 12, Speed: 8, Count: 3, SpreadDeg: 30},
				{Damage: 6, FireInterval: 11, Speed: 8, Count: 5, SpreadDeg: 45},
				{Damage: 7, FireInterval: 10, Speed: 9, Count: 7, SpreadDeg: 60, SplashRadius: 80, SplashChain: 1},
			}},
			types.WeaponChain: {Name: "Chain", Levels: []config.WeaponLevel{
				{Damage: 8, FireInterval: 30, Speed: 7, Count: 1, ChainJumps: 2, ChainRange: 160},
				{Damage: 11, FireInterval: 28, Speed: 7, Count: 1, ChainJumps: 3, ChainRange: 180},
				{Damage: 14, FireInterval: 26, Speed: 8, Count: 1, ChainJumps: 4, ChainRange: 200},
			}},
			types.WeaponOrbit: {Name: "Orbit", Levels: []config.WeaponLevel{
				{Damage: 6, FireInterval: 90, Count: 2, OrbitRadius: 40, OrbitSpeed: 0.05, Lifetime: 600},
				{Damage: 8, FireInterval: 90, Count: 3, OrbitRadius: 44, OrbitSpeed: 0.06, Lifetime: 600},
				{Damage: 10, FireInterval: 90, Count: 4, OrbitRadius: 48, OrbitSpeed: 0.07, Lifetime: 600},
			}},
			types.WeaponMine: {Name: "Mine", Levels: []config.WeaponLevel{
				{Damage: 20, FireInterval: 60, Speed: 3, Count: 1, MineHP: 2, MineShards: 6, SplashRadius: 60},
				{Damage: 26, FireInterval: 55, Speed: 3, Count: 1, MineHP: 3, MineShards: 8, SplashRadius: 70},
				{Damage: 32, FireInterval: 50, Speed: 3, Count: 2, MineHP: 3, MineShards: 8, SplashRadius: 80},
			}},
		}},
		Spells: &config.SpellsConfig{Spells: map[string]config.SpellEntry{
			types.SpellBomb: {Name: "Bomb", Levels: []config.SpellLevel{
				{Cooldown: 900, Power: 50},
				{Cooldown: 810, Power: 80},
				{Cooldown: 720, Power: 120},
			}},
			types.SpellWarp: {Name: "Warp", Levels: []config.SpellLevel{
				{Cooldown: 1350, Duration: 270},
				{Cooldown: 1260, Duration: 360},
				{Cooldown: 1080, Duration: 450},
			}},
			types.SpellFreeze: {Name: "Freeze", Levels: []config.SpellLevel{
				{Cooldown: 1200, Duration: 180},
				{Cooldown: 1100, Duration: 240},
				{Cooldown: 1000, Duration: 300},
			}},
		}},
		Enemies: &config.EnemyStatsConfig{Enemies: map[string]config.EnemyStatsEntry{
			"drone":       {HP: 20, Speed: 1.5, Score: 100, Radius: 12, FireInterval: 120, ShotSpeed: 2.2, ShotDamage: 8, ContactDamage: 12},
			"splitter":    {HP: 30, Speed: 1.2, Score: 150, Radius: 14, ShotDamage: 6, ContactDamage: 12},
			"shielder":    {HP: 40, Speed: 0.8, Score: 220, Radius: 14, FireInterval: 150, ShotSpeed: 2.0, ShotDamage: 8, ContactDamage: 14, Shield: 30},
			"boss_minion": {HP: 25, Speed: 1.0, Score: 80, Radius: 10, FireInterval: 120, ShotSpeed: 2.0, ShotDamage: 6, ContactDamage: 10},
		}},
		Stages: &config.StagesConfig{Stages: []config.StageEntry{
			{Stage: 1, BossVariant: "vanguard", BossHP: 1000, BossTime: 1800, MobPool: []string{"drone"}, Dialogue: "Intruder detected."},
			{Stage: 2, BossVariant: "twinstrike", BossHP: 1600, BossTime: 1800, MobPool: []string{"drone", "splitter"}},
			{Stage: 3, BossVariant: "matron", BossHP: 2400, BossTime: 1800, MobPool: []string{"drone", "shielder"}},
			{Stage: 4, BossVariant: "phantom", BossHP: 3600, BossTime: 1800, MobPool: []string{"drone"}},
			{Stage: 5, BossVariant: "warden", BossHP: 6000, BossTime: 1800, MobPool: []string{"drone"}},
			{Stage: 6, BossVariant: "overlord", BossHP: 10000, BossTime: 1800, MobPool: []string{"drone"}},
		}},
	}
}

// testRig 组装不含时钟的最小结算环境
type testRig struct {
	world  *entities.World
	state  *game.BattleState
	cfg    *config.GameConfig
	combat *CombatSystem
}

func newTestRig(mode types.GameMode, difficulty types.Difficulty) *testRig {
	cfg := testConfig()
	state := game.NewBattleState(mode, difficulty, game.DefaultBoosts(), game.PracticeSpec{})
	world := entities.NewWorld()
	world.Player = entities.NewPlayer(world.AllocID(),
		[]entities.EquippedWeapon{{ID: types.WeaponBlaster, Level: 1}},
		[]entities.EquippedSpell{{ID: types.SpellBomb, Level: 1}})
	rng := rand.New(rand.NewSource(7))
	return &testRig{
		world:  world,
		state:  state,
		cfg:    cfg,
		combat: NewCombatSystem(world, cfg, state, rng, game.NopAudioSink{}),
	}
}

// addDrone 在指定位置放置一只测试无人机
func (r *testRig) addDrone(x, y float64) *entities.Enemy {
	e := entities.NewEnemy(r.world.AllocID(), types.EnemyDrone, r.cfg.Enemies.Get(types.EnemyDrone), 1.0, x, y)
	r.world.AddEnemy(e)
	return e
}

// addBoss 在场上放置一只指定变体的Boss（直接进入战斗状态）
func (r *testRig) addBoss(variant types.BossVariant, hp int) *entities.Enemy {
	boss := entities.NewBoss(r.world.AllocID(), variant, hp, 1.0, 5000)
	boss.Data.(*entities.BossData).State = entities.BossFighting
	boss.Y = 110
	r.world.AddEnemy(boss)
	r.state.BossActive = true
	return boss
}

// playerShot 构造一颗玩家普通弹
func (r *testRig) playerShot(x, y float64, damage int) *entities.Projectile {
	p := &entities.Projectile{
		Base:   entities.Base{ID: r.world.AllocID(), X: x, Y: y, VY: -8, HalfExtent: 5},
		Owner:  entities.FactionPlayer,
		Damage: damage, Lifetime: 120,
	}
	r.world.AddProjectile(p)
	return p
}

// enemyShot 构造一颗敌方普通弹
func (r *testRig) enemyShot(x, y, vx, vy float64, damage int) *entities.Projectile {
	p := entities.NewEnemyShot(r.world.AllocID(), x, y, vx, vy, damage)
	r.world.AddProjectile(p)
	return p
}
