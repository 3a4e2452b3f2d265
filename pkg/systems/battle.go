package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/systems/behavior"
	"github.com/gonewx/starblitz/pkg/types"
)

// Battle 单局战斗的模拟时钟
//
// 固定步进：以 SimTPS 的固定时长推进，真实时间通过累加器折算为
// 整数步数，单帧补偿步数超过 MaxCatchUpSteps 的部分直接丢弃。
// Battle 是世界状态的唯一写者，各系统按固定顺序被驱动。
type Battle struct {
	World *entities.World
	State *game.BattleState

	cfg   *config.GameConfig
	input InputState

	players     *PlayerSystem
	weapons     *WeaponSystem
	spells      *SpellSystem
	spawner     *SpawnSystem
	projectiles *ProjectileSystem
	behaviors   *behavior.System
	combat      *CombatSystem

	accumulator float64
	paused      bool
}

// BattleParams 创建单局战斗的参数
type BattleParams struct {
	Mode       types.GameMode
	Difficulty types.Difficulty
	Loadout    game.Loadout
	Boosts     game.Boosts
	Practice   game.PracticeSpec
	Seed       int64
	Audio      game.AudioSink // nil 时使用空实现
}

// NewBattle 创建并初始化单局战斗
func NewBattle(cfg *config.GameConfig, params BattleParams) *Battle {
	audio := params.Audio
	if audio == nil {
		audio = game.NopAudioSink{}
	}

	difficulty := params.Difficulty
	if params.Practice.Enabled && params.Practice.ForceDifficulty {
		difficulty = params.Practice.Difficulty
	}

	state := game.NewBattleState(params.Mode, difficulty, params.Boosts, params.Practice)
	world := entities.NewWorld()
	rng := rand.New(rand.NewSource(params.Seed))

	weapons := make([]entities.EquippedWeapon, 0, len(params.Loadout.Weapons))
	for _, item := range params.Loadout.Weapons {
		weapons = append(weapons, entities.EquippedWeapon{ID: item.ID, Level: types.ClampLevel(item.Level)})
	}
	spells := make([]entities.EquippedSpell, 0, len(params.Loadout.Spells))
	for _, item := range params.Loadout.Spells {
		spells = append(spells, entities.EquippedSpell{ID: item.ID, Level: types.ClampLevel(item.Level)})
	}

	player := entities.NewPlayer(world.AllocID(), weapons, spells)
	if state.Boosts.ExtraLife {
		player.Revives++
	}
	world.Player = player

	combat := NewCombatSystem(world, cfg, state, rng, audio)
	b := &Battle{
		World:       world,
		State:       state,
		cfg:         cfg,
		players:     NewPlayerSystem(world, state),
		weapons:     NewWeaponSystem(world, cfg, state, audio),
		spells:      NewSpellSystem(world, cfg, state, combat, audio),
		spawner:     NewSpawnSystem(world, cfg, state, rng, audio),
		projectiles: NewProjectileSystem(world, state),
		behaviors:   behavior.NewSystem(world, cfg, state, rng),
		combat:      combat,
	}
	b.input.Cast = make([]bool, len(spells))

	audio.Play(types.CueBattleStart)
	log.Printf("[Battle] Started: mode=%s difficulty=%s weapons=%d spells=%d seed=%d",
		state.Mode, state.Difficulty, len(weapons), len(spells), params.Seed)
	return b
}

// SetInput 注入下一步进消费的玩家输入
// 施放请求做或运算累积，避免固定步进吞掉帧间瞬时按键
func (b *Battle) SetInput(in InputState) {
	b.input.MoveX = in.MoveX
	b.input.MoveY = in.MoveY
	b.input.Focus = in.Focus
	for i := range b.input.Cast {
		if in.CastRequested(i) {
			b.input.Cast[i] = true
		}
	}
}

// Advance 按真实流逝时间推进模拟
// 累加器折算整数步数执行；暂停与终局时冻结，不追帧
func (b *Battle) Advance(realDt float64) {
	if b.paused || b.State.Finished {
		return
	}

	b.accumulator += realDt
	stepDt := 1.0 / float64(config.SimTPS)

	steps := 0
	for b.accumulator >= stepDt && steps < config.MaxCatchUpSteps {
		b.Step()
		b.accumulator -= stepDt
		steps++
	}
	// 超出补偿上限的积压时间丢弃，停顿后不做雪崩式追帧
	if b.accumulator >= stepDt {
		b.accumulator = 0
	}
}

// Step 执行单个模拟步进
//
// 顺序固定：玩家 → 武器/法术 → 生成 → 行为 → 弹丸 → 碰撞结算 →
// 横幅/收尾 → 粒子老化 → Prune。顺序改变会破坏结算的可复现性
func (b *Battle) Step() {
	if b.State.Finished {
		return
	}
	b.State.Tick++

	b.players.Update(&b.input)
	b.weapons.Update()
	b.spells.Update(&b.input)
	b.spawner.Update()
	b.behaviors.Update()
	b.projectiles.Update()
	b.combat.Resolve()

	if b.State.BannerLeft > 0 {
		b.State.BannerLeft--
		if b.State.BannerLeft == 0 {
			b.State.BossBanner = ""
			b.State.Dialogue = ""
		}
	}

	for _, pt := range b.World.Particles {
		if !pt.Dead {
			pt.Age()
		}
	}

	b.input.ClearCasts()
	b.World.Prune()
}

// TogglePause 切换暂停状态
// 幂等语义由调用方的单次按键保证；恢复时清空累加器，
// 暂停期间流逝的真实时间不会被补帧
func (b *Battle) TogglePause() {
	b.paused = !b.paused
	if !b.paused {
		b.accumulator = 0
	}
	log.Printf("[Battle] Paused=%v at tick %d", b.paused, b.State.Tick)
}

// Paused 返回当前暂停状态
func (b *Battle) Paused() bool {
	return b.paused
}

// Snapshot 发布本步进的只读HUD快照
func (b *Battle) Snapshot() game.HUDSnapshot {
	p := b.World.Player
	snap := game.HUDSnapshot{
		Score:      b.State.Score,
		Currency:   b.State.Currency,
		Stage:      b.State.Stage,
		BossActive: b.State.BossActive,
		BossName:   b.State.BossBanner,
		Dialogue:   b.State.Dialogue,
		TimeWarp:   b.State.TimeWarp,
		Paused:     b.paused,
		Finished:   b.State.Finished,
	}
	if p != nil {
		snap.HP = p.HP
		snap.MaxHP = p.MaxHP
		snap.Shield = p.Shield
		snap.Revives = p.Revives
		snap.SpellReady = p.SpellReady()
	}
	if boss := b.World.ActiveBoss(); boss != nil {
		snap.BossHPFrac = boss.HPFraction()
		if snap.BossName == "" {
			snap.BossName = boss.Variant.BannerName()
		}
	}
	return snap
}
