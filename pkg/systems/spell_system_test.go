package systems

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

func (r *testRig) spellSystem() *SpellSystem {
	return NewSpellSystem(r.world, r.cfg, r.state, r.combat, game.NopAudioSink{})
}

func castInput(slot int) *InputState {
	cast := make([]bool, slot+1)
	cast[slot] = true
	return &InputState{Cast: cast}
}

// TestBombClearsEnemyShotsAndDamagesAll 清屏炸弹清除全部敌弹并伤害全体敌机
func TestBombClearsEnemyShotsAndDamagesAll(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	ss := r.spellSystem()

	drone := r.addDrone(200, 100)
	r.enemyShot(100, 100, 0, 2, 8)
	r.enemyShot(300, 200, 0, 2, 8)

	ss.Update(castInput(0))

	for _, p := range r.world.Projectiles {
		if p.Owner == entities.FactionEnemy && !p.Dead {
			t.Error("bomb should clear all enemy projectiles")
		}
	}
	// 炸弹威力50 > 无人机生命20，应当被击杀并结算一次
	if !drone.Dead {
		t.Error("bomb should kill the drone")
	}
	if r.state.Stats.Kills != 1 {
		t.Errorf("expected 1 kill, got %d", r.state.Stats.Kills)
	}
}

// TestSpellCooldownGatesRepeatCast 冷却未就绪时施放请求被忽略
func TestSpellCooldownGatesRepeatCast(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	ss := r.spellSystem()

	ss.Update(castInput(0))
	if got := r.world.Player.Spells[0].Cooldown; got != 900 {
		t.Fatalf("expected cooldown 900 after cast, got %d", got)
	}

	// 冷却中：只递减，不重置
	ss.Update(castInput(0))
	if got := r.world.Player.Spells[0].Cooldown; got != 899 {
		t.Errorf("expected cooldown 899 (decrement only), got %d", got)
	}
}

// TestWarpGrantsTimedBuff 时间迟滞法术向玩家插入限时增益
func TestWarpGrantsTimedBuff(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	r.world.Player = entities.NewPlayer(r.world.AllocID(), nil,
		[]entities.EquippedSpell{{ID: types.SpellWarp, Level: 1}})
	ss := r.spellSystem()

	ss.Update(castInput(0))

	if !r.world.Player.HasBuff(types.BuffTimeWarp) {
		t.Error("warp cast should grant the time warp buff")
	}
}

// TestEnemyTickAlternatesUnderWarp 时间迟滞生效时敌方逻辑隔步推进
func TestEnemyTickAlternatesUnderWarp(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	r.state.TimeWarp = true

	r.state.Tick = 10
	if !r.state.EnemyTickActive() {
		t.Error("even tick should be active under warp")
	}
	r.state.Tick = 11
	if r.state.EnemyTickActive() {
		t.Error("odd tick should be skipped under warp")
	}

	r.state.TimeWarp = false
	if !r.state.EnemyTickActive() {
		t.Error("every tick should be active without warp")
	}
}

// TestFreezeNeverShortensExistingFreeze 冻结不会缩短已有的更长冻结
func TestFreezeNeverShortensExistingFreeze(t *testing.T) {
	r := newTestRig(types.ModeNormal, types.DifficultyNormal)
	r.world.Player = entities.NewPlayer(r.world.AllocID(), nil,
		[]entities.EquippedSpell{{ID: types.SpellFreeze, Level: 1}})
	ss := r.spellSystem()

	fresh := r.addDrone(100, 100)
	longFrozen := r.addDrone(200, 100)
	longFrozen.FrozenFrames = 300

	ss.Update(castInput(0))

	if fresh.FrozenFrames != 180 {
		t.Errorf("expected fresh drone frozen for 180 frames, got %d", fresh.FrozenFrames)
	}
	if longFrozen.FrozenFrames != 300 {
		t.Errorf("existing longer freeze should stand, got %d", longFrozen.FrozenFrames)
	}
}
