package systems

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

func newTestBattle(mode types.GameMode) *Battle {
	return NewBattle(testConfig(), BattleParams{
		Mode:       mode,
		Difficulty: types.DifficultyNormal,
		Loadout:    game.DefaultLoadout(),
		Boosts:     game.DefaultBoosts(),
		Seed:       7,
	})
}

// TestAdvanceConvertsRealTimeToSteps 累加器把真实时间折算为整数步进
func TestAdvanceConvertsRealTimeToSteps(t *testing.T) {
	b := newTestBattle(types.ModeNormal)

	// 恰好两步的真实时长
	b.Advance(2.0 / 90.0)

	if b.State.Tick != 2 {
		t.Errorf("expected 2 ticks, got %d", b.State.Tick)
	}
}

// TestAdvanceDropsBacklogBeyondCap 积压超出补偿上限的时间被丢弃
func TestAdvanceDropsBacklogBeyondCap(t *testing.T) {
	b := newTestBattle(types.ModeNormal)

	// 1秒的停顿只补偿上限步数，剩余积压清零
	b.Advance(1.0)

	if b.State.Tick != 4 {
		t.Errorf("expected catch-up capped at 4 steps, got %d ticks", b.State.Tick)
	}
	if b.accumulator != 0 {
		t.Errorf("backlog beyond the cap should be dropped, accumulator=%v", b.accumulator)
	}
}

// TestPauseFreezesSimulation 暂停期间不推进，恢复时不补帧
func TestPauseFreezesSimulation(t *testing.T) {
	b := newTestBattle(types.ModeNormal)
	b.Step()

	b.TogglePause()
	b.Advance(1.0)
	if b.State.Tick != 1 {
		t.Errorf("paused battle must not advance, got tick %d", b.State.Tick)
	}

	b.TogglePause()
	if b.accumulator != 0 {
		t.Errorf("resume should clear the accumulator, got %v", b.accumulator)
	}
}

// TestStepStopsAfterFinish 终局后步进冻结
func TestStepStopsAfterFinish(t *testing.T) {
	b := newTestBattle(types.ModeNormal)
	b.Step()
	b.State.Finish(false)

	tick := b.State.Tick
	b.Step()
	b.Advance(1.0)

	if b.State.Tick != tick {
		t.Errorf("finished battle must not advance, got tick %d", b.State.Tick)
	}
}

// TestCastInputAccumulatesAcrossFrames 施放请求做或运算累积，不被固定步进吞掉
func TestCastInputAccumulatesAcrossFrames(t *testing.T) {
	b := newTestBattle(types.ModeNormal)

	b.SetInput(InputState{Cast: []bool{true}})
	b.SetInput(InputState{}) // 后续帧松开按键不清除已累积的请求

	if !b.input.CastRequested(0) {
		t.Error("cast request should persist until consumed by a step")
	}

	b.Step()
	if b.input.CastRequested(0) {
		t.Error("consumed cast request should be cleared at step end")
	}
	if b.World.Player.Spells[0].Cooldown == 0 {
		t.Error("the accumulated cast should have fired the spell")
	}
}

// TestBannerCountdownClearsText 横幅倒计时归零时清除文本
func TestBannerCountdownClearsText(t *testing.T) {
	b := newTestBattle(types.ModeNormal)
	b.State.BossBanner = "VANGUARD"
	b.State.Dialogue = "Intruder detected."
	b.State.BannerLeft = 2

	b.Step()
	if b.State.BossBanner == "" {
		t.Fatal("banner should persist while frames remain")
	}
	b.Step()
	if b.State.BossBanner != "" || b.State.Dialogue != "" {
		t.Error("banner and dialogue should clear when the countdown ends")
	}
}

// TestSnapshotReportsBossHealth HUD快照携带Boss血量比例
func TestSnapshotReportsBossHealth(t *testing.T) {
	b := newTestBattle(types.ModeNormal)
	r := &testRig{world: b.World, state: b.State, cfg: b.cfg}
	boss := r.addBoss(types.BossVanguard, 1000)
	boss.HP = 250

	snap := b.Snapshot()

	if snap.BossHPFrac != 0.25 {
		t.Errorf("expected boss HP fraction 0.25, got %v", snap.BossHPFrac)
	}
	if snap.BossName != "VANGUARD" {
		t.Errorf("expected boss name fallback from variant, got %q", snap.BossName)
	}
}

// TestPracticeForcedDifficulty 练习模式可强制覆盖难度
func TestPracticeForcedDifficulty(t *testing.T) {
	b := NewBattle(testConfig(), BattleParams{
		Mode:       types.ModePractice,
		Difficulty: types.DifficultyNormal,
		Loadout:    game.DefaultLoadout(),
		Boosts:     game.DefaultBoosts(),
		Practice: game.PracticeSpec{
			Enabled:         true,
			Target:          types.EnemyDrone,
			ForceDifficulty: true,
			Difficulty:      types.DifficultyEndless,
		},
		Seed: 7,
	})

	if b.State.Difficulty != types.DifficultyEndless {
		t.Errorf("expected forced difficulty endless, got %s", b.State.Difficulty)
	}
}

// TestParticlesAgeAndExpire 粒子逐步老化，寿命耗尽后在步进末尾被过滤
func TestParticlesAgeAndExpire(t *testing.T) {
	b := newTestBattle(types.ModeNormal)
	b.World.AddParticle(entities.NewParticle(b.World.AllocID(), 100, 100, 1, 0, 3, "white"))

	b.Step()
	if len(b.World.Particles) != 1 {
		t.Fatalf("expected particle alive after one step, got %d", len(b.World.Particles))
	}
	if got := b.World.Particles[0].Life; got != 2 {
		t.Errorf("expected life decremented to 2, got %d", got)
	}

	b.Step()
	b.Step()
	if got := len(b.World.Particles); got != 0 {
		t.Errorf("expired particle should be pruned, %d still live", got)
	}
}
