package entities

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/types"
)

// TestAddBuffKeepsLongerDuration 增益刷新取较长剩余时间，不叠加
func TestAddBuffKeepsLongerDuration(t *testing.T) {
	p := NewPlayer(1, nil, nil)

	p.AddBuff(types.BuffDamageUp, 300)
	p.AddBuff(types.BuffDamageUp, 120)
	if p.Buffs[types.BuffDamageUp] != 300 {
		t.Errorf("shorter refresh must not cut the duration, got %d", p.Buffs[types.BuffDamageUp])
	}

	p.AddBuff(types.BuffDamageUp, 600)
	if p.Buffs[types.BuffDamageUp] != 600 {
		t.Errorf("longer refresh should extend the duration, got %d", p.Buffs[types.BuffDamageUp])
	}
}

// TestTickBuffsRemovesExpired 增益计时归零后移除
func TestTickBuffsRemovesExpired(t *testing.T) {
	p := NewPlayer(1, nil, nil)
	p.AddBuff(types.BuffRegen, 2)

	p.TickBuffs()
	if !p.HasBuff(types.BuffRegen) {
		t.Fatal("buff should survive with frames remaining")
	}
	p.TickBuffs()
	if p.HasBuff(types.BuffRegen) {
		t.Error("expired buff should be removed")
	}
	if _, ok := p.Buffs[types.BuffRegen]; ok {
		t.Error("expired buff entry should be deleted from the table")
	}
}

// TestClampHPRestoresBounds 结算后生命值收拢到合法区间
func TestClampHPRestoresBounds(t *testing.T) {
	p := NewPlayer(1, nil, nil)

	p.HP = -15
	p.ClampHP()
	if p.HP != 0 {
		t.Errorf("negative hp should clamp to 0, got %d", p.HP)
	}

	p.HP = p.MaxHP + 40
	p.ClampHP()
	if p.HP != p.MaxHP {
		t.Errorf("overheal should clamp to max, got %d", p.HP)
	}
}

// TestSpellReadyReflectsCooldowns HUD就绪标记与冷却状态对齐
func TestSpellReadyReflectsCooldowns(t *testing.T) {
	p := NewPlayer(1, nil, []EquippedSpell{
		{ID: types.SpellBomb, Level: 1},
		{ID: types.SpellFreeze, Level: 1, Cooldown: 40},
	})

	ready := p.SpellReady()
	if len(ready) != 2 || !ready[0] || ready[1] {
		t.Errorf("expected [true false], got %v", ready)
	}
}
