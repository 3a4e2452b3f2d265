package systems

import (
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// SpellSystem 法术系统
//
// 职责：
//   - 每步进递减各法术槽位的独立冷却计数
//   - 响应施放请求：冷却就绪时消耗法术并设置新冷却
//     （冷却受冷却乘数与法术强化等级共同缩减）
//   - 应用瞬发效果（清屏、脉冲、回复、护盾）或向玩家增益表插入限时增益
//
// 伤害类法术通过 CombatSystem 结算，保证击杀分账恰好一次
type SpellSystem struct {
	world  *entities.World
	cfg    *config.GameConfig
	state  *game.BattleState
	combat *CombatSystem
	audio  game.AudioSink
}

// NewSpellSystem 创建法术系统
func NewSpellSystem(world *entities.World, cfg *config.GameConfig, state *game.BattleState, combat *CombatSystem, audio game.AudioSink) *SpellSystem {
	return &SpellSystem{world: world, cfg: cfg, state: state, combat: combat, audio: audio}
}

// Update 递减冷却并处理本步进的施放请求
func (s *SpellSystem) Update(input *InputState) {
	p := s.world.Player
	if p == nil || p.Dead {
		return
	}

	for i := range p.Spells {
		sp := &p.Spells[i]
		if sp.Cooldown > 0 {
			sp.Cooldown--
		}
		if input.CastRequested(i) && sp.Cooldown <= 0 {
			s.cast(sp)
		}
	}
}

// cast 消耗法术：设置新冷却并应用效果
func (s *SpellSystem) cast(sp *entities.EquippedSpell) {
	lv, ok := s.cfg.Spells.Level(sp.ID, sp.Level)
	if !ok {
		log.Printf("[SpellSystem] Unknown spell id %q, skipped", sp.ID)
		return
	}

	cooldown := int(math.Round(float64(lv.Cooldown) * s.state.Boosts.CooldownMult))
	if cooldown < 1 {
		cooldown = 1
	}
	sp.Cooldown = cooldown

	log.Printf("[SpellSystem] Cast %s (level %d), cooldown set to %d frames", sp.ID, sp.Level, cooldown)
	s.apply(sp.ID, lv)
	s.audio.Play(types.CueSpell)
}

// apply 按法术种类应用效果
func (s *SpellSystem) apply(spellID string, lv config.SpellLevel) {
	p := s.world.Player

	switch spellID {
	case types.SpellBomb:
		// 清屏：清除全部敌弹并对全体敌机造成固定伤害
		cleared := 0
		for _, proj := range s.world.Projectiles {
			if !proj.Dead && proj.Owner == entities.FactionEnemy {
				proj.MarkDead()
				SpawnSparkle(s.world, s.combat.rng, proj.X, proj.Y, "white")
				cleared++
			}
		}
		for _, e := range snapshotEnemies(s.world) {
			s.combat.DamageEnemy(e, int(lv.Power), false)
		}
		log.Printf("[SpellSystem] Bomb cleared %d enemy projectiles", cleared)

	case types.SpellNova:
		// 新星脉冲：以玩家为中心的范围伤害
		rSq := lv.Radius * lv.Radius
		for _, e := range snapshotEnemies(s.world) {
			if utils.DistSq(p.X, p.Y, e.X, e.Y) <= rSq {
				s.combat.DamageEnemy(e, int(lv.Power), false)
			}
		}
		SpawnExplosion(s.world, s.combat.rng, p.X, p.Y, "cyan", 24)

	case types.SpellWarp:
		p.AddBuff(types.BuffTimeWarp, lv.Duration)

	case types.SpellHeal:
		p.HP += int(lv.Power)
		p.ClampHP()

	case types.SpellBarrier:
		p.Shield += int(lv.Power)

	case types.SpellFreeze:
		frozen := 0
		for _, e := range s.world.Enemies {
			if e.Dead {
				continue
			}
			if e.FrozenFrames < lv.Duration {
				e.FrozenFrames = lv.Duration
			}
			frozen++
		}
		log.Printf("[SpellSystem] Freeze applied to %d enemies for %d frames", frozen, lv.Duration)

	default:
		log.Printf("[SpellSystem] Spell %q has no effect implementation", spellID)
	}
}

// snapshotEnemies 复制当前敌机切片
// 伤害结算可能追加新实体（分裂破片等），遍历必须基于快照
func snapshotEnemies(w *entities.World) []*entities.Enemy {
	out := make([]*entities.Enemy, len(w.Enemies))
	copy(out, w.Enemies)
	return out
}
