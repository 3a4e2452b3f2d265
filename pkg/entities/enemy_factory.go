package entities

import (
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/types"
)

// enemyColor 各敌机类型的外观色标签（纯装饰）
func enemyColor(t types.EnemyType) string {
	switch t {
	case types.EnemyTank, types.EnemyShielder:
		return "steel"
	case types.EnemySniper, types.EnemyReflector:
		return "violet"
	case types.EnemySwarm:
		return "amber"
	case types.EnemyGhost, types.EnemyBossClone:
		return "pale"
	case types.EnemyHealer:
		return "green"
	case types.EnemyEliteGunner, types.EnemyEliteCharger:
		return "crimson"
	case types.EnemyBoss:
		return "gold"
	default:
		return "red"
	}
}

// initialData 按类型构造敌机的专属状态联合体
func initialData(t types.EnemyType, x, y float64) EnemyData {
	switch t {
	case types.EnemyDasher:
		return &DasherData{State: DasherApproach}
	case types.EnemyOrbiter:
		return &OrbiterData{AnchorX: x, AnchorY: y + 160, Radius: 70}
	case types.EnemyGhost:
		return &GhostData{PhaseTimer: 0}
	case types.EnemyHealer:
		return &HealerData{}
	case types.EnemyMinelayer:
		return &MinelayerData{}
	case types.EnemyEliteGunner, types.EnemyEliteCharger:
		return &EliteData{State: EliteGathering}
	case types.EnemyBossMinion:
		return &MinionData{}
	case types.EnemyBossClone:
		return &CloneData{Life: 540}
	default:
		return nil
	}
}

// NewEnemy 按类型和数值配置创建常规敌机
//
// 参数：
//   - id: 由 World.AllocID 分配的实体ID
//   - t: 敌机类型
//   - stats: 该类型的基础数值
//   - hpScale: 难度生命倍率
//   - x, y: 生成位置
func NewEnemy(id EntityID, t types.EnemyType, stats config.EnemyStatsEntry, hpScale float64, x, y float64) *Enemy {
	hp := int(math.Ceil(float64(stats.HP) * hpScale))
	if hp < 1 {
		hp = 1
	}
	return &Enemy{
		Base: Base{
			ID:         id,
			X:          x,
			Y:          y,
			VY:         stats.Speed,
			HalfExtent: stats.Radius,
			Color:      enemyColor(t),
		},
		Type:          t,
		Variant:       types.BossNone,
		HP:            hp,
		MaxHP:         hp,
		Score:         stats.Score,
		ContactDamage: stats.ContactDamage,
		ShotDamage:    stats.ShotDamage,
		ShotSpeed:     stats.ShotSpeed,
		FireInterval:  stats.FireInterval,
		Speed:         stats.Speed,
		Shield:        stats.Shield,
		Data:          initialData(t, x, y),
	}
}

// NewBoss 创建关卡Boss
// Boss从竞技场上方入场，向入场锚点插值移动（BossEntering 状态）
func NewBoss(id EntityID, variant types.BossVariant, baseHP int, hpScale float64, score int) *Enemy {
	hp := int(math.Ceil(float64(baseHP) * hpScale))
	return &Enemy{
		Base: Base{
			ID:         id,
			X:          config.ArenaWidth / 2,
			Y:          -80,
			HalfExtent: 42,
			Color:      enemyColor(types.EnemyBoss),
		},
		Type:          types.EnemyBoss,
		Variant:       variant,
		HP:            hp,
		MaxHP:         hp,
		Score:         score,
		ContactDamage: 24,
		ShotDamage:    10,
		ShotSpeed:     2.6,
		FireInterval:  60,
		Speed:         1.2,
		Data: &BossData{
			State:        BossEntering,
			Phase:        1,
			EntryTargetX: config.ArenaWidth / 2,
			EntryTargetY: config.BossEntryAnchorY,
		},
	}
}

// NewBossMinion 创建Boss从属单位，父子关系由 World.AddEnemy 登记
func NewBossMinion(id EntityID, parent *Enemy, stats config.EnemyStatsEntry, hpScale float64, angle float64, fromUltimate bool) *Enemy {
	m := NewEnemy(id, types.EnemyBossMinion, stats, hpScale,
		parent.X+math.Sin(angle)*80, parent.Y+math.Cos(angle)*80)
	m.ParentID = parent.ID
	m.Data = &MinionData{OrbitAngle: angle, FromUltimate: fromUltimate}
	return m
}

// NewBossClone 创建Boss幻影分身
// 分身限时存在，父Boss消失时随级联清理同帧移除
func NewBossClone(id EntityID, parent *Enemy, stats config.EnemyStatsEntry, hpScale float64, x, y float64) *Enemy {
	c := NewEnemy(id, types.EnemyBossClone, stats, hpScale, x, y)
	c.ParentID = parent.ID
	c.Variant = parent.Variant
	return c
}
