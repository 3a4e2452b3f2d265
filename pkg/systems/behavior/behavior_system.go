// Package behavior 实现敌机的按类型行为分发
//
// 每种敌机类型注册一个处理器函数，处理器读写实体的通用计时器
// 与类型专属联合体状态。出现未注册类型按配置错误处理：记录日志
// 并移除该实体，不让未知行为的实体滞留战场。
package behavior

import (
	"log"
	"math/rand"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
)

// Context 处理器的共享依赖
type Context struct {
	World *entities.World
	Cfg   *config.GameConfig
	State *game.BattleState
	Rng   *rand.Rand
}

// Handler 单个敌机类型的行为处理器，每个敌方步进调用一次
type Handler func(ctx *Context, e *entities.Enemy)

// System 行为分发系统
type System struct {
	ctx      *Context
	handlers map[types.EnemyType]Handler
}

// NewSystem 创建行为分发系统并注册全部处理器
func NewSystem(world *entities.World, cfg *config.GameConfig, state *game.BattleState, rng *rand.Rand) *System {
	return &System{
		ctx: &Context{World: world, Cfg: cfg, State: state, Rng: rng},
		handlers: map[types.EnemyType]Handler{
			types.EnemyDrone:        updateDrone,
			types.EnemyZigzag:       updateZigzag,
			types.EnemyTank:         updateTank,
			types.EnemySniper:       updateSniper,
			types.EnemySwarm:        updateSwarm,
			types.EnemyOrbiter:      updateOrbiter,
			types.EnemyDasher:       updateDasher,
			types.EnemySplitter:     updateSplitter,
			types.EnemyMinelayer:    updateMinelayer,
			types.EnemyGhost:        updateGhost,
			types.EnemyHealer:       updateHealer,
			types.EnemyReflector:    updateReflector,
			types.EnemyShielder:     updateShielder,
			types.EnemyEliteGunner:  updateEliteGunner,
			types.EnemyEliteCharger: updateEliteCharger,
			types.EnemyBoss:         updateBoss,
			types.EnemyBossMinion:   updateBossMinion,
			types.EnemyBossClone:    updateBossClone,
		},
	}
}

// Update 推进全部敌机的行为一步
// 时间迟滞生效时整体隔步推进（子弹时间只作用于敌方）
func (s *System) Update() {
	if !s.ctx.State.EnemyTickActive() {
		return
	}

	// 处理器可能追加新实体（召唤、分身），遍历基于快照
	enemies := make([]*entities.Enemy, len(s.ctx.World.Enemies))
	copy(enemies, s.ctx.World.Enemies)

	for _, e := range enemies {
		if e.Dead {
			continue
		}

		// 冻结期间只消耗冻结计时，不执行任何行为
		if e.FrozenFrames > 0 {
			e.FrozenFrames--
			continue
		}

		if e.DamageCutFrames > 0 {
			e.DamageCutFrames--
			if e.DamageCutFrames == 0 {
				e.DamageCut = 0
			}
		}

		// 孤儿从属单位自我了断（父实体已不在场）
		if e.ParentID != 0 && s.ctx.World.FindEnemy(e.ParentID) == nil {
			e.MarkDead()
			continue
		}

		h, ok := s.handlers[e.Type]
		if !ok {
			log.Printf("[BehaviorSystem] No handler for enemy type %s (id=%d), removed", e.Type, e.ID)
			e.MarkDead()
			continue
		}
		h(s.ctx, e)
	}
}
