package systems

import (
	"math"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/types"
	"github.com/gonewx/starblitz/pkg/utils"
)

// PlayerSystem 玩家机体系统
//
// 职责：
//   - 按输入移动玩家（低速精确模式减速），收拢在竞技场边界内
//   - 递减无敌帧与增益计时，并同步时间迟滞标记到共享状态
//   - 脱战回复：连续未受击超过门槛后按间隔回血（回复增益加速）
type PlayerSystem struct {
	world *entities.World
	state *game.BattleState
}

// NewPlayerSystem 创建玩家机体系统
func NewPlayerSystem(world *entities.World, state *game.BattleState) *PlayerSystem {
	return &PlayerSystem{world: world, state: state}
}

// Update 推进玩家状态一步
func (s *PlayerSystem) Update(input *InputState) {
	p := s.world.Player
	if p == nil || p.Dead {
		return
	}

	s.move(p, input)

	if p.InvulnFrames > 0 {
		p.InvulnFrames--
	}
	p.FramesSinceHit++
	p.TickBuffs()

	// 时间迟滞以玩家增益为准同步到共享状态
	s.state.TimeWarp = p.HasBuff(types.BuffTimeWarp)

	s.regen(p)
}

// move 按输入移动并收拢在竞技场内
func (s *PlayerSystem) move(p *entities.Player, input *InputState) {
	p.Focus = input.Focus
	speed := config.PlayerSpeed
	if p.Focus {
		speed = config.PlayerFocusSpeed
	}

	dx, dy := input.MoveX, input.MoveY
	if mag := math.Hypot(dx, dy); mag > 1 {
		dx /= mag
		dy /= mag
	}
	p.X = utils.Clamp(p.X+dx*speed, config.PlayerRadius, config.ArenaWidth-config.PlayerRadius)
	p.Y = utils.Clamp(p.Y+dy*speed, config.PlayerRadius, config.ArenaHeight-config.PlayerRadius)
}

// regen 脱战回复：门槛帧数未受击后按间隔回复1点
// 回复增益按乘数缩短间隔；再生增益生效时无视门槛
func (s *PlayerSystem) regen(p *entities.Player) {
	if p.HP >= p.MaxHP {
		return
	}

	gate := config.PlayerRegenGateFrames
	if p.HasBuff(types.BuffRegen) {
		gate = 0
	}
	if p.FramesSinceHit < gate {
		return
	}

	interval := float64(config.PlayerRegenInterval)
	if s.state.Boosts.RegenMult > 0 {
		interval /= s.state.Boosts.RegenMult
	}
	iv := int(math.Round(interval))
	if iv < 1 {
		iv = 1
	}

	if s.state.Tick%iv == 0 {
		p.HP++
		p.ClampHP()
	}
}
