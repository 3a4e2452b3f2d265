// Package scenes 实现游戏的各个场景（主菜单、战斗）
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/systems"
)

// BattleScene 战斗场景
//
// 职责：
//   - 采集键盘输入并注入模拟时钟
//   - 驱动 Battle.Advance 并按HUD快照绘制
//   - 终局时把结果事件汇入档案（恰好一次）并提供返回菜单入口
type BattleScene struct {
	sceneManager *game.SceneManager
	saveManager  *game.SaveManager
	cfg          *config.GameConfig

	battle  *systems.Battle
	applied bool // 终局结果是否已汇入档案

	// 返回主菜单的工厂，由 app 装配时注入避免场景互相依赖
	backToMenu func() game.Scene
}

// NewBattleScene 创建战斗场景并启动一局战斗
func NewBattleScene(sceneManager *game.SceneManager, saveManager *game.SaveManager,
	cfg *config.GameConfig, params systems.BattleParams, backToMenu func() game.Scene) *BattleScene {
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}
	return &BattleScene{
		sceneManager: sceneManager,
		saveManager:  saveManager,
		cfg:          cfg,
		battle:       systems.NewBattle(cfg, params),
		backToMenu:   backToMenu,
	}
}

// Update 采集输入并推进模拟
func (s *BattleScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.battle.TogglePause()
	}

	s.battle.SetInput(s.collectInput())
	s.battle.Advance(deltaTime)

	if s.battle.State.Finished {
		s.applyOutcomeOnce()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && s.backToMenu != nil {
			s.sceneManager.SwitchTo(s.backToMenu())
		}
	}
}

// collectInput 采集本帧键盘输入
// 移动：方向键/WASD；低速：Shift；法术：Z X C V 对应槽位0~3
func (s *BattleScene) collectInput() systems.InputState {
	in := systems.InputState{Cast: make([]bool, 4)}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY += 1
	}
	in.Focus = ebiten.IsKeyPressed(ebiten.KeyShift)

	for i, key := range []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV} {
		if inpututil.IsKeyJustPressed(key) {
			in.Cast[i] = true
		}
	}
	return in
}

// applyOutcomeOnce 终局结果恰好一次汇入档案
func (s *BattleScene) applyOutcomeOnce() {
	if s.applied {
		return
	}
	s.applied = true
	s.saveManager.ApplyOutcome(s.battle.State.Difficulty, s.battle.State.Outcome)
}

// SaveOnExit 游戏关闭时落盘档案（进行中的对局不存档）
func (s *BattleScene) SaveOnExit() bool {
	if err := s.saveManager.Save(); err != nil {
		log.Printf("[BattleScene] SaveOnExit failed: %v", err)
		return false
	}
	return true
}

// entityColor 外观色标签到渲染色的映射
func entityColor(tag string) color.RGBA {
	switch tag {
	case "cyan":
		return color.RGBA{0x40, 0xe0, 0xe8, 0xff}
	case "white":
		return color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	case "amber":
		return color.RGBA{0xf0, 0xb0, 0x30, 0xff}
	case "violet":
		return color.RGBA{0xa0, 0x60, 0xf0, 0xff}
	case "green":
		return color.RGBA{0x50, 0xd0, 0x60, 0xff}
	case "steel":
		return color.RGBA{0x90, 0x9c, 0xaa, 0xff}
	case "magenta":
		return color.RGBA{0xe0, 0x40, 0xb0, 0xff}
	case "gold":
		return color.RGBA{0xe8, 0xc0, 0x40, 0xff}
	case "pale":
		return color.RGBA{0xc8, 0xc8, 0xd8, 0xb0}
	case "crimson":
		return color.RGBA{0xd0, 0x30, 0x40, 0xff}
	case "darkred":
		return color.RGBA{0x80, 0x20, 0x20, 0xff}
	case "orange":
		return color.RGBA{0xf0, 0x80, 0x20, 0xff}
	default:
		return color.RGBA{0xd0, 0x40, 0x40, 0xff}
	}
}

// Draw 按HUD快照与世界状态绘制战斗画面
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x08, 0x08, 0x14, 0xff})

	world := s.battle.World
	snap := s.battle.Snapshot()

	for _, pt := range world.Particles {
		c := entityColor(pt.Color)
		c.A = uint8(float64(c.A) * pt.Alpha())
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), 2, c, false)
	}

	for _, proj := range world.Projectiles {
		if proj.Dead {
			continue
		}
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y),
			float32(proj.HalfExtent), entityColor(proj.Color), false)
	}

	for _, e := range world.Enemies {
		if e.Dead {
			continue
		}
		c := entityColor(e.Color)
		if e.Ghost {
			c.A = 0x50
		}
		if e.Frozen() {
			c = color.RGBA{0x70, 0xa8, 0xf0, c.A}
		}
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y),
			float32(e.HalfExtent), c, false)
	}

	if p := world.Player; p != nil && !p.Dead {
		s.drawPlayer(screen, p)
	}

	s.drawHUD(screen, snap)
}

// drawPlayer 绘制玩家机体：无敌帧期间闪烁，低速模式显示判定点
func (s *BattleScene) drawPlayer(screen *ebiten.Image, p *entities.Player) {
	if p.InvulnFrames > 0 && (p.InvulnFrames/6)%2 == 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 10,
		color.RGBA{0x40, 0xe0, 0xe8, 0xff}, false)
	if p.Focus {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y),
			float32(p.HalfExtent), color.RGBA{0xff, 0xff, 0xff, 0xff}, false)
	}
	if p.Shield > 0 {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), 16, 2,
			color.RGBA{0x60, 0xa0, 0xf0, 0xc0}, false)
	}
}

// drawHUD 绘制HUD：状态栏、Boss血条、横幅与终局/暂停覆盖层
func (s *BattleScene) drawHUD(screen *ebiten.Image, snap game.HUDSnapshot) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HP %d/%d  SHIELD %d  LIVES %d", snap.HP, snap.MaxHP, snap.Shield, snap.Revives), 8, 4)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE %d  CREDITS %d  STAGE %d", snap.Score, snap.Currency, snap.Stage), 8, 20)

	for i, ready := range snap.SpellReady {
		label := "--"
		if ready {
			label = "OK"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d]%s", i+1, label), 8+i*56, 36)
	}

	if snap.TimeWarp {
		ebitenutil.DebugPrintAt(screen, "TIME WARP", int(config.ArenaWidth)-88, 4)
	}

	if snap.BossActive {
		// Boss血条沿顶部铺开
		w := float32(config.ArenaWidth-160) * float32(snap.BossHPFrac)
		vector.DrawFilledRect(screen, 80, 54, float32(config.ArenaWidth-160), 6,
			color.RGBA{0x30, 0x30, 0x38, 0xff}, false)
		vector.DrawFilledRect(screen, 80, 54, w,
			6, color.RGBA{0xd0, 0x40, 0x40, 0xff}, false)
	}

	if snap.BossName != "" {
		ebitenutil.DebugPrintAt(screen, snap.BossName, int(config.ArenaWidth/2)-40, 64)
		if snap.Dialogue != "" {
			ebitenutil.DebugPrintAt(screen, snap.Dialogue, int(config.ArenaWidth/2)-80, 80)
		}
	}

	if snap.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(config.ArenaWidth/2)-24, int(config.ArenaHeight/2))
	}

	if snap.Finished {
		result := "MISSION FAILED"
		if s.battle.State.Outcome != nil && s.battle.State.Outcome.Victory {
			result = "MISSION COMPLETE"
		}
		ebitenutil.DebugPrintAt(screen, result, int(config.ArenaWidth/2)-56, int(config.ArenaHeight/2)-16)
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER", int(config.ArenaWidth/2)-40, int(config.ArenaHeight/2)+4)
	}
}
