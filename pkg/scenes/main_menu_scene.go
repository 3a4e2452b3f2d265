package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/systems"
	"github.com/gonewx/starblitz/pkg/types"
)

// MainMenuScene 主菜单场景
//
// 键盘导航：上下选择模式，左右切换难度，Enter 开始战斗。
// 装备与强化等级从档案读取，货币银行余额随战绩展示
type MainMenuScene struct {
	sceneManager *game.SceneManager
	saveManager  *game.SaveManager
	settings     *game.SettingsManager
	cfg          *config.GameConfig
	audio        game.AudioSink

	modeIndex int
	diffIndex int
}

var menuModes = []types.GameMode{types.ModeNormal, types.ModeBossRush, types.ModePractice}

var menuDifficulties = []types.Difficulty{
	types.DifficultyEasy,
	types.DifficultyNormal,
	types.DifficultyHard,
	types.DifficultyLunatic,
	types.DifficultyEndless,
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(sceneManager *game.SceneManager, saveManager *game.SaveManager,
	settings *game.SettingsManager, cfg *config.GameConfig, audio game.AudioSink) *MainMenuScene {
	return &MainMenuScene{
		sceneManager: sceneManager,
		saveManager:  saveManager,
		settings:     settings,
		cfg:          cfg,
		audio:        audio,
		diffIndex:    1, // 默认普通难度
	}
}

// Update 处理菜单导航与战斗启动
func (s *MainMenuScene) Update(_ float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.modeIndex = (s.modeIndex + len(menuModes) - 1) % len(menuModes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.modeIndex = (s.modeIndex + 1) % len(menuModes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.diffIndex = (s.diffIndex + len(menuDifficulties) - 1) % len(menuDifficulties)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.diffIndex = (s.diffIndex + 1) % len(menuDifficulties)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.settings.SetSoundEnabled(!s.settings.GetSettings().SoundEnabled)
		s.persistSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		s.settings.SetSoundVolume(s.settings.GetSettings().SoundVolume - 0.1)
		s.persistSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		s.settings.SetSoundVolume(s.settings.GetSettings().SoundVolume + 0.1)
		s.persistSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		full := !s.settings.GetSettings().Fullscreen
		s.settings.SetFullscreen(full)
		ebiten.SetFullscreen(full)
		s.persistSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.startBattle()
	}
}

// persistSettings 保存设置变更，失败只记录日志
func (s *MainMenuScene) persistSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[MainMenuScene] Failed to save settings: %v", err)
	}
}

// buildLoadout 从档案组装装备配置，强化等级取已购等级
func (s *MainMenuScene) buildLoadout() game.Loadout {
	loadout := s.saveManager.Profile().Loadout
	if len(loadout.Weapons) == 0 {
		loadout = game.DefaultLoadout()
	}
	for i := range loadout.Weapons {
		loadout.Weapons[i].Level = s.saveManager.UpgradeLevel(loadout.Weapons[i].ID)
	}
	for i := range loadout.Spells {
		loadout.Spells[i].Level = s.saveManager.UpgradeLevel(loadout.Spells[i].ID)
	}
	return loadout
}

// startBattle 按当前选择启动一局战斗
func (s *MainMenuScene) startBattle() {
	mode := menuModes[s.modeIndex]
	params := systems.BattleParams{
		Mode:       mode,
		Difficulty: menuDifficulties[s.diffIndex],
		Loadout:    s.buildLoadout(),
		Boosts:     game.DefaultBoosts(),
		Audio:      s.audio,
	}
	if mode == types.ModePractice {
		params.Practice = game.PracticeSpec{
			Enabled: true,
			Target:  types.EnemyDrone,
		}
	}

	backToMenu := func() game.Scene {
		return NewMainMenuScene(s.sceneManager, s.saveManager, s.settings, s.cfg, s.audio)
	}
	s.sceneManager.SwitchTo(NewBattleScene(s.sceneManager, s.saveManager, s.cfg, params, backToMenu))
}

// Draw 绘制菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0a, 0x0a, 0x1a, 0xff})

	ebitenutil.DebugPrintAt(screen, "S T A R B L I T Z", int(config.ArenaWidth/2)-64, 80)

	for i, mode := range menuModes {
		prefix := "  "
		if i == s.modeIndex {
			prefix = "> "
		}
		ebitenutil.DebugPrintAt(screen, prefix+modeLabel(mode), int(config.ArenaWidth/2)-60, 160+i*24)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("< %s >", menuDifficulties[s.diffIndex]), int(config.ArenaWidth/2)-40, 260)

	profile := s.saveManager.Profile()
	key := menuDifficulties[s.diffIndex].String()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("CREDITS %d   BEST %d   DEEPEST STAGE %d",
			profile.Currency, profile.BestScore[key], profile.DeepestStage[key]),
		int(config.ArenaWidth/2)-140, 310)

	ebitenutil.DebugPrintAt(screen, "ARROWS: SELECT   ENTER: LAUNCH", int(config.ArenaWidth/2)-110, 400)

	sound := "ON"
	if !s.settings.GetSettings().SoundEnabled {
		sound = "OFF"
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("M: SOUND %s   < > VOLUME %.0f%%   F: FULLSCREEN",
			sound, s.settings.GetSettings().SoundVolume*100),
		int(config.ArenaWidth/2)-140, 424)

	vector.StrokeRect(screen, 40, 40, float32(config.ArenaWidth-80), float32(config.ArenaHeight-80),
		1, color.RGBA{0x30, 0x38, 0x50, 0xff}, false)
}

// modeLabel 模式的菜单显示文本
func modeLabel(m types.GameMode) string {
	switch m {
	case types.ModeBossRush:
		return "BOSS RUSH"
	case types.ModePractice:
		return "PRACTICE"
	default:
		return "CAMPAIGN"
	}
}
