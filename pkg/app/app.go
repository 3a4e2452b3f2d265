// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataFS 嵌入的配置文件系统（data/*.yaml）
	DataFS fs.FS
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	saveManager              *game.SaveManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.LoadAll(cfg.DataFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config: %w", err)
	}
	log.Printf("[App] Game config loaded (%d stages)", len(gameConfig.Stages.Stages))

	// gdata 初始化失败走降级模式（纯内存设置/档案）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "starblitz"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings/profile will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings load failed: %v", err)
	}
	saveManager, err := game.NewSaveManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: profile load failed: %v", err)
	}

	audioManager := game.NewAudioManager(settingsManager)
	log.Printf("[App] AudioManager initialized")

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewMainMenuScene(sceneManager, saveManager, settingsManager, gameConfig, audioManager))

	return &App{
		sceneManager: sceneManager,
		saveManager:  saveManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），模拟时钟内部以自己的
// 固定步频折算真实流逝时间
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(int(config.ArenaWidth), int(config.ArenaHeight))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.ArenaWidth), int(config.ArenaHeight)
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Shutdown 游戏关闭时的收尾：让当前场景保存状态并落盘档案
func (a *App) Shutdown() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		s.SaveOnExit()
	}
	if err := a.saveManager.Save(); err != nil {
		log.Printf("[App] Shutdown save failed: %v", err)
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
