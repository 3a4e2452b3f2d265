package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starblitz/pkg/app"
	"github.com/gonewx/starblitz/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		DataFS:  dataFS,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(int(config.ArenaWidth), int(config.ArenaHeight))
	ebiten.SetWindowTitle("Starblitz")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&closingGame{App: a}); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

// errQuit 窗口关闭时从 Update 返回，终止 RunGame 主循环
var errQuit = errors.New("window closed")

// closingGame 包装 App 以拦截窗口关闭事件：先落盘再退出
type closingGame struct {
	*app.App
}

func (g *closingGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.App.Shutdown()
		return errQuit
	}
	return g.App.Update()
}
