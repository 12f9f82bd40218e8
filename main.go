package main

import (
	"flag"
	"log"

	"github.com/gonewx/voxelreactor/pkg/app"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	flag.Parse()

	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	reactorApp, err := app.NewApp(app.Config{Verbose: *verbose})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("VoxelReactor - 核电站互动演示")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if reactorApp.StartFullscreen() {
		ebiten.SetFullscreen(true)
	}

	// 启动渲染循环，直到窗口关闭
	if err := ebiten.RunGame(reactorApp); err != nil {
		log.Fatal(err)
	}
}
