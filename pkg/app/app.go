// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置、建立持久化存储、
// 连接 AI 导览服务，并组装场景。main.go 只负责窗口参数和 RunGame。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gonewx/voxelreactor/internal/tutor"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/game"
	"github.com/gonewx/voxelreactor/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// apiKeyEnv AI 导览服务密钥的环境变量名
const apiKeyEnv = "GEMINI_API_KEY"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载静态配置
	catalog, err := config.LoadStageCatalog()
	if err != nil {
		return nil, fmt.Errorf("阶段目录加载失败: %w", err)
	}
	materials, err := config.LoadMaterialTable()
	if err != nil {
		return nil, fmt.Errorf("材质表加载失败: %w", err)
	}
	log.Printf("[App] 配置加载完成: %d 个阶段, %d 种材质", catalog.Len(), materials.Len())

	// 跨平台设置存储（失败时降级为仅内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "voxelreactor"})
	if err != nil {
		log.Printf("[App] Warning: gdata 存储不可用: %v (设置不会持久化)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	// AI 导览服务：没有密钥时进入降级模式（回复固定提示语）
	tutorClient := tutor.NewClient(context.Background(), os.Getenv(apiKeyEnv))

	// 组装场景
	state := game.NewReactorState(catalog)
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewReactorScene(state, materials, tutorClient))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏并持久化选择
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] 设置保存失败: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.settingsManager.GetSettings().ShowFPS {
		a.drawFPS(screen)
	}
}

// drawFPS 左上角帧率读数（调试用）
func (a *App) drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()))
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

// Layout 返回应用的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// StartFullscreen 返回是否应以全屏模式启动
func (a *App) StartFullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
