// Package scenes 组装演示场景
package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/entities"
	"github.com/gonewx/voxelreactor/pkg/game"
	"github.com/gonewx/voxelreactor/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundColor 场景底色（近黑）
var backgroundColor = color.RGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xff}

// ReactorScene 核电站导览场景
//
// 持有全部实体与系统，是唯一的顶层场景。
// Update 顺序：交互 → 状态派生动画 → 相机；
// Draw 顺序：三维场景 → 平面界面。
type ReactorScene struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
	camera        *voxel.Camera

	buttonSystem    *systems.ButtonSystem
	sliderSystem    *systems.SliderSystem
	textInputSystem *systems.TextInputSystem
	chatSystem      *systems.ChatSystem

	spinSystem       *systems.SpinSystem
	controlRodSystem *systems.ControlRodSystem
	flickerSystem    *systems.FlickerSystem
	particleSystem   *systems.ParticleSwarmSystem

	sceneRenderSystem *systems.SceneRenderSystem
	hudRenderSystem   *systems.HUDRenderSystem

	// UI 实体的组件引用（每帧同步状态用）
	prevButton *components.ButtonComponent
	nextButton *components.ButtonComponent
	sendButton *components.ButtonComponent
	chatPanel  *components.ChatPanelComponent
	chatInput  *components.TextInputComponent

	lastStageIndex int
}

// NewReactorScene 创建并组装导览场景
func NewReactorScene(state *game.ReactorState, materials *config.MaterialTable, tutor systems.TutorAsker) *ReactorScene {
	em := ecs.NewEntityManager()

	camera := voxel.NewCamera(config.CameraFOVDegrees)
	renderer := voxel.NewRenderer(config.GameWindowWidth, config.GameWindowHeight)

	s := &ReactorScene{
		entityManager:  em,
		state:          state,
		camera:         camera,
		lastStageIndex: state.StageIndex(),
	}

	// 三维场景实体
	entities.NewStarfield(em)
	entities.NewReactorCore(em, materials)
	entities.NewPipes(em, materials)
	entities.NewTurbine(em, materials)
	entities.NewCoolingTower(em, materials)
	entities.NewNeutronSwarm(em, materials)
	entities.NewSteamSwarm(em, materials, voxel.V(-2, 2, 0), config.PipeSteamSwarmCount, config.PipeSteamSwarmSeed)
	entities.NewSteamSwarm(em, materials, voxel.V(-12, 4, 0), config.TowerSteamSwarmCount, config.TowerSteamSwarmSeed)

	// 系统
	s.buttonSystem = systems.NewButtonSystem(em)
	s.sliderSystem = systems.NewSliderSystem(em)
	s.textInputSystem = systems.NewTextInputSystem(em)
	s.chatSystem = systems.NewChatSystem(em, state, tutor)
	s.spinSystem = systems.NewSpinSystem(em, state)
	s.controlRodSystem = systems.NewControlRodSystem(em, state)
	s.flickerSystem = systems.NewFlickerSystem(em, state, config.GeneratorFlickerSeed)
	s.particleSystem = systems.NewParticleSwarmSystem(em, state)
	s.sceneRenderSystem = systems.NewSceneRenderSystem(em, renderer, camera)
	s.hudRenderSystem = systems.NewHUDRenderSystem(em, state)

	// 界面实体（依赖 chatSystem 的回调，最后创建）
	s.buildUI()

	// 相机直接落在初始阶段位姿，不播放开场飞行
	stage := state.CurrentStage()
	camera.JumpTo(stagePosition(stage), stageTarget(stage))

	log.Printf("[ReactorScene] 场景就绪: 阶段 %d/%d", state.StageIndex()+1, state.StageCount())
	return s
}

// Update 推进一帧
func (s *ReactorScene) Update(deltaTime float64) {
	// 交互
	s.buttonSystem.Update(deltaTime)
	s.sliderSystem.Update(deltaTime)
	s.textInputSystem.Update(deltaTime)

	// 阶段变化触发相机飞行
	if s.state.StageIndex() != s.lastStageIndex {
		s.lastStageIndex = s.state.StageIndex()
		stage := s.state.CurrentStage()
		s.camera.FlyTo(stagePosition(stage), stageTarget(stage), config.CameraFlyDuration)
	}

	// 界面状态同步
	s.prevButton.Enabled = !s.state.AtFirstStage()
	s.nextButton.Enabled = !s.state.AtLastStage()
	s.chatInput.IsFocused = s.chatPanel.Open
	s.sendButton.Visible = s.chatPanel.OpenProgress >= 1
	s.sendButton.Enabled = !s.chatPanel.Pending

	// 状态派生动画
	s.spinSystem.Update(deltaTime)
	s.controlRodSystem.Update(deltaTime)
	s.flickerSystem.Update(deltaTime)
	s.particleSystem.Update(deltaTime)
	s.chatSystem.Update(deltaTime)

	s.camera.Update(deltaTime)
}

// Draw 渲染一帧
func (s *ReactorScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.sceneRenderSystem.Draw(screen)
	s.hudRenderSystem.Draw(screen)
}

// Camera 返回场景相机（测试用）
func (s *ReactorScene) Camera() *voxel.Camera {
	return s.camera
}

// stagePosition 阶段配置里的相机位置
func stagePosition(stage config.StageInfo) voxel.Vec3 {
	return voxel.V(stage.CameraPosition[0], stage.CameraPosition[1], stage.CameraPosition[2])
}

// stageTarget 阶段配置里的相机注视点
func stageTarget(stage config.StageInfo) voxel.Vec3 {
	return voxel.V(stage.CameraTarget[0], stage.CameraTarget[1], stage.CameraTarget[2])
}
