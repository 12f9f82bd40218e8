package systems

import (
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
)

// ControlRodSystem 控制棒升降与堆芯辉光系统
//
// 滑块值表示控制棒的"抽出程度"，而棒的视觉插入深度正好相反：
// 抽出越多，棒升得越高，反应越强，堆芯辉光越亮。
// 反相只发生在这里，其他模块一律使用抽出程度。
type ControlRodSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
}

// NewControlRodSystem 创建控制棒系统
func NewControlRodSystem(em *ecs.EntityManager, state *game.ReactorState) *ControlRodSystem {
	return &ControlRodSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 同步控制棒位置与堆芯辉光亮度
func (s *ControlRodSystem) Update(deltaTime float64) {
	visualLevel := 1.0 - s.state.ControlRodLevel()

	// 控制棒：Y 坐标随插入深度升降
	rodEntities := ecs.GetEntitiesWith2[*components.ControlRodComponent, *components.TransformComponent](s.entityManager)
	for _, entityID := range rodEntities {
		rod, _ := ecs.GetComponent[*components.ControlRodComponent](s.entityManager, entityID)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, entityID)

		rod.VisualLevel = visualLevel
		transform.Position.Y = rod.BaseY + rod.VisualLevel*rod.Travel
	}

	// 堆芯辉光：棒插得越深，光越暗
	glowIntensity := config.CoreGlowMaxIntensity - visualLevel
	glowEntities := ecs.GetEntitiesWith2[*components.CoreGlowComponent, *components.PointLightComponent](s.entityManager)
	for _, entityID := range glowEntities {
		light, _ := ecs.GetComponent[*components.PointLightComponent](s.entityManager, entityID)
		light.Intensity = glowIntensity
		light.Enabled = glowIntensity > 0
	}
}
