package systems

import (
	"math/rand"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
)

// FlickerSystem 发电机指示灯闪烁系统
//
// 涡轮转速超过闪烁阈值时，带 FlickerComponent 的光源
// 每帧取 [0, MaxIntensity) 内的随机强度，模拟发电时的电弧闪光。
// 转速不足时灯保持熄灭。
type FlickerSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
	rng           *rand.Rand
}

// NewFlickerSystem 创建闪烁系统
//
// seed 固定随机序列，方便测试和录屏复现。
func NewFlickerSystem(em *ecs.EntityManager, state *game.ReactorState, seed int64) *FlickerSystem {
	return &FlickerSystem{
		entityManager: em,
		state:         state,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Update 更新所有闪烁光源
func (s *FlickerSystem) Update(deltaTime float64) {
	active := s.state.TurbineSpeed() > config.GeneratorFlickerThreshold

	entities := ecs.GetEntitiesWith2[*components.FlickerComponent, *components.PointLightComponent](s.entityManager)
	for _, entityID := range entities {
		flicker, _ := ecs.GetComponent[*components.FlickerComponent](s.entityManager, entityID)
		light, _ := ecs.GetComponent[*components.PointLightComponent](s.entityManager, entityID)

		if !active {
			light.Enabled = false
			continue
		}
		light.Enabled = true
		light.Intensity = s.rng.Float64() * flicker.MaxIntensity
	}
}
