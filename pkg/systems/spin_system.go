// Package systems 实现驱动演示的各个 ECS 系统
package systems

import (
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
)

// SpinSystem 旋转动画系统
// 负责让涡轮转子持续旋转
//
// 转速来自反应堆状态的派生量，每帧同步一次，
// 所以拖动滑块时转子立即加速或减速。
type SpinSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
}

// NewSpinSystem 创建旋转动画系统
func NewSpinSystem(em *ecs.EntityManager, state *game.ReactorState) *SpinSystem {
	return &SpinSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 推进所有旋转实体的角度
func (s *SpinSystem) Update(deltaTime float64) {
	speed := s.state.TurbineSpeed()

	entities := ecs.GetEntitiesWith2[*components.SpinComponent, *components.TransformComponent](s.entityManager)
	for _, entityID := range entities {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, entityID)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, entityID)

		spin.Speed = speed
		spin.Angle += spin.Speed * spin.RateScale * deltaTime
		transform.RotationX = spin.Angle
	}
}
