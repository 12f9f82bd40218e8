package systems

import (
	"math"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
)

// ParticleSwarmSystem 粒子群动画系统
//
// 两种粒子共用一套参数化模型：粒子的实时位置是
// (基准参数, 累计时间) 的纯函数，系统每帧重算渲染快照。
//
// 蒸汽：沿 Y 轴循环上升，越高越大，到顶回绕；
// 中子：围绕基准位置在 XZ 平面高频抖动，大小恒定。
//
// 粒子群的显隐由控制棒档位和阈值决定，隐藏的群完全跳过计算。
type ParticleSwarmSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
}

// NewParticleSwarmSystem 创建粒子群系统
func NewParticleSwarmSystem(em *ecs.EntityManager, state *game.ReactorState) *ParticleSwarmSystem {
	return &ParticleSwarmSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 更新所有粒子群
func (s *ParticleSwarmSystem) Update(deltaTime float64) {
	steamVisible := s.state.SteamVisible()
	neutronsVisible := s.state.NeutronsVisible()

	entities := ecs.GetEntitiesWith1[*components.ParticleSwarmComponent](s.entityManager)
	for _, entityID := range entities {
		swarm, _ := ecs.GetComponent[*components.ParticleSwarmComponent](s.entityManager, entityID)

		switch swarm.Kind {
		case components.SwarmSteam:
			swarm.Active = steamVisible
		case components.SwarmNeutron:
			swarm.Active = neutronsVisible
		}

		// 隐藏的群不推进时间也不重算快照
		if !swarm.Active {
			continue
		}

		swarm.Elapsed += deltaTime
		s.refreshInstances(swarm)
	}
}

// refreshInstances 重算粒子群的渲染快照
func (s *ParticleSwarmSystem) refreshInstances(swarm *components.ParticleSwarmComponent) {
	if len(swarm.Instances) != len(swarm.Particles) {
		swarm.Instances = make([]components.SwarmInstance, len(swarm.Particles))
	}

	t := swarm.Elapsed
	for i, p := range swarm.Particles {
		switch swarm.Kind {
		case components.SwarmSteam:
			// 循环上升，越高越大
			y := math.Mod(p.Base.Y+p.Speed+t, config.SteamRiseHeight)
			swarm.Instances[i].Position = swarm.Origin.Add(
				voxel.V(p.Base.X, y+config.SteamLift, p.Base.Z))
			swarm.Instances[i].Scale = y / config.SteamRiseHeight

		case components.SwarmNeutron:
			// XZ 平面抖动
			jitterX := math.Sin(t*config.NeutronJitterRate+p.Phase) * config.NeutronJitterAmplitude
			jitterZ := math.Cos(t*config.NeutronJitterRate+p.Phase) * config.NeutronJitterAmplitude
			swarm.Instances[i].Position = swarm.Origin.Add(
				voxel.V(p.Base.X+jitterX, p.Base.Y, p.Base.Z+jitterZ))
			swarm.Instances[i].Scale = config.NeutronInstanceScale
		}
	}
}
