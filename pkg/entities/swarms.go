package entities

import (
	"math/rand"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// newSwarmParticles 按种子生成粒子的不变参数
//
// 基准位置落在 2×5×2 的柱状区域内（XZ 居中，Y 向上），
// 速度与相位各自独立随机。
func newSwarmParticles(seed int64, count int) []components.Particle {
	rng := rand.New(rand.NewSource(seed))
	particles := make([]components.Particle, count)
	for i := range particles {
		particles[i] = components.Particle{
			Base: voxel.V(
				(rng.Float64()-0.5)*2,
				rng.Float64()*5,
				(rng.Float64()-0.5)*2,
			),
			Speed: rng.Float64()*0.05 + 0.02,
			Phase: rng.Float64() * 100,
		}
	}
	return particles
}

// NewNeutronSwarm 创建堆芯中子粒子群
func NewNeutronSwarm(em *ecs.EntityManager, materials *config.MaterialTable) {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ParticleSwarmComponent{
		Kind:      components.SwarmNeutron,
		Origin:    sceneOffset,
		Seed:      config.NeutronSwarmSeed,
		Particles: newSwarmParticles(config.NeutronSwarmSeed, config.NeutronSwarmCount),
		Surface:   surfaceFor(materials, "neutron"),
		Size:      config.ParticleCubeSize,
	})
}

// NewSteamSwarm 创建蒸汽粒子群
//
// origin 为群体原点（未含场景偏移）：热交换管道上方和冷却塔顶各一处。
func NewSteamSwarm(em *ecs.EntityManager, materials *config.MaterialTable, origin voxel.Vec3, count int, seed int64) {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ParticleSwarmComponent{
		Kind:      components.SwarmSteam,
		Origin:    origin.Add(sceneOffset),
		Seed:      seed,
		Particles: newSwarmParticles(seed, count),
		Surface:   surfaceFor(materials, "steam"),
		Size:      config.ParticleCubeSize,
	})
}
