// verify_scene 无头校验工具
//
// 不启动渲染窗口，直接从磁盘读取配置、组装全部场景实体，
// 打印各类实体与面片的数量。用于改动几何或配置后快速自检。
//
// 用法: go run cmd/verify_scene/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/entities"
	"github.com/gonewx/voxelreactor/pkg/game"
)

func main() {
	stageData, err := os.ReadFile("data/stages.yaml")
	if err != nil {
		log.Fatalf("读取阶段目录失败: %v", err)
	}
	catalog, err := config.ParseStageCatalog(stageData)
	if err != nil {
		log.Fatalf("阶段目录校验失败: %v", err)
	}

	materialData, err := os.ReadFile("data/materials.yaml")
	if err != nil {
		log.Fatalf("读取材质表失败: %v", err)
	}
	materials, err := config.ParseMaterialTable(materialData)
	if err != nil {
		log.Fatalf("材质表校验失败: %v", err)
	}

	fmt.Printf("阶段数量: %d\n", catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		stage := catalog.StageAt(i)
		fmt.Printf("  [%d] %s  相机 %v -> %v\n", i, stage.Title, stage.CameraPosition, stage.CameraTarget)
	}
	fmt.Printf("材质数量: %d\n\n", materials.Len())

	// 组装全部场景实体
	em := ecs.NewEntityManager()
	entities.NewStarfield(em)
	entities.NewReactorCore(em, materials)
	entities.NewPipes(em, materials)
	entities.NewTurbine(em, materials)
	entities.NewCoolingTower(em, materials)
	entities.NewNeutronSwarm(em, materials)
	entities.NewSteamSwarm(em, materials, voxel.V(-2, 2, 0), config.PipeSteamSwarmCount, config.PipeSteamSwarmSeed)
	entities.NewSteamSwarm(em, materials, voxel.V(-12, 4, 0), config.TowerSteamSwarmCount, config.TowerSteamSwarmSeed)

	meshEntities := ecs.GetEntitiesWith1[*components.VoxelMeshComponent](em)
	totalQuads := 0
	for _, id := range meshEntities {
		mesh, _ := ecs.GetComponent[*components.VoxelMeshComponent](em, id)
		totalQuads += len(mesh.Mesh.Quads)
	}

	swarmEntities := ecs.GetEntitiesWith1[*components.ParticleSwarmComponent](em)
	totalParticles := 0
	for _, id := range swarmEntities {
		swarm, _ := ecs.GetComponent[*components.ParticleSwarmComponent](em, id)
		totalParticles += len(swarm.Particles)
	}

	fmt.Printf("网格实体: %d (共 %d 面片)\n", len(meshEntities), totalQuads)
	fmt.Printf("粒子群: %d (共 %d 粒子)\n", len(swarmEntities), totalParticles)
	fmt.Printf("点光源: %d\n", len(ecs.GetEntitiesWith1[*components.PointLightComponent](em)))
	fmt.Printf("可动控制棒组: %d\n", len(ecs.GetEntitiesWith1[*components.ControlRodComponent](em)))
	fmt.Printf("旋转体: %d\n", len(ecs.GetEntitiesWith1[*components.SpinComponent](em)))

	// 派生量抽查
	state := game.NewReactorState(catalog)
	state.SetControlRodLevel(1.0)
	fmt.Printf("\n满档派生量: 功率 %d MW, 转速 %.2f\n", state.PowerOutputMW(), state.TurbineSpeed())

	fmt.Println("\n场景校验通过")
}
