package entities

import (
	"math"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// 冷却塔位置与层数
var coolingTowerBase = voxel.V(-12, 0, 0)

const coolingTowerLayers = 8

// NewCoolingTower 创建冷却塔
//
// 用 8 层堆叠的圆台近似双曲面塔身：
// 每层半径 2.5 - sin(i*0.3)*0.8，下缘略宽形成收腰轮廓。
func NewCoolingTower(em *ecs.EntityManager, materials *config.MaterialTable) {
	concrete := surfaceFor(materials, "concrete")

	var tower voxel.Mesh
	for i := 0; i < coolingTowerLayers; i++ {
		radius := 2.5 - math.Sin(float64(i)*0.3)*0.8
		layer := voxel.NewCylinderMesh(voxel.V(0, float64(i), 0), radius, radius+0.2, 1, cylinderSegments, voxel.AxisY, concrete)
		tower = voxel.Merge(tower, layer)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.VoxelMeshComponent{Mesh: tower, Visible: true})
	em.AddComponent(id, &components.TransformComponent{Position: coolingTowerBase.Add(sceneOffset)})
}

// NewPipes 创建蒸汽管道
//
// 两段水平圆管：堆芯到涡轮的高压蒸汽管，涡轮到冷却塔的回水管。
func NewPipes(em *ecs.EntityManager, materials *config.MaterialTable) {
	metal := surfaceFor(materials, "metal")

	pipes := voxel.Merge(
		voxel.NewCylinderMesh(voxel.V(-2.5, 2, 0), 0.3, 0.3, 5, 8, voxel.AxisX, metal),
		voxel.NewCylinderMesh(voxel.V(-8, 0, 0), 0.3, 0.3, 6, 8, voxel.AxisX, metal),
	)

	id := em.CreateEntity()
	em.AddComponent(id, &components.VoxelMeshComponent{Mesh: pipes, Visible: true})
	em.AddComponent(id, &components.TransformComponent{Position: sceneOffset})
}
