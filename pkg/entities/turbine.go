package entities

import (
	"math"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// 涡轮机组布局（世界坐标，未含场景偏移）
var (
	turbineBase   = voxel.V(-5, 1, 0)
	rotorOffset   = voxel.V(0, 0.5, 0)
	generatorBase = voxel.V(-8, 1, 0)
)

// NewTurbine 创建涡轮机组：外壳、可旋转的转子（轴 + 叶片）、发电机与电弧灯
//
// 转子是独立实体，由旋转系统绕 X 轴驱动。
// 叶片分 4 组，每组绕轴错开 90°，每组 3 片。
func NewTurbine(em *ecs.EntityManager, materials *config.MaterialTable) {
	metal := surfaceFor(materials, "metal")
	blade := surfaceFor(materials, "blade")
	generator := surfaceFor(materials, "generator")

	// 外壳
	housing := voxel.NewCubeMesh(voxel.V(0, -1, 0), 3, metal)
	housingID := em.CreateEntity()
	em.AddComponent(housingID, &components.VoxelMeshComponent{Mesh: housing, Visible: true})
	em.AddComponent(housingID, &components.TransformComponent{Position: turbineBase.Add(sceneOffset)})

	// 转子：主轴 + 4 组叶片（局部坐标以转轴为原点）
	rotor := voxel.NewCylinderMesh(voxel.V(0, 0, 0), 0.2, 0.2, 4, cylinderSegments, voxel.AxisX, metal)
	for r := 0; r < 4; r++ {
		group := voxel.Merge(
			voxel.NewBoxMesh(voxel.V(0, 0.8, 0), voxel.V(0.5, 1.5, 0.1), blade),
			voxel.NewBoxMesh(voxel.V(0.8, 0.8, 0), voxel.V(0.5, 1.5, 0.1), blade),
			voxel.NewBoxMesh(voxel.V(-0.8, 0.8, 0), voxel.V(0.5, 1.5, 0.1), blade),
		)
		rotor = voxel.Merge(rotor, group.RotatedX(float64(r)*math.Pi/2))
	}

	rotorID := em.CreateEntity()
	em.AddComponent(rotorID, &components.VoxelMeshComponent{Mesh: rotor, Visible: true})
	em.AddComponent(rotorID, &components.TransformComponent{
		Position: turbineBase.Add(rotorOffset).Add(sceneOffset),
	})
	em.AddComponent(rotorID, &components.SpinComponent{RateScale: config.TurbineSpinScale})

	// 发电机
	genMesh := voxel.NewCubeMesh(voxel.V(0, 0, 0), 2, generator)
	genID := em.CreateEntity()
	em.AddComponent(genID, &components.VoxelMeshComponent{Mesh: genMesh, Visible: true})
	em.AddComponent(genID, &components.TransformComponent{Position: generatorBase.Add(sceneOffset)})

	// 发电机电弧：黄色闪烁点光源
	sparkID := em.CreateEntity()
	em.AddComponent(sparkID, &components.PointLightComponent{
		Position: generatorBase.Add(voxel.V(0, 1, 0)).Add(sceneOffset),
		Color:    [3]float64{1, 1, 0},
		Distance: 3,
	})
	em.AddComponent(sparkID, &components.FlickerComponent{
		MaxIntensity: 2,
	})
}
