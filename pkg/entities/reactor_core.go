package entities

import (
	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// 堆芯几何参数
const (
	fuelRodSpacing   = 0.8
	fuelRodHeight    = 3.0
	controlRodHeight = 3.0
	cylinderSegments = 16
)

// rodGridOffsets 3×3 燃料棒/控制棒阵列的 XZ 偏移
func rodGridOffsets() [][2]float64 {
	var offsets [][2]float64
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			offsets = append(offsets, [2]float64{float64(x) * fuelRodSpacing, float64(z) * fuelRodSpacing})
		}
	}
	return offsets
}

// NewReactorCore 创建堆芯：安全壳、水池、燃料棒、可动控制棒组和堆芯辉光
//
// 堆芯中心位于世界原点（含场景偏移）。控制棒组是独立实体，
// 由控制棒系统驱动升降；其余部分静止。
func NewReactorCore(em *ecs.EntityManager, materials *config.MaterialTable) {
	concrete := surfaceFor(materials, "concrete")
	water := surfaceFor(materials, "water")
	fuel := surfaceFor(materials, "fuel")
	controlRod := surfaceFor(materials, "controlRod")
	metal := surfaceFor(materials, "metal")

	// 静止部分：安全壳底座 + 水池 + 燃料棒
	static := voxel.Merge(
		voxel.NewCylinderMesh(voxel.V(0, -2.5, 0), 2.5, 2.5, 1, cylinderSegments, voxel.AxisY, concrete),
		voxel.NewCylinderMesh(voxel.V(0, 0, 0), 2.2, 2.2, 4, cylinderSegments, voxel.AxisY, water),
	)
	for _, off := range rodGridOffsets() {
		static = voxel.Merge(static,
			voxel.NewBoxMesh(voxel.V(off[0], -0.5, off[1]), voxel.V(0.4, fuelRodHeight, 0.4), fuel))
	}

	staticID := em.CreateEntity()
	em.AddComponent(staticID, &components.VoxelMeshComponent{Mesh: static, Visible: true})
	em.AddComponent(staticID, &components.TransformComponent{Position: sceneOffset})

	// 可动部分：9 根控制棒 + 顶部连接板
	var rods voxel.Mesh
	for _, off := range rodGridOffsets() {
		rods = voxel.Merge(rods,
			voxel.NewBoxMesh(voxel.V(off[0], 1.5, off[1]), voxel.V(0.3, controlRodHeight, 0.3), controlRod))
	}
	rods = voxel.Merge(rods, voxel.NewBoxMesh(voxel.V(0, 3.2, 0), voxel.V(2.5, 0.2, 2.5), metal))

	rodID := em.CreateEntity()
	em.AddComponent(rodID, &components.VoxelMeshComponent{Mesh: rods, Visible: true})
	em.AddComponent(rodID, &components.TransformComponent{Position: sceneOffset})
	em.AddComponent(rodID, &components.ControlRodComponent{
		BaseY:  config.SceneOffsetY,
		Travel: config.ControlRodTravel,
	})

	// 堆芯辉光：绿色点光源，亮度由控制棒系统调节
	glowID := em.CreateEntity()
	em.AddComponent(glowID, &components.PointLightComponent{
		Position: sceneOffset,
		Color:    [3]float64{0, 1, 0.53}, // #00ff88
		Distance: 5,
		Enabled:  true,
	})
	em.AddComponent(glowID, &components.CoreGlowComponent{})
}
