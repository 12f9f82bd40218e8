package components

import "github.com/gonewx/voxelreactor/internal/voxel"

// VoxelMeshComponent 实体的体素网格
//
// Mesh 在实体创建时构建一次，每帧经变换后提交给渲染器。
// Visible 为 false 时渲染系统跳过该实体。
type VoxelMeshComponent struct {
	Mesh    voxel.Mesh
	Visible bool
}
