// Package components 定义 ECS 组件
//
// 组件是纯数据结构，不包含任何行为逻辑。
// 所有行为由 systems 包中的系统实现。
package components

import "github.com/gonewx/voxelreactor/internal/voxel"

// TransformComponent 场景实体的空间变换
//
// 三维场景中的每个可见实体都携带一个变换：
// 位置、绕 X 轴的旋转角（弧度）、等比缩放。
type TransformComponent struct {
	Position  voxel.Vec3
	RotationX float64
	Scale     float64 // 0 视为 1
}

// ToTransform 转换为渲染层的 Transform
func (t *TransformComponent) ToTransform() voxel.Transform {
	return voxel.Transform{
		Position:  t.Position,
		RotationX: t.RotationX,
		Scale:     t.Scale,
	}
}
