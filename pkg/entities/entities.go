// Package entities 提供场景实体的工厂函数
//
// 每个工厂创建一个或多个实体并挂好组件。几何尺寸与布局
// 还原实体模型的原始设计，世界坐标已包含场景整体下沉偏移。
package entities

import (
	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/config"
)

// surfaceFor 把材质配置转换为渲染面样式
func surfaceFor(materials *config.MaterialTable, name string) voxel.Surface {
	m := materials.Get(name)
	return voxel.Surface{
		Color:    m.Color,
		Alpha:    m.Alpha,
		Emissive: m.Emissive,
	}
}

// sceneOffset 场景整体偏移（所有建筑统一下沉）
var sceneOffset = voxel.V(0, config.SceneOffsetY, 0)
