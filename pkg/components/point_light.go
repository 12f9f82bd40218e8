package components

import "github.com/gonewx/voxelreactor/internal/voxel"

// PointLightComponent 点光源
//
// Enabled 为 false 时光源不参与着色（发电机熄灭、堆芯完全停堆等场合）。
type PointLightComponent struct {
	Position  voxel.Vec3
	Color     [3]float64
	Intensity float64
	Distance  float64
	Enabled   bool
}

// CoreGlowComponent 标记组件：该光源是堆芯辉光
//
// 控制棒系统据此找到需要随反应强度调节亮度的光源。
type CoreGlowComponent struct{}

// FlickerComponent 标记组件：该光源随机闪烁
//
// 发电机指示灯在涡轮转动时闪烁，强度每帧在 [0, MaxIntensity) 内随机。
type FlickerComponent struct {
	MaxIntensity float64
}
