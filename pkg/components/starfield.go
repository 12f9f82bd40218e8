package components

import "github.com/gonewx/voxelreactor/internal/voxel"

// Star 单颗背景星
type Star struct {
	Position   voxel.Vec3
	Brightness float64 // 0 ~ 1
}

// StarfieldComponent 背景星空
//
// 星点在实体创建时按种子生成一次，分布在远处的球壳上，
// 渲染时直接投影为像素点。
type StarfieldComponent struct {
	Stars []Star
}
