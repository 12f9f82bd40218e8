package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// 星空参数
const (
	starCount  = 600
	starRadius = 100.0
)

// NewStarfield 创建背景星空
//
// 星点均匀分布在远处的球面上（用两个随机角度采样），
// 亮度随机，渲染时投影为单像素点。
func NewStarfield(em *ecs.EntityManager) {
	rng := rand.New(rand.NewSource(config.StarfieldSeed))

	stars := make([]components.Star, starCount)
	for i := range stars {
		// 球面均匀采样：cos(θ) 均匀取值避免两极聚集
		cosTheta := rng.Float64()*2 - 1
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		phi := rng.Float64() * 2 * math.Pi

		stars[i] = components.Star{
			Position: voxel.V(
				starRadius*sinTheta*math.Cos(phi),
				starRadius*cosTheta,
				starRadius*sinTheta*math.Sin(phi),
			),
			Brightness: rng.Float64(),
		}
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.StarfieldComponent{Stars: stars})
}
