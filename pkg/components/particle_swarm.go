package components

import "github.com/gonewx/voxelreactor/internal/voxel"

// SwarmKind 粒子群类型
type SwarmKind int

const (
	SwarmSteam   SwarmKind = iota // 蒸汽：循环上升并逐渐放大
	SwarmNeutron                  // 中子：围绕基准位置高频抖动
)

// Particle 粒子群中单个粒子的不变参数
//
// 粒子的实时位置由系统根据这些参数和累计时间计算，
// 参数本身在创建后不再改变，保证同一种子下动画可复现。
type Particle struct {
	Base  voxel.Vec3 // 基准偏移（相对 Origin）
	Speed float64
	Phase float64
}

// SwarmInstance 单个粒子本帧的渲染快照
type SwarmInstance struct {
	Position voxel.Vec3
	Scale    float64
}

// ParticleSwarmComponent 一组同质粒子
//
// Active 由控制棒档位与显隐阈值决定；非激活时系统不更新 Instances，
// 渲染系统也不绘制。Instances 与 Particles 等长，由系统每帧重写。
type ParticleSwarmComponent struct {
	Kind      SwarmKind
	Origin    voxel.Vec3
	Seed      int64
	Particles []Particle
	Instances []SwarmInstance
	Surface   voxel.Surface
	Size      float64 // 粒子立方体边长
	Active    bool
	Elapsed   float64
}
