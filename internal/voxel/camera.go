package voxel

import "math"

// Camera 透视相机，支持平滑飞行过渡
//
// FlyTo 发起一次从当前位姿到目标位姿的缓动过渡（fire-and-forget）：
// 没有完成回调，飞行途中再次调用 FlyTo 会以当前插值位姿为起点
// 直接改飞新目标，后到的过渡取代进行中的过渡。
type Camera struct {
	Position   Vec3
	Target     Vec3
	FOVDegrees float64

	flying      bool
	flyElapsed  float64
	flyDuration float64
	fromPos     Vec3
	fromTarget  Vec3
	toPos       Vec3
	toTarget    Vec3
}

// NewCamera 创建相机
// 初始位姿为远处俯瞰原点，首次 FlyTo 之前也能得到合法的视图基底。
func NewCamera(fovDegrees float64) *Camera {
	return &Camera{
		Position:   V(0, 5, 18),
		Target:     V(0, 0, 0),
		FOVDegrees: fovDegrees,
	}
}

// FlyTo 发起一次平滑飞行过渡
// duration 为过渡时长（秒），必须大于 0
func (c *Camera) FlyTo(position, target Vec3, duration float64) {
	// 从当前（可能还在插值中的）位姿出发
	c.fromPos = c.Position
	c.fromTarget = c.Target
	c.toPos = position
	c.toTarget = target
	c.flyElapsed = 0
	c.flyDuration = duration
	c.flying = true
}

// JumpTo 立即切换位姿，取消进行中的飞行
func (c *Camera) JumpTo(position, target Vec3) {
	c.Position = position
	c.Target = target
	c.flying = false
}

// Flying 返回是否有飞行过渡在进行中
func (c *Camera) Flying() bool {
	return c.flying
}

// Update 推进飞行动画
// dt 为距上一帧的时间（秒）；没有飞行在进行时为空操作
func (c *Camera) Update(dt float64) {
	if !c.flying {
		return
	}

	c.flyElapsed += dt
	t := c.flyElapsed / c.flyDuration
	if t >= 1 {
		t = 1
		c.flying = false
	}

	e := easeInOutCubic(t)
	c.Position = LerpVec3(c.fromPos, c.toPos, e)
	c.Target = LerpVec3(c.fromTarget, c.toTarget, e)
}

// basis 返回相机坐标系的三个正交基向量（右、上、前）
func (c *Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	if forward.Length() == 0 {
		forward = V(0, 0, -1)
	}
	worldUp := V(0, 1, 0)
	right = forward.Cross(worldUp).Normalize()
	if right.Length() == 0 {
		// 视线与世界上方向平行时退化，换一个参考方向
		right = forward.Cross(V(0, 0, 1)).Normalize()
	}
	up = right.Cross(forward)
	return right, up, forward
}

// focalLength 根据屏幕高度计算投影焦距（像素）
func (c *Camera) focalLength(screenHeight int) float64 {
	fovRad := c.FOVDegrees * math.Pi / 180
	return float64(screenHeight) / 2 / math.Tan(fovRad/2)
}

// easeInOutCubic 三次方缓入缓出
// 与 pkg/utils 中的同名函数一致；渲染器保持零依赖，因此私有实现一份
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
