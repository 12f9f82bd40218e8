package voxel

import (
	"math"
	"testing"
)

// advance 以固定步长推进相机动画
func advance(c *Camera, total, step float64) {
	for t := 0.0; t < total; t += step {
		c.Update(step)
	}
}

// TestCameraFlyToCompletes 飞行结束后相机必须精确停在目标位姿
func TestCameraFlyToCompletes(t *testing.T) {
	cam := NewCamera(45)
	targetPos := V(5, 5, 5)
	targetLook := V(0, 0, 0)

	cam.FlyTo(targetPos, targetLook, 1.0)
	if !cam.Flying() {
		t.Fatal("FlyTo 之后应处于飞行状态")
	}

	advance(cam, 1.5, 1.0/60)

	if cam.Flying() {
		t.Error("飞行时长已过，仍处于飞行状态")
	}
	if !vecNear(cam.Position, targetPos) {
		t.Errorf("Position = %v, 期望 %v", cam.Position, targetPos)
	}
	if !vecNear(cam.Target, targetLook) {
		t.Errorf("Target = %v, 期望 %v", cam.Target, targetLook)
	}
}

// TestCameraRetargetMidFlight 飞行途中改飞新目标：
// 后到的过渡取代进行中的过渡，起点为当前插值位姿
func TestCameraRetargetMidFlight(t *testing.T) {
	cam := NewCamera(45)
	start := cam.Position

	cam.FlyTo(V(10, 0, 0), V(0, 0, 0), 1.0)
	advance(cam, 0.5, 1.0/60)

	midway := cam.Position
	if vecNear(midway, start) {
		t.Fatal("半程位置不应等于起点")
	}

	// 中途改飞
	newTarget := V(-12, 6, -5)
	cam.FlyTo(newTarget, V(-8, 0, 0), 1.0)

	// 改飞瞬间位姿不跳变
	if !vecNear(cam.Position, midway) {
		t.Errorf("改飞瞬间位置跳变: %v -> %v", midway, cam.Position)
	}

	advance(cam, 1.5, 1.0/60)
	if !vecNear(cam.Position, newTarget) {
		t.Errorf("最终位置 = %v, 期望 %v", cam.Position, newTarget)
	}
}

// TestCameraJumpTo 立即切换应取消进行中的飞行
func TestCameraJumpTo(t *testing.T) {
	cam := NewCamera(45)
	cam.FlyTo(V(1, 2, 3), V(0, 0, 0), 1.0)

	cam.JumpTo(V(9, 9, 9), V(1, 1, 1))

	if cam.Flying() {
		t.Error("JumpTo 之后不应仍在飞行")
	}
	if !vecNear(cam.Position, V(9, 9, 9)) {
		t.Errorf("Position = %v, 期望 (9,9,9)", cam.Position)
	}
}

// TestCameraBasisOrthogonal 视图基底必须两两正交
func TestCameraBasisOrthogonal(t *testing.T) {
	cam := NewCamera(45)
	cam.JumpTo(V(5, 5, 5), V(0, 0, 0))

	right, up, forward := cam.basis()

	if math.Abs(right.Dot(up)) > 1e-9 ||
		math.Abs(right.Dot(forward)) > 1e-9 ||
		math.Abs(up.Dot(forward)) > 1e-9 {
		t.Errorf("基底不正交: right=%v up=%v forward=%v", right, up, forward)
	}
	if math.Abs(right.Length()-1) > 1e-9 || math.Abs(up.Length()-1) > 1e-9 {
		t.Error("基底向量不是单位长度")
	}
}
