package voxel

import (
	"image/color"
	"math"
	"testing"
)

var testSurface = Surface{Color: color.RGBA{0x80, 0x80, 0x80, 0xff}, Alpha: 1}

// TestNewBoxMesh 长方体应有 6 个面片且法线朝外
func TestNewBoxMesh(t *testing.T) {
	center := V(1, 2, 3)
	m := NewBoxMesh(center, V(2, 4, 6), testSurface)

	if len(m.Quads) != 6 {
		t.Fatalf("面片数 = %d, 期望 6", len(m.Quads))
	}

	for i, q := range m.Quads {
		// 法线应指向面片中心远离长方体中心的方向
		qc := q.V[0].Add(q.V[1]).Add(q.V[2]).Add(q.V[3]).Scale(0.25)
		outward := qc.Sub(center)
		if q.Normal.Dot(outward) <= 0 {
			t.Errorf("面片 %d 的法线 %v 不朝外", i, q.Normal)
		}
	}
}

// TestNewCylinderMesh 圆柱的面片数与半径
func TestNewCylinderMesh(t *testing.T) {
	segments := 16
	m := NewCylinderMesh(V(0, 0, 0), 2, 2, 4, segments, AxisY, testSurface)

	// 每段：1 个侧面 + 2 个端盖
	if len(m.Quads) != segments*3 {
		t.Fatalf("面片数 = %d, 期望 %d", len(m.Quads), segments*3)
	}

	// 所有顶点到 Y 轴的距离不超过半径，Y 坐标在 ±height/2 内
	for _, q := range m.Quads {
		for _, v := range q.V {
			radial := math.Hypot(v.X, v.Z)
			if radial > 2+1e-9 {
				t.Fatalf("顶点 %v 超出半径 2", v)
			}
			if math.Abs(v.Y) > 2+1e-9 {
				t.Fatalf("顶点 %v 超出高度范围", v)
			}
		}
	}
}

// TestNewCylinderMeshAxisX 沿 X 轴的圆柱应把长度方向换到 X 轴
func TestNewCylinderMeshAxisX(t *testing.T) {
	m := NewCylinderMesh(V(0, 0, 0), 0.3, 0.3, 5, 8, AxisX, testSurface)

	var minX, maxX float64
	for _, q := range m.Quads {
		for _, v := range q.V {
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
			// 径向（Y/Z 平面）不超过半径
			if math.Hypot(v.Y, v.Z) > 0.3+1e-9 {
				t.Fatalf("顶点 %v 超出半径 0.3", v)
			}
		}
	}
	if math.Abs(minX+2.5) > 1e-9 || math.Abs(maxX-2.5) > 1e-9 {
		t.Errorf("X 范围 [%v, %v], 期望 [-2.5, 2.5]", minX, maxX)
	}
}

// TestMeshRotatedX 旋转应保持长度不变
func TestMeshRotatedX(t *testing.T) {
	m := NewCubeMesh(V(0, 1, 0), 1, testSurface)
	rotated := m.RotatedX(math.Pi / 2)

	if len(rotated.Quads) != len(m.Quads) {
		t.Fatal("旋转后面片数变化")
	}

	// 绕 X 轴转 90°：点 (0,1,0) → (0,0,1)
	for i, q := range m.Quads {
		for j, v := range q.V {
			want := V(v.X, -v.Z, v.Y)
			if !vecNear(rotated.Quads[i].V[j], want) {
				t.Fatalf("顶点 %v 旋转后 = %v, 期望 %v", v, rotated.Quads[i].V[j], want)
			}
		}
	}
}

// TestTransformApply 测试实例变换的组合顺序（旋转→缩放→平移）
func TestTransformApply(t *testing.T) {
	tr := Transform{Position: V(10, 0, 0), RotationX: math.Pi / 2, Scale: 2}

	// (0,1,0) 旋转 → (0,0,1)，缩放 → (0,0,2)，平移 → (10,0,2)
	got := tr.Apply(V(0, 1, 0))
	if !vecNear(got, V(10, 0, 2)) {
		t.Errorf("Apply = %v, 期望 (10,0,2)", got)
	}

	// Scale 为 0 时按 1 处理
	identity := Transform{}
	if got := identity.Apply(V(1, 2, 3)); !vecNear(got, V(1, 2, 3)) {
		t.Errorf("零值变换 Apply = %v, 期望原值", got)
	}
}
