package voxel

import (
	"image/color"
	"math"
)

// Surface 面片的绘制样式
// Emissive 为 true 时跳过光照计算，始终以原色全亮绘制
type Surface struct {
	Color    color.RGBA
	Alpha    float64
	Emissive bool
}

// Quad 渲染器的基本图元：带法线和样式的四边形面片
// 顶点按环绕顺序排列；三角形退化（两个顶点重合）是允许的，
// 圆柱端盖就是用退化四边形扇面拼出来的。
type Quad struct {
	V       [4]Vec3
	Normal  Vec3
	Surface Surface
}

// Mesh 一组面片，构成一个可渲染的几何体
// 面片坐标为模型局部坐标，渲染时由 Transform 变换到世界坐标。
type Mesh struct {
	Quads []Quad
}

// Merge 合并多个网格为一个
func Merge(meshes ...Mesh) Mesh {
	var out Mesh
	for _, m := range meshes {
		out.Quads = append(out.Quads, m.Quads...)
	}
	return out
}

// RotatedX 返回绕 X 轴旋转 angle 弧度后的网格副本
func (m Mesh) RotatedX(angle float64) Mesh {
	out := Mesh{Quads: make([]Quad, len(m.Quads))}
	for i, q := range m.Quads {
		for j, v := range q.V {
			q.V[j] = rotateX(v, angle)
		}
		q.Normal = rotateX(q.Normal, angle)
		out.Quads[i] = q
	}
	return out
}

// Translated 返回平移后的网格副本
func (m Mesh) Translated(offset Vec3) Mesh {
	out := Mesh{Quads: make([]Quad, len(m.Quads))}
	for i, q := range m.Quads {
		for j, v := range q.V {
			q.V[j] = v.Add(offset)
		}
		out.Quads[i] = q
	}
	return out
}

// rotateX 绕 X 轴旋转一个点
func rotateX(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// NewBoxMesh 构造一个轴对齐长方体（6 个面片，法线朝外）
func NewBoxMesh(center Vec3, size Vec3, s Surface) Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	// 8 个角点
	p := [8]Vec3{
		center.Add(V(-hx, -hy, -hz)), // 0
		center.Add(V(hx, -hy, -hz)),  // 1
		center.Add(V(hx, hy, -hz)),   // 2
		center.Add(V(-hx, hy, -hz)),  // 3
		center.Add(V(-hx, -hy, hz)),  // 4
		center.Add(V(hx, -hy, hz)),   // 5
		center.Add(V(hx, hy, hz)),    // 6
		center.Add(V(-hx, hy, hz)),   // 7
	}

	face := func(a, b, c, d int, n Vec3) Quad {
		return Quad{V: [4]Vec3{p[a], p[b], p[c], p[d]}, Normal: n, Surface: s}
	}

	return Mesh{Quads: []Quad{
		face(4, 5, 6, 7, V(0, 0, 1)),  // 前 (+Z)
		face(1, 0, 3, 2, V(0, 0, -1)), // 后 (-Z)
		face(5, 1, 2, 6, V(1, 0, 0)),  // 右 (+X)
		face(0, 4, 7, 3, V(-1, 0, 0)), // 左 (-X)
		face(7, 6, 2, 3, V(0, 1, 0)),  // 上 (+Y)
		face(0, 1, 5, 4, V(0, -1, 0)), // 下 (-Y)
	}}
}

// NewCubeMesh 构造一个立方体
func NewCubeMesh(center Vec3, size float64, s Surface) Mesh {
	return NewBoxMesh(center, V(size, size, size), s)
}

// Axis 圆柱体的朝向轴
type Axis int

const (
	// AxisY 沿 Y 轴（竖直，默认）
	AxisY Axis = iota
	// AxisX 沿 X 轴（水平，用于管道和涡轮轴）
	AxisX
)

// NewCylinderMesh 构造一个圆台体（上下半径可不同的棱柱近似）
//
// 几何沿指定轴对称，侧面由 segments 个面片组成，
// 两端各加一圈退化四边形作为端盖。
func NewCylinderMesh(center Vec3, radiusTop, radiusBottom, height float64, segments int, axis Axis, s Surface) Mesh {
	if segments < 3 {
		segments = 3
	}
	half := height / 2

	var quads []Quad
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)

		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)

		// 先在 Y 轴朝向的局部坐标系构造
		b0 := V(cos0*radiusBottom, -half, sin0*radiusBottom)
		b1 := V(cos1*radiusBottom, -half, sin1*radiusBottom)
		t0 := V(cos0*radiusTop, half, sin0*radiusTop)
		t1 := V(cos1*radiusTop, half, sin1*radiusTop)

		// 侧面法线取两条母线中点的水平方向
		mid := math.Pi * (2*float64(i) + 1) / float64(segments)
		sinM, cosM := math.Sincos(mid)
		n := V(cosM, 0, sinM)

		quads = append(quads, Quad{V: [4]Vec3{b0, b1, t1, t0}, Normal: n, Surface: s})

		// 端盖：中心点 + 相邻两环点构成的退化四边形
		topCenter := V(0, half, 0)
		bottomCenter := V(0, -half, 0)
		quads = append(quads,
			Quad{V: [4]Vec3{topCenter, t0, t1, topCenter}, Normal: V(0, 1, 0), Surface: s},
			Quad{V: [4]Vec3{bottomCenter, b1, b0, bottomCenter}, Normal: V(0, -1, 0), Surface: s},
		)
	}

	mesh := Mesh{Quads: quads}
	if axis == AxisX {
		mesh = mesh.swapXY()
	}
	return mesh.Translated(center)
}

// swapXY 把沿 Y 轴构造的几何转到 X 轴朝向
func (m Mesh) swapXY() Mesh {
	out := Mesh{Quads: make([]Quad, len(m.Quads))}
	for i, q := range m.Quads {
		for j, v := range q.V {
			q.V[j] = Vec3{X: v.Y, Y: v.X, Z: v.Z}
		}
		q.Normal = Vec3{X: q.Normal.Y, Y: q.Normal.X, Z: q.Normal.Z}
		out.Quads[i] = q
	}
	return out
}

// Transform 网格实例的世界变换
// 先绕 X 轴旋转、再均匀缩放、最后平移。Scale 为 0 时按 1 处理。
type Transform struct {
	Position  Vec3
	RotationX float64
	Scale     float64
}

// Apply 把变换应用到一个局部坐标点
func (t Transform) Apply(v Vec3) Vec3 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return rotateX(v, t.RotationX).Scale(scale).Add(t.Position)
}

// ApplyNormal 把变换应用到法线（只旋转，不缩放不平移）
func (t Transform) ApplyNormal(n Vec3) Vec3 {
	return rotateX(n, t.RotationX)
}
