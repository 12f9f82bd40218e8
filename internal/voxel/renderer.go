package voxel

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 用 3×3 白图的中心像素作为 DrawTriangles 的纹理，
// 避免采样到图集边缘（Ebitengine 纯色三角形的惯用做法）
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// nearPlane 近裁剪面距离，任何顶点比它更近的面片整个丢弃
const nearPlane = 0.1

// 光照参数：环境光 + 固定方向光 + 场景点光源
var sunDirection = V(1, 1.5, 0.8).Normalize()

const (
	ambientLight = 0.35
	diffuseLight = 0.65
)

// Light 点光源
// 强度随距离线性衰减，超过 Distance 不再有贡献
type Light struct {
	Position  Vec3
	Color     [3]float64 // RGB，各分量 0~1
	Intensity float64
	Distance  float64
}

// worldQuad 已变换到世界坐标、待投影的面片
type worldQuad struct {
	v       [4]Vec3
	normal  Vec3
	surface Surface
}

// projectedQuad 投影完成、待排序绘制的面片
type projectedQuad struct {
	depth      float64 // 相机空间平均深度
	sx, sy     [4]float32
	r, g, b, a float32
}

// Renderer 每帧重建的面片批量渲染器
// 帧间只保留可复用的 scratch 缓冲，没有跨帧状态
type Renderer struct {
	width, height int

	queue     []worldQuad
	projected []projectedQuad
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewRenderer 创建渲染器
// width/height 为逻辑屏幕尺寸
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:     width,
		height:    height,
		queue:     make([]worldQuad, 0, 1024),
		projected: make([]projectedQuad, 0, 1024),
		vertices:  make([]ebiten.Vertex, 0, 4096),
		indices:   make([]uint16, 0, 6144),
	}
}

// Reset 清空本帧的面片队列（保留缓冲容量）
func (r *Renderer) Reset() {
	r.queue = r.queue[:0]
}

// AddMesh 提交一个网格实例
func (r *Renderer) AddMesh(m Mesh, t Transform) {
	for _, q := range m.Quads {
		wq := worldQuad{normal: t.ApplyNormal(q.Normal), surface: q.Surface}
		for i, v := range q.V {
			wq.v[i] = t.Apply(v)
		}
		r.queue = append(r.queue, wq)
	}
}

// AddCube 提交一个轴对齐立方体（粒子实例的快捷路径）
func (r *Renderer) AddCube(center Vec3, size float64, s Surface) {
	if size <= 0 {
		return
	}
	mesh := NewCubeMesh(center, size, s)
	for _, q := range mesh.Quads {
		r.queue = append(r.queue, worldQuad{v: q.V, normal: q.Normal, surface: q.Surface})
	}
}

// Flush 投影、排序并绘制所有已提交的面片
func (r *Renderer) Flush(screen *ebiten.Image, cam *Camera, lights []Light) {
	right, up, forward := cam.basis()
	f := cam.focalLength(r.height)
	halfW := float64(r.width) / 2
	halfH := float64(r.height) / 2

	r.projected = r.projected[:0]

quadLoop:
	for _, wq := range r.queue {
		var pq projectedQuad
		var depthSum float64

		for i, v := range wq.v {
			rel := v.Sub(cam.Position)
			cz := rel.Dot(forward)
			if cz < nearPlane {
				// 顶点落在近裁剪面之后，整个面片丢弃
				continue quadLoop
			}
			cx := rel.Dot(right)
			cy := rel.Dot(up)
			pq.sx[i] = float32(halfW + cx*f/cz)
			pq.sy[i] = float32(halfH - cy*f/cz)
			depthSum += cz
		}
		pq.depth = depthSum / 4

		cr, cg, cb := r.shade(wq, lights)
		pq.r, pq.g, pq.b = cr, cg, cb
		pq.a = float32(wq.surface.Alpha)

		r.projected = append(r.projected, pq)
	}

	// 画家算法：从远到近绘制
	sort.Slice(r.projected, func(i, j int) bool {
		return r.projected[i].depth > r.projected[j].depth
	})

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, pq := range r.projected {
		base := uint16(len(r.vertices))
		for i := 0; i < 4; i++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: pq.sx[i], DstY: pq.sy[i],
				SrcX: 1, SrcY: 1,
				ColorR: pq.r, ColorG: pq.g, ColorB: pq.b, ColorA: pq.a,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
	}

	if len(r.indices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, nil)
	}
}

// shade 计算面片的最终顶点颜色（0~1 各分量）
func (r *Renderer) shade(wq worldQuad, lights []Light) (float32, float32, float32) {
	baseR := float64(wq.surface.Color.R) / 255
	baseG := float64(wq.surface.Color.G) / 255
	baseB := float64(wq.surface.Color.B) / 255

	if wq.surface.Emissive {
		return float32(baseR), float32(baseG), float32(baseB)
	}

	// 方向光（双面：取法线与光向夹角的绝对值，画家算法不做背面剔除）
	diff := math.Abs(wq.normal.Dot(sunDirection))
	brightness := ambientLight + diffuseLight*diff

	outR := baseR * brightness
	outG := baseG * brightness
	outB := baseB * brightness

	// 点光源贡献：按面片中心到光源的距离线性衰减
	center := wq.v[0].Add(wq.v[1]).Add(wq.v[2]).Add(wq.v[3]).Scale(0.25)
	for _, l := range lights {
		if l.Intensity <= 0 || l.Distance <= 0 {
			continue
		}
		d := center.Dist(l.Position)
		if d >= l.Distance {
			continue
		}
		falloff := l.Intensity * (1 - d/l.Distance) * 0.5
		outR += l.Color[0] * falloff
		outG += l.Color[1] * falloff
		outB += l.Color[2] * falloff
	}

	return float32(clamp01(outR)), float32(clamp01(outG)), float32(clamp01(outB))
}

// ProjectPoint 把世界坐标点投影到屏幕
// 返回屏幕坐标和该点是否位于相机前方
func (r *Renderer) ProjectPoint(cam *Camera, p Vec3) (float64, float64, bool) {
	right, up, forward := cam.basis()
	rel := p.Sub(cam.Position)
	cz := rel.Dot(forward)
	if cz < nearPlane {
		return 0, 0, false
	}
	f := cam.focalLength(r.height)
	sx := float64(r.width)/2 + rel.Dot(right)*f/cz
	sy := float64(r.height)/2 - rel.Dot(up)*f/cz
	return sx, sy, true
}

// StrokeSegment 绘制一条世界坐标线段（地面网格用）
// 任一端点在相机后方时整条线段跳过
func (r *Renderer) StrokeSegment(screen *ebiten.Image, cam *Camera, a, b Vec3, width float32, col color.Color) {
	ax, ay, ok := r.ProjectPoint(cam, a)
	if !ok {
		return
	}
	bx, by, ok := r.ProjectPoint(cam, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, col, false)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
