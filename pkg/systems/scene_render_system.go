package systems

import (
	"image/color"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 地面网格参数：40×40 个单元，每单元 1 个世界单位
const (
	gridHalfExtent = 20
	gridY          = config.SceneOffsetY - 2.5
)

var gridColor = color.RGBA{R: 0x1a, G: 0x33, B: 0x44, A: 0xff}

// SceneRenderSystem 三维场景渲染系统
//
// 每帧的职责：
//  1. 收集所有可见实体的网格并按变换提交给渲染器
//  2. 收集粒子群的实例快照（每个实例一个小立方体）
//  3. 收集启用的点光源
//  4. 先画远景（星空、地面网格），再 Flush 面片批
type SceneRenderSystem struct {
	entityManager *ecs.EntityManager
	renderer      *voxel.Renderer
	camera        *voxel.Camera

	lights []voxel.Light // 帧间复用的收集缓冲
}

// NewSceneRenderSystem 创建场景渲染系统
func NewSceneRenderSystem(em *ecs.EntityManager, renderer *voxel.Renderer, camera *voxel.Camera) *SceneRenderSystem {
	return &SceneRenderSystem{
		entityManager: em,
		renderer:      renderer,
		camera:        camera,
		lights:        make([]voxel.Light, 0, 8),
	}
}

// Draw 渲染整个三维场景
func (s *SceneRenderSystem) Draw(screen *ebiten.Image) {
	s.drawStarfield(screen)
	s.drawGrid(screen)

	s.renderer.Reset()

	// 实体网格
	meshEntities := ecs.GetEntitiesWith2[*components.VoxelMeshComponent, *components.TransformComponent](s.entityManager)
	for _, entityID := range meshEntities {
		mesh, _ := ecs.GetComponent[*components.VoxelMeshComponent](s.entityManager, entityID)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, entityID)

		if !mesh.Visible {
			continue
		}
		s.renderer.AddMesh(mesh.Mesh, transform.ToTransform())
	}

	// 粒子实例
	swarmEntities := ecs.GetEntitiesWith1[*components.ParticleSwarmComponent](s.entityManager)
	for _, entityID := range swarmEntities {
		swarm, _ := ecs.GetComponent[*components.ParticleSwarmComponent](s.entityManager, entityID)
		if !swarm.Active {
			continue
		}
		for _, inst := range swarm.Instances {
			s.renderer.AddCube(inst.Position, swarm.Size*inst.Scale, swarm.Surface)
		}
	}

	// 点光源
	s.lights = s.lights[:0]
	lightEntities := ecs.GetEntitiesWith1[*components.PointLightComponent](s.entityManager)
	for _, entityID := range lightEntities {
		light, _ := ecs.GetComponent[*components.PointLightComponent](s.entityManager, entityID)
		if !light.Enabled || light.Intensity <= 0 {
			continue
		}
		s.lights = append(s.lights, voxel.Light{
			Position:  light.Position,
			Color:     light.Color,
			Intensity: light.Intensity,
			Distance:  light.Distance,
		})
	}

	s.renderer.Flush(screen, s.camera, s.lights)
}

// drawGrid 绘制地面网格线
func (s *SceneRenderSystem) drawGrid(screen *ebiten.Image) {
	for i := -gridHalfExtent; i <= gridHalfExtent; i++ {
		fi := float64(i)
		s.renderer.StrokeSegment(screen, s.camera,
			voxel.V(fi, gridY, -gridHalfExtent), voxel.V(fi, gridY, gridHalfExtent), 1, gridColor)
		s.renderer.StrokeSegment(screen, s.camera,
			voxel.V(-gridHalfExtent, gridY, fi), voxel.V(gridHalfExtent, gridY, fi), 1, gridColor)
	}
}

// drawStarfield 绘制背景星点
//
// 星点是固定的世界坐标，随相机转动产生视差。
// 用 StarfieldComponent 里的预生成点，投影成 1~2 像素的小方块。
func (s *SceneRenderSystem) drawStarfield(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.StarfieldComponent](s.entityManager)
	for _, entityID := range entities {
		stars, _ := ecs.GetComponent[*components.StarfieldComponent](s.entityManager, entityID)
		for _, star := range stars.Stars {
			sx, sy, ok := s.renderer.ProjectPoint(s.camera, star.Position)
			if !ok {
				continue
			}
			c := uint8(120 + 135*star.Brightness)
			screen.Set(int(sx), int(sy), color.RGBA{R: c, G: c, B: c, A: 0xff})
		}
	}
}
