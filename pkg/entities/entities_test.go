package entities

import (
	"testing"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// testMaterialsYAML 测试用材质表（与正式配置同名同语义）
const testMaterialsYAML = `
materials:
  concrete:
    color: "#555555"
  metal:
    color: "#888899"
  fuel:
    color: "#00ff00"
    emissive: true
  controlRod:
    color: "#ff3333"
  water:
    color: "#00aaff"
    alpha: 0.5
  steam:
    color: "#ffffff"
    alpha: 0.4
    emissive: true
  neutron:
    color: "#00ffff"
    emissive: true
  blade:
    color: "#cccccc"
  generator:
    color: "#334455"
`

func testMaterials(t *testing.T) *config.MaterialTable {
	t.Helper()
	table, err := config.ParseMaterialTable([]byte(testMaterialsYAML))
	if err != nil {
		t.Fatalf("解析材质表失败: %v", err)
	}
	return table
}

// TestNewReactorCoreEntities 堆芯创建静止体、控制棒组和辉光三个实体
func TestNewReactorCoreEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	NewReactorCore(em, testMaterials(t))

	rods := ecs.GetEntitiesWith1[*components.ControlRodComponent](em)
	if len(rods) != 1 {
		t.Fatalf("控制棒实体数 = %d, 期望 1", len(rods))
	}
	rod, _ := ecs.GetComponent[*components.ControlRodComponent](em, rods[0])
	if rod.BaseY != config.SceneOffsetY {
		t.Errorf("控制棒 BaseY = %v, 期望 %v", rod.BaseY, config.SceneOffsetY)
	}
	if rod.Travel != config.ControlRodTravel {
		t.Errorf("控制棒 Travel = %v, 期望 %v", rod.Travel, config.ControlRodTravel)
	}

	glows := ecs.GetEntitiesWith1[*components.CoreGlowComponent](em)
	if len(glows) != 1 {
		t.Fatalf("辉光实体数 = %d, 期望 1", len(glows))
	}
	light, _ := ecs.GetComponent[*components.PointLightComponent](em, glows[0])
	if light.Distance != 5 {
		t.Errorf("辉光 Distance = %v, 期望 5", light.Distance)
	}

	meshes := ecs.GetEntitiesWith1[*components.VoxelMeshComponent](em)
	if len(meshes) != 2 {
		t.Errorf("网格实体数 = %d, 期望 2（静止体 + 控制棒组）", len(meshes))
	}
}

// TestNewTurbineRotor 涡轮转子带旋转组件且叶片数量正确
func TestNewTurbineRotor(t *testing.T) {
	em := ecs.NewEntityManager()
	NewTurbine(em, testMaterials(t))

	rotors := ecs.GetEntitiesWith1[*components.SpinComponent](em)
	if len(rotors) != 1 {
		t.Fatalf("转子实体数 = %d, 期望 1", len(rotors))
	}

	spin, _ := ecs.GetComponent[*components.SpinComponent](em, rotors[0])
	if spin.RateScale != config.TurbineSpinScale {
		t.Errorf("RateScale = %v, 期望 %v", spin.RateScale, config.TurbineSpinScale)
	}

	mesh, _ := ecs.GetComponent[*components.VoxelMeshComponent](em, rotors[0])
	// 主轴：16 段 × 3 面片；叶片：4 组 × 3 片 × 6 面
	wantQuads := 16*3 + 4*3*6
	if len(mesh.Mesh.Quads) != wantQuads {
		t.Errorf("转子面片数 = %d, 期望 %d", len(mesh.Mesh.Quads), wantQuads)
	}

	// 发电机电弧灯
	sparks := ecs.GetEntitiesWith1[*components.FlickerComponent](em)
	if len(sparks) != 1 {
		t.Fatalf("电弧灯实体数 = %d, 期望 1", len(sparks))
	}
}

// TestSwarmParticleDeterminism 同一种子生成相同的粒子参数
func TestSwarmParticleDeterminism(t *testing.T) {
	a := newSwarmParticles(42, 50)
	b := newSwarmParticles(42, 50)

	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("粒子数 = %d/%d, 期望 50", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("粒子 %d 参数不一致: %+v != %+v", i, a[i], b[i])
		}
	}

	// 不同种子生成不同布局
	c := newSwarmParticles(43, 50)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("不同种子不应生成相同的粒子参数")
	}
}

// TestSwarmParticleRanges 粒子参数落在设计范围内
func TestSwarmParticleRanges(t *testing.T) {
	for _, p := range newSwarmParticles(7, 200) {
		if p.Base.X < -1 || p.Base.X > 1 || p.Base.Z < -1 || p.Base.Z > 1 {
			t.Errorf("基准 XZ 超界: %+v", p.Base)
		}
		if p.Base.Y < 0 || p.Base.Y > 5 {
			t.Errorf("基准 Y 超界: %v", p.Base.Y)
		}
		if p.Speed < 0.02 || p.Speed > 0.07 {
			t.Errorf("速度超界: %v", p.Speed)
		}
		if p.Phase < 0 || p.Phase > 100 {
			t.Errorf("相位超界: %v", p.Phase)
		}
	}
}

// TestNewSteamSwarmAppliesSceneOffset 蒸汽群原点包含场景偏移
func TestNewSteamSwarmAppliesSceneOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	NewSteamSwarm(em, testMaterials(t), voxel.V(-2, 2, 0), config.PipeSteamSwarmCount, config.PipeSteamSwarmSeed)

	swarms := ecs.GetEntitiesWith1[*components.ParticleSwarmComponent](em)
	if len(swarms) != 1 {
		t.Fatalf("粒子群实体数 = %d, 期望 1", len(swarms))
	}
	swarm, _ := ecs.GetComponent[*components.ParticleSwarmComponent](em, swarms[0])

	want := voxel.V(-2, 2+config.SceneOffsetY, 0)
	if swarm.Origin != want {
		t.Errorf("Origin = %+v, 期望 %+v", swarm.Origin, want)
	}
	if len(swarm.Particles) != config.PipeSteamSwarmCount {
		t.Errorf("粒子数 = %d, 期望 %d", len(swarm.Particles), config.PipeSteamSwarmCount)
	}
}
