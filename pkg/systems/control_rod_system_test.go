package systems

import (
	"math"
	"testing"

	"github.com/gonewx/voxelreactor/internal/voxel"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// TestControlRodVisualInversion 滑块值与棒的插入深度互为反相
func TestControlRodVisualInversion(t *testing.T) {
	em := ecs.NewEntityManager()
	state := newTestState(t)
	system := NewControlRodSystem(em, state)

	rod := &components.ControlRodComponent{BaseY: 1.0, Travel: config.ControlRodTravel}
	transform := &components.TransformComponent{Position: voxel.V(0, 1.0, 0)}
	id := em.CreateEntity()
	em.AddComponent(id, rod)
	em.AddComponent(id, transform)

	tests := []struct {
		name       string
		level      float64
		wantVisual float64
	}{
		{"全抽出", 1.0, 0.0},
		{"全插入", 0.0, 1.0},
		{"中间档", 0.3, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state.SetControlRodLevel(tt.level)
			system.Update(1.0 / 60)

			if math.Abs(rod.VisualLevel-tt.wantVisual) > 1e-9 {
				t.Errorf("VisualLevel = %v, 期望 %v", rod.VisualLevel, tt.wantVisual)
			}
			wantY := rod.BaseY + tt.wantVisual*rod.Travel
			if math.Abs(transform.Position.Y-wantY) > 1e-9 {
				t.Errorf("Position.Y = %v, 期望 %v", transform.Position.Y, wantY)
			}
		})
	}
}

// TestCoreGlowIntensity 堆芯辉光随反应强度变化
func TestCoreGlowIntensity(t *testing.T) {
	em := ecs.NewEntityManager()
	state := newTestState(t)
	system := NewControlRodSystem(em, state)

	light := &components.PointLightComponent{
		Position: voxel.V(0, 0, 0),
		Color:    [3]float64{0, 1, 0},
		Distance: 10,
	}
	id := em.CreateEntity()
	em.AddComponent(id, light)
	em.AddComponent(id, &components.CoreGlowComponent{})

	// 全抽出：visual=0，intensity = 2 - 0 = 2
	state.SetControlRodLevel(1.0)
	system.Update(1.0 / 60)
	if math.Abs(light.Intensity-2.0) > 1e-9 {
		t.Errorf("全抽出 Intensity = %v, 期望 2", light.Intensity)
	}
	if !light.Enabled {
		t.Error("全抽出时辉光应启用")
	}

	// 全插入：visual=1，intensity = 2 - 1 = 1
	state.SetControlRodLevel(0.0)
	system.Update(1.0 / 60)
	if math.Abs(light.Intensity-1.0) > 1e-9 {
		t.Errorf("全插入 Intensity = %v, 期望 1", light.Intensity)
	}
}
