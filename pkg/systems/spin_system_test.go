package systems

import (
	"math"
	"testing"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// TestSpinSystemAdvancesAngle 转子角度按转速推进并写回变换
func TestSpinSystemAdvancesAngle(t *testing.T) {
	em := ecs.NewEntityManager()
	state := newTestState(t)
	system := NewSpinSystem(em, state)

	spin := &components.SpinComponent{RateScale: config.TurbineSpinScale}
	transform := &components.TransformComponent{}
	id := em.CreateEntity()
	em.AddComponent(id, spin)
	em.AddComponent(id, transform)

	state.SetControlRodLevel(1.0)
	system.Update(0.1)

	// speed = 1.0 * 0.5，angle = 0.5 * 10 * 0.1 = 0.5
	if math.Abs(spin.Angle-0.5) > 1e-9 {
		t.Errorf("Angle = %v, 期望 0.5", spin.Angle)
	}
	if transform.RotationX != spin.Angle {
		t.Errorf("RotationX = %v, 期望与 Angle 同步", transform.RotationX)
	}

	// 再推进一帧，角度累加
	system.Update(0.1)
	if math.Abs(spin.Angle-1.0) > 1e-9 {
		t.Errorf("第二帧 Angle = %v, 期望 1.0", spin.Angle)
	}
}

// TestSpinSystemStopsAtZeroIntensity 停堆时转子停止
func TestSpinSystemStopsAtZeroIntensity(t *testing.T) {
	em := ecs.NewEntityManager()
	state := newTestState(t)
	system := NewSpinSystem(em, state)

	spin := &components.SpinComponent{RateScale: config.TurbineSpinScale, Angle: 1.5}
	transform := &components.TransformComponent{}
	id := em.CreateEntity()
	em.AddComponent(id, spin)
	em.AddComponent(id, transform)

	state.SetControlRodLevel(0)
	system.Update(1.0)

	if spin.Angle != 1.5 {
		t.Errorf("停堆后 Angle = %v, 期望保持 1.5", spin.Angle)
	}
}
