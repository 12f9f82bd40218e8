package systems

import (
	"math"
	"testing"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockMouseInput 测试用鼠标输入
type mockMouseInput struct {
	x, y    int
	pressed bool
}

func (m *mockMouseInput) CursorPosition() (int, int) {
	return m.x, m.y
}

func (m *mockMouseInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return m.pressed
}

// newSliderFixture 创建位于 (100, 100) 的滑块实体
func newSliderFixture(em *ecs.EntityManager) *components.SliderComponent {
	slider := &components.SliderComponent{
		Value:      0.2,
		Step:       config.SliderStep,
		SlotWidth:  200,
		SlotHeight: 8,
		KnobWidth:  config.SliderKnobWidth,
		KnobHeight: config.SliderKnobHeight,
	}
	id := em.CreateEntity()
	em.AddComponent(id, slider)
	em.AddComponent(id, &components.PositionComponent{X: 100, Y: 100})
	return slider
}

// TestSliderDragUpdatesValue 在滑槽内按下并拖动更新值
func TestSliderDragUpdatesValue(t *testing.T) {
	em := ecs.NewEntityManager()
	mouse := &mockMouseInput{}
	system := NewSliderSystemWithInput(em, mouse)
	slider := newSliderFixture(em)

	var callbackValue float64
	slider.OnValueChange = func(v float64) { callbackValue = v }

	// 在滑槽 3/4 处按下
	mouse.x, mouse.y, mouse.pressed = 250, 104, true
	system.Update(1.0 / 60)

	if !slider.IsDragging {
		t.Error("按下后应处于拖拽状态")
	}
	if math.Abs(slider.Value-0.75) > 1e-9 {
		t.Errorf("Value = %v, 期望 0.75", slider.Value)
	}
	if math.Abs(callbackValue-0.75) > 1e-9 {
		t.Errorf("回调值 = %v, 期望 0.75", callbackValue)
	}

	// 拖出滑槽范围仍然继续拖拽并钳制
	mouse.x = 400
	system.Update(1.0 / 60)
	if slider.Value != 1.0 {
		t.Errorf("拖出右端后 Value = %v, 期望 1.0", slider.Value)
	}

	// 释放停止拖拽
	mouse.pressed = false
	system.Update(1.0 / 60)
	if slider.IsDragging {
		t.Error("释放后不应继续拖拽")
	}
}

// TestSliderIgnoresClickOutside 滑槽外按下不影响值
func TestSliderIgnoresClickOutside(t *testing.T) {
	em := ecs.NewEntityManager()
	mouse := &mockMouseInput{x: 50, y: 300, pressed: true}
	system := NewSliderSystemWithInput(em, mouse)
	slider := newSliderFixture(em)

	system.Update(1.0 / 60)

	if slider.IsDragging {
		t.Error("滑槽外按下不应进入拖拽")
	}
	if slider.Value != 0.2 {
		t.Errorf("Value = %v, 期望保持 0.2", slider.Value)
	}
}

// TestSliderValueQuantized 滑块值按步长量化到两位小数
func TestSliderValueQuantized(t *testing.T) {
	em := ecs.NewEntityManager()
	mouse := &mockMouseInput{}
	system := NewSliderSystemWithInput(em, mouse)
	slider := newSliderFixture(em)

	// 鼠标 X=137：原始值 (137-100)/200 = 0.185，量化后为 0.19
	mouse.x, mouse.y, mouse.pressed = 137, 104, true
	system.Update(1.0 / 60)

	quantized := math.Round(slider.Value/config.SliderStep) * config.SliderStep
	if math.Abs(slider.Value-quantized) > 1e-9 {
		t.Errorf("Value = %v 未按步长 %v 量化", slider.Value, config.SliderStep)
	}
	if math.Abs(slider.Value-0.19) > 1e-9 {
		t.Errorf("Value = %v, 期望 0.19", slider.Value)
	}
}
