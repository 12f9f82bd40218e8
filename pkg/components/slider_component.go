package components

// SliderComponent 水平滑块
//
// Value ∈ [0, 1]，拖动时按 Step 量化。
// 滑槽与滑钮的尺寸来自布局常量，存在组件里便于系统做命中检测。
type SliderComponent struct {
	Value      float64
	Step       float64
	SlotWidth  float64
	SlotHeight float64
	KnobWidth  float64
	KnobHeight float64
	Label      string
	IsDragging bool
	IsHovered  bool

	OnValueChange func(value float64)
}
