package components

// PositionComponent 屏幕坐标位置（HUD 实体使用）
type PositionComponent struct {
	X, Y float64
}
