package components

// ControlRodComponent 控制棒的升降状态
//
// VisualLevel 是视觉插入深度（0 = 完全抽出，1 = 完全插入），
// 与反应堆的功率档位互为反相：抽出控制棒反应才增强。
// 棒的 Y 坐标 = BaseY + VisualLevel * Travel。
type ControlRodComponent struct {
	VisualLevel float64
	BaseY       float64
	Travel      float64
}
