package components

// SpinComponent 绕 X 轴持续旋转的动画状态
//
// 每帧累加：Angle += Speed * RateScale * dt。
// Speed 由反应堆状态驱动（涡轮转速），RateScale 是固定的视觉放大系数。
type SpinComponent struct {
	Speed     float64
	Angle     float64
	RateScale float64
}
