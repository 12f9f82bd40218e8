package components

// ButtonComponent 可点击按钮
//
// 按钮在鼠标释放时触发 OnClick（按下后移出按钮再释放不触发）。
// Primary 控制配色：主按钮高亮，普通按钮灰底。
type ButtonComponent struct {
	Label   string
	Width   float64
	Height  float64
	Enabled bool
	Visible bool
	Primary bool
	State   UIState
	OnClick func()
}
