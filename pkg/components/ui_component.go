package components

// UIState UI 元素的交互状态
type UIState int

const (
	UIStateNormal UIState = iota
	UIStateHover
	UIStatePressed
	UIStateDisabled
)
