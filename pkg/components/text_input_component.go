package components

// TextInputComponent 单行文本输入框
//
// 聚焦时接收键盘字符，回车触发 OnSubmit。回调返回是否接受本次提交：
// 接受时清空内容，拒绝时内容保留供用户稍后重发。
// 光标按 CursorBlinkTimer 闪烁，周期由系统控制。
type TextInputComponent struct {
	Text             string
	Width            float64
	Height           float64
	MaxLength        int
	Placeholder      string
	IsFocused        bool
	CursorVisible    bool
	CursorBlinkTimer float64

	OnSubmit func(text string) bool
}
