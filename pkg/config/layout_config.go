package config

// 窗口与 HUD 布局配置常量
// 所有坐标使用逻辑屏幕坐标（Ebitengine 自动处理窗口缩放）

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720
)

// 顶部控制面板（控制棒滑块）
const (
	ControlPanelWidth   = 280.0
	ControlPanelHeight  = 110.0
	ControlPanelMargin  = 24.0
	ControlPanelPadding = 16.0

	// SliderSlotWidth 滑槽宽度
	SliderSlotWidth = ControlPanelWidth - 2*ControlPanelPadding
	// SliderSlotHeight 滑槽高度
	SliderSlotHeight = 8.0
	// SliderKnobWidth 滑块宽度
	SliderKnobWidth = 12.0
	// SliderKnobHeight 滑块高度
	SliderKnobHeight = 20.0
	// SliderStep 滑块取值粒度（两位小数）
	SliderStep = 0.01
)

// 底部信息面板（阶段导航）
const (
	InfoPanelWidth  = 620.0
	InfoPanelHeight = 190.0
	InfoPanelMargin = 24.0

	// NavButtonWidth 导航按钮（PREV/NEXT）尺寸
	NavButtonWidth  = 84.0
	NavButtonHeight = 32.0
)

// 聊天面板
const (
	ChatPanelWidth  = 340.0
	ChatPanelHeight = 400.0
	ChatPanelMargin = 24.0

	// ChatToggleWidth 聊天开关按钮尺寸
	ChatToggleWidth  = 110.0
	ChatToggleHeight = 40.0

	// ChatInputHeight 输入框高度
	ChatInputHeight = 28.0
	// ChatSendWidth 发送按钮宽度
	ChatSendWidth = 64.0
	// ChatInputMaxLength 问题最大长度（字符数）
	ChatInputMaxLength = 200

	// ChatPanelSlideDuration 聊天面板滑入/滑出动画时长（秒）
	ChatPanelSlideDuration = 0.2
)

// 字号
const (
	TitleFontSize   = 28.0
	HeadingFontSize = 20.0
	BodyFontSize    = 14.0
	SmallFontSize   = 11.0
)
