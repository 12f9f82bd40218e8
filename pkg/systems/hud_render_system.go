package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
	"github.com/gonewx/voxelreactor/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 配色
var (
	panelBgColor     = color.RGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xd8}
	panelBorderColor = color.RGBA{R: 0x2a, G: 0x44, B: 0x55, A: 0xff}
	titleColor       = color.RGBA{R: 0xe8, G: 0xf0, B: 0xf8, A: 0xff}
	bodyColor        = color.RGBA{R: 0xb0, G: 0xc4, B: 0xd0, A: 0xff}
	accentColor      = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	warnColor        = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	powerColor       = color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}

	buttonNormalColor   = color.RGBA{R: 0x2a, G: 0x3a, B: 0x4a, A: 0xff}
	buttonHoverColor    = color.RGBA{R: 0x3a, G: 0x50, B: 0x66, A: 0xff}
	buttonPressedColor  = color.RGBA{R: 0x1e, G: 0x2a, B: 0x36, A: 0xff}
	buttonDisabledColor = color.RGBA{R: 0x1a, G: 0x22, B: 0x2a, A: 0xff}

	userBubbleColor  = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	modelBubbleColor = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	inputBgColor     = color.RGBA{R: 0x0a, G: 0x10, B: 0x16, A: 0xff}
)

// HUDRenderSystem 平面界面渲染系统
//
// 在三维场景之上绘制全部二维界面：
// 顶部控制面板（滑块 + 功率读数）、底部信息面板（阶段导航）、
// 右侧聊天面板。所有元素的位置由布局常量与实体的 PositionComponent 决定。
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
}

// NewHUDRenderSystem 创建界面渲染系统
func NewHUDRenderSystem(em *ecs.EntityManager, state *game.ReactorState) *HUDRenderSystem {
	return &HUDRenderSystem{
		entityManager: em,
		state:         state,
	}
}

// Draw 绘制全部界面元素
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	s.drawControlPanel(screen)
	s.drawInfoPanel(screen)
	s.drawButtons(screen)
	s.drawChatPanel(screen)
}

// drawPanel 绘制带边框的半透明面板底
func (s *HUDRenderSystem) drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelBgColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, panelBorderColor, false)
}

// drawTextAt 在指定位置绘制一行文本
func (s *HUDRenderSystem) drawTextAt(screen *ebiten.Image, str string, x, y, size float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, utils.DefaultFace(size), op)
}

// drawControlPanel 顶部控制面板：控制棒滑块与功率读数
func (s *HUDRenderSystem) drawControlPanel(screen *ebiten.Image) {
	x := config.ControlPanelMargin
	y := config.ControlPanelMargin
	s.drawPanel(screen, x, y, config.ControlPanelWidth, config.ControlPanelHeight)

	s.drawTextAt(screen, "CONTROL RODS", x+config.ControlPanelPadding, y+10, config.SmallFontSize, bodyColor)

	// 滑块
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.drawSlider(screen, slider, pos)
	}

	// 功率读数
	power := fmt.Sprintf("OUTPUT: %d MW", s.state.PowerOutputMW())
	s.drawTextAt(screen, power, x+config.ControlPanelPadding, y+config.ControlPanelHeight-28, config.BodyFontSize, powerColor)
}

// drawSlider 绘制滑槽、已填充段和滑钮
func (s *HUDRenderSystem) drawSlider(screen *ebiten.Image, slider *components.SliderComponent, pos *components.PositionComponent) {
	// 滑槽
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
		float32(slider.SlotWidth), float32(slider.SlotHeight), inputBgColor, false)

	// 已填充段
	fillW := slider.SlotWidth * slider.Value
	fillColor := accentColor
	if slider.Value > 0.8 {
		fillColor = warnColor
	}
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
		float32(fillW), float32(slider.SlotHeight), fillColor, false)

	// 滑钮
	knobX := pos.X + fillW - slider.KnobWidth/2
	knobY := pos.Y + slider.SlotHeight/2 - slider.KnobHeight/2
	knobColor := titleColor
	if slider.IsDragging {
		knobColor = warnColor
	}
	vector.DrawFilledRect(screen, float32(knobX), float32(knobY),
		float32(slider.KnobWidth), float32(slider.KnobHeight), knobColor, false)

	// 标签与百分比
	s.drawTextAt(screen, slider.Label, pos.X, pos.Y-18, config.SmallFontSize, bodyColor)
	pct := fmt.Sprintf("%d%%", int(slider.Value*100+0.5))
	s.drawTextAt(screen, pct, pos.X+slider.SlotWidth-26, pos.Y-18, config.SmallFontSize, titleColor)
}

// drawInfoPanel 底部信息面板：阶段标题、描述与进度
func (s *HUDRenderSystem) drawInfoPanel(screen *ebiten.Image) {
	stage := s.state.CurrentStage()

	x := (config.GameWindowWidth - config.InfoPanelWidth) / 2
	y := config.GameWindowHeight - config.InfoPanelHeight - config.InfoPanelMargin
	s.drawPanel(screen, x, y, config.InfoPanelWidth, config.InfoPanelHeight)

	// 阶段进度
	progress := fmt.Sprintf("STAGE %d / %d", s.state.StageIndex()+1, s.state.StageCount())
	s.drawTextAt(screen, progress, x+20, y+12, config.SmallFontSize, accentColor)

	// 标题
	s.drawTextAt(screen, stage.Title, x+20, y+30, config.HeadingFontSize, titleColor)

	// 描述正文自动换行
	bodyFace := utils.DefaultFace(config.BodyFontSize)
	lines := utils.WrapText(stage.Description, bodyFace, config.InfoPanelWidth-40)
	lineY := y + 64
	for _, line := range lines {
		s.drawTextAt(screen, line, x+20, lineY, config.BodyFontSize, bodyColor)
		lineY += config.BodyFontSize + 5
	}
}

// drawButtons 绘制所有可见按钮
func (s *HUDRenderSystem) drawButtons(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !button.Visible {
			continue
		}
		s.drawButton(screen, button, pos)
	}
}

// drawButton 按状态选色绘制单个按钮
func (s *HUDRenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, pos *components.PositionComponent) {
	bg := buttonNormalColor
	if button.Primary {
		bg = userBubbleColor
	}
	switch button.State {
	case components.UIStateHover:
		bg = buttonHoverColor
	case components.UIStatePressed:
		bg = buttonPressedColor
	case components.UIStateDisabled:
		bg = buttonDisabledColor
	}

	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
		float32(button.Width), float32(button.Height), bg, false)
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y),
		float32(button.Width), float32(button.Height), 1, panelBorderColor, false)

	// 文字居中
	face := utils.DefaultFace(config.BodyFontSize)
	tw, th := text.Measure(button.Label, face, 0)
	labelColor := titleColor
	if button.State == components.UIStateDisabled {
		labelColor = bodyColor
	}
	s.drawTextAt(screen, button.Label,
		pos.X+(button.Width-tw)/2, pos.Y+(button.Height-th)/2, config.BodyFontSize, labelColor)
}

// drawChatPanel 右侧聊天面板（带滑入动画）
func (s *HUDRenderSystem) drawChatPanel(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.ChatPanelComponent](s.entityManager)
	for _, entityID := range entities {
		panel, _ := ecs.GetComponent[*components.ChatPanelComponent](s.entityManager, entityID)
		if panel.OpenProgress <= 0 {
			continue
		}
		s.drawChatPanelAt(screen, panel)
	}
}

// drawChatPanelAt 绘制面板本体、聊天记录与输入区
func (s *HUDRenderSystem) drawChatPanelAt(screen *ebiten.Image, panel *components.ChatPanelComponent) {
	// 从右侧滑入：进度 0 时完全在屏幕外
	slide := utils.EaseOutCubic(panel.OpenProgress)
	x := config.GameWindowWidth - (config.ChatPanelWidth+config.ChatPanelMargin)*slide
	y := float64(config.ChatPanelMargin + 56)
	s.drawPanel(screen, x, y, config.ChatPanelWidth, config.ChatPanelHeight)

	s.drawTextAt(screen, "ASK THE AI GUIDE", x+14, y+10, config.SmallFontSize, accentColor)

	// 聊天记录：从底部向上排，放不下的旧消息丢弃
	bodyFace := utils.DefaultFace(config.BodyFontSize)
	historyTop := y + 32.0
	historyBottom := y + config.ChatPanelHeight - config.ChatInputHeight - 24
	maxBubbleWidth := config.ChatPanelWidth - 60

	type bubble struct {
		lines []string
		role  components.ChatRole
	}
	var bubbles []bubble
	totalH := 0.0
	lineH := config.BodyFontSize + 4
	for i := len(panel.Messages) - 1; i >= 0; i-- {
		m := panel.Messages[i]
		lines := utils.WrapText(m.Text, bodyFace, maxBubbleWidth-16)
		h := float64(len(lines))*lineH + 14
		if totalH+h > historyBottom-historyTop {
			break
		}
		totalH += h + 6
		bubbles = append([]bubble{{lines: lines, role: m.Role}}, bubbles...)
	}

	bubbleY := historyBottom - totalH
	for _, b := range bubbles {
		bubbleH := float64(len(b.lines))*lineH + 14
		bubbleW := 0.0
		for _, line := range b.lines {
			w, _ := text.Measure(line, bodyFace, 0)
			if w > bubbleW {
				bubbleW = w
			}
		}
		bubbleW += 16

		bx := x + 14
		bg := modelBubbleColor
		if b.role == components.ChatRoleUser {
			bx = x + config.ChatPanelWidth - 14 - bubbleW
			bg = userBubbleColor
		}
		vector.DrawFilledRect(screen, float32(bx), float32(bubbleY), float32(bubbleW), float32(bubbleH), bg, false)

		ly := bubbleY + 6
		for _, line := range b.lines {
			s.drawTextAt(screen, line, bx+8, ly, config.BodyFontSize, titleColor)
			ly += lineH
		}
		bubbleY += bubbleH + 6
	}

	// 等待回答提示
	if panel.Pending {
		s.drawTextAt(screen, "Thinking...", x+14, historyBottom+2, config.SmallFontSize, bodyColor)
	}

	// 输入框
	s.drawChatInput(screen, x, y)
}

// drawChatInput 面板底部的输入框与发送按钮
func (s *HUDRenderSystem) drawChatInput(screen *ebiten.Image, panelX, panelY float64) {
	inputX := panelX + 14
	inputY := panelY + config.ChatPanelHeight - config.ChatInputHeight - 12
	inputW := config.ChatPanelWidth - 28 - config.ChatSendWidth - 8

	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

		vector.DrawFilledRect(screen, float32(inputX), float32(inputY),
			float32(inputW), float32(config.ChatInputHeight), inputBgColor, false)
		vector.StrokeRect(screen, float32(inputX), float32(inputY),
			float32(inputW), float32(config.ChatInputHeight), 1, panelBorderColor, false)

		display := input.Text
		col := color.Color(titleColor)
		if display == "" && !input.IsFocused {
			display = input.Placeholder
			col = bodyColor
		}
		// 文本超宽时只显示末尾
		face := utils.DefaultFace(config.BodyFontSize)
		for {
			w, _ := text.Measure(display, face, 0)
			if w <= inputW-16 || display == "" {
				break
			}
			runes := []rune(display)
			display = string(runes[1:])
		}
		if input.IsFocused && input.CursorVisible {
			display += "|"
		}
		s.drawTextAt(screen, display, inputX+6, inputY+6, config.BodyFontSize, col)
	}
}
