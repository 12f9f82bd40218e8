package scenes

import (
	"strings"

	"github.com/gonewx/voxelreactor/internal/tutor"
	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
)

// buildUI 创建全部界面实体并接好回调
func (s *ReactorScene) buildUI() {
	s.buildControlSlider()
	s.buildNavButtons()
	s.buildChatPanel()
}

// buildControlSlider 顶部控制面板里的控制棒滑块
func (s *ReactorScene) buildControlSlider() {
	slider := &components.SliderComponent{
		Value:      s.state.ControlRodLevel(),
		Step:       config.SliderStep,
		SlotWidth:  config.SliderSlotWidth,
		SlotHeight: config.SliderSlotHeight,
		KnobWidth:  config.SliderKnobWidth,
		KnobHeight: config.SliderKnobHeight,
		Label:      "ROD EXTRACTION",
		OnValueChange: func(v float64) {
			s.state.SetControlRodLevel(v)
		},
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, slider)
	s.entityManager.AddComponent(id, &components.PositionComponent{
		X: config.ControlPanelMargin + config.ControlPanelPadding,
		Y: config.ControlPanelMargin + 48,
	})
}

// buildNavButtons 底部信息面板右下角的导航按钮
func (s *ReactorScene) buildNavButtons() {
	panelX := (config.GameWindowWidth - config.InfoPanelWidth) / 2
	panelY := config.GameWindowHeight - config.InfoPanelHeight - config.InfoPanelMargin
	buttonY := panelY + config.InfoPanelHeight - config.NavButtonHeight - 14

	s.prevButton = &components.ButtonComponent{
		Label:   "< PREV",
		Width:   config.NavButtonWidth,
		Height:  config.NavButtonHeight,
		Enabled: !s.state.AtFirstStage(),
		Visible: true,
		OnClick: func() {
			s.state.PrevStage()
		},
	}
	prevID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(prevID, s.prevButton)
	s.entityManager.AddComponent(prevID, &components.PositionComponent{
		X: panelX + config.InfoPanelWidth - 2*config.NavButtonWidth - 30,
		Y: buttonY,
	})

	s.nextButton = &components.ButtonComponent{
		Label:   "NEXT >",
		Width:   config.NavButtonWidth,
		Height:  config.NavButtonHeight,
		Enabled: !s.state.AtLastStage(),
		Visible: true,
		Primary: true,
		OnClick: func() {
			s.state.NextStage()
		},
	}
	nextID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(nextID, s.nextButton)
	s.entityManager.AddComponent(nextID, &components.PositionComponent{
		X: panelX + config.InfoPanelWidth - config.NavButtonWidth - 20,
		Y: buttonY,
	})
}

// buildChatPanel 聊天面板、开关按钮与输入框
func (s *ReactorScene) buildChatPanel() {
	// 面板自带 AI 导览员的开场白
	s.chatPanel = &components.ChatPanelComponent{
		Messages: []components.ChatMessage{
			{Role: components.ChatRoleModel, Text: tutor.Greeting},
		},
	}
	panelID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(panelID, s.chatPanel)

	// 开关按钮
	toggle := &components.ButtonComponent{
		Label:   "ASK AI",
		Width:   config.ChatToggleWidth,
		Height:  config.ChatToggleHeight,
		Enabled: true,
		Visible: true,
		Primary: true,
		OnClick: func() {
			s.chatPanel.Open = !s.chatPanel.Open
		},
	}
	toggleID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(toggleID, toggle)
	s.entityManager.AddComponent(toggleID, &components.PositionComponent{
		X: config.GameWindowWidth - config.ChatToggleWidth - config.ChatPanelMargin,
		Y: config.ChatPanelMargin,
	})

	// 输入框：回车提交给聊天系统，被拒绝时内容保留
	s.chatInput = &components.TextInputComponent{
		MaxLength:   config.ChatInputMaxLength,
		Placeholder: "Ask about this stage...",
		OnSubmit:    s.chatSystem.Submit,
	}
	inputID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(inputID, s.chatInput)

	// 发送按钮：与回车等效，面板完全展开后才可见
	panelX := config.GameWindowWidth - config.ChatPanelWidth - config.ChatPanelMargin
	panelY := config.ChatPanelMargin + 56.0
	inputW := config.ChatPanelWidth - 28 - config.ChatSendWidth - 8

	s.sendButton = &components.ButtonComponent{
		Label:   "SEND",
		Width:   config.ChatSendWidth,
		Height:  config.ChatInputHeight,
		Enabled: true,
		Primary: true,
		OnClick: func() {
			s.submitChatInput()
		},
	}
	sendID := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(sendID, s.sendButton)
	s.entityManager.AddComponent(sendID, &components.PositionComponent{
		X: panelX + 14 + inputW + 8,
		Y: panelY + config.ChatPanelHeight - config.ChatInputHeight - 12,
	})
}

// submitChatInput 把输入框内容交给聊天系统并清空
func (s *ReactorScene) submitChatInput() {
	text := strings.TrimSpace(s.chatInput.Text)
	if text == "" {
		return
	}
	if s.chatSystem.Submit(text) {
		s.chatInput.Text = ""
	}
}
