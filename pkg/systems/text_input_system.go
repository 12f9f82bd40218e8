package systems

import (
	"strings"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextInputSystem 文本输入系统
// 处理聊天输入框的键盘输入、退格、回车提交与光标闪烁
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 文本字符输入
	runes := ebiten.AppendInputChars(nil)
	if len(runes) > 0 {
		s.insertText(input, string(runes))
		// 输入时光标应该可见
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 2. 退格键：按住连续删除（第1帧立即响应，之后每隔3帧一次）
	backspaceDuration := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if backspaceDuration == 1 || (backspaceDuration >= 30 && backspaceDuration%3 == 0) {
		s.deleteLastChar(input)
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 3. 回车提交
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.submitText(input)
	}
}

// submitText 触发提交回调
//
// 空白内容只做清空不触发回调；提交被拒绝（例如上一条提问仍在等待回答）
// 时保留输入内容，用户无需重新输入。
func (s *TextInputSystem) submitText(input *components.TextInputComponent) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		input.Text = ""
		return
	}
	if input.OnSubmit != nil && input.OnSubmit(text) {
		input.Text = ""
	}
}

// insertText 在末尾插入文本（受 MaxLength 限制）
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text string) {
	// 过滤控制字符
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if r >= ' ' {
			filtered = append(filtered, r)
		}
	}

	runes := append([]rune(input.Text), filtered...)
	if input.MaxLength > 0 && len(runes) > input.MaxLength {
		runes = runes[:input.MaxLength]
	}
	input.Text = string(runes)
}

// deleteLastChar 删除末尾字符
func (s *TextInputSystem) deleteLastChar(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if len(runes) == 0 {
		return
	}
	input.Text = string(runes[:len(runes)-1])
}
