package systems

import (
	"testing"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/ecs"
)

// TestTextInputSubmitClearPolicy 提交被接受才清空，被拒绝时保留内容
func TestTextInputSubmitClearPolicy(t *testing.T) {
	system := NewTextInputSystem(ecs.NewEntityManager())

	tests := []struct {
		name       string
		text       string
		accept     bool
		wantCalled bool
		wantText   string
	}{
		{"接受后清空", "why is the water blue", true, true, ""},
		{"拒绝时保留", "why is the water blue", false, true, "why is the water blue"},
		{"空白只清空不回调", "   ", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			input := &components.TextInputComponent{
				Text: tt.text,
				OnSubmit: func(text string) bool {
					called = true
					return tt.accept
				},
			}

			system.submitText(input)

			if called != tt.wantCalled {
				t.Errorf("回调触发 = %v, 期望 %v", called, tt.wantCalled)
			}
			if input.Text != tt.wantText {
				t.Errorf("提交后 Text = %q, 期望 %q", input.Text, tt.wantText)
			}
		})
	}
}

// TestTextInputKeepsQuestionWhilePending 等待回答期间回车提交的问题不丢失
func TestTextInputKeepsQuestionWhilePending(t *testing.T) {
	tutor := &fakeTutor{reply: "ok", block: make(chan struct{})}
	chatSystem, panel := newChatFixture(t, tutor)
	inputSystem := NewTextInputSystem(ecs.NewEntityManager())

	input := &components.TextInputComponent{OnSubmit: chatSystem.Submit}

	// 第一条提问被接受并清空
	input.Text = "first question"
	inputSystem.submitText(input)
	if input.Text != "" {
		t.Errorf("接受后 Text = %q, 期望清空", input.Text)
	}

	// 回答未到达时再次回车：提问被拒绝，输入内容原样保留
	input.Text = "second question"
	inputSystem.submitText(input)
	if input.Text != "second question" {
		t.Errorf("在途期间 Text = %q, 期望保留原内容", input.Text)
	}
	if len(panel.Messages) != 1 {
		t.Errorf("被拒绝的提问不应上屏，消息数 = %d", len(panel.Messages))
	}

	// 回答到达后同一内容可以提交成功
	close(tutor.block)
	waitForReply(t, chatSystem, panel)
	inputSystem.submitText(input)
	if input.Text != "" {
		t.Errorf("回答到达后提交应被接受并清空，Text = %q", input.Text)
	}
}
