package systems

import (
	"context"
	"log"

	"github.com/gonewx/voxelreactor/pkg/components"
	"github.com/gonewx/voxelreactor/pkg/config"
	"github.com/gonewx/voxelreactor/pkg/ecs"
	"github.com/gonewx/voxelreactor/pkg/game"
	"github.com/gonewx/voxelreactor/pkg/utils"
)

// TutorAsker AI 导览员问答接口
// 生产实现是 tutor.Client，测试时注入 fake
type TutorAsker interface {
	Ask(ctx context.Context, question, stageTitle string) string
}

// chatReply 后台问答协程送回的结果
type chatReply struct {
	text string
}

// ChatSystem 聊天系统
//
// 提问在后台协程中等待 AI 回答，主循环不被阻塞。
// 结果通过容量为 1 的通道送回，Update 每帧非阻塞地收取。
// 一次只允许一个在途提问：Pending 期间拒绝新的提问。
//
// 同时负责聊天面板的滑入滑出动画。
type ChatSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ReactorState
	tutor         TutorAsker

	replies chan chatReply
}

// NewChatSystem 创建聊天系统
func NewChatSystem(em *ecs.EntityManager, state *game.ReactorState, tutor TutorAsker) *ChatSystem {
	return &ChatSystem{
		entityManager: em,
		state:         state,
		tutor:         tutor,
		replies:       make(chan chatReply, 1),
	}
}

// Submit 提交一条提问
//
// 提问立即显示在聊天记录里，回答由后台协程补上。
// 已有在途提问时拒绝（返回 false），避免回答乱序。
func (s *ChatSystem) Submit(question string) bool {
	panel := s.findPanel()
	if panel == nil {
		return false
	}
	if panel.Pending {
		log.Printf("[ChatSystem] 上一条提问尚未回答，忽略新提问")
		return false
	}
	if question == "" {
		return false
	}

	panel.Messages = append(panel.Messages, components.ChatMessage{
		Role: components.ChatRoleUser,
		Text: question,
	})
	panel.Pending = true

	stageTitle := s.state.CurrentStage().Title
	go func() {
		answer := s.tutor.Ask(context.Background(), question, stageTitle)
		s.replies <- chatReply{text: answer}
	}()
	return true
}

// Update 收取后台回答并推进面板动画
func (s *ChatSystem) Update(deltaTime float64) {
	panel := s.findPanel()
	if panel == nil {
		return
	}

	// 非阻塞收取回答
	select {
	case reply := <-s.replies:
		panel.Messages = append(panel.Messages, components.ChatMessage{
			Role: components.ChatRoleModel,
			Text: reply.text,
		})
		panel.Pending = false
	default:
	}

	// 面板滑入滑出动画
	step := deltaTime / config.ChatPanelSlideDuration
	if panel.Open {
		panel.OpenProgress = utils.Clamp(panel.OpenProgress+step, 0, 1)
	} else {
		panel.OpenProgress = utils.Clamp(panel.OpenProgress-step, 0, 1)
	}
}

// findPanel 找到聊天面板组件（场景中只有一个）
func (s *ChatSystem) findPanel() *components.ChatPanelComponent {
	entities := ecs.GetEntitiesWith1[*components.ChatPanelComponent](s.entityManager)
	for _, entityID := range entities {
		panel, ok := ecs.GetComponent[*components.ChatPanelComponent](s.entityManager, entityID)
		if ok {
			return panel
		}
	}
	return nil
}
