package components

// ChatRole 聊天消息的发送方
type ChatRole int

const (
	ChatRoleUser  ChatRole = iota // 访客提问
	ChatRoleModel                 // AI 导览员回答
)

// ChatMessage 一条聊天记录
type ChatMessage struct {
	Role ChatRole
	Text string
}

// ChatPanelComponent 聊天面板状态
//
// Open 是目标状态，OpenProgress ∈ [0, 1] 是滑入动画进度。
// Pending 为 true 时表示有一条提问尚未得到回答，期间拒绝新的提问。
type ChatPanelComponent struct {
	Open         bool
	OpenProgress float64
	Messages     []ChatMessage
	Pending      bool
}
