// Package tutor 封装对 Gemini API 的导师问答调用
//
// 这是整个程序唯一的外部失败面。Ask 从不向调用方返回错误：
// 网络失败、鉴权失败、空响应全部折叠为固定的降级回复字符串，
// 超时单独给出一条区分的降级回复。原始错误只写入日志用于诊断。
package tutor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel 问答使用的模型
	DefaultModel = "gemini-2.5-flash"

	// RequestTimeout 单次请求的超时时间
	RequestTimeout = 30 * time.Second
)

// 用户可见的固定文案
const (
	// Greeting 聊天面板的开场白（以 model 角色预置在消息列表中）
	Greeting = "Hello! I'm your AI Nuclear Physicist. Feel free to ask me questions about what you're seeing!"

	// FallbackReply 网络/鉴权/其他失败时的统一降级回复
	FallbackReply = "Communications with the main computer are down. (Check API Key)"

	// TimeoutReply 请求超时的专用降级回复
	TimeoutReply = "The main computer is taking too long to respond. Give it a moment and try again."

	// EmptyReply 响应成功但没有可用文本时的降级回复
	EmptyReply = "I'm having trouble analyzing the reactor data right now. Try again?"
)

// directiveTemplate 固定的行为指令（系统提示词），%s 处填入当前阶段标题
// 静态配置常量，不允许用户编辑
const directiveTemplate = `You are a helpful, enthusiastic nuclear physics tutor guiding a student through a 3D visualization of a nuclear power plant.
The user is currently looking at the %q stage.
Keep answers concise (under 80 words), easy to understand, and relevant to the visual context.
If the user asks about safety, emphasize the safety mechanisms like control rods and containment vessels.`

// generator 抽象底层生成调用，便于测试注入假实现
type generator interface {
	generate(ctx context.Context, question, stageTitle string) (string, error)
}

// Client 导师问答客户端
type Client struct {
	gen     generator
	timeout time.Duration
}

// NewClient 创建客户端
//
// 凭证缺失或客户端创建失败都不是致命错误：返回的客户端仍然可用，
// 只是所有 Ask 调用都会得到降级回复。
func NewClient(ctx context.Context, apiKey string) *Client {
	c := &Client{timeout: RequestTimeout}

	if apiKey == "" {
		log.Printf("[Tutor] GEMINI_API_KEY 未设置，问答将返回降级回复")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		log.Printf("[Tutor] 创建 GenAI 客户端失败: %v", err)
		return c
	}

	c.gen = &genaiGenerator{client: client, model: DefaultModel}
	log.Printf("[Tutor] GenAI 客户端就绪 (model=%s)", DefaultModel)
	return c
}

// newClientWithGenerator 测试专用构造函数
func newClientWithGenerator(gen generator, timeout time.Duration) *Client {
	return &Client{gen: gen, timeout: timeout}
}

// Ask 向导师提出一个问题
//
// question 为用户问题，stageTitle 为当前阶段标题（作为上下文注入指令）。
// 调用会阻塞直到得到回复或超时，因此必须在渲染循环之外的 goroutine 中调用。
// 永不返回错误：任何失败都折叠为降级回复字符串。
func (c *Client) Ask(ctx context.Context, question, stageTitle string) string {
	if c.gen == nil {
		return FallbackReply
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.gen.generate(ctx, question, stageTitle)
	if err != nil {
		log.Printf("[Tutor] Gemini API 调用失败: %v", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return TimeoutReply
		}
		return FallbackReply
	}

	if strings.TrimSpace(reply) == "" {
		log.Printf("[Tutor] 响应中没有可用文本")
		return EmptyReply
	}
	return reply
}

// genaiGenerator 基于官方 SDK 的生成实现
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) generate(ctx context.Context, question, stageTitle string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			fmt.Sprintf(directiveTemplate, stageTitle), genai.RoleUser),
		// 延迟优先：关闭思考预算
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(question), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
