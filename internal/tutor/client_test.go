package tutor

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeGenerator 可编程的假生成器
type fakeGenerator struct {
	reply string
	err   error
	// block 为 true 时一直等到 ctx 结束（模拟挂起的请求）
	block bool

	gotQuestion   string
	gotStageTitle string
}

func (f *fakeGenerator) generate(ctx context.Context, question, stageTitle string) (string, error) {
	f.gotQuestion = question
	f.gotStageTitle = stageTitle
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

// TestAskSuccess 正常回复原样返回
func TestAskSuccess(t *testing.T) {
	gen := &fakeGenerator{reply: "Neutrons split uranium atoms."}
	c := newClientWithGenerator(gen, time.Second)

	got := c.Ask(context.Background(), "What is a neutron?", "1. The Reactor Core")

	if got != "Neutrons split uranium atoms." {
		t.Errorf("Ask = %q, 期望原样返回回复", got)
	}
	if gen.gotQuestion != "What is a neutron?" {
		t.Errorf("传递的问题 = %q", gen.gotQuestion)
	}
	if gen.gotStageTitle != "1. The Reactor Core" {
		t.Errorf("传递的阶段标题 = %q", gen.gotStageTitle)
	}
}

// TestAskFailureModes 所有失败模式折叠为对应的降级回复，永不返回错误
func TestAskFailureModes(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"网络失败", &fakeGenerator{err: errors.New("connection refused")}, FallbackReply},
		{"鉴权失败", &fakeGenerator{err: errors.New("401 unauthorized")}, FallbackReply},
		{"空响应", &fakeGenerator{reply: ""}, EmptyReply},
		{"纯空白响应", &fakeGenerator{reply: "   \n"}, EmptyReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClientWithGenerator(tt.gen, time.Second)
			if got := c.Ask(context.Background(), "q", "stage"); got != tt.want {
				t.Errorf("Ask = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

// TestAskTimeout 挂起的请求在超时后得到专用降级回复
func TestAskTimeout(t *testing.T) {
	c := newClientWithGenerator(&fakeGenerator{block: true}, 50*time.Millisecond)

	start := time.Now()
	got := c.Ask(context.Background(), "q", "stage")
	elapsed := time.Since(start)

	if got != TimeoutReply {
		t.Errorf("Ask = %q, 期望超时降级回复", got)
	}
	if elapsed > time.Second {
		t.Errorf("超时耗时 %v, 超出预期", elapsed)
	}
}

// TestAskWithoutCredential 凭证缺失时直接返回降级回复，不崩溃
func TestAskWithoutCredential(t *testing.T) {
	c := NewClient(context.Background(), "")

	if got := c.Ask(context.Background(), "q", "stage"); got != FallbackReply {
		t.Errorf("Ask = %q, 期望 %q", got, FallbackReply)
	}
}
