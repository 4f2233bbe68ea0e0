package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
	insurx "github.com/bpeddi/simple-ai-agent/agent/insurance"
	storex "github.com/bpeddi/simple-ai-agent/agent/store"
	toolx "github.com/bpeddi/simple-ai-agent/agent/tool"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

func newTestAssistant(t *testing.T, fake *fakeToolCallingModel) *Assistant {
	t.Helper()

	st := storex.NewMemory()
	if err := insurx.Seed(st); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	svc, err := insurx.NewService(st)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	infos, exec := toolx.Build(svc)

	a, err := New(context.Background(), fake, infos, exec, "insurance prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestHandleMessagePlainReply(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "Hello! How can I help with your insurance today?"},
		},
	}
	a := newTestAssistant(t, fake)

	reply, err := a.HandleMessage(context.Background(), "hi")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if reply != "Hello! How can I help with your insurance today?" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestHandleMessageToolLoop(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolGetCustomerInformation,
							Arguments: `{"customer_id":"u1"}`,
						},
					},
				},
			},
			{Role: schema.Assistant, Content: "Your account is registered to Alice Johnson."},
		},
	}
	a := newTestAssistant(t, fake)

	reply, err := a.HandleMessage(context.Background(), "who am I?")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if reply != "Your account is registered to Alice Johnson." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	// The tool result must be appended to history as a tool message the
	// model can read on the second turn.
	var toolMsg *schema.Message
	for _, m := range a.history {
		if m.Role == schema.Tool {
			toolMsg = m
		}
	}
	if toolMsg == nil {
		t.Fatal("no tool message recorded in history")
	}
	if toolMsg.ToolCallID != "call_1" {
		t.Fatalf("tool call id = %q, want call_1", toolMsg.ToolCallID)
	}

	var result contractx.ToolResult
	if err := json.Unmarshal([]byte(toolMsg.Content), &result); err != nil {
		t.Fatalf("tool message is not a ToolResult: %v", err)
	}
	if result.Tool != toolx.ToolGetCustomerInformation || result.Error != "" {
		t.Fatalf("unexpected tool result: %+v", result)
	}
	if !strings.Contains(toolMsg.Content, "Alice Johnson") {
		t.Fatalf("tool payload missing customer data: %s", toolMsg.Content)
	}
}

func TestHandleMessageToolFailureFlowsToModel(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolGetPolicyDetails,
							Arguments: `{"policy_id":"p99"}`,
						},
					},
				},
			},
			{Role: schema.Assistant, Content: "I could not find policy p99."},
		},
	}
	a := newTestAssistant(t, fake)

	reply, err := a.HandleMessage(context.Background(), "show me policy p99")
	if err != nil {
		t.Fatalf("HandleMessage() error = %v, tool failures must not abort the turn", err)
	}
	if reply != "I could not find policy p99." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestHandleMessageBadToolArguments(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolGetClaimStatus,
							Arguments: `not json`,
						},
					},
				},
			},
		},
	}
	a := newTestAssistant(t, fake)

	_, err := a.HandleMessage(context.Background(), "check my claim")
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("error = %v, want ErrSchemaViolation", err)
	}
}

func TestHandleMessageEmptyInput(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(t, &fakeToolCallingModel{})
	if _, err := a.HandleMessage(context.Background(), "   "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestHandleMessageModelFailure(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(t, &fakeToolCallingModel{err: errors.New("upstream down")})
	if _, err := a.HandleMessage(context.Background(), "hi"); !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("error = %v, want ErrModelInvoke", err)
	}
}

func TestHandleMessageKeepsHistoryAcrossTurns(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "first"},
			{Role: schema.Assistant, Content: "second"},
		},
	}
	a := newTestAssistant(t, fake)

	if _, err := a.HandleMessage(context.Background(), "one"); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if _, err := a.HandleMessage(context.Background(), "two"); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}

	// user, assistant, user, assistant
	if len(a.history) != 4 {
		t.Fatalf("history length = %d, want 4", len(a.history))
	}
	if a.history[0].Content != "one" || a.history[2].Content != "two" {
		t.Fatalf("unexpected history order: %+v", a.history)
	}
}

func TestNewRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	st := storex.NewMemory()
	svc, err := insurx.NewService(st)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	infos, exec := toolx.Build(svc)

	if _, err := New(context.Background(), &fakeToolCallingModel{}, infos, exec, "  "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
