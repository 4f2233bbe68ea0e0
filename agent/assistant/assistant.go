package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/bpeddi/simple-ai-agent/agent/contract"
	toolx "github.com/bpeddi/simple-ai-agent/agent/tool"
)

// maxToolSteps bounds the model/tool loop within one user turn.
const maxToolSteps = 8

// Assistant runs a tool-calling chat loop: the model either answers the
// user or requests tool calls, whose results are fed back until a plain
// reply comes out. Conversation history is kept in process for the
// lifetime of the Assistant; it is not safe for concurrent callers.
type Assistant struct {
	runner   compose.Runnable[map[string]any, *schema.Message]
	executor toolx.Executor
	history  []*schema.Message
}

var _ contractx.Assistant = (*Assistant)(nil)

func New(
	ctx context.Context,
	chatModel einomodel.ToolCallingChatModel,
	tools []*schema.ToolInfo,
	executor toolx.Executor,
	systemPrompt string,
) (*Assistant, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}
	if executor == nil {
		return nil, errors.New("tool executor is required")
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: system prompt is empty", contractx.ErrValidation)
	}

	toolModel, err := chatModel.WithTools(tools)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools: %v", contractx.ErrModelInvoke, err)
	}

	runner, err := compileChatGraph(ctx, toolModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}

	return &Assistant{
		runner:   runner,
		executor: executor,
	}, nil
}

func (a *Assistant) HandleMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: message is empty", contractx.ErrValidation)
	}

	a.history = append(a.history, schema.UserMessage(text))

	for step := 0; step < maxToolSteps; step++ {
		msg, err := a.runner.Invoke(ctx, map[string]any{"history": a.history})
		if err != nil {
			return "", fmt.Errorf("%w: chat invoke: %v", contractx.ErrModelInvoke, err)
		}
		if msg == nil {
			return "", fmt.Errorf("%w: empty model response", contractx.ErrSchemaViolation)
		}
		a.history = append(a.history, msg)

		if len(msg.ToolCalls) == 0 {
			reply := strings.TrimSpace(msg.Content)
			if reply == "" {
				return "", fmt.Errorf("%w: assistant returned an empty reply", contractx.ErrSchemaViolation)
			}
			return reply, nil
		}

		for _, call := range msg.ToolCalls {
			toolMsg, err := a.runToolCall(ctx, call)
			if err != nil {
				return "", err
			}
			a.history = append(a.history, toolMsg)
		}
	}

	return "", fmt.Errorf("%w: tool loop did not settle within %d steps", contractx.ErrModelInvoke, maxToolSteps)
}

func (a *Assistant) runToolCall(ctx context.Context, call schema.ToolCall) (*schema.Message, error) {
	name := strings.TrimSpace(call.Function.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
	}

	req := contractx.ToolRequest{Tool: name, Args: map[string]any{}}
	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Args); err != nil {
			return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
		}
	}

	result, err := a.executor(ctx, req.Tool, req.Args)
	if err != nil {
		return nil, fmt.Errorf("%w: execute tool=%s: %v", contractx.ErrInternal, name, err)
	}
	if result.Error != "" {
		log.Warn().Str("tool", name).Str("error", result.Error).Msg("tool reported failure")
	} else {
		log.Debug().Str("tool", name).Msg("tool executed")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal tool result for tool=%s: %v", contractx.ErrInternal, name, err)
	}
	return schema.ToolMessage(string(payload), call.ID, schema.WithToolName(name)), nil
}
