package chat

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces a single assistant turn from the model, with the tool
// schemas attached so the model can request tool execution.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (*openai.ChatCompletionMessage, error)
}
