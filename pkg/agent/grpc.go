package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	modelv1 "github.com/skein-dev/skein/proto"
)

// GRPCModelCaller implements ModelCaller against the model-gateway service.
type GRPCModelCaller struct {
	conn   *grpc.ClientConn
	client modelv1.ModelServiceClient
}

// NewGRPCModelCaller connects to the model gateway at addr.
func NewGRPCModelCaller(addr string) (*GRPCModelCaller, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model gateway at %s: %w", addr, err)
	}
	return &GRPCModelCaller{
		conn:   conn,
		client: modelv1.NewModelServiceClient(conn),
	}, nil
}

// Call sends one Generate request and folds the chunk stream into a Result.
// An error chunk aborts the fold and surfaces as a CallError carrying the
// gateway's retryability verdict.
func (c *GRPCModelCaller) Call(ctx context.Context, p CallParams) (*Result, error) {
	req := &modelv1.GenerateRequest{
		ExecutionId:     p.ExecutionID,
		Provider:        p.Provider,
		Model:           p.Model,
		ApiKey:          p.APIKey,
		SystemPrompt:    p.SystemPrompt,
		UserPrompt:      p.UserPrompt,
		MaxOutputTokens: int32(p.MaxOutputTokens),
		MaxToolSteps:    int32(p.MaxToolSteps),
	}
	for _, t := range p.Tools {
		req.Tools = append(req.Tools, &modelv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.Schema,
		})
	}

	stream, err := c.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	var (
		text   strings.Builder
		result Result
	)
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gRPC Generate stream failed: %w", err)
		}
		switch chunk := resp.Content.(type) {
		case *modelv1.GenerateResponse_Text:
			text.WriteString(chunk.Text.Content)
		case *modelv1.GenerateResponse_ToolCall:
			result.ToolCalls = append(result.ToolCalls, ToolCall{
				ID:   chunk.ToolCall.CallId,
				Name: chunk.ToolCall.Name,
				Args: parseToolArgs(chunk.ToolCall.Arguments),
			})
		case *modelv1.GenerateResponse_Usage:
			result.Usage = Usage{
				InputTokens:  int(chunk.Usage.InputTokens),
				OutputTokens: int(chunk.Usage.OutputTokens),
				CacheCreate:  int(chunk.Usage.CacheCreationInputTokens),
				CacheRead:    int(chunk.Usage.CacheReadInputTokens),
			}
		case *modelv1.GenerateResponse_Error:
			return nil, &CallError{
				Message:   chunk.Error.Message,
				Code:      chunk.Error.Code,
				Retryable: chunk.Error.Retryable,
			}
		}
	}
	result.OutputText = text.String()
	return &result, nil
}

// Close releases the gateway connection.
func (c *GRPCModelCaller) Close() error {
	return c.conn.Close()
}

// parseToolArgs decodes a JSON argument payload. Undecodable payloads are
// preserved under "_raw" so the call is still recorded.
func parseToolArgs(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"_raw": raw}
	}
	return args
}
