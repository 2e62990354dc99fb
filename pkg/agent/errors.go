package agent

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CallError is a model-gateway failure. Retryable errors (network blips, rate
// limits, provider 5xx) are eligible for the orchestrator's retry policy;
// everything else fails the step immediately.
type CallError struct {
	Message   string
	Code      string
	Retryable bool
}

func (e *CallError) Error() string {
	return fmt.Sprintf("model call failed (%s): %s", e.Code, e.Message)
}

// IsTransient reports whether an error should be retried. Gateway-reported
// retryability wins; otherwise transient gRPC transport codes qualify.
// Context cancellation is never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.Aborted, codes.DeadlineExceeded:
			return true
		}
	}
	return false
}
