package logging

import "context"

type contextKey string

const (
	operationKey contextKey = "op"
	flowIDKey    contextKey = "flow_id"
)

// WithOperation tags the context with the document operation being run
// (new, open, save).
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// WithFlowID tags the context with the id of a single user-triggered flow, so
// the confirmation, save and read steps of one command can be correlated.
func WithFlowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, flowIDKey, id)
}

// GetOperation retrieves the operation from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// GetFlowID retrieves the flow id from the context.
// Returns empty string if not present.
func GetFlowID(ctx context.Context) string {
	if id, ok := ctx.Value(flowIDKey).(string); ok {
		return id
	}
	return ""
}
