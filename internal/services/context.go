package services

import "context"

type contextKey string

const operationKey contextKey = "operation"

// WithOperation annotates context with the workflow operation name so
// command execution records can be traced back to the step that issued them.
func WithOperation(ctx context.Context, operation string) context.Context {
	if operation == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKey, operation)
}

// OperationFromContext returns the workflow operation name if present.
func OperationFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(operationKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
