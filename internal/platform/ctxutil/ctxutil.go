// Package ctxutil carries per-request identity through context.Context.
package ctxutil

import "context"

type ctxKey int

const (
	traceKey ctxKey = iota
	requestKey
)

// TraceData ties a request to its span and to the caller's request id.
type TraceData struct {
	TraceID   string
	RequestID string
}

// RequestData is attached by the auth middleware once a bearer token verifies.
type RequestData struct {
	TokenString string
	TokenID     string
	Subject     string
	Role        string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceKey, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceKey).(*TraceData); ok {
		return td
	}
	return nil
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestKey).(*RequestData); ok {
		return rd
	}
	return nil
}

// LogFields returns the request's identity as logger key-value pairs,
// skipping anything unset.
func LogFields(ctx context.Context) []interface{} {
	var fields []interface{}
	if td := GetTraceData(ctx); td != nil {
		if td.TraceID != "" {
			fields = append(fields, "trace_id", td.TraceID)
		}
		if td.RequestID != "" {
			fields = append(fields, "request_id", td.RequestID)
		}
	}
	if rd := GetRequestData(ctx); rd != nil && rd.Subject != "" {
		fields = append(fields, "subject", rd.Subject)
	}
	return fields
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
