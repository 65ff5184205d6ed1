// Package trace는 하나의 요청 흐름에 대한 Request ID와 span 시퀀스를 컨텍스트로 전달한다.
package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

const (
	HeaderRequestID = "X-Request-Id"
	HeaderSpanID    = "X-Span-Id"
)

// Info는 하나의 요청(HTTP 요청 또는 CLI 명령 1회)에 대한 트레이싱 정보다.
// spanSeq는 같은 RequestID 안에서 backend 호출마다 1,2,3,... 증가한다.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID는 새 Request ID를 만든다.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestAndSpan는 requestID와 초기 span 값을 담은 새 컨텍스트를 반환한다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

// NewContext는 새 Request ID로 트레이싱을 시작한다. CLI 명령 진입점에서 사용한다.
func NewContext(ctx context.Context) context.Context {
	return WithRequestAndSpan(ctx, GenerateID(), 0)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID는 현재 span 값을 증가시키지 않고 반환한다.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID는 span을 1 증가시키고 (requestID, spanID)를 반환한다.
// 트레이싱 컨텍스트 밖에서 호출되면 빈 requestID와 "1"을 돌려준다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return "", "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
