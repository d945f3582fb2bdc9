package listener

import (
	"context"
	"fmt"

	"github.com/rise-and-shine/callproxy/meta"
	"github.com/rise-and-shine/callproxy/observability/logger"
	"github.com/rise-and-shine/callproxy/observability/tracing"
	"github.com/rise-and-shine/callproxy/proxy"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// LoggerListener writes one debug entry per intercepted call.
type LoggerListener struct {
	logger logger.Logger
}

// NewLogger returns a listener logging through l under the "callproxy.listener" scope.
// A nil l selects the global logger.
func NewLogger(l logger.Logger) *LoggerListener {
	if l == nil {
		l = logger.Global()
	}
	return &LoggerListener{
		logger: l.Named("callproxy.listener"),
	}
}

// OnCall implements proxy.Listener.
func (l *LoggerListener) OnCall(e proxy.CallEvent) {
	log := l.logger
	if ctx, ok := contextArg(e.Arguments); ok {
		log = log.WithContext(ctx)
		if _, hasTraceID := meta.ExtractMetaFromContext(ctx)[meta.TraceID]; !hasTraceID {
			log = log.With(string(meta.TraceID), tracing.TraceID(ctx))
		}
	}

	fields := []any{
		"kind", e.Kind.String(),
		"target", e.Target(),
		"arguments", describeArgs(e.Arguments),
	}
	if e.Kind == proxy.KindMethod {
		fields = append(fields, "receiver", fmt.Sprintf("%T", e.Receiver))
	}

	log.With(fields...).Debug("call intercepted")
}

// describeArgs renders arguments as strings; values cast cannot convert are shown by type.
func describeArgs(args []any) []string {
	return lo.Map(args, func(a any, _ int) string {
		if _, isCtx := a.(context.Context); isCtx {
			return "context.Context"
		}
		s, err := cast.ToStringE(a)
		if err != nil {
			return fmt.Sprintf("%T", a)
		}
		return s
	})
}
