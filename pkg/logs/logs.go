package logs

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Infof(format string, a ...any) {
	hlog.Infof(format, a...)
}

func Warnf(format string, a ...any) {
	hlog.Warnf(format, a...)
}

func Errorf(format string, a ...any) {
	hlog.Errorf(format, a...)
}

func CtxInfof(ctx context.Context, format string, a ...any) {
	hlog.CtxInfof(ctx, format, a...)
}

func CtxWarnf(ctx context.Context, format string, a ...any) {
	hlog.CtxWarnf(ctx, format, a...)
}

func CtxErrorf(ctx context.Context, format string, a ...any) {
	hlog.CtxErrorf(ctx, format, a...)
}

// CondErrorf 条件成立时记录错误日志
func CondErrorf(cond bool, format string, a ...any) {
	if cond {
		hlog.Errorf(format, a...)
	}
}
