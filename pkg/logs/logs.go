package logs

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// logs 是对 go-zero logx 的一层薄封装, 统一日志出口
// 带Ctx的方法会附带链路信息, 建议在请求链路中使用

func Info(v ...any) {
	logx.Info(v...)
}

func Infof(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(v ...any) {
	logx.Error(v...)
}

func Errorf(format string, v ...any) {
	logx.Errorf(format, v...)
}

func Warnf(format string, v ...any) {
	logx.Slowf(format, v...)
}

func CtxInfof(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxWarnf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Slowf(format, v...)
}

func CtxErrorf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
