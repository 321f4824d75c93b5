package errno

import (
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx/code"
)

const (
	UnAuthErrCode     = 1000
	BadRequestErrCode = 10001
	ForbiddenErrCode  = 10003
)

func init() {
	code.Register(
		UnAuthErrCode,
		"身份认证失败",
		code.WithAffectStability(false),
	)
	code.Register(
		BadRequestErrCode,
		"请求参数有误",
		code.WithAffectStability(false),
	)
	code.Register(
		ForbiddenErrCode,
		"无权访问该资源",
		code.WithAffectStability(false),
	)
}
