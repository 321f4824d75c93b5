package errno

import (
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx/code"
)

const (
	ModelNotFoundErrCode = 50001

	AsrErrCode     = 60001
	NmtErrCode     = 60002
	TtsErrCode     = 60003
	ChatbotErrCode = 60004
)

func init() {
	code.Register(
		ModelNotFoundErrCode,
		"未配置对应语言的模型",
		code.WithAffectStability(true),
	)
	code.Register(
		AsrErrCode,
		"语音识别服务调用失败",
		code.WithAffectStability(true),
	)
	code.Register(
		NmtErrCode,
		"翻译服务调用失败",
		code.WithAffectStability(true),
	)
	code.Register(
		TtsErrCode,
		"语音合成服务调用失败",
		code.WithAffectStability(true),
	)
	code.Register(
		ChatbotErrCode,
		"对话引擎调用失败",
		code.WithAffectStability(true),
	)
}
