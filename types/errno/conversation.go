package errno

import (
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx/code"
)

const (
	ConversationNotFoundErrCode = 30001
	ConversationCreateErrCode   = 30002
	ConversationDeleteErrCode   = 30003
	MessageNotFoundErrCode      = 30004
	MessageStoreErrCode         = 30005
)

func init() {
	code.Register(
		ConversationNotFoundErrCode,
		"对话不存在",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationCreateErrCode,
		"创建对话失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationDeleteErrCode,
		"删除对话失败",
		code.WithAffectStability(false),
	)
	code.Register(
		MessageNotFoundErrCode,
		"消息不存在",
		code.WithAffectStability(false),
	)
	code.Register(
		MessageStoreErrCode,
		"消息落库失败",
		code.WithAffectStability(true),
	)
}
