package errno

import (
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx/code"
)

const (
	AlreadyVotedErrCode = 40001
	VoteErrCode         = 40002
)

func init() {
	code.Register(
		AlreadyVotedErrCode,
		"已对该消息投过票",
		code.WithAffectStability(false),
	)
	code.Register(
		VoteErrCode,
		"处理投票失败",
		code.WithAffectStability(false),
	)
}
