package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/wire"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

type IVoteService interface {
	Vote(ctx context.Context, req *core_api.VoteReq, target string) (*core_api.VoteResp, error)
}

// VoteService 维护单条消息上的点赞/点踩状态机
// 合法迁移: 无表态->任一方向, 两方向互转; 同方向重复表态视为冲突
type VoteService struct {
	ConversationMapper conversation.MongoMapper
}

var VoteServiceSet = wire.NewSet(
	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),
)

func (s *VoteService) Vote(ctx context.Context, req *core_api.VoteReq, target string) (*core_api.VoteResp, error) {
	// 表态必须可归因, 匿名调用方直接拒绝
	if id := adaptor.ResolveIdentity(ctx); id.Kind != adaptor.IdentityResolved {
		return nil, errorx.New(errno.UnAuthErrCode)
	}

	feedback := strings.TrimSpace(req.Feedback)
	if target == cst.VoteDisliked && feedback == "" {
		// 点踩必须说明原因
		return nil, errorx.New(errno.BadRequestErrCode)
	}
	if target == cst.VoteLiked {
		feedback = ""
	}

	ids, err := util.ObjectIDsFromHex(req.MessageId)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.BadRequestErrCode)
	}
	_, msg, err := s.ConversationMapper.FindMessage(ctx, ids[0])
	if errors.Is(err, conversation.ErrNotFound) {
		return nil, errorx.WrapByCode(err, errno.MessageNotFoundErrCode)
	}
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.VoteErrCode)
	}

	if msg.Vote == target {
		// 同方向重复表态, 计数不变
		return nil, errorx.New(errno.AlreadyVotedErrCode)
	}

	var likeInc, dislikeInc int32
	switch target {
	case cst.VoteLiked:
		likeInc = 1
		if msg.Vote == cst.VoteDisliked {
			dislikeInc = -1
		}
	case cst.VoteDisliked:
		dislikeInc = 1
		if msg.Vote == cst.VoteLiked {
			likeInc = -1
		}
	default:
		return nil, errorx.New(errno.BadRequestErrCode)
	}

	if err = s.ConversationMapper.ApplyVote(ctx, ids[0], target, feedback, likeInc, dislikeInc); err != nil {
		return nil, errorx.WrapByCode(err, errno.VoteErrCode)
	}
	return &core_api.VoteResp{Resp: util.Success(), Vote: target}, nil
}
