package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

type IConversationService interface {
	DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.MongoMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

// DeleteConversation 删除整段对话及其全部消息, 仅归属人可操作
func (s *ConversationService) DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error) {
	id := adaptor.ResolveIdentity(ctx)
	if id.Kind != adaptor.IdentityResolved {
		return nil, errorx.New(errno.UnAuthErrCode)
	}

	conv, err := s.ConversationMapper.FindById(ctx, req.ConversationId)
	if errors.Is(err, conversation.ErrNotFound) {
		return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
	}
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.BadRequestErrCode)
	}
	// 匿名归属的对话不开放删除
	if conv.UserId == cst.AnonymousUID || conv.UserId != id.UID {
		return nil, errorx.New(errno.ForbiddenErrCode)
	}

	if err = s.ConversationMapper.DeleteConversation(ctx, conv.ConversationId); err != nil {
		return nil, errorx.WrapByCode(err, errno.ConversationDeleteErrCode)
	}
	return &core_api.DeleteConversationResp{Resp: util.Success()}, nil
}
