package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

type IMessageService interface {
	GetMessageStatus(ctx context.Context, req *core_api.GetMessageStatusReq) (*core_api.GetMessageStatusResp, error)
}

// MessageService 提供消息级状态轮询, 供前端跟进异步语音合成进度
type MessageService struct {
	ConversationMapper conversation.MongoMapper
}

var MessageServiceSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)

func (s *MessageService) GetMessageStatus(ctx context.Context, req *core_api.GetMessageStatusReq) (*core_api.GetMessageStatusResp, error) {
	ids, err := util.ObjectIDsFromHex(req.MessageId)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.BadRequestErrCode)
	}
	// 消息标识本身不可猜测, 状态查询不做归属校验
	_, msg, err := s.ConversationMapper.FindMessage(ctx, ids[0])
	if errors.Is(err, conversation.ErrNotFound) {
		return nil, errorx.WrapByCode(err, errno.MessageNotFoundErrCode)
	}
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.MessageNotFoundErrCode)
	}
	return &core_api.GetMessageStatusResp{
		Resp:             util.Success(),
		MessageId:        msg.MessageId.Hex(),
		TTSStatus:        msg.TTSStatus,
		TTSUrl:           msg.TTSUrl,
		TTSSummaryStatus: msg.TTSSummaryStatus,
		TTSSummaryUrl:    msg.TTSSummaryUrl,
		Vote:             msg.Vote,
		LikeCount:        msg.LikeCount,
		DislikeCount:     msg.DislikeCount,
		Feedback:         msg.Feedback,
		LastUpdated:      msg.CreateTime.Unix(),
	}, nil
}
