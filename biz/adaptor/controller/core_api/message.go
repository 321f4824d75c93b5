package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/provider"
)

// GetMessageStatus 轮询消息的语音合成进度与表态状态
// @router /message/:message_id [GET]
func GetMessageStatus(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	req := &core_api.GetMessageStatusReq{MessageId: c.Param("message_id")}
	resp, err := provider.Get().MessageService.GetMessageStatus(ctx, req)
	adaptor.PostProcess(ctx, c, resp, err)
}
