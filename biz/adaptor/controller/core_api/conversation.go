package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/provider"
)

// DeleteConversation 删除对话及其消息
// @router /conversation/:conversation_id [DELETE]
func DeleteConversation(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	req := &core_api.DeleteConversationReq{ConversationId: c.Param("conversation_id")}
	resp, err := provider.Get().ConversationService.DeleteConversation(ctx, req)
	adaptor.PostProcess(ctx, c, resp, err)
}
