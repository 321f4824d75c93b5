package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/provider"
)

// Like 点赞消息
// @router /message/:message_id/like [POST]
func Like(ctx context.Context, c *app.RequestContext) {
	vote(ctx, c, cst.VoteLiked)
}

// Dislike 点踩消息, 表单须携带feedback
// @router /message/:message_id/dislike [POST]
func Dislike(ctx context.Context, c *app.RequestContext) {
	vote(ctx, c, cst.VoteDisliked)
}

func vote(ctx context.Context, c *app.RequestContext, target string) {
	ctx = adaptor.InjectContext(ctx, c)
	req := &core_api.VoteReq{
		MessageId: c.Param("message_id"),
		Feedback:  string(c.FormValue("feedback")),
	}
	resp, err := provider.Get().VoteService.Vote(ctx, req, target)
	adaptor.PostProcess(ctx, c, resp, err)
}
