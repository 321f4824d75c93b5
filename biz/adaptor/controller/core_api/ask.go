package core_api

import (
	"context"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/provider"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

// Ask 发起一次提问, multipart表单携带文本或音频
// @router /ask/:conversation_id [POST]
func Ask(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	req := &core_api.AskReq{
		ConversationId: c.Param("conversation_id"),
		Question:       string(c.FormValue("question")),
		Language:       string(c.FormValue("language")),
	}
	if fh, err := c.FormFile("audio_file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			adaptor.PostError(ctx, c, errorx.WrapByCode(err, errno.BadRequestErrCode))
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			adaptor.PostError(ctx, c, errorx.WrapByCode(err, errno.BadRequestErrCode))
			return
		}
		req.Audio, req.AudioFilename = data, fh.Filename
	}
	resp, err := provider.Get().AskService.Ask(ctx, req)
	adaptor.PostProcess(ctx, c, resp, err)
}
