package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/domain/formlink"
	"github.com/xh-polaris/sahayak-core-api/biz/domain/remote"
	"github.com/xh-polaris/sahayak-core-api/biz/domain/ttstail"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/form"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/model"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/pkg/logs"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IAskService interface {
	Ask(ctx context.Context, req *core_api.AskReq) (*core_api.AskResp, error)
}

// AskService 串起一次提问的完整管线:
// 身份解析 -> 入参校验 -> 会话定位 -> 语音识别 -> 正向翻译 -> 对话引擎
// -> 表单链接替换 -> 反向翻译 -> 落库 -> 同步响应, 语音合成交给异步尾段
type AskService struct {
	ConversationMapper conversation.MongoMapper
	ModelMapper        model.MongoMapper
	FormMapper         form.MongoMapper
	Gateway            remote.Gateway
	Tail               ttstail.Submitter
}

var AskServiceSet = wire.NewSet(
	wire.Struct(new(AskService), "*"),
	wire.Bind(new(IAskService), new(*AskService)),
)

func (s *AskService) Ask(ctx context.Context, req *core_api.AskReq) (*core_api.AskResp, error) {
	// 身份解析: 凭证缺失或无效都按匿名兜底, 该步骤不会让请求失败
	uid := cst.AnonymousUID
	if id := adaptor.ResolveIdentity(ctx); id.Kind == adaptor.IdentityResolved {
		uid = id.UID
	}

	// 入参校验: 文本与音频有且仅有一个
	hasText := strings.TrimSpace(req.Question) != ""
	hasAudio := len(req.Audio) > 0
	if hasText == hasAudio {
		return nil, errorx.New(errno.BadRequestErrCode)
	}
	language := req.Language
	if language == "" {
		language = cst.CanonicalLanguage
	}

	// 会话定位: 哨兵值表示新建, 否则必须存在
	// 已登录调用方必须是对话归属人; 匿名调用方可复用任意会话上下文(刻意放宽)
	conv, err := s.resolveConversation(ctx, req.ConversationId, uid, language)
	if err != nil {
		return nil, err
	}

	// 语音识别: 对应语言未配置模型属运维配置错误, 同步路径上是致命的
	question := req.Question
	if hasAudio {
		asrModel, err := s.ModelMapper.FindActive(ctx, cst.ModelTypeASR, language, "")
		if err != nil {
			return nil, errorx.WrapByCode(err, errno.ModelNotFoundErrCode)
		}
		// 静音识别结果为空串, 不视作错误
		if question, err = s.Gateway.ASR(ctx, asrModel, req.Audio, req.AudioFilename); err != nil {
			return nil, err
		}
	}

	// 正向翻译: 请求语言即规范语言时原样透传, 不发起调用
	translated := question
	if !canonical(language) {
		nmt, err := s.ModelMapper.FindActive(ctx, cst.ModelTypeNMT, language, cst.CanonicalLanguage)
		if err != nil {
			return nil, errorx.WrapByCode(err, errno.ModelNotFoundErrCode)
		}
		if translated, err = s.Gateway.Translate(ctx, nmt, question); err != nil {
			return nil, err
		}
	}

	// 对话引擎固定以规范语言工作, 会话标识取自对话记录
	reply, err := s.Gateway.Chat(ctx, conv.SessionId, translated)
	if err != nil {
		return nil, err
	}
	sessionId := conv.SessionId
	if reply.SessionId != "" && reply.SessionId != sessionId {
		sessionId = reply.SessionId
		if err = s.ConversationMapper.UpdateSessionId(ctx, conv.ConversationId, sessionId); err != nil {
			// 会话标识回写失败不是致命问题, 下一轮会重新建立
			logs.CtxErrorf(ctx, "[ask] update session of %s err:%s", conv.ConversationId.Hex(), errorx.ErrorWithoutStack(err))
		}
	}

	// 表单链接替换, 完整回答与摘要各做一次
	forms, err := s.FormMapper.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	lookup := formlink.BuildLookup(forms)
	formattedResponse := formlink.Format(reply.Response, lookup)
	formattedSummary := formlink.Format(reply.SummarizedResponse, lookup)

	// 反向翻译: 摘要优先; 格式化后的全文与摘要一致时共用一次翻译
	// 规范语言下response/summary保留对话引擎原文, 链接版只存formatted字段;
	// 其他语言下存的是翻译结果, 翻译的输入取链接版
	response, summary := reply.Response, reply.SummarizedResponse
	finalResponse, finalSummary := formattedResponse, formattedSummary
	if !canonical(language) {
		nmt, err := s.ModelMapper.FindActive(ctx, cst.ModelTypeNMT, cst.CanonicalLanguage, language)
		if err != nil {
			return nil, errorx.WrapByCode(err, errno.ModelNotFoundErrCode)
		}
		if finalSummary, err = s.Gateway.Translate(ctx, nmt, formattedSummary); err != nil {
			return nil, err
		}
		if formattedResponse != formattedSummary {
			if finalResponse, err = s.Gateway.Translate(ctx, nmt, formattedResponse); err != nil {
				return nil, err
			}
		} else {
			finalResponse = finalSummary
		}
		response, summary = finalResponse, finalSummary
	}

	// 落库: 两个TTS状态以processing入库, $push原子追加
	now := time.Now()
	msg := &conversation.Message{
		MessageId:          primitive.NewObjectID(),
		Question:           question,
		Response:           response,
		SummarizedResponse: summary,
		FormattedResponse:  formattedResponse,
		FormattedSummary:   formattedSummary,
		TTSStatus:          cst.TTSProcessing,
		TTSSummaryStatus:   cst.TTSProcessing,
		CreateTime:         now,
	}
	if err = s.ConversationMapper.AppendMessage(ctx, conv.ConversationId, msg); err != nil {
		return nil, errorx.WrapByCode(err, errno.MessageStoreErrCode)
	}

	// 异步尾段: 语音合成不阻塞响应, 合成的是面向用户的最终文本
	s.Tail.Submit(&ttstail.Task{
		ConversationId: conv.ConversationId,
		MessageId:      msg.MessageId,
		Language:       language,
		Response:       finalResponse,
		Summary:        finalSummary,
	})

	return &core_api.AskResp{
		Resp:               util.Success(),
		ConversationId:     conv.ConversationId.Hex(),
		SessionId:          sessionId,
		MessageId:          msg.MessageId.Hex(),
		Question:           question,
		Response:           response,
		SummarizedResponse: summary,
		FormattedResponse:  formattedResponse,
		FormattedSummary:   formattedSummary,
		TTSStatus:          cst.TTSProcessing,
		TTSSummaryStatus:   cst.TTSProcessing,
		Timestamp:          now.Unix(),
	}, nil
}

// resolveConversation 新建或定位对话并做归属校验
// 注意: 新建的对话不随后续失败回滚, 可能留下空对话, 由离线清理兜底
func (s *AskService) resolveConversation(ctx context.Context, cid, uid, language string) (*conversation.Conversation, error) {
	if strings.EqualFold(cid, cst.NewConversation) {
		conv, err := s.ConversationMapper.CreateNewConversation(ctx, uid, language)
		if err != nil {
			return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
		}
		return conv, nil
	}
	conv, err := s.ConversationMapper.FindById(ctx, cid)
	if errors.Is(err, conversation.ErrNotFound) {
		return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
	}
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.BadRequestErrCode)
	}
	if uid != cst.AnonymousUID && conv.UserId != uid {
		return nil, errorx.New(errno.ForbiddenErrCode)
	}
	return conv, nil
}

func canonical(language string) bool {
	return strings.EqualFold(language, cst.CanonicalLanguage)
}
