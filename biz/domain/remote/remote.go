package remote

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/model"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util/httpx"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

// remote 提供ASR/NMT/TTS与对话引擎的统一调用出口
// 四类服务都是一问一答: 带access-token请求, 非2xx归为上游错误,
// 错误信息携带远端状态码与响应体便于排障

const accessTokenHeader = "access-token"

type Gateway interface {
	// ASR 语音识别, 静音时返回空串而非错误
	ASR(ctx context.Context, m *model.Model, audio []byte, filename string) (text string, err error)
	// Translate 文本翻译, 语言对由所选模型记录决定
	Translate(ctx context.Context, m *model.Model, text string) (out string, err error)
	// TTS 语音合成, 返回音频资源地址
	TTS(ctx context.Context, m *model.Model, text, gender string) (url string, err error)
	// Chat 调用对话引擎, sessionId维持多轮上下文
	Chat(ctx context.Context, sessionId, message string) (reply *ChatReply, err error)
}

// ChatReply 对话引擎的一次回复
type ChatReply struct {
	Response           string `json:"response"`
	SummarizedResponse string `json:"summarized_response"`
	SessionId          string `json:"session_id"`
}

var _ Gateway = (*HTTPGateway)(nil)

type HTTPGateway struct {
	ChatbotURL string
	cli        *httpx.HttpClient
}

func NewHTTPGateway(config *config.Config) *HTTPGateway {
	return &HTTPGateway{ChatbotURL: config.Chatbot.BaseURL, cli: httpx.GetHttpClient()}
}

type asrResp struct {
	Data struct {
		RecognizedText string `json:"recognized_text"`
	} `json:"data"`
}

type nmtResp struct {
	Data struct {
		OutputText string `json:"output_text"`
	} `json:"data"`
}

type ttsResp struct {
	Data struct {
		S3Url string `json:"s3_url"`
	} `json:"data"`
}

func (g *HTTPGateway) ASR(ctx context.Context, m *model.Model, audio []byte, filename string) (string, error) {
	// 音频走multipart上传, 字段名与远端约定为audio_file
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("audio_file", filename)
	if err != nil {
		return "", errorx.WrapByCode(err, errno.AsrErrCode)
	}
	if _, err = part.Write(audio); err != nil {
		return "", errorx.WrapByCode(err, errno.AsrErrCode)
	}
	if err = w.Close(); err != nil {
		return "", errorx.WrapByCode(err, errno.AsrErrCode)
	}

	headers := http.Header{}
	headers.Set(accessTokenHeader, m.AccessToken)
	headers.Set("Content-Type", w.FormDataContentType())
	raw, err := g.cli.PostRaw(ctx, m.APIUrl, headers, &buf)
	if err != nil {
		return "", errorx.WrapByCode(err, errno.AsrErrCode)
	}
	var resp asrResp
	if err = sonic.Unmarshal(raw, &resp); err != nil {
		return "", errorx.WrapByCode(err, errno.AsrErrCode)
	}
	return resp.Data.RecognizedText, nil
}

func (g *HTTPGateway) Translate(ctx context.Context, m *model.Model, text string) (string, error) {
	headers := http.Header{}
	headers.Set(accessTokenHeader, m.AccessToken)
	resp, err := httpx.Post[nmtResp](ctx, m.APIUrl, headers, map[string]string{"input_text": text})
	if err != nil {
		return "", errorx.WrapByCode(err, errno.NmtErrCode)
	}
	return resp.Data.OutputText, nil
}

func (g *HTTPGateway) TTS(ctx context.Context, m *model.Model, text, gender string) (string, error) {
	headers := http.Header{}
	headers.Set(accessTokenHeader, m.AccessToken)
	resp, err := httpx.Post[ttsResp](ctx, m.APIUrl, headers, map[string]string{"text": text, "gender": gender})
	if err != nil {
		return "", errorx.WrapByCode(err, errno.TtsErrCode)
	}
	return resp.Data.S3Url, nil
}

func (g *HTTPGateway) Chat(ctx context.Context, sessionId, message string) (*ChatReply, error) {
	url := fmt.Sprintf("%s/%s", g.ChatbotURL, sessionId)
	reply, err := httpx.Post[*ChatReply](ctx, url, nil, map[string]string{"message": message})
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.ChatbotErrCode)
	}
	// 远端省略摘要时回退为完整回答
	if reply.SummarizedResponse == "" {
		reply.SummarizedResponse = reply.Response
	}
	return reply, nil
}
