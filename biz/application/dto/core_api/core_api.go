package core_api

import (
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/basic"
)

// AskReq 提交一次提问, 文本与音频二选一
type AskReq struct {
	ConversationId string // 路径参数, 取cst.NewConversation时新建对话
	Question       string
	Language       string
	Audio          []byte
	AudioFilename  string
}

type AskResp struct {
	Resp               *basic.Response `json:"-"`
	ConversationId     string          `json:"conversation_id"`
	SessionId          string          `json:"session_id"`
	MessageId          string          `json:"message_id"`
	Question           string          `json:"question"`
	Response           string          `json:"response"`
	SummarizedResponse string          `json:"summarized_response"`
	FormattedResponse  string          `json:"formatted_response"`
	FormattedSummary   string          `json:"formatted_summary"`
	TTSStatus          string          `json:"tts_status"`
	TTSSummaryStatus   string          `json:"tts_summary_status"`
	Timestamp          int64           `json:"timestamp"`
}

// VoteReq like不带feedback, dislike必须带非空feedback
type VoteReq struct {
	MessageId string
	Feedback  string
}

type VoteResp struct {
	Resp *basic.Response `json:"-"`
	Vote string          `json:"vote"`
}

type GetMessageStatusReq struct {
	MessageId string
}

type GetMessageStatusResp struct {
	Resp             *basic.Response `json:"-"`
	MessageId        string          `json:"message_id"`
	TTSStatus        string          `json:"tts_status"`
	TTSUrl           string          `json:"tts_url,omitempty"`
	TTSSummaryStatus string          `json:"tts_summary_status"`
	TTSSummaryUrl    string          `json:"tts_summary_url,omitempty"`
	Vote             string          `json:"vote,omitempty"`
	LikeCount        int32           `json:"like_count"`
	DislikeCount     int32           `json:"dislike_count"`
	Feedback         string          `json:"feedback,omitempty"`
	LastUpdated      int64           `json:"last_updated"`
}

type DeleteConversationReq struct {
	ConversationId string
}

type DeleteConversationResp struct {
	Resp *basic.Response `json:"-"`
}
