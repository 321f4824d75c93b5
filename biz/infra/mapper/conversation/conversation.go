package conversation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation 一个对话, 归属某个用户或匿名调用方
// 消息以内嵌数组保存, 只追加不重排, 单条消息只做原地更新
type Conversation struct {
	ConversationId primitive.ObjectID `json:"conversation_id" bson:"_id"`
	UserId         string             `json:"user_id" bson:"user_id"` // 用户id的hex, 匿名为cst.AnonymousUID, 一经设置不再变更
	Language       string             `json:"language" bson:"language"`
	SessionId      string             `json:"session_id" bson:"session_id"` // 对话引擎的多轮会话标识, 未建立时为cst.NullSession
	Messages       []*Message         `json:"messages" bson:"messages"`
	CreateTime     time.Time          `json:"create_time" bson:"create_time"`
	UpdateTime     time.Time          `json:"update_time" bson:"update_time"`
}

// Message 对话中的一条问答消息
// tts_status与tts_summary_status相互独立, 只允许processing->completed或processing->failed
type Message struct {
	MessageId          primitive.ObjectID `json:"message_id" bson:"_id"`
	Question           string             `json:"question" bson:"question"`                       // 用户原始问题(语音输入时为识别文本)
	Response           string             `json:"response" bson:"response"`                       // 完整回答, 已格式化并翻译回请求语言
	SummarizedResponse string             `json:"summarized_response" bson:"summarized_response"` // 摘要回答
	FormattedResponse  string             `json:"formatted_response" bson:"formatted_response"`   // 表单链接替换后的完整回答(规范语言)
	FormattedSummary   string             `json:"formatted_summary" bson:"formatted_summary"`     // 表单链接替换后的摘要(规范语言)
	TTSStatus          string             `json:"tts_status" bson:"tts_status"`
	TTSSummaryStatus   string             `json:"tts_summary_status" bson:"tts_summary_status"`
	TTSUrl             string             `json:"tts_url,omitempty" bson:"tts_url,omitempty"`                 // 完整回答音频, 完成前为空
	TTSSummaryUrl      string             `json:"tts_summary_url,omitempty" bson:"tts_summary_url,omitempty"` // 摘要音频, 完成前为空
	Vote               string             `json:"vote,omitempty" bson:"vote,omitempty"`                       // ""/liked/disliked
	LikeCount          int32              `json:"like_count" bson:"like_count"`
	DislikeCount       int32              `json:"dislike_count" bson:"dislike_count"`
	Feedback           string             `json:"feedback,omitempty" bson:"feedback,omitempty"` // 仅disliked时非空
	CreateTime         time.Time          `json:"create_time" bson:"create_time"`
}
