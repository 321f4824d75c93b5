package cst

// 管线语言约定
const (
	// CanonicalLanguage 对话引擎工作语言, 非该语言的输入输出均经翻译
	CanonicalLanguage = "English"
)

// 身份
const (
	// AnonymousUID 未登录调用方的哨兵身份
	AnonymousUID = "guest"
)

// 会话哨兵值
const (
	// NewConversation 路径参数取该值时表示新建对话
	NewConversation = "null"
	// NullSession 尚未与对话引擎建立会话
	NullSession = "null"
)

// 模型能力类型
const (
	ModelTypeASR = "asr"
	ModelTypeNMT = "nmt"
	ModelTypeTTS = "tts"
)

// ModelStatusActive 模型记录启用状态
const ModelStatusActive = 0

// DefaultTTSGender 语音合成默认音色
const DefaultTTSGender = "male"

// TTS处理状态, 仅存在 processing->completed 与 processing->failed 两种迁移
const (
	TTSProcessing = "processing"
	TTSCompleted  = "completed"
	TTSFailed     = "failed"
)

// 消息投票状态
const (
	VoteNone     = ""
	VoteLiked    = "liked"
	VoteDisliked = "disliked"
)

// mapper层字段枚举
const (
	Id             = "_id"
	UserId         = "user_id"
	Language       = "language"
	SessionId      = "session_id"
	Messages       = "messages"
	CreateTime     = "create_time"
	UpdateTime     = "update_time"
	ModelType      = "model_type"
	SourceLanguage = "source_language"
	TargetLanguage = "target_language"
	Status         = "status"

	// 内嵌消息数组的寻址与定位符更新字段
	MessagesId               = "messages._id"
	MessagesMatched          = "messages.$"
	MessagesVote             = "messages.$.vote"
	MessagesFeedback         = "messages.$.feedback"
	MessagesLikeCount        = "messages.$.like_count"
	MessagesDislikeCount     = "messages.$.dislike_count"
	MessagesTTSUrl           = "messages.$.tts_url"
	MessagesTTSSummaryUrl    = "messages.$.tts_summary_url"
	MessagesTTSStatus        = "messages.$.tts_status"
	MessagesTTSSummaryStatus = "messages.$.tts_summary_status"

	Set  = "$set"
	Push = "$push"
	Inc  = "$inc"
	NE   = "$ne"
)
