package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model 一条远程模型服务的接入配置
// asr/tts只按源语言选取, nmt按源语言和目标语言选取
type Model struct {
	ModelId        primitive.ObjectID `json:"model_id" bson:"_id"`
	ModelType      string             `json:"model_type" bson:"model_type"` // asr/nmt/tts
	SourceLanguage string             `json:"source_language" bson:"source_language"`
	TargetLanguage string             `json:"target_language,omitempty" bson:"target_language,omitempty"`
	AccessToken    string             `json:"access_token" bson:"access_token"`
	APIUrl         string             `json:"api_url" bson:"api_url"`
	Status         int32              `json:"status" bson:"status"` // 0为启用
	UpdateTime     time.Time          `json:"update_time" bson:"update_time"`
}
