package model

import (
	"context"

	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var _ MongoMapper = (*mongoMapper)(nil)

const (
	collection     = "model"
	cacheKeyPrefix = "cache:model:"
)

// ErrNotFound 未配置对应能力与语言的模型
var ErrNotFound = monc.ErrNotFound

type MongoMapper interface {
	// FindActive 按能力与语言对查找启用的模型配置, targetLanguage对asr/tts传空
	FindActive(ctx context.Context, modelType, sourceLanguage, targetLanguage string) (*Model, error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewModelMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	return &mongoMapper{conn: conn}
}

func (m *mongoMapper) FindActive(ctx context.Context, modelType, sourceLanguage, targetLanguage string) (*Model, error) {
	filter := bson.M{cst.ModelType: modelType, cst.SourceLanguage: sourceLanguage, cst.Status: cst.ModelStatusActive}
	if targetLanguage != "" {
		filter[cst.TargetLanguage] = targetLanguage
	}
	key := cacheKeyPrefix + modelType + ":" + sourceLanguage + ":" + targetLanguage
	var mod Model
	if err := m.conn.FindOne(ctx, key, &mod, filter); err != nil {
		return nil, err
	}
	return &mod, nil
}
