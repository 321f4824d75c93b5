package form

import (
	"context"
	"errors"

	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "form"

type MongoMapper interface {
	// FindAll 取出整张参照表, 每次ask调用据此构建一次性的查找快照
	FindAll(ctx context.Context) ([]*Form, error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewFormMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	return &mongoMapper{conn: conn}
}

func (m *mongoMapper) FindAll(ctx context.Context) (forms []*Form, err error) {
	if err = m.conn.Find(ctx, &forms, bson.M{}); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logs.Errorf("[mapper] [form] [FindAll] find err:%s", errorx.ErrorWithoutStack(err))
		return nil, err
	}
	return forms, nil
}
