package conversation

import (
	"context"
	"time"

	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const (
	collection     = "conversation"
	cacheKeyPrefix = "cache:conversation:"
)

// ErrNotFound 查询无记录
var ErrNotFound = monc.ErrNotFound

type MongoMapper interface {
	CreateNewConversation(ctx context.Context, uid, language string) (c *Conversation, err error)
	FindById(ctx context.Context, cid string) (c *Conversation, err error)
	AppendMessage(ctx context.Context, cid primitive.ObjectID, msg *Message) (err error)
	UpdateSessionId(ctx context.Context, cid primitive.ObjectID, sessionId string) (err error)
	FindMessage(ctx context.Context, mid primitive.ObjectID) (owner string, msg *Message, err error)
	CompleteMessageTTS(ctx context.Context, cid, mid primitive.ObjectID, url, summaryUrl string) (err error)
	FailMessageTTS(ctx context.Context, cid, mid primitive.ObjectID) (err error)
	ApplyVote(ctx context.Context, mid primitive.ObjectID, vote, feedback string, likeInc, dislikeInc int32) (err error)
	DeleteConversation(ctx context.Context, cid primitive.ObjectID) (err error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewConversationMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	return &mongoMapper{conn: conn}
}

// CreateNewConversation 创建并缓存一个新的对话
func (m *mongoMapper) CreateNewConversation(ctx context.Context, uid, language string) (c *Conversation, err error) {
	now := time.Now()
	c = &Conversation{
		ConversationId: primitive.NewObjectID(),
		UserId:         uid,
		Language:       language,
		SessionId:      cst.NullSession,
		Messages:       []*Message{},
		CreateTime:     now,
		UpdateTime:     now,
	}
	_, err = m.conn.InsertOne(ctx, cacheKeyPrefix+c.ConversationId.Hex(), c)
	return c, err
}

// FindById 按id查询对话
func (m *mongoMapper) FindById(ctx context.Context, cid string) (c *Conversation, err error) {
	oid, err := primitive.ObjectIDFromHex(cid)
	if err != nil {
		logs.Errorf("[mapper] [conversation] [FindById] from hex err:%s", errorx.ErrorWithoutStack(err))
		return nil, err
	}
	c = new(Conversation)
	if err = m.conn.FindOne(ctx, cacheKeyPrefix+cid, c, bson.M{cst.Id: oid}); err != nil {
		return nil, err
	}
	return c, nil
}

// AppendMessage 向对话的消息数组原子追加一条消息
// 必须用$push落在存储端, 不能读改写, 否则并发请求会相互覆盖
func (m *mongoMapper) AppendMessage(ctx context.Context, cid primitive.ObjectID, msg *Message) (err error) {
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid.Hex(), bson.M{cst.Id: cid},
		bson.M{cst.Push: bson.M{cst.Messages: msg}, cst.Set: bson.M{cst.UpdateTime: time.Now()}})
	return err
}

// UpdateSessionId 回写对话引擎的会话标识
func (m *mongoMapper) UpdateSessionId(ctx context.Context, cid primitive.ObjectID, sessionId string) (err error) {
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid.Hex(), bson.M{cst.Id: cid},
		bson.M{cst.Set: bson.M{cst.SessionId: sessionId, cst.UpdateTime: time.Now()}})
	return err
}

// FindMessage 按消息id定位消息, 仅投影命中的数组元素与对话归属
func (m *mongoMapper) FindMessage(ctx context.Context, mid primitive.ObjectID) (owner string, msg *Message, err error) {
	var c Conversation
	opts := options.FindOne().SetProjection(bson.M{cst.MessagesMatched: 1, cst.UserId: 1})
	if err = m.conn.FindOneNoCache(ctx, &c, bson.M{cst.MessagesId: mid}, opts); err != nil {
		return "", nil, err
	}
	if len(c.Messages) == 0 {
		return "", nil, monc.ErrNotFound
	}
	return c.UserId, c.Messages[0], nil
}

// CompleteMessageTTS 语音合成完成, 两个状态字段一并置completed并写入音频地址
func (m *mongoMapper) CompleteMessageTTS(ctx context.Context, cid, mid primitive.ObjectID, url, summaryUrl string) (err error) {
	filter := bson.M{cst.Id: cid, cst.MessagesId: mid}
	update := bson.M{cst.Set: bson.M{
		cst.MessagesTTSUrl:           url,
		cst.MessagesTTSSummaryUrl:    summaryUrl,
		cst.MessagesTTSStatus:        cst.TTSCompleted,
		cst.MessagesTTSSummaryStatus: cst.TTSCompleted,
		cst.UpdateTime:               time.Now(),
	}}
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid.Hex(), filter, update)
	return err
}

// FailMessageTTS 语音合成失败, 两个状态字段一并置failed, 不写音频地址
func (m *mongoMapper) FailMessageTTS(ctx context.Context, cid, mid primitive.ObjectID) (err error) {
	filter := bson.M{cst.Id: cid, cst.MessagesId: mid}
	update := bson.M{cst.Set: bson.M{
		cst.MessagesTTSStatus:        cst.TTSFailed,
		cst.MessagesTTSSummaryStatus: cst.TTSFailed,
		cst.UpdateTime:               time.Now(),
	}}
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid.Hex(), filter, update)
	return err
}

// ApplyVote 投票状态与计数增减落在同一次更新里
// 计数用$inc保证并发投票下总数正确, vote与feedback字段按写入先后覆盖
func (m *mongoMapper) ApplyVote(ctx context.Context, mid primitive.ObjectID, vote, feedback string, likeInc, dislikeInc int32) (err error) {
	// feedback仅在disliked状态下存在, 切换回liked时一并清空
	set := bson.M{cst.MessagesVote: vote, cst.MessagesFeedback: ""}
	if vote == cst.VoteDisliked {
		set[cst.MessagesFeedback] = feedback
	}
	inc := bson.M{}
	if likeInc != 0 {
		inc[cst.MessagesLikeCount] = likeInc
	}
	if dislikeInc != 0 {
		inc[cst.MessagesDislikeCount] = dislikeInc
	}
	update := bson.M{cst.Set: set}
	if len(inc) > 0 {
		update[cst.Inc] = inc
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{cst.MessagesId: mid}, update)
	return err
}

// DeleteConversation 整个对话连同内嵌消息一并删除
func (m *mongoMapper) DeleteConversation(ctx context.Context, cid primitive.ObjectID) (err error) {
	_, err = m.conn.DeleteOne(ctx, cacheKeyPrefix+cid.Hex(), bson.M{cst.Id: cid})
	return err
}
