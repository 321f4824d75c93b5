package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetMessageStatus(t *testing.T) {
	cm := newFakeConversationMapper()
	mid := primitive.NewObjectID()
	created := time.Now().Add(-time.Minute)
	cm.messageOwner = "owner"
	cm.message = &conversation.Message{
		MessageId:        mid,
		TTSStatus:        cst.TTSCompleted,
		TTSUrl:           "https://audio.example.com/full.mp3",
		TTSSummaryStatus: cst.TTSCompleted,
		TTSSummaryUrl:    "https://audio.example.com/summary.mp3",
		Vote:             cst.VoteDisliked,
		LikeCount:        2,
		DislikeCount:     3,
		Feedback:         "too long",
		CreateTime:       created,
	}
	svc := &MessageService{ConversationMapper: cm}

	// 状态查询无需登录
	resp, err := svc.GetMessageStatus(context.Background(), &core_api.GetMessageStatusReq{MessageId: mid.Hex()})
	require.NoError(t, err)
	assert.Equal(t, mid.Hex(), resp.MessageId)
	assert.Equal(t, cst.TTSCompleted, resp.TTSStatus)
	assert.Equal(t, "https://audio.example.com/full.mp3", resp.TTSUrl)
	assert.Equal(t, cst.TTSCompleted, resp.TTSSummaryStatus)
	assert.Equal(t, "https://audio.example.com/summary.mp3", resp.TTSSummaryUrl)
	assert.Equal(t, cst.VoteDisliked, resp.Vote)
	assert.Equal(t, int32(2), resp.LikeCount)
	assert.Equal(t, int32(3), resp.DislikeCount)
	assert.Equal(t, "too long", resp.Feedback)
	assert.Equal(t, created.Unix(), resp.LastUpdated)
}

func TestGetMessageStatusNotFound(t *testing.T) {
	cm := newFakeConversationMapper()
	cm.findMsgErr = conversation.ErrNotFound
	svc := &MessageService{ConversationMapper: cm}
	_, err := svc.GetMessageStatus(context.Background(), &core_api.GetMessageStatusReq{MessageId: primitive.NewObjectID().Hex()})
	assert.EqualValues(t, errno.MessageNotFoundErrCode, statusCode(t, err))
}

func TestGetMessageStatusBadId(t *testing.T) {
	svc := &MessageService{ConversationMapper: newFakeConversationMapper()}
	_, err := svc.GetMessageStatus(context.Background(), &core_api.GetMessageStatusReq{MessageId: "zzz"})
	assert.EqualValues(t, errno.BadRequestErrCode, statusCode(t, err))
}
