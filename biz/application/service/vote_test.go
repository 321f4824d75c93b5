package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newVoteService(current string) (*VoteService, *fakeConversationMapper, string) {
	cm := newFakeConversationMapper()
	mid := primitive.NewObjectID()
	cm.messageOwner = "owner"
	cm.message = &conversation.Message{
		MessageId: mid,
		Vote:      current,
		LikeCount: 1,
	}
	return &VoteService{ConversationMapper: cm}, cm, mid.Hex()
}

func TestVoteRequiresIdentity(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteNone)
	_, err := svc.Vote(context.Background(), &core_api.VoteReq{MessageId: mid}, cst.VoteLiked)
	assert.EqualValues(t, errno.UnAuthErrCode, statusCode(t, err))
	assert.Empty(t, cm.votes)
}

func TestVoteLikeFromNone(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteNone)
	resp, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid}, cst.VoteLiked)
	require.NoError(t, err)
	assert.Equal(t, cst.VoteLiked, resp.Vote)
	require.Len(t, cm.votes, 1)
	assert.Equal(t, int32(1), cm.votes[0].likeInc)
	assert.Zero(t, cm.votes[0].dislikeInc)
	assert.Empty(t, cm.votes[0].feedback)
}

func TestVoteDislikeRequiresFeedback(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteNone)
	_, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid, Feedback: "  "}, cst.VoteDisliked)
	assert.EqualValues(t, errno.BadRequestErrCode, statusCode(t, err))
	assert.Empty(t, cm.votes)

	resp, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid, Feedback: "wrong answer"}, cst.VoteDisliked)
	require.NoError(t, err)
	assert.Equal(t, cst.VoteDisliked, resp.Vote)
	require.Len(t, cm.votes, 1)
	assert.Equal(t, int32(1), cm.votes[0].dislikeInc)
	assert.Zero(t, cm.votes[0].likeInc)
	assert.Equal(t, "wrong answer", cm.votes[0].feedback)
}

func TestVoteRepeatIsConflict(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteLiked)
	_, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid}, cst.VoteLiked)
	assert.EqualValues(t, errno.AlreadyVotedErrCode, statusCode(t, err))
	// 冲突不触碰计数
	assert.Empty(t, cm.votes)
}

func TestVoteSwitchAdjustsBothCounters(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteLiked)
	resp, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid, Feedback: "outdated"}, cst.VoteDisliked)
	require.NoError(t, err)
	assert.Equal(t, cst.VoteDisliked, resp.Vote)
	require.Len(t, cm.votes, 1)
	assert.Equal(t, int32(-1), cm.votes[0].likeInc)
	assert.Equal(t, int32(1), cm.votes[0].dislikeInc)

	svc2, cm2, mid2 := newVoteService(cst.VoteDisliked)
	_, err = svc2.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid2}, cst.VoteLiked)
	require.NoError(t, err)
	require.Len(t, cm2.votes, 1)
	assert.Equal(t, int32(1), cm2.votes[0].likeInc)
	assert.Equal(t, int32(-1), cm2.votes[0].dislikeInc)
}

func TestVoteMessageNotFound(t *testing.T) {
	svc, cm, mid := newVoteService(cst.VoteNone)
	cm.findMsgErr = conversation.ErrNotFound
	_, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: mid}, cst.VoteLiked)
	assert.EqualValues(t, errno.MessageNotFoundErrCode, statusCode(t, err))
}

func TestVoteBadMessageId(t *testing.T) {
	svc, _, _ := newVoteService(cst.VoteNone)
	_, err := svc.Vote(authedCtx(t, "u1"), &core_api.VoteReq{MessageId: "not-hex"}, cst.VoteLiked)
	assert.EqualValues(t, errno.BadRequestErrCode, statusCode(t, err))
}
