package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/cst"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeleteConversationRequiresIdentity(t *testing.T) {
	cm := newFakeConversationMapper()
	conv, err := cm.CreateNewConversation(context.Background(), "owner", cst.CanonicalLanguage)
	require.NoError(t, err)
	svc := &ConversationService{ConversationMapper: cm}

	_, err = svc.DeleteConversation(context.Background(), &core_api.DeleteConversationReq{ConversationId: conv.ConversationId.Hex()})
	assert.EqualValues(t, errno.UnAuthErrCode, statusCode(t, err))
	assert.Empty(t, cm.deleted)
}

func TestDeleteConversationOwnerOnly(t *testing.T) {
	cm := newFakeConversationMapper()
	conv, err := cm.CreateNewConversation(context.Background(), "owner", cst.CanonicalLanguage)
	require.NoError(t, err)
	svc := &ConversationService{ConversationMapper: cm}

	_, err = svc.DeleteConversation(authedCtx(t, "intruder"), &core_api.DeleteConversationReq{ConversationId: conv.ConversationId.Hex()})
	assert.EqualValues(t, errno.ForbiddenErrCode, statusCode(t, err))

	_, err = svc.DeleteConversation(authedCtx(t, "owner"), &core_api.DeleteConversationReq{ConversationId: conv.ConversationId.Hex()})
	require.NoError(t, err)
	require.Len(t, cm.deleted, 1)
	assert.Equal(t, conv.ConversationId, cm.deleted[0])
}

func TestDeleteConversationGuestOwnedForbidden(t *testing.T) {
	cm := newFakeConversationMapper()
	conv, err := cm.CreateNewConversation(context.Background(), cst.AnonymousUID, cst.CanonicalLanguage)
	require.NoError(t, err)
	svc := &ConversationService{ConversationMapper: cm}

	// 匿名归属的对话没有可验证的归属人
	_, err = svc.DeleteConversation(authedCtx(t, "u1"), &core_api.DeleteConversationReq{ConversationId: conv.ConversationId.Hex()})
	assert.EqualValues(t, errno.ForbiddenErrCode, statusCode(t, err))
}

func TestDeleteConversationNotFound(t *testing.T) {
	svc := &ConversationService{ConversationMapper: newFakeConversationMapper()}
	_, err := svc.DeleteConversation(authedCtx(t, "u1"), &core_api.DeleteConversationReq{ConversationId: primitive.NewObjectID().Hex()})
	assert.EqualValues(t, errno.ConversationNotFoundErrCode, statusCode(t, err))
}
