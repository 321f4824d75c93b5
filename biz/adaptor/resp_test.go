package adaptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/sahayak-core-api/biz/application/dto/basic"
)

type sampleResp struct {
	Resp      *basic.Response `json:"-"`
	MessageId string          `json:"message_id"`
	TTSUrl    string          `json:"tts_url,omitempty"`
	LikeCount int32           `json:"like_count"`
}

func TestMakeResponse(t *testing.T) {
	resp := makeResponse(&sampleResp{
		Resp:      &basic.Response{Code: 200, Msg: "success"},
		MessageId: "abc",
	})
	require.NotNil(t, resp)
	assert.Equal(t, int64(200), resp["code"])
	assert.Equal(t, "success", resp["msg"])

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", data["message_id"])
	// 零值的omitempty字段不透出, 计数类零值照常透出
	_, ok = data["tts_url"]
	assert.False(t, ok)
	assert.Equal(t, int32(0), data["like_count"])
}

func TestMakeResponseNil(t *testing.T) {
	assert.Nil(t, makeResponse(nil))
	var empty *sampleResp
	assert.Nil(t, makeResponse(empty))
}
