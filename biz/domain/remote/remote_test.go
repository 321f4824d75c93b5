package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/mapper/model"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/util/httpx"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/types/errno"
)

func testGateway(chatbotURL string) *HTTPGateway {
	return &HTTPGateway{ChatbotURL: chatbotURL, cli: httpx.GetHttpClient()}
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("access-token"))
		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(raw, &body))
		assert.Equal(t, "hello", body["input_text"])
		_, _ = w.Write([]byte(`{"data":{"output_text":"namaste"}}`))
	}))
	defer srv.Close()

	out, err := testGateway("").Translate(context.Background(), &model.Model{APIUrl: srv.URL, AccessToken: "tok"}, "hello")
	require.NoError(t, err)
	assert.Equal(t, "namaste", out)
}

func TestTranslateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := testGateway("").Translate(context.Background(), &model.Model{APIUrl: srv.URL}, "hello")
	require.Error(t, err)
	var se errorx.StatusError
	require.ErrorAs(t, err, &se)
	assert.EqualValues(t, errno.NmtErrCode, se.Code())
	// 错误信息携带远端状态码与响应体
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestASRMultipartUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("audio_file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "q.wav", fh.Filename)
		payload, _ := io.ReadAll(f)
		assert.Equal(t, []byte("pcm-bytes"), payload)
		_, _ = w.Write([]byte(`{"data":{"recognized_text":"spoken question"}}`))
	}))
	defer srv.Close()

	text, err := testGateway("").ASR(context.Background(), &model.Model{APIUrl: srv.URL}, []byte("pcm-bytes"), "q.wav")
	require.NoError(t, err)
	assert.Equal(t, "spoken question", text)
}

func TestTTS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(raw, &body))
		assert.Equal(t, "say this", body["text"])
		assert.Equal(t, "male", body["gender"])
		_, _ = w.Write([]byte(`{"data":{"s3_url":"https://audio.example.com/a.mp3"}}`))
	}))
	defer srv.Close()

	url, err := testGateway("").TTS(context.Background(), &model.Model{APIUrl: srv.URL}, "say this", "male")
	require.NoError(t, err)
	assert.Equal(t, "https://audio.example.com/a.mp3", url)
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 会话标识拼接在路径末尾
		assert.Equal(t, "/chat/sess-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"response":"full","summarized_response":"short","session_id":"sess-1"}`))
	}))
	defer srv.Close()

	reply, err := testGateway(srv.URL+"/chat").Chat(context.Background(), "sess-1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "full", reply.Response)
	assert.Equal(t, "short", reply.SummarizedResponse)
	assert.Equal(t, "sess-1", reply.SessionId)
}

func TestChatSummaryFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":"only full","session_id":"s"}`))
	}))
	defer srv.Close()

	reply, err := testGateway(srv.URL).Chat(context.Background(), "s", "hi")
	require.NoError(t, err)
	// 远端省略摘要时回退为完整回答
	assert.Equal(t, "only full", reply.SummarizedResponse)
}
