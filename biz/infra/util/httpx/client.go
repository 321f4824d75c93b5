package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/xh-polaris/sahayak-core-api/pkg/errorx"
	"github.com/xh-polaris/sahayak-core-api/pkg/logs"
)

// httpx/client 是一个简单的http客户端
// 远程模型服务(ASR/NMT/TTS)与对话引擎都是一问一答的HTTP调用, 统一从这里出口

var (
	client *HttpClient
	once   sync.Once
)

const (
	GET  = "GET"
	POST = "POST"
)

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 单例模式维护一个client
func NewHttpClient() *HttpClient {
	once.Do(func() {
		client = &HttpClient{
			Client: http.DefaultClient,
		}
	})
	return client
}

func GetHttpClient() *HttpClient {
	return NewHttpClient()
}

// do 序列化body为JSON并发送请求
func (c *HttpClient) do(ctx context.Context, method, url string, headers http.Header, body any) (resp *http.Response, err error) {
	var bodyBytes []byte
	var req *http.Request
	if bodyBytes, err = sonic.Marshal(body); err != nil {
		return nil, fmt.Errorf("[httpx] 请求体序列化失败: %w", err)
	}
	if req, err = http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes)); err != nil {
		return nil, fmt.Errorf("[httpx] 创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range headers {
		req.Header[k] = vv
	}
	return c.Client.Do(req)
}

// doRaw 发送已构造好的请求体, 不做JSON序列化, 供multipart等场景使用
func (c *HttpClient) doRaw(ctx context.Context, method, url string, headers http.Header, body io.Reader) (resp *http.Response, err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("[httpx] 创建请求失败: %w", err)
	}
	for k, vv := range headers {
		req.Header[k] = vv
	}
	return c.Client.Do(req)
}

// checkStatusCode 非2xx响应转换为带状态码与响应体的错误, 便于定位上游问题
func checkStatusCode(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_resp, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, _resp)
	}
	return nil
}

func (c *HttpClient) getResp(ctx context.Context, method, url string, headers http.Header, body any) (resp []byte, err error) {
	var response *http.Response
	if response, err = c.do(ctx, method, url, headers, body); err != nil {
		return nil, fmt.Errorf("[httpx] 发送请求失败: %w", err)
	}
	return readBody(response)
}

func readBody(response *http.Response) (resp []byte, err error) {
	defer func() {
		if closeErr := response.Body.Close(); closeErr != nil {
			logs.Errorf("[httpx] 关闭响应失败: %s", errorx.ErrorWithoutStack(closeErr))
		}
	}()
	if err = checkStatusCode(response); err != nil {
		return nil, err
	}
	var _resp []byte
	if _resp, err = io.ReadAll(response.Body); err != nil {
		return nil, fmt.Errorf("[httpx] 读取响应失败: %w", err)
	}
	return _resp, nil
}

// PostRaw 发送原始请求体的POST请求并读取响应, multipart上传等场景使用
func (c *HttpClient) PostRaw(ctx context.Context, url string, headers http.Header, body io.Reader) ([]byte, error) {
	response, err := c.doRaw(ctx, POST, url, headers, body)
	if err != nil {
		return nil, fmt.Errorf("[httpx] 发送请求失败: %w", err)
	}
	return readBody(response)
}

// Req 非流式HTTP请求
func (c *HttpClient) Req(ctx context.Context, method, url string, headers http.Header, body any) (resp map[string]any, err error) {
	var _resp []byte
	if _resp, err = c.getResp(ctx, method, url, headers, body); err != nil {
		return nil, err
	}
	if err = sonic.Unmarshal(_resp, &resp); err != nil {
		return nil, fmt.Errorf("[httpx] 反序列化响应失败: %w", err)
	}
	return resp, nil
}

// Get 非流式Get
func (c *HttpClient) Get(ctx context.Context, url string, headers http.Header, body any) (resp map[string]any, err error) {
	return c.Req(ctx, GET, url, headers, body)
}

// Post 非流式Post
func (c *HttpClient) Post(ctx context.Context, url string, headers http.Header, body any) (resp map[string]any, err error) {
	return c.Req(ctx, POST, url, headers, body)
}

// Req 发送请求并将响应反序列化为T
func Req[T any](ctx context.Context, method, url string, headers http.Header, body any) (resp T, err error) {
	var _resp []byte
	if _resp, err = GetHttpClient().getResp(ctx, method, url, headers, body); err != nil {
		return
	}
	if err = sonic.Unmarshal(_resp, &resp); err != nil {
		return resp, fmt.Errorf("[httpx] 反序列化响应失败: %w", err)
	}
	return resp, nil
}

func Get[T any](ctx context.Context, url string, headers http.Header, body any) (resp T, err error) {
	return Req[T](ctx, GET, url, headers, body)
}

func Post[T any](ctx context.Context, url string, headers http.Header, body any) (resp T, err error) {
	return Req[T](ctx, POST, url, headers, body)
}
