package basic

// Response 通用响应头, 嵌入各业务Resp的Resp字段
type Response struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}
