package code

import "sync"

// code 维护全局错误码注册表, 各domain在types/errno的init()中注册自己的错误码

type Option func(*definition)

// WithAffectStability 标记该错误是否计入稳定性指标
// 用户侧错误(如参数错误)不计入, 依赖方错误计入
func WithAffectStability(affect bool) Option {
	return func(d *definition) {
		d.affectStability = affect
	}
}

type definition struct {
	code            int32
	message         string
	affectStability bool
}

var (
	mu       sync.RWMutex
	registry = map[int32]*definition{}
)

// Register 注册一个错误码及其默认文案, 重复注册以最后一次为准
func Register(code int32, msg string, opts ...Option) {
	d := &definition{code: code, message: msg}
	for _, opt := range opts {
		opt(d)
	}
	mu.Lock()
	registry[code] = d
	mu.Unlock()
}

// Message 返回错误码的默认文案, 未注册返回兜底文案
func Message(code int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.message
	}
	return "服务内部错误"
}

// AffectStability 返回错误码是否计入稳定性指标
func AffectStability(code int32) bool {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.affectStability
	}
	return true
}
