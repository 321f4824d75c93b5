package errorx

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/xh-polaris/sahayak-core-api/pkg/errorx/code"
)

// errorx 是携带错误码的业务异常
// 最佳实践:
// - 业务处理链路的末端返回errorx, 由adaptor.PostProcess给出用户友好的响应
// - 错误码在types/errno中注册, 文案取自注册表
// - 中间环节的error照常用fmt.Errorf包装

// StatusError 是携带业务错误码的错误
type StatusError interface {
	error
	Code() int32
	Msg() string
}

type statusError struct {
	code  int32
	msg   string
	cause error
	stack []byte
}

var _ StatusError = (*statusError)(nil)

// New 根据错误码构造一个errorx, 文案取注册表默认值
func New(c int32) error {
	return &statusError{code: c, msg: code.Message(c), stack: debug.Stack()}
}

// NewByMsg 根据错误码和自定义文案构造一个errorx
func NewByMsg(c int32, msg string) error {
	return &statusError{code: c, msg: msg, stack: debug.Stack()}
}

// WrapByCode 将err包装为指定错误码的errorx, err为nil时返回nil
// 若err本身已是errorx, 保留其错误码, 避免外层覆盖内层语义
func WrapByCode(err error, c int32) error {
	if err == nil {
		return nil
	}
	var se StatusError
	if errors.As(err, &se) {
		return err
	}
	return &statusError{code: c, msg: code.Message(c), cause: err, stack: debug.Stack()}
}

func (e *statusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code=%d, msg=%s, cause=%s\nstack:\n%s", e.code, e.msg, e.cause.Error(), e.stack)
	}
	return fmt.Sprintf("code=%d, msg=%s\nstack:\n%s", e.code, e.msg, e.stack)
}

func (e *statusError) Code() int32 {
	return e.code
}

func (e *statusError) Msg() string {
	return e.msg
}

func (e *statusError) Unwrap() error {
	return e.cause
}

// ErrorWithoutStack 返回不带堆栈的错误描述, 用于打日志
func ErrorWithoutStack(err error) string {
	if err == nil {
		return "<nil>"
	}
	var se *statusError
	if errors.As(err, &se) {
		if se.cause != nil {
			return fmt.Sprintf("code=%d, msg=%s, cause=%s", se.code, se.msg, se.cause.Error())
		}
		return fmt.Sprintf("code=%d, msg=%s", se.code, se.msg)
	}
	return err.Error()
}
