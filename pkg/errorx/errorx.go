package errorx

import (
	"errors"
	"fmt"

	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

// StatusError 是带错误码的业务异常
// 最佳实践:
// - 业务处理链路的末端使用StatusError, PostProcess处理后给出用户友好的响应
// - 错误码与描述在types/errno中预注册
// - 除却末端的StatusError外, 其余的error照常处理
type StatusError interface {
	error
	Code() int32
	Msg() string
	HTTPStatus() int
}

type statusError struct {
	code  int32
	msg   string
	cause error
}

func (e *statusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code=%d, msg=%s, cause=%v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("code=%d, msg=%s", e.code, e.msg)
}

func (e *statusError) Code() int32     { return e.code }
func (e *statusError) Msg() string     { return e.msg }
func (e *statusError) HTTPStatus() int { return code.HTTPStatusOf(e.code) }
func (e *statusError) Unwrap() error   { return e.cause }

// New 根据已注册的错误码创建StatusError
func New(c int32) error {
	return &statusError{code: c, msg: code.MsgOf(c)}
}

// NewMsg 根据错误码创建StatusError, 并覆盖注册的描述
func NewMsg(c int32, format string, a ...any) error {
	return &statusError{code: c, msg: fmt.Sprintf(format, a...)}
}

// WrapByCode 将err包装为指定错误码的StatusError, err为nil时返回nil
// 已经是StatusError的错误不再二次包装, 保留末端语义
func WrapByCode(err error, c int32) error {
	if err == nil {
		return nil
	}
	var se StatusError
	if errors.As(err, &se) {
		return err
	}
	return &statusError{code: c, msg: code.MsgOf(c), cause: err}
}

// ErrorWithoutStack 返回错误字符串, nil安全
func ErrorWithoutStack(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
