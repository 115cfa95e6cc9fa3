package code

import (
	"net/http"
	"sync"
)

// 错误码定义信息, 由各errno包在init时注册
type definition struct {
	code            int32
	msg             string
	httpStatus      int
	affectStability bool
}

type Option func(*definition)

// WithAffectStability 标记该错误是否影响服务稳定性指标
func WithAffectStability(affect bool) Option {
	return func(d *definition) { d.affectStability = affect }
}

// WithHTTPStatus 指定该错误码对应的HTTP状态码, 默认500
func WithHTTPStatus(status int) Option {
	return func(d *definition) { d.httpStatus = status }
}

var (
	mu       sync.RWMutex
	registry = make(map[int32]*definition)
)

// Register 注册一个错误码, 重复注册时后注册的生效
func Register(code int32, msg string, opts ...Option) {
	d := &definition{code: code, msg: msg, httpStatus: http.StatusInternalServerError}
	for _, opt := range opts {
		opt(d)
	}
	mu.Lock()
	registry[code] = d
	mu.Unlock()
}

// MsgOf 返回错误码注册的描述, 未注册时返回空串
func MsgOf(code int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.msg
	}
	return ""
}

// HTTPStatusOf 返回错误码注册的HTTP状态码, 未注册时返回500
func HTTPStatusOf(code int32) int {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.httpStatus
	}
	return http.StatusInternalServerError
}

// AffectStability 返回错误码是否影响稳定性
func AffectStability(code int32) bool {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[code]; ok {
		return d.affectStability
	}
	return false
}
