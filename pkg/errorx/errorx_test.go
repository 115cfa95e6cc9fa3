package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

const (
	testNotFoundCode = 90404
	testServerCode   = 90500
)

func init() {
	code.Register(testNotFoundCode, "not found", code.WithHTTPStatus(http.StatusNotFound))
	code.Register(testServerCode, "server error")
}

func TestNew(t *testing.T) {
	err := New(testNotFoundCode)
	var se StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, int32(testNotFoundCode), se.Code())
	assert.Equal(t, "not found", se.Msg())
	assert.Equal(t, http.StatusNotFound, se.HTTPStatus())
}

func TestNewMsg(t *testing.T) {
	err := NewMsg(testNotFoundCode, "conversation %s missing", "c1")
	var se StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "conversation c1 missing", se.Msg())
	assert.Equal(t, http.StatusNotFound, se.HTTPStatus())
}

func TestWrapByCode(t *testing.T) {
	// nil安全
	assert.Nil(t, WrapByCode(nil, testServerCode))

	// 常规错误被包装并保留cause
	cause := fmt.Errorf("connection refused")
	err := WrapByCode(cause, testServerCode)
	var se StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, int32(testServerCode), se.Code())
	assert.Equal(t, http.StatusInternalServerError, se.HTTPStatus())
	assert.True(t, errors.Is(err, cause))

	// 已经是StatusError的不二次包装, 保留末端错误码
	inner := New(testNotFoundCode)
	err = WrapByCode(inner, testServerCode)
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, int32(testNotFoundCode), se.Code())
}

func TestUnregisteredCode(t *testing.T) {
	err := New(88888)
	var se StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.HTTPStatus())
}

func TestErrorWithoutStack(t *testing.T) {
	assert.Equal(t, "<nil>", ErrorWithoutStack(nil))
	assert.Equal(t, "boom", ErrorWithoutStack(errors.New("boom")))
}
