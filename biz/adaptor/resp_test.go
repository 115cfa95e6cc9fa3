package adaptor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/xh-polaris/chat-core-api/pkg/errorx"
	"github.com/xh-polaris/chat-core-api/types/errno"
)

type sampleResp struct {
	Name    string `json:"name"`
	Count   int64  `json:"count"`
	IsNew   bool   `json:"is_new"`
	Omitted string `json:"omitted,omitempty"`
	skipped string
}

func TestMakeResponse(t *testing.T) {
	resp := makeResponse(&sampleResp{Name: "n", Count: 0, IsNew: false})
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "n", resp["name"])
	// 零值但无omitempty的字段保留, 布尔false必须出现在响应中
	assert.Equal(t, int64(0), resp["count"])
	assert.Equal(t, false, resp["is_new"])
	// 零值且omitempty的字段省略
	_, ok := resp["omitted"]
	assert.False(t, ok)
	_, ok = resp["skipped"]
	assert.False(t, ok)
}

func TestMakeResponseNil(t *testing.T) {
	resp := makeResponse(nil)
	assert.Equal(t, map[string]any{"success": true}, resp)

	var p *sampleResp
	resp = makeResponse(p)
	assert.Equal(t, map[string]any{"success": true}, resp)
}

func TestPostErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errorx.New(errno.ValidationErrCode), http.StatusBadRequest},
		{errorx.New(errno.ConversationNotFoundErrCode), http.StatusNotFound},
		{errorx.New(errno.ConversationForbiddenErrCode), http.StatusForbidden},
		{errorx.New(errno.ChatCompletionErrCode), http.StatusInternalServerError},
		{errorx.New(errno.StoreErrCode), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, cs := range cases {
		c := app.NewContext(0)
		PostError(context.Background(), c, cs.err)
		assert.Equal(t, cs.status, c.Response.StatusCode())
	}
}
