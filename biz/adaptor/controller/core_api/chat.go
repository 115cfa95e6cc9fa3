package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/chat-core-api/biz/adaptor"
	"github.com/xh-polaris/chat-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/chat-core-api/pkg/errorx"
	"github.com/xh-polaris/chat-core-api/provider"
	"github.com/xh-polaris/chat-core-api/types/errno"
)

// Chat 对话补全, 省略conversation_id时新建对话
// @router /chat [POST]
func Chat(ctx context.Context, c *app.RequestContext) {
	var req core_api.ChatReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.NewMsg(errno.ValidationErrCode, "%s", err.Error()))
		return
	}
	resp, err := provider.Get().ChatService.Chat(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
