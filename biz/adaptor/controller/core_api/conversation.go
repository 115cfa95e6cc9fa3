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

// CreateConversation 新建对话
// @router /conversations/new [POST]
func CreateConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.CreateConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.NewMsg(errno.ValidationErrCode, "%s", err.Error()))
		return
	}
	resp, err := provider.Get().ConversationService.CreateConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListConversation 获取用户对话列表
// @router /conversations [GET]
func ListConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.ListConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.NewMsg(errno.ValidationErrCode, "%s", err.Error()))
		return
	}
	resp, err := provider.Get().ConversationService.ListConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetConversation 获取对话详情与全部消息
// @router /conversations/:conversation_id [GET]
func GetConversation(ctx context.Context, c *app.RequestContext) {
	var req core_api.GetConversationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, errorx.NewMsg(errno.ValidationErrCode, "%s", err.Error()))
		return
	}
	resp, err := provider.Get().ConversationService.GetConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
