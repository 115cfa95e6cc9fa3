package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/chat-core-api/biz/adaptor"
	"github.com/xh-polaris/chat-core-api/provider"
)

// Home 服务概览
// @router / [GET]
func Home(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().SystemService.Home(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// Health 健康检查
// @router /health [GET]
func Health(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().SystemService.Health(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
