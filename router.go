package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/xh-polaris/chat-core-api/biz/adaptor/controller/core_api"
)

// register 注册HTTP路由
func register(h *server.Hertz) {
	h.GET("/", core_api.Home)
	h.GET("/health", core_api.Health)

	h.POST("/chat", core_api.Chat)

	h.GET("/conversations", core_api.ListConversation)
	h.GET("/conversations/:conversation_id", core_api.GetConversation)
	h.POST("/conversations/new", core_api.CreateConversation)
}
