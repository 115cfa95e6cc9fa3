package main

import (
	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/app/server/render"
	"github.com/hertz-contrib/cors"
	"github.com/xh-polaris/chat-core-api/biz/infra/config"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"github.com/xh-polaris/chat-core-api/provider"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	render.ResetJSONMarshal(sonic.Marshal)
	h := server.New(server.WithHostPorts(c.ListenOn))
	h.Use(cors.Default())
	register(h)

	logs.Infof("chat-core-api listening on %s", c.ListenOn)
	h.Spin()
}
