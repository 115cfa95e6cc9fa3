package model

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/infra/config"
	"github.com/xh-polaris/chat-core-api/biz/infra/util"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
)

// IModel 对话补全能力: 输入有序消息序列, 输出一段回复文本
type IModel interface {
	GenerateReply(ctx context.Context, msgs []*schema.Message) (reply string, err error)
	Active() bool
}

// CompletionDomain 包装一个OpenAI协议兼容的ChatModel, 服务启动时构造一次
// 未配置APIKey时降级为不可用, 服务照常启动, 对话请求报错
type CompletionDomain struct {
	model *openai.ChatModel
}

var CompletionDomainSet = wire.NewSet(
	NewCompletionDomain,
	wire.Bind(new(IModel), new(*CompletionDomain)),
)

func NewCompletionDomain(c *config.Config) (*CompletionDomain, error) {
	if c.Model.APIKey == "" {
		logs.Warnf("[domain model] api key not configured, completion capability inactive")
		return &CompletionDomain{}, nil
	}
	m, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL:   c.Model.BaseURL,
		APIKey:    c.Model.APIKey,
		Model:     c.Model.Model,
		MaxTokens: util.Ptr(c.Model.MaxTokens),
		Timeout:   time.Duration(c.Model.Timeout) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &CompletionDomain{model: m}, nil
}

// GenerateReply 单次非流式调用, 失败不重试
func (d *CompletionDomain) GenerateReply(ctx context.Context, msgs []*schema.Message) (reply string, err error) {
	if d.model == nil {
		return "", ErrInactive
	}
	out, err := d.model.Generate(ctx, msgs)
	if err != nil {
		logs.CtxErrorf(ctx, "[domain model] generate err:%v", err)
		return "", err
	}
	return out.Content, nil
}

// Active 返回补全能力是否可用
func (d *CompletionDomain) Active() bool {
	return d.model != nil
}
