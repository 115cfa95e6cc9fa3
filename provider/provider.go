package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/application/service"
	"github.com/xh-polaris/chat-core-api/biz/domain/history"
	"github.com/xh-polaris/chat-core-api/biz/domain/model"
	"github.com/xh-polaris/chat-core-api/biz/infra/config"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/message"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	ChatService         service.IChatService
	ConversationService service.IConversationService
	SystemService       service.ISystemService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ChatServiceSet,
	service.ConversationServiceSet,
	service.SystemServiceSet,
)

var DomainSet = wire.NewSet(
	history.HistoryManagerSet,
	model.CompletionDomainSet,
)

var InfraSet = wire.NewSet(
	config.NewConfig,
	conversation.NewConversationMongoMapper,
	message.NewMessageMongoMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	DomainSet,
	InfraSet,
)
