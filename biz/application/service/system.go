package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/chat-core-api/biz/domain/model"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
)

type ISystemService interface {
	Home(ctx context.Context) (*core_api.HomeResp, error)
	Health(ctx context.Context) (*core_api.HealthResp, error)
}

type SystemService struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      message.MongoMapper
	Model              model.IModel
}

var SystemServiceSet = wire.NewSet(
	wire.Struct(new(SystemService), "*"),
	wire.Bind(new(ISystemService), new(*SystemService)),
)

// Home 服务概览: 能力状态与全量统计, 统计失败不阻塞响应
func (s *SystemService) Home(ctx context.Context) (*core_api.HomeResp, error) {
	stats := &core_api.Stats{}
	store := "connected"
	if total, err := s.ConversationMapper.CountAll(ctx); err == nil {
		stats.Conversations = total
	} else {
		logs.CtxWarnf(ctx, "[system] count conversations err:%v", err)
		store = "error"
	}
	if total, err := s.MessageMapper.CountAll(ctx); err == nil {
		stats.Messages = total
	} else {
		logs.CtxWarnf(ctx, "[system] count messages err:%v", err)
		store = "error"
	}

	modelStatus := "inactive"
	if s.Model.Active() {
		modelStatus = "active"
	}
	return &core_api.HomeResp{
		Message:   "chat-core-api",
		Status:    "OK",
		Model:     modelStatus,
		Store:     store,
		Stats:     stats,
		Endpoints: []string{"/chat", "/conversations", "/conversations/new", "/health"},
	}, nil
}

// Health 健康检查: 以一次计数探测存储连通性
func (s *SystemService) Health(ctx context.Context) (*core_api.HealthResp, error) {
	store := "connected"
	if _, err := s.ConversationMapper.CountAll(ctx); err != nil {
		logs.CtxWarnf(ctx, "[system] store probe err:%v", err)
		store = "error"
	}
	return &core_api.HealthResp{
		Status:           "OK",
		CapabilityActive: s.Model.Active(),
		StoreStatus:      store,
		Timestamp:        time.Now().Format(time.RFC3339),
	}, nil
}
