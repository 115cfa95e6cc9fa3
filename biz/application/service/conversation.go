package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/chat-core-api/pkg/errorx"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"github.com/xh-polaris/chat-core-api/types/errno"
)

type IConversationService interface {
	CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error)
	ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error)
	GetConversation(ctx context.Context, req *core_api.GetConversationReq) (*core_api.GetConversationResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      message.MongoMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

func (s *ConversationService) CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error) {
	if req.Uid == "" {
		return nil, errorx.NewMsg(errno.ValidationErrCode, "字段\"uid\"必填")
	}

	// 调用mapper创建对话
	conv, err := s.ConversationMapper.CreateNewConversation(ctx, req.Uid)
	if err != nil {
		logs.CtxErrorf(ctx, "[conversation] create err:%s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
	}

	return &core_api.CreateConversationResp{
		ConversationId: conv.ConversationId,
		Conversation:   toConversationItem(conv),
	}, nil
}

func (s *ConversationService) ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error) {
	if req.Uid == "" {
		return nil, errorx.NewMsg(errno.ValidationErrCode, "参数\"uid\"必填")
	}

	// 获取用户对话列表, 更新时间倒序
	convs, err := s.ConversationMapper.ListConversations(ctx, req.Uid)
	if err != nil {
		logs.CtxErrorf(ctx, "[conversation] list err:%s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationListErrCode)
	}
	items := make([]*core_api.Conversation, 0, len(convs))
	for _, conv := range convs {
		items = append(items, toConversationItem(conv))
	}

	return &core_api.ListConversationResp{Uid: req.Uid, Conversations: items, Total: len(items)}, nil
}

func (s *ConversationService) GetConversation(ctx context.Context, req *core_api.GetConversationReq) (*core_api.GetConversationResp, error) {
	if req.Uid == "" {
		return nil, errorx.NewMsg(errno.ValidationErrCode, "参数\"uid\"必填")
	}

	// 对话必须存在且归属于请求用户
	conv, err := s.ConversationMapper.FindOneByConversationId(ctx, req.ConversationId)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			return nil, errorx.New(errno.ConversationNotFoundErrCode)
		}
		logs.CtxErrorf(ctx, "[conversation] get err:%s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
	}
	if conv.Uid != req.Uid {
		return nil, errorx.New(errno.ConversationForbiddenErrCode)
	}

	// 消息按(timestamp, _id)升序内嵌返回
	msgs, err := s.MessageMapper.ListByConversation(ctx, req.ConversationId)
	if err != nil {
		logs.CtxErrorf(ctx, "[conversation] list messages err:%s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationGetErrCode)
	}
	items := make([]*core_api.Message, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, &core_api.Message{
			Id:             msg.ID.Hex(),
			MessageId:      msg.MessageId,
			ConversationId: msg.ConversationId,
			Uid:            msg.Uid,
			Role:           msg.Role,
			Content:        msg.Content,
			Timestamp:      msg.Timestamp.Format(time.RFC3339),
		})
	}

	detail := &core_api.ConversationDetail{Conversation: *toConversationItem(conv), Messages: items}
	return &core_api.GetConversationResp{Conversation: detail}, nil
}

func toConversationItem(conv *conversation.Conversation) *core_api.Conversation {
	return &core_api.Conversation{
		Id:             conv.ID.Hex(),
		ConversationId: conv.ConversationId,
		Uid:            conv.Uid,
		Title:          conv.Title,
		Status:         conv.Status,
		MessageCount:   conv.MessageCount,
		CreatedAt:      conv.CreateTime.Format(time.RFC3339),
		UpdatedAt:      conv.UpdateTime.Format(time.RFC3339),
	}
}
