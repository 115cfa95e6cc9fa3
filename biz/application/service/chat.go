package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/chat-core-api/biz/domain/history"
	"github.com/xh-polaris/chat-core-api/biz/domain/model"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/pkg/errorx"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"github.com/xh-polaris/chat-core-api/types/errno"
)

type IChatService interface {
	Chat(ctx context.Context, req *core_api.ChatReq) (*core_api.ChatResp, error)
}

// ChatService 一次对话请求的编排:
// 校验 -> 定位/新建对话 -> 组装历史 -> 调用模型 -> 落库 -> 响应
// 任一步失败即终止, 不重试
type ChatService struct {
	ConversationMapper conversation.MongoMapper
	History            *history.HistoryManager
	Model              model.IModel
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

func (s *ChatService) Chat(ctx context.Context, req *core_api.ChatReq) (*core_api.ChatResp, error) {
	// 校验
	if req.Uid == "" {
		return nil, errorx.NewMsg(errno.ValidationErrCode, "字段\"uid\"必填")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errorx.NewMsg(errno.ValidationErrCode, "消息不能为空")
	}

	// 定位对话: 省略conversation_id时总是新建, 不续接最近对话
	isNew := req.ConversationId == ""
	var conv *conversation.Conversation
	var err error
	if isNew {
		if conv, err = s.ConversationMapper.CreateNewConversation(ctx, req.Uid); err != nil {
			logs.CtxErrorf(ctx, "[chat] create conversation err:%s", errorx.ErrorWithoutStack(err))
			return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
		}
	} else {
		if conv, err = s.ConversationMapper.FindOneByConversationId(ctx, req.ConversationId); err != nil {
			if errors.Is(err, conversation.ErrNotFound) {
				return nil, errorx.New(errno.ConversationNotFoundErrCode)
			}
			logs.CtxErrorf(ctx, "[chat] find conversation err:%s", errorx.ErrorWithoutStack(err))
			return nil, errorx.WrapByCode(err, errno.StoreErrCode)
		}
		if conv.Uid != req.Uid {
			return nil, errorx.New(errno.ConversationForbiddenErrCode)
		}
	}

	// 组装历史: 存储序的全部历史 + 本次用户消息, 不重排不截断
	msgs, err := s.History.History(ctx, conv.ConversationId)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.StoreErrCode)
	}
	msgs = append(msgs, schema.UserMessage(req.Message))
	logs.CtxInfof(ctx, "[chat] conversation=%s, relay %d messages to model", conv.ConversationId, len(msgs))

	// 调用模型
	reply, err := s.Model.GenerateReply(ctx, msgs)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.ChatCompletionErrCode)
	}

	// 落库: 回复已生成, 这里失败意味着本轮回复丢失, 单独记一条日志
	count, err := s.History.AppendTurn(ctx, conv.ConversationId, req.Uid, req.Message, reply)
	if err != nil {
		logs.CtxErrorf(ctx, "[chat] reply generated but not persisted, conversation=%s, err:%s",
			conv.ConversationId, errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ChatPersistErrCode)
	}

	return &core_api.ChatResp{
		ConversationId:    conv.ConversationId,
		Message:           req.Message,
		Response:          reply,
		MessageCount:      count,
		IsNewConversation: isNew,
		Timestamp:         time.Now().Format(time.RFC3339),
	}, nil
}
