package history

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/xh-polaris/chat-core-api/biz/infra/cst"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/chat-core-api/biz/infra/util"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"go.mongodb.org/mongo-driver/v2/bson"
)

/* 对话历史记录 */

// HistoryManager 历史记录管理, 所有的历史记录都按照从旧到新排序
type HistoryManager struct {
	ConversationMapper conversation.MongoMapper
	MessageMapper      message.MongoMapper
}

var HistoryManagerSet = wire.NewSet(wire.Struct(new(HistoryManager), "*"))

// History 取出对话全部消息并转换为提交给模型的消息序列
// 顺序与存储序一致, 不重排不截断; 角色或内容非法的脏数据跳过并告警
func (h *HistoryManager) History(ctx context.Context, cid string) (msgs []*schema.Message, err error) {
	records, err := h.MessageMapper.ListByConversation(ctx, cid)
	if err != nil {
		return nil, err
	}
	msgs = make([]*schema.Message, 0, len(records))
	for _, r := range records {
		if r.Content == "" {
			logs.CtxWarnf(ctx, "[history] skip empty message, conversation=%s, id=%s", cid, r.MessageId)
			continue
		}
		switch r.Role {
		case cst.User:
			msgs = append(msgs, schema.UserMessage(r.Content))
		case cst.Assistant:
			msgs = append(msgs, schema.AssistantMessage(r.Content, nil))
		default:
			logs.CtxWarnf(ctx, "[history] skip unknown role %q, conversation=%s, id=%s", r.Role, cid, r.MessageId)
		}
	}
	return msgs, nil
}

// AppendTurn 落库一轮对话: user与assistant两条消息共享同一timestamp, user在前
// message_count从存储重算而非自增, 部分写入后下一轮会自愈
// 重算结果恰为2时设置标题(首轮), 此后不再改写
func (h *HistoryManager) AppendTurn(ctx context.Context, cid, uid, userText, assistantText string) (count int64, err error) {
	ts := time.Now()
	pair := []*message.Message{
		{
			ID:             bson.NewObjectID(),
			MessageId:      uuid.NewString(),
			ConversationId: cid,
			Uid:            uid,
			Role:           cst.User,
			Content:        userText,
			Timestamp:      ts,
		},
		{
			ID:             bson.NewObjectID(),
			MessageId:      uuid.NewString(),
			ConversationId: cid,
			Uid:            uid,
			Role:           cst.Assistant,
			Content:        assistantText,
			Timestamp:      ts,
		},
	}
	if err = h.MessageMapper.InsertTurn(ctx, pair); err != nil {
		return 0, err
	}

	if count, err = h.MessageMapper.CountByConversation(ctx, cid); err != nil {
		return 0, err
	}

	var title string
	if count == 2 {
		title = util.TruncateTitle(userText)
	}
	if err = h.ConversationMapper.UpdateTurnMeta(ctx, cid, count, title, ts); err != nil {
		return 0, err
	}
	return count, nil
}
