package history

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/chat-core-api/biz/infra/cst"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/chat-core-api/biz/infra/mapper/message"
)

// conversationMapperMock 仅记录UpdateTurnMeta调用
type conversationMapperMock struct {
	conversation.MongoMapper
	count int64
	title string
	ts    time.Time
	calls int
	err   error
}

func (m *conversationMapperMock) UpdateTurnMeta(_ context.Context, _ string, count int64, title string, ts time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.count, m.title, m.ts, m.calls = count, title, ts, m.calls+1
	return nil
}

// messageMapperMock 内存版消息存储, 保持插入序
type messageMapperMock struct {
	msgs      []*message.Message
	insertErr error
	countErr  error
	listErr   error
}

func (m *messageMapperMock) InsertTurn(_ context.Context, msgs []*message.Message) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func (m *messageMapperMock) ListByConversation(_ context.Context, cid string) (msgs []*message.Message, _ error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, msg := range m.msgs {
		if msg.ConversationId == cid {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

func (m *messageMapperMock) CountByConversation(_ context.Context, cid string) (count int64, _ error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	for _, msg := range m.msgs {
		if msg.ConversationId == cid {
			count++
		}
	}
	return count, nil
}

func (m *messageMapperMock) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.msgs)), nil
}

func newManager() (*HistoryManager, *conversationMapperMock, *messageMapperMock) {
	cm, mm := &conversationMapperMock{}, &messageMapperMock{}
	return &HistoryManager{ConversationMapper: cm, MessageMapper: mm}, cm, mm
}

func TestAppendTurnFirstTurn(t *testing.T) {
	h, cm, mm := newManager()

	count, err := h.AppendTurn(context.Background(), "c1", "u1", "Hello", "Hi there")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// user在前assistant在后, 共享同一timestamp, ownerId一致
	require.Len(t, mm.msgs, 2)
	assert.Equal(t, cst.User, mm.msgs[0].Role)
	assert.Equal(t, cst.Assistant, mm.msgs[1].Role)
	assert.Equal(t, "Hello", mm.msgs[0].Content)
	assert.Equal(t, "Hi there", mm.msgs[1].Content)
	assert.True(t, mm.msgs[0].Timestamp.Equal(mm.msgs[1].Timestamp))
	assert.Equal(t, "u1", mm.msgs[0].Uid)
	assert.Equal(t, "u1", mm.msgs[1].Uid)
	assert.NotEqual(t, mm.msgs[0].MessageId, mm.msgs[1].MessageId)

	// 首轮恰好2条, 设置标题
	assert.Equal(t, 1, cm.calls)
	assert.Equal(t, int64(2), cm.count)
	assert.Equal(t, "Hello", cm.title)
	assert.True(t, cm.ts.Equal(mm.msgs[0].Timestamp))
}

func TestAppendTurnTitleOnlyAtTwo(t *testing.T) {
	h, cm, _ := newManager()

	_, err := h.AppendTurn(context.Background(), "c1", "u1", "first", "reply1")
	require.NoError(t, err)
	assert.Equal(t, "first", cm.title)

	// 第二轮重算为4, 不再改写标题
	count, err := h.AppendTurn(context.Background(), "c1", "u1", "second", "reply2")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.Equal(t, "", cm.title)
}

func TestAppendTurnTitleTruncated(t *testing.T) {
	h, cm, _ := newManager()

	long := strings.Repeat("a", 60)
	_, err := h.AppendTurn(context.Background(), "c1", "u1", long, "reply")
	require.NoError(t, err)
	assert.Equal(t, 53, len([]rune(cm.title)))
	assert.Equal(t, strings.Repeat("a", 50)+"...", cm.title)
}

func TestAppendTurnRecountsFromStore(t *testing.T) {
	h, cm, mm := newManager()

	// 存储中已有一条残留消息(上一次部分写入), 计数以重算为准而非自增
	mm.msgs = append(mm.msgs, &message.Message{ConversationId: "c1", Uid: "u1", Role: cst.User, Content: "orphan", Timestamp: time.Now()})

	count, err := h.AppendTurn(context.Background(), "c1", "u1", "Hello", "Hi")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, int64(3), cm.count)
	// 重算结果不是2, 不设置标题
	assert.Equal(t, "", cm.title)
}

func TestAppendTurnInsertError(t *testing.T) {
	h, cm, mm := newManager()
	mm.insertErr = assert.AnError

	_, err := h.AppendTurn(context.Background(), "c1", "u1", "Hello", "Hi")
	assert.Error(t, err)
	assert.Equal(t, 0, cm.calls)
}

func TestHistoryOrderAndConversion(t *testing.T) {
	h, _, _ := newManager()
	ctx := context.Background()

	_, err := h.AppendTurn(ctx, "c1", "u1", "Hello", "Hi there")
	require.NoError(t, err)
	_, err = h.AppendTurn(ctx, "c1", "u1", "How are you?", "Fine")
	require.NoError(t, err)
	// 其他对话的消息不混入
	_, err = h.AppendTurn(ctx, "c2", "u2", "other", "reply")
	require.NoError(t, err)

	msgs, err := h.History(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "Hello", msgs[0].Content)
	assert.Equal(t, "Hi there", msgs[1].Content)
	assert.Equal(t, "How are you?", msgs[2].Content)
	assert.Equal(t, "Fine", msgs[3].Content)
	assert.Equal(t, string(msgs[0].Role), cst.User)
	assert.Equal(t, string(msgs[1].Role), cst.Assistant)
}

func TestHistorySkipsMalformed(t *testing.T) {
	h, _, mm := newManager()
	ts := time.Now()
	mm.msgs = []*message.Message{
		{ConversationId: "c1", Role: cst.User, Content: "ok", Timestamp: ts},
		{ConversationId: "c1", Role: "system", Content: "bad role", Timestamp: ts},
		{ConversationId: "c1", Role: cst.Assistant, Content: "", Timestamp: ts},
		{ConversationId: "c1", Role: cst.Assistant, Content: "fine", Timestamp: ts},
	}

	msgs, err := h.History(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "ok", msgs[0].Content)
	assert.Equal(t, "fine", msgs[1].Content)
}

func TestHistoryEmptyConversation(t *testing.T) {
	h, _, _ := newManager()
	msgs, err := h.History(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
