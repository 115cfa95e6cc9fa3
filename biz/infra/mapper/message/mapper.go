package message

import (
	"context"

	"github.com/xh-polaris/chat-core-api/biz/infra/config"
	"github.com/xh-polaris/chat-core-api/biz/infra/cst"
	"github.com/xh-polaris/chat-core-api/pkg/logs"
	"github.com/xh-polaris/chat-core-api/pkg/safego"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const collection = "message"

type MongoMapper interface {
	InsertTurn(ctx context.Context, msgs []*Message) (err error)
	ListByConversation(ctx context.Context, cid string) (msgs []*Message, err error)
	CountByConversation(ctx context.Context, cid string) (count int64, err error)
	CountAll(ctx context.Context) (total int64, err error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewMessageMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	m := &mongoMapper{conn: conn}
	safego.Go(context.Background(), m.ensureIndexes)
	return m
}

// ensureIndexes 启动时创建一次(conversation_id, timestamp)索引
func (m *mongoMapper) ensureIndexes() {
	_, err := m.conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: cst.ConversationId, Value: 1}, {Key: cst.Timestamp, Value: 1}},
	})
	logs.CondErrorf(err != nil, "[mapper] [message] create index err:%v", err)
}

// InsertTurn 按切片顺序插入一轮消息, user在前assistant在后
func (m *mongoMapper) InsertTurn(ctx context.Context, msgs []*Message) (err error) {
	docs := make([]any, 0, len(msgs))
	for _, msg := range msgs {
		docs = append(docs, msg)
	}
	if _, err = m.conn.InsertMany(ctx, docs); err != nil {
		logs.Errorf("[mapper] [message] [InsertTurn] insert err:%v", err)
	}
	return err
}

// ListByConversation 按(timestamp, _id)升序取出对话全部消息
// 同一轮消息timestamp相同, 以_id插入序决定轮内先后
func (m *mongoMapper) ListByConversation(ctx context.Context, cid string) (msgs []*Message, err error) {
	opts := options.Find().SetSort(bson.D{{Key: cst.Timestamp, Value: 1}, {Key: cst.Id, Value: 1}})
	if err = m.conn.Find(ctx, &msgs, bson.M{cst.ConversationId: cid}, opts); err != nil {
		logs.Errorf("[mapper] [message] [ListByConversation] find err:%v", err)
		return nil, err
	}
	return msgs, nil
}

// CountByConversation 重算对话的消息数
// 刻意不使用自增: 计数始终以存储为准, 部分写入后也能自愈
func (m *mongoMapper) CountByConversation(ctx context.Context, cid string) (count int64, err error) {
	return m.conn.CountDocuments(ctx, bson.M{cst.ConversationId: cid})
}

// CountAll 全量消息数, 用于首页统计
func (m *mongoMapper) CountAll(ctx context.Context) (total int64, err error) {
	return m.conn.CountDocuments(ctx, bson.M{})
}
