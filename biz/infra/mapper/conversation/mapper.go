package conversation

import (
	"context"
	"time"

	"github.com/google/uuid"
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

const (
	collection     = "conversation"
	cacheKeyPrefix = "cache:conversation:"
)

// ErrNotFound 对话不存在
var ErrNotFound = monc.ErrNotFound

type MongoMapper interface {
	CreateNewConversation(ctx context.Context, uid string) (c *Conversation, err error)
	FindOneByConversationId(ctx context.Context, cid string) (c *Conversation, err error)
	ListConversations(ctx context.Context, uid string) (cs []*Conversation, err error)
	UpdateTurnMeta(ctx context.Context, cid string, count int64, title string, ts time.Time) (err error)
	CountAll(ctx context.Context) (total int64, err error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewConversationMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	m := &mongoMapper{conn: conn}
	safego.Go(context.Background(), m.ensureIndexes)
	return m
}

// ensureIndexes 启动时创建一次(uid, updated_at)索引, 约束列表查询成本
func (m *mongoMapper) ensureIndexes() {
	_, err := m.conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: cst.Uid, Value: 1}, {Key: cst.UpdateTime, Value: -1}},
	})
	logs.CondErrorf(err != nil, "[mapper] [conversation] create index err:%v", err)
}

// CreateNewConversation 创建并缓存一个新的对话, message_count为0, 标题为占位值
func (m *mongoMapper) CreateNewConversation(ctx context.Context, uid string) (c *Conversation, err error) {
	now := time.Now()
	c = &Conversation{
		ID:             bson.NewObjectID(),
		ConversationId: uuid.NewString(),
		Uid:            uid,
		Title:          cst.DefaultTitle,
		Status:         cst.ActiveStatus,
		MessageCount:   0,
		CreateTime:     now,
		UpdateTime:     now,
	}

	if _, err = m.conn.InsertOne(ctx, cacheKeyPrefix+c.ConversationId, c); err != nil {
		logs.Errorf("[mapper] [conversation] [CreateNewConversation] insert err:%v", err)
		return nil, err
	}
	return c, nil
}

// FindOneByConversationId 按应用层conversation_id查询, 不存在时返回ErrNotFound
func (m *mongoMapper) FindOneByConversationId(ctx context.Context, cid string) (c *Conversation, err error) {
	c = new(Conversation)
	if err = m.conn.FindOne(ctx, cacheKeyPrefix+cid, c, bson.M{cst.ConversationId: cid}); err != nil {
		return nil, err
	}
	return c, nil
}

// ListConversations 查询用户全部对话, 更新时间倒序
func (m *mongoMapper) ListConversations(ctx context.Context, uid string) (cs []*Conversation, err error) {
	opts := options.Find().SetSort(bson.M{cst.UpdateTime: -1})
	if err = m.conn.Find(ctx, &cs, bson.M{cst.Uid: uid}, opts); err != nil {
		logs.Errorf("[mapper] [conversation] [ListConversations] find err:%v", err)
		return nil, err
	}
	return cs, nil
}

// UpdateTurnMeta 一轮对话落库后推进updated_at与重算的message_count
// title仅在非空时写入, 调用方保证只在首轮设置
func (m *mongoMapper) UpdateTurnMeta(ctx context.Context, cid string, count int64, title string, ts time.Time) (err error) {
	update := bson.M{cst.UpdateTime: ts, cst.MessageCount: count}
	if title != "" {
		update[cst.Title] = title
	}
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid, bson.M{cst.ConversationId: cid}, bson.M{cst.Set: update})
	return err
}

// CountAll 全量对话数, 用于首页统计
func (m *mongoMapper) CountAll(ctx context.Context) (total int64, err error) {
	return m.conn.CountDocuments(ctx, bson.M{})
}
