package conversation

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Conversation 一个归属于单个用户的对话线程
// conversation_id是应用层标识, _id仅是存储主键, 不对外承载语义
type Conversation struct {
	ID             bson.ObjectID `json:"_id" bson:"_id"`
	ConversationId string        `json:"conversation_id" bson:"conversation_id"`
	Uid            string        `json:"uid" bson:"uid"`
	Title          string        `json:"title" bson:"title"`
	Status         string        `json:"status" bson:"status"`
	MessageCount   int64         `json:"message_count" bson:"message_count"`
	CreateTime     time.Time     `json:"created_at" bson:"created_at"`
	UpdateTime     time.Time     `json:"updated_at" bson:"updated_at"`
}
