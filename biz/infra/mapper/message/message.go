package message

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Message 一条消息, 归属于用户或模型
// 同一轮的两条消息共享timestamp, 轮内顺序由_id的插入序保证
type Message struct {
	ID             bson.ObjectID `json:"_id" bson:"_id"`
	MessageId      string        `json:"id" bson:"id"`
	ConversationId string        `json:"conversation_id" bson:"conversation_id"`
	Uid            string        `json:"uid" bson:"uid"`
	Role           string        `json:"role" bson:"role"`
	Content        string        `json:"content" bson:"content"`
	Timestamp      time.Time     `json:"timestamp" bson:"timestamp"`
}
