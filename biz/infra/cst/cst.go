package cst

const (
	// Assistant is the role of an assistant, means the message is returned by ChatModel.
	Assistant = "assistant"
	// User is the role of a user, means the message is a user message.
	User = "user"
)

// 对话状态
const (
	ActiveStatus = "active"
)

// 标题规则: 首轮对话后由用户消息截断生成
const (
	DefaultTitle = "未命名对话"
	TitleMaxLen  = 50
	TitleTail    = "..."
)

// mapper层字段枚举
const (
	Id             = "_id"
	ConversationId = "conversation_id"
	Uid            = "uid"
	Title          = "title"
	Status         = "status"
	MessageCount   = "message_count"
	CreateTime     = "created_at"
	UpdateTime     = "updated_at"
	Role           = "role"
	Content        = "content"
	Timestamp      = "timestamp"

	Set = "$set"
)
