package core_api

// 请求与响应结构, 字段经adaptor.PostProcess按json标签平铺进响应体

type ChatReq struct {
	Uid            string `json:"uid"`
	Message        string `json:"message"`
	ConversationId string `json:"conversation_id"`
}

type ChatResp struct {
	ConversationId    string `json:"conversation_id"`
	Message           string `json:"message"`
	Response          string `json:"response"`
	MessageCount      int64  `json:"message_count"`
	IsNewConversation bool   `json:"is_new_conversation"`
	Timestamp         string `json:"timestamp"`
}

type ListConversationReq struct {
	Uid string `query:"uid"`
}

type ListConversationResp struct {
	Uid           string          `json:"uid"`
	Conversations []*Conversation `json:"conversations"`
	Total         int             `json:"total"`
}

type GetConversationReq struct {
	ConversationId string `path:"conversation_id"`
	Uid            string `query:"uid"`
}

type GetConversationResp struct {
	Conversation *ConversationDetail `json:"conversation"`
}

type CreateConversationReq struct {
	Uid string `json:"uid"`
}

type CreateConversationResp struct {
	ConversationId string        `json:"conversation_id"`
	Conversation   *Conversation `json:"conversation"`
}

type HomeResp struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Model     string   `json:"model_status"`
	Store     string   `json:"store_status"`
	Stats     *Stats   `json:"stats"`
	Endpoints []string `json:"endpoints"`
}

type Stats struct {
	Conversations int64 `json:"conversations"`
	Messages      int64 `json:"messages"`
}

type HealthResp struct {
	Status           string `json:"status"`
	CapabilityActive bool   `json:"capability_active"`
	StoreStatus      string `json:"store_status"`
	Timestamp        string `json:"timestamp"`
}

// Conversation 交互域对话, _id仅是存储主键的十六进制串
type Conversation struct {
	Id             string `json:"_id"`
	ConversationId string `json:"conversation_id"`
	Uid            string `json:"uid"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	MessageCount   int64  `json:"message_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type Message struct {
	Id             string `json:"_id"`
	MessageId      string `json:"id"`
	ConversationId string `json:"conversation_id"`
	Uid            string `json:"uid"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp"`
}

type ConversationDetail struct {
	Conversation
	Messages []*Message `json:"messages"`
}
