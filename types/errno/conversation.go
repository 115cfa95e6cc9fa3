package errno

import (
	"net/http"

	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

const (
	ConversationCreateErrCode    = 30001
	ConversationListErrCode      = 30002
	ConversationGetErrCode       = 30003
	ConversationNotFoundErrCode  = 30004
	ConversationForbiddenErrCode = 30005
)

func init() {
	code.Register(
		ConversationCreateErrCode,
		"创建对话失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationListErrCode,
		"获取对话列表失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationGetErrCode,
		"获取对话详情失败",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationNotFoundErrCode,
		"对话不存在",
		code.WithHTTPStatus(http.StatusNotFound),
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationForbiddenErrCode,
		"无权访问该对话",
		code.WithHTTPStatus(http.StatusForbidden),
		code.WithAffectStability(false),
	)
}
