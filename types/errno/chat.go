package errno

import (
	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

const (
	ChatCompletionErrCode = 20001
	ChatPersistErrCode    = 20002
)

func init() {
	code.Register(
		ChatCompletionErrCode,
		"生成回复失败",
		code.WithAffectStability(true),
	)
	code.Register(
		ChatPersistErrCode,
		"保存对话记录失败",
		code.WithAffectStability(true),
	)
}
