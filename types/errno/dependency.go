package errno

import (
	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

const (
	StoreErrCode = 60001
)

func init() {
	code.Register(
		StoreErrCode,
		"数据库访问失败",
		code.WithAffectStability(true),
	)
}
