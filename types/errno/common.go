package errno

import (
	"net/http"

	"github.com/xh-polaris/chat-core-api/pkg/errorx/code"
)

const (
	ValidationErrCode = 1001
	unknowCode        = 999
)

func init() {
	code.Register(
		ValidationErrCode,
		"请求参数不合法",
		code.WithHTTPStatus(http.StatusBadRequest),
		code.WithAffectStability(false),
	)
}
