package util

import (
	"strings"

	"github.com/xh-polaris/chat-core-api/biz/infra/cst"
)

// Ptr 返回v的指针
func Ptr[T any](v T) *T {
	return &v
}

// TruncateTitle 由首条用户消息生成对话标题
// 超过50个字符时截断并追加"...", 按rune计数以兼容多字节字符
func TruncateTitle(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= cst.TitleMaxLen {
		return string(r)
	}
	return string(r[:cst.TitleMaxLen]) + cst.TitleTail
}
