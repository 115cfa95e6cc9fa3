package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	// 不超过50个字符时原样返回
	assert.Equal(t, "Hello", TruncateTitle("Hello"))
	assert.Equal(t, strings.Repeat("a", 50), TruncateTitle(strings.Repeat("a", 50)))

	// 超长时截断50个字符并追加"...", 总长53
	got := TruncateTitle(strings.Repeat("a", 60))
	assert.Equal(t, 53, len([]rune(got)))
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)

	// 按rune截断, 多字节字符不被截碎
	got = TruncateTitle(strings.Repeat("对", 60))
	assert.Equal(t, 53, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}
