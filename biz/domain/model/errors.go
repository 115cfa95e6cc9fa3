package model

import "errors"

// ErrInactive 补全能力未配置
var ErrInactive = errors.New("completion model not configured")
