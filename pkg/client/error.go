package client

import (
	"errors"
	"fmt"
)

// ErrInvalidMessage 消息未通过发送前的兼容性验证
// 此类错误是输入的确定性函数，不修改消息重发不可能成功，
// 因此不产生任何网络请求，也不做重试
var ErrInvalidMessage = errors.New("message failed compatibility check")

// APIError 平台 API 返回的非成功响应
//
// 与验证错误是两类互不相交的失败：验证错误发生在本地、先于网络请求；
// APIError 则表示请求已发出且平台拒绝。二者永不混同
type APIError struct {
	// StatusCode HTTP 状态码
	StatusCode int
	// Body 平台返回的错误响应体（通常为 JSON 错误描述）
	Body string
}

// Error 实现 error 接口
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook API returned status %d: %s", e.StatusCode, e.Body)
}
