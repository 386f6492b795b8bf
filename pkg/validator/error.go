package validator

import (
	"fmt"

	"discord-webhook/pkg/types"
)

// ErrorKind 验证错误类别
//
// 设计说明：
// - 每类错误对应平台文档中一类被违反的约束
// - 错误消息面向调用方，统一使用英文（与平台 API 的语言保持一致）
// - 调用方可通过 errors.As + Kind 精确区分错误类别
type ErrorKind int8

const (
	// KindLengthExceeded 字符串字段长度超出其约束区间
	// 涉及字段：label、custom id、title、description、footer text、
	// author name、field name、field value
	KindLengthExceeded ErrorKind = iota + 1
	// KindLimitExceeded 数量超出其约束区间
	// 涉及数量：消息内 action row 数、单行按钮数、单个 embed 字段数、
	// 全消息 embed 字符总量
	KindLimitExceeded
	// KindDuplicateIdentifier custom id 与同一消息中已注册的 id 冲突
	// 注意：唯一性约束跨越所有 action row，而非单行内
	KindDuplicateIdentifier
	// KindMissingRequiredField 按钮变体缺少必填字段（style、custom id 或 url）
	KindMissingRequiredField
	// KindEmptyComposite 复合组件为空（action row 不含任何组件）
	KindEmptyComposite
)

// String 返回错误类别的可读名称
func (k ErrorKind) String() string {
	switch k {
	case KindLengthExceeded:
		return "LengthExceeded"
	case KindLimitExceeded:
		return "LimitExceeded"
	case KindDuplicateIdentifier:
		return "DuplicateIdentifier"
	case KindMissingRequiredField:
		return "MissingRequiredField"
	case KindEmptyComposite:
		return "EmptyComposite"
	}
	return "Unknown"
}

// ValidationError 单个验证错误
//
// 设计说明：
// - 验证采用 fail-fast 策略，每次失败的验证恰好产生一个错误
// - 错误携带人类可读字段名与被违反的区间，便于调用方定位问题
// - 实现 error 接口，可直接沿调用链向上传播
type ValidationError struct {
	// Kind 错误类别
	Kind ErrorKind
	// Field 字段名（人类可读，如 "custom id"、"action row"）
	Field string
	// Value 冒犯值（仅 DuplicateIdentifier 时填充，为冲突的 id）
	Value string
	// Actual 实际长度或数量（Length/LimitExceeded 时填充）
	Actual int
	// Bound 被违反的约束区间（Length/LimitExceeded 时填充）
	Bound types.Interval[int]
}

// Error 实现 error 接口
// 消息约定：超限类错误包含 "exceeds"，重复类错误包含 "twice"
func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindLengthExceeded:
		return fmt.Sprintf("length of '%s' (%d) exceeds allowed range %s",
			e.Field, e.Actual, e.Bound)
	case KindLimitExceeded:
		return fmt.Sprintf("count of '%s' (%d) exceeds allowed range %s",
			e.Field, e.Actual, e.Bound)
	case KindDuplicateIdentifier:
		return fmt.Sprintf("%s %q cannot be used twice in one message",
			e.Field, e.Value)
	case KindMissingRequiredField:
		return fmt.Sprintf("missing required field '%s'", e.Field)
	case KindEmptyComposite:
		return fmt.Sprintf("'%s' must contain at least one component", e.Field)
	}
	return "message validation failed"
}

// NewLengthExceeded 创建长度超限错误
// 参数：
//   - actual: 实际字符数
//   - bound: 被违反的区间（字段名取自区间的 Name）
func NewLengthExceeded(actual int, bound types.Interval[int]) *ValidationError {
	return &ValidationError{
		Kind:   KindLengthExceeded,
		Field:  bound.Name,
		Actual: actual,
		Bound:  bound,
	}
}

// NewLimitExceeded 创建数量超限错误
// 参数：
//   - actual: 实际数量
//   - bound: 被违反的区间（字段名取自区间的 Name）
func NewLimitExceeded(actual int, bound types.Interval[int]) *ValidationError {
	return &ValidationError{
		Kind:   KindLimitExceeded,
		Field:  bound.Name,
		Actual: actual,
		Bound:  bound,
	}
}

// NewDuplicateIdentifier 创建标识符重复错误
// 参数：
//   - field: 字段名（如 "custom id"）
//   - value: 冲突的标识符
func NewDuplicateIdentifier(field, value string) *ValidationError {
	return &ValidationError{
		Kind:  KindDuplicateIdentifier,
		Field: field,
		Value: value,
	}
}

// NewMissingRequiredField 创建必填字段缺失错误
func NewMissingRequiredField(field string) *ValidationError {
	return &ValidationError{
		Kind:  KindMissingRequiredField,
		Field: field,
	}
}

// NewEmptyComposite 创建空复合组件错误
func NewEmptyComposite(field string) *ValidationError {
	return &ValidationError{
		Kind:  KindEmptyComposite,
		Field: field,
	}
}
