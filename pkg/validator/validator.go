package validator

import (
	"errors"
)

// ErrNilTarget 验证目标为 nil
var ErrNilTarget = errors.New("validation target cannot be nil")

// Compatible 平台兼容性检查能力接口
//
// 设计说明：
// - 实体树中的每种节点（消息、embed、action row、按钮等）各自实现一次检查
// - 检查只读实体自身状态，跨实体状态全部经由 Context 传递
// - 失败即返回：每次验证至多产生一个错误，且总是文档顺序中的第一个违例
type Compatible interface {
	// CheckCompatibility 检查实体自身约束并递归检查子实体
	// 参数：
	//   - ctx: 本次验证的上下文（custom id 去重、字符总量、行内计数）
	//
	// 返回：第一个被违反约束的 *ValidationError，全部通过时为 nil
	CheckCompatibility(ctx *Context) error
}

// Validate 对实体树执行一次完整的兼容性验证
//
// 验证流程：
//  1. 从对象池获取全新（已重置）的验证上下文
//  2. 自根节点向下递归检查，任一违例立即终止
//  3. 归还上下文（无论成败，上下文均一次性使用）
//
// 典型用法：发送前对消息根节点调用，通过后才允许序列化与网络传输
func Validate(target Compatible) error {
	if target == nil {
		return ErrNilTarget
	}

	ctx := acquireContext()
	defer releaseContext(ctx)

	return target.CheckCompatibility(ctx)
}
