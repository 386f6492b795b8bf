package validator

import (
	"sync"
)

// ============================================================================
// 对象池优化 - 减少内存分配和 GC 压力
// ============================================================================

// maxPooledIDCount 归还上下文时 id 集合的容量上限
// 超过上限的上下文不再归还，避免极端消息把大 map 滞留在池中
const maxPooledIDCount = 1024

var (
	// contextPool Context 对象池
	// 用途：高频发送场景下复用验证上下文，每次获取时整体重置
	// 线程安全：sync.Pool 是线程安全的
	contextPool = sync.Pool{
		New: func() interface{} {
			return NewContext()
		},
	}
)

// acquireContext 从对象池获取已重置的 Context
// 使用后必须调用 releaseContext 归还
func acquireContext() *Context {
	ctx := contextPool.Get().(*Context)
	ctx.Reset()
	return ctx
}

// releaseContext 将 Context 归还到对象池
// 归还前整体重置，确保失败过的验证不会泄漏状态到下一次验证
func releaseContext(ctx *Context) {
	if ctx == nil {
		return
	}

	// 防止内存滞留：id 集合过大的上下文直接交给 GC
	if len(ctx.seenCustomIDs) > maxPooledIDCount {
		return
	}

	ctx.Reset()
	contextPool.Put(ctx)
}
