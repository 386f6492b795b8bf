package types

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval 闭区间类型，用于声明式地描述数值约束 [Min, Max]
//
// 设计说明：
// - 泛型实现，支持任意有序数值类型（长度、数量等）
// - 区间本身只描述约束，不负责执行校验（校验由调用方完成）
// - 携带人类可读的字段名 Name，用于拼装错误消息
// - 值类型，零分配，可安全复制和并发读取
//
// 使用示例：
//
//	limit := types.NewInterval("custom id", 1, 100)
//	if !limit.Contains(len(id)) {
//	    // 超出约束，构造错误
//	}
type Interval[T constraints.Ordered] struct {
	// Name 约束对应的字段名（人类可读，用于错误消息）
	Name string
	// Min 区间下界（含）
	Min T
	// Max 区间上界（含）
	Max T
}

// NewInterval 创建闭区间约束
// 参数：
//   - name: 字段名（用于错误消息）
//   - min: 下界（含）
//   - max: 上界（含）
func NewInterval[T constraints.Ordered](name string, min, max T) Interval[T] {
	return Interval[T]{Name: name, Min: min, Max: max}
}

// Contains 判断值是否落在区间内
// 返回：Min <= v && v <= Max
func (i Interval[T]) Contains(v T) bool {
	return i.Min <= v && v <= i.Max
}

// String 返回区间的字符串表示，如 "[1, 100]"
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Min, i.Max)
}
