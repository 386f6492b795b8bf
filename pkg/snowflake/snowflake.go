// Package snowflake 解析平台下发的 snowflake 标识符
//
// 平台的所有资源 id（webhook、频道、服务器等）均为 snowflake：
// 64 位整数，高 42 位是相对平台纪元的毫秒时间戳，随后 5 位工作机器、
// 5 位进程、低 12 位自增序列。线格式中以十进制字符串传输。
package snowflake

import (
	"fmt"
	"strconv"
	"time"
)

// Epoch 平台纪元：2015-01-01T00:00:00Z 的 Unix 毫秒时间戳
const Epoch int64 = 1420070400000

// 位布局常量
const (
	// TimestampShift 时间戳右移位数（低22位为机器信息与序列号）
	TimestampShift = 22
	// WorkerIDShift 工作机器ID右移位数
	WorkerIDShift = 17
	// ProcessIDShift 进程ID右移位数
	ProcessIDShift = 12

	// MaxWorkerID 工作机器ID掩码（5位）
	MaxWorkerID int64 = 0x1F
	// MaxProcessID 进程ID掩码（5位）
	MaxProcessID int64 = 0x1F
	// MaxIncrement 序列号掩码（低12位）
	MaxIncrement int64 = 0xFFF
)

// ID 解析后的 snowflake 元信息
type ID struct {
	// Raw 原始64位整数值
	Raw int64
	// Timestamp 生成时间（毫秒精度）
	Timestamp time.Time
	// WorkerID 工作机器ID（0-31）
	WorkerID int64
	// ProcessID 进程ID（0-31）
	ProcessID int64
	// Increment 进程内自增序列号（0-4095）
	Increment int64
}

// Parse 解析十进制字符串形式的 snowflake id，提取完整的元信息
func Parse(id string) (*ID, error) {
	// 步骤1：先解析并验证数值有效性
	// 说明：只解析有效的id，避免返回错误的元信息
	raw, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid snowflake %q: %w", id, err)
	}
	if raw <= 0 {
		return nil, fmt.Errorf("invalid snowflake %q: must be positive", id)
	}

	// 步骤2：位运算提取各部分信息
	// 时间戳：右移22位，加上 Epoch 得到 Unix 毫秒时间戳
	// 机器信息：分别右移后与5位掩码相与
	// 序列号：取低12位
	return &ID{
		Raw:       raw,
		Timestamp: time.UnixMilli((raw >> TimestampShift) + Epoch),
		WorkerID:  (raw >> WorkerIDShift) & MaxWorkerID,
		ProcessID: (raw >> ProcessIDShift) & MaxProcessID,
		Increment: raw & MaxIncrement,
	}, nil
}

// Timestamp 从 snowflake id 中提取生成时间
// 只关心时间时的便捷入口（如资源创建时间展示）
func Timestamp(id string) (time.Time, error) {
	parsed, err := Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Timestamp, nil
}
