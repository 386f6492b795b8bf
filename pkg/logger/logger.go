// Package logger 构建客户端使用的 zap 日志器
//
// 文件输出经 lumberjack 滚动，避免长期运行的发送方日志无限增长。
// 默认（无任何选项）退化为控制台输出。
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options 日志初始化选项
type Options struct {
	// Level 日志级别：debug/info/warn/error，空值等同 info
	Level string
	// Filename 日志文件路径，为空时不写文件
	Filename string
	// MaxSizeMB 单个日志文件大小上限（MB），0 取 lumberjack 默认值
	MaxSizeMB int
	// MaxBackups 保留的历史文件数
	MaxBackups int
	// MaxAgeDays 历史文件保留天数
	MaxAgeDays int
	// Console 是否同时输出到控制台（未配置文件时强制开启）
	Console bool
}

// New 按选项构建 zap 日志器
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	if opts.Filename != "" {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), writer, level))
	}

	// 未配置任何输出时至少保证控制台可见
	if opts.Console || len(cores) == 0 {
		console := zapcore.Lock(os.Stderr)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), console, level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
