// Package conf 加载并校验 webhook 客户端配置
//
// 配置来源优先级：环境变量（WEBHOOK_ 前缀） > 配置文件 > 默认值。
// 字段格式校验使用 struct tag 声明（go-playground/validator 语法）——
// 配置是静态的字段级规则，与消息验证引擎的跨实体累计检查分属两套机制。
package conf

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config webhook 客户端配置
type Config struct {
	// URL webhook 端点地址（平台签发，含鉴权 token）
	URL string `mapstructure:"url" validate:"required,url"`
	// Timeout 单次 HTTP 请求超时
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// Username 默认显示名，消息未指定时生效
	Username string `mapstructure:"username" validate:"omitempty,max=80"`
	// AvatarURL 默认头像地址
	AvatarURL string `mapstructure:"avatar_url" validate:"omitempty,url"`
	// TTS 默认以语音播报形式发送
	TTS bool `mapstructure:"tts"`
	// Log 日志配置
	Log LogConfig `mapstructure:"log"`
}

// LogConfig 日志配置（zap + lumberjack 滚动文件）
type LogConfig struct {
	// Level 日志级别：debug/info/warn/error
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	// Filename 日志文件路径，为空时仅输出到控制台
	Filename string `mapstructure:"filename"`
	// MaxSizeMB 单个日志文件大小上限（MB）
	MaxSizeMB int `mapstructure:"max_size_mb" validate:"gte=0"`
	// MaxBackups 保留的历史文件数
	MaxBackups int `mapstructure:"max_backups" validate:"gte=0"`
	// MaxAgeDays 历史文件保留天数
	MaxAgeDays int `mapstructure:"max_age_days" validate:"gte=0"`
	// Console 是否同时输出到控制台
	Console bool `mapstructure:"console"`
}

var (
	// structValidator 配置校验器，全局单例
	structValidator *validator.Validate
	once            sync.Once
)

// validate 获取配置校验器实例（单例模式，线程安全）
func validate() *validator.Validate {
	once.Do(func() {
		structValidator = validator.New()
	})
	return structValidator
}

// Load 从配置文件加载并校验配置
// 环境变量可覆盖任意字段，如 WEBHOOK_URL、WEBHOOK_LOG_LEVEL
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetEnvPrefix("WEBHOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置字段格式
// 手工构造 Config 的调用方（不经 Load）也应在使用前调用
func Validate(cfg *Config) error {
	if err := validate().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
