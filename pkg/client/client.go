// Package client 实现 webhook 消息的发送客户端
//
// 发送流程：构建消息 → 本地兼容性验证 → 序列化 → HTTP POST。
// 验证与传输永不交错：只有验证完全通过的消息才会产生网络请求。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"discord-webhook/pkg/conf"
	"discord-webhook/pkg/logger"
	"discord-webhook/pkg/message"
	"discord-webhook/pkg/validator"
)

// defaultTimeout 默认的单次请求超时
const defaultTimeout = 10 * time.Second

// maxErrorBodySize 错误响应体的读取上限，防止异常响应占用过多内存
const maxErrorBodySize = 64 << 10

// WebhookClient webhook 发送客户端
//
// 并发说明：客户端本身无共享可变状态，可跨协程复用；
// 每次发送独立创建验证上下文，验证引擎内部无需加锁
type WebhookClient struct {
	url   string
	httpc *http.Client
	log   *zap.Logger

	// 来自配置的身份默认值，消息未显式设置时生效
	defaultUsername  string
	defaultAvatarURL string
	defaultTTS       bool
}

// Option 客户端可选配置
type Option func(*WebhookClient)

// WithHTTPClient 使用自定义 HTTP 客户端（代理、自定义 TLS 等场景）
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *WebhookClient) {
		c.httpc = httpc
	}
}

// WithTimeout 设置单次请求超时
func WithTimeout(timeout time.Duration) Option {
	return func(c *WebhookClient) {
		c.httpc.Timeout = timeout
	}
}

// WithLogger 注入日志器（默认为静默的 nop 日志器）
func WithLogger(log *zap.Logger) Option {
	return func(c *WebhookClient) {
		c.log = log
	}
}

// WithDefaultIdentity 设置默认显示名与头像，消息未指定时生效
func WithDefaultIdentity(username, avatarURL string) Option {
	return func(c *WebhookClient) {
		c.defaultUsername = username
		c.defaultAvatarURL = avatarURL
	}
}

// New 创建 webhook 客户端
// 参数：
//   - url: 平台签发的 webhook 地址（已含鉴权 token，无需额外认证）
func New(url string, opts ...Option) *WebhookClient {
	c := &WebhookClient{
		url:   url,
		httpc: &http.Client{Timeout: defaultTimeout},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig 从配置创建客户端（含日志器与身份默认值）
func NewFromConfig(cfg *conf.Config, opts ...Option) (*WebhookClient, error) {
	log, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Filename:   cfg.Log.Filename,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Console:    cfg.Log.Console,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	base := []Option{
		WithTimeout(cfg.Timeout),
		WithLogger(log),
		WithDefaultIdentity(cfg.Username, cfg.AvatarURL),
	}
	c := New(cfg.URL, append(base, opts...)...)
	c.defaultTTS = cfg.TTS
	return c, nil
}

// Send 构建并发送一条消息
//
// 流程：
//  1. 通过闭包完成消息构建（流式 API）
//  2. 应用配置中的身份默认值
//  3. 全新上下文执行兼容性验证；失败立即返回，不发起网络请求
//  4. 验证通过后序列化并 POST
//
// 使用示例：
//
//	err := c.Send(ctx, func(m *message.Message) *message.Message {
//	    return m.SetContent("content").SetUsername("username")
//	})
func (c *WebhookClient) Send(ctx context.Context, build func(*message.Message) *message.Message) error {
	msg := build(message.New())
	c.applyDefaults(msg)

	if err := validator.Validate(msg); err != nil {
		c.log.Debug("message rejected by compatibility check", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	return c.SendMessage(ctx, msg)
}

// SendMessage 发送一条已构建完成的消息（不做验证，供 Send 或已自行验证的调用方使用）
// 平台对 execute-webhook 成功返回 204 No Content；
// 任何非 2xx 状态都作为 APIError 返回，携带平台的错误响应体
func (c *WebhookClient) SendMessage(ctx context.Context, msg *message.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("execute webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.Debug("webhook message sent",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(body)))
		return nil
	}

	errBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if readErr != nil {
		errBody = []byte(fmt.Sprintf("error reading response body: %s", readErr))
	}
	c.log.Debug("webhook message rejected by platform",
		zap.Int("status", resp.StatusCode))
	return &APIError{StatusCode: resp.StatusCode, Body: string(errBody)}
}

// GetInformation 查询 webhook 的元信息（名称、所属频道等）
func (c *WebhookClient) GetInformation(ctx context.Context) (*Webhook, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get webhook information: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	webhook := &Webhook{}
	if err := json.NewDecoder(resp.Body).Decode(webhook); err != nil {
		return nil, fmt.Errorf("decode webhook information: %w", err)
	}
	return webhook, nil
}

// applyDefaults 将配置中的身份默认值应用到未显式设置的消息字段
func (c *WebhookClient) applyDefaults(msg *message.Message) {
	if msg.Username == nil && c.defaultUsername != "" {
		msg.SetUsername(c.defaultUsername)
	}
	if msg.AvatarURL == nil && c.defaultAvatarURL != "" {
		msg.SetAvatarURL(c.defaultAvatarURL)
	}
	if c.defaultTTS {
		msg.SetTTS(true)
	}
}
