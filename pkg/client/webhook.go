package client

import (
	"time"

	"discord-webhook/pkg/snowflake"
)

// Webhook 平台返回的 webhook 元信息（GET webhook URL 的响应体）
type Webhook struct {
	// ID webhook 的 snowflake id
	ID string `json:"id"`
	// Type webhook 类型（1 为常规 incoming webhook）
	Type int8 `json:"type"`
	// GuildID 所属服务器 id
	GuildID string `json:"guild_id"`
	// ChannelID 所属频道 id
	ChannelID string `json:"channel_id"`
	// Name 默认显示名
	Name *string `json:"name"`
	// Avatar 默认头像 hash
	Avatar *string `json:"avatar"`
	// Token webhook 令牌（已包含在 URL 中）
	Token string `json:"token"`
	// ApplicationID 创建该 webhook 的应用 id
	ApplicationID *string `json:"application_id"`
}

// CreatedAt 从 webhook 的 snowflake id 推算创建时间
func (w *Webhook) CreatedAt() (time.Time, error) {
	return snowflake.Timestamp(w.ID)
}
