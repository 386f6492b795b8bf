// Package message 定义 webhook 消息的实体树与流式构建 API
//
// 实体自身只是数据载体，平台限制的检查全部由 CheckCompatibility
// 在发送前一次性完成（见 pkg/validator）。字段的 JSON 标签即平台
// execute-webhook 接口的线格式，属于对外固定契约，不可改动。
package message

import (
	"discord-webhook/pkg/validator"
)

// Message webhook 消息根实体
//
// 生命周期：构建期通过流式 setter 填充 → 发送前只读验证一次 →
// 验证通过后序列化为线格式。验证开始后不再允许变更。
type Message struct {
	// Content 消息文本内容
	Content *string `json:"content,omitempty"`
	// Username 覆盖 webhook 默认显示名
	Username *string `json:"username,omitempty"`
	// AvatarURL 覆盖 webhook 默认头像
	AvatarURL *string `json:"avatar_url,omitempty"`
	// TTS 是否以语音播报形式发送
	TTS bool `json:"tts,omitempty"`
	// Embeds 富文本卡片列表
	Embeds []*Embed `json:"embeds,omitempty"`
	// ActionRows 交互组件行列表（线格式字段名为 components）
	ActionRows []*ActionRow `json:"components,omitempty"`
}

// New 创建空消息
func New() *Message {
	return &Message{}
}

// SetContent 设置消息文本内容
func (m *Message) SetContent(content string) *Message {
	m.Content = &content
	return m
}

// SetUsername 覆盖 webhook 显示名
func (m *Message) SetUsername(username string) *Message {
	m.Username = &username
	return m
}

// SetAvatarURL 覆盖 webhook 头像
func (m *Message) SetAvatarURL(avatarURL string) *Message {
	m.AvatarURL = &avatarURL
	return m
}

// SetTTS 设置语音播报标志
func (m *Message) SetTTS(tts bool) *Message {
	m.TTS = tts
	return m
}

// AddEmbed 追加一个 embed，通过闭包完成其构建
//
// 使用示例：
//
//	msg.AddEmbed(func(e *message.Embed) *message.Embed {
//	    return e.SetTitle("标题").SetDescription("描述")
//	})
func (m *Message) AddEmbed(build func(*Embed) *Embed) *Message {
	m.Embeds = append(m.Embeds, build(NewEmbed()))
	return m
}

// AddActionRow 追加一个 action row，通过闭包完成其构建
func (m *Message) AddActionRow(build func(*ActionRow) *ActionRow) *Message {
	m.ActionRows = append(m.ActionRows, build(newActionRow()))
	return m
}

// CheckCompatibility 检查整条消息对平台限制的兼容性
//
// 检查顺序（文档顺序，首个违例即返回）：
//  1. action row 数量（下行前快速失败）
//  2. 所有 embed，按插入顺序
//  3. 所有 action row，按插入顺序
func (m *Message) CheckCompatibility(ctx *validator.Context) error {
	if !validator.ActionRowCount.Contains(len(m.ActionRows)) {
		return validator.NewLimitExceeded(len(m.ActionRows), validator.ActionRowCount)
	}

	for _, embed := range m.Embeds {
		if err := embed.CheckCompatibility(ctx); err != nil {
			return err
		}
	}

	for _, row := range m.ActionRows {
		if err := row.CheckCompatibility(ctx); err != nil {
			return err
		}
	}

	return nil
}
