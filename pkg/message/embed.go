package message

import (
	"unicode/utf8"

	"discord-webhook/pkg/validator"
)

// embedTypeRich 平台为 webhook 消息固定的 embed 类型
const embedTypeRich = "rich"

// Embed 富文本卡片
type Embed struct {
	// Title 标题
	Title *string `json:"title,omitempty"`
	// Type embed 类型，webhook 消息恒为 "rich"
	Type string `json:"type,omitempty"`
	// Description 描述
	Description *string `json:"description,omitempty"`
	// URL 标题跳转链接
	URL *string `json:"url,omitempty"`
	// Timestamp ISO8601 时间戳
	Timestamp *string `json:"timestamp,omitempty"`
	// Color 左侧色条颜色（十进制色值）
	Color *int32 `json:"color,omitempty"`
	// Footer 页脚
	Footer *EmbedFooter `json:"footer,omitempty"`
	// Image 大图
	Image *EmbedImage `json:"image,omitempty"`
	// Thumbnail 缩略图
	Thumbnail *EmbedThumbnail `json:"thumbnail,omitempty"`
	// Video 视频
	Video *EmbedVideo `json:"video,omitempty"`
	// Author 作者栏
	Author *EmbedAuthor `json:"author,omitempty"`
	// Fields 字段列表（每个 embed 至多 25 个）
	Fields []*EmbedField `json:"fields,omitempty"`
}

// EmbedField embed 字段（名值对）
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter embed 页脚
type EmbedFooter struct {
	Text         string  `json:"text"`
	IconURL      *string `json:"icon_url,omitempty"`
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
}

// EmbedAuthor embed 作者栏
type EmbedAuthor struct {
	Name         string  `json:"name"`
	URL          *string `json:"url,omitempty"`
	IconURL      *string `json:"icon_url,omitempty"`
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
}

// EmbedImage embed 大图
type EmbedImage struct {
	URL      string  `json:"url"`
	ProxyURL *string `json:"proxy_url,omitempty"`
	Height   *int32  `json:"height,omitempty"`
	Width    *int32  `json:"width,omitempty"`
}

// EmbedThumbnail embed 缩略图
type EmbedThumbnail struct {
	URL      string  `json:"url"`
	ProxyURL *string `json:"proxy_url,omitempty"`
	Height   *int32  `json:"height,omitempty"`
	Width    *int32  `json:"width,omitempty"`
}

// EmbedVideo embed 视频
type EmbedVideo struct {
	URL    string `json:"url"`
	Height *int32 `json:"height,omitempty"`
	Width  *int32 `json:"width,omitempty"`
}

// NewEmbed 创建空 embed（类型固定为 rich）
func NewEmbed() *Embed {
	return &Embed{Type: embedTypeRich}
}

// SetTitle 设置标题
func (e *Embed) SetTitle(title string) *Embed {
	e.Title = &title
	return e
}

// SetDescription 设置描述
func (e *Embed) SetDescription(description string) *Embed {
	e.Description = &description
	return e
}

// SetURL 设置标题跳转链接
func (e *Embed) SetURL(url string) *Embed {
	e.URL = &url
	return e
}

// SetTimestamp 设置 ISO8601 时间戳
func (e *Embed) SetTimestamp(timestamp string) *Embed {
	e.Timestamp = &timestamp
	return e
}

// SetColor 设置色条颜色（十进制色值）
func (e *Embed) SetColor(color int32) *Embed {
	e.Color = &color
	return e
}

// SetFooter 设置页脚，iconURL 为空串时不携带图标
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	footer := &EmbedFooter{Text: text}
	if iconURL != "" {
		footer.IconURL = &iconURL
	}
	e.Footer = footer
	return e
}

// SetAuthor 设置作者栏，url/iconURL 为空串时不携带
func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	author := &EmbedAuthor{Name: name}
	if url != "" {
		author.URL = &url
	}
	if iconURL != "" {
		author.IconURL = &iconURL
	}
	e.Author = author
	return e
}

// SetImage 设置大图
func (e *Embed) SetImage(url string) *Embed {
	e.Image = &EmbedImage{URL: url}
	return e
}

// SetThumbnail 设置缩略图
func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = &EmbedThumbnail{URL: url}
	return e
}

// SetVideo 设置视频
func (e *Embed) SetVideo(url string) *Embed {
	e.Video = &EmbedVideo{URL: url}
	return e
}

// AddField 追加一个字段
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, &EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// charCount 统计计入全消息预算的字符数
// 计入：title、description、footer.text、author.name、所有 field 的 name+value
func (e *Embed) charCount() int {
	n := runeLen(e.Title) + runeLen(e.Description)
	if e.Footer != nil {
		n += utf8.RuneCountInString(e.Footer.Text)
	}
	if e.Author != nil {
		n += utf8.RuneCountInString(e.Author.Name)
	}
	for _, field := range e.Fields {
		n += utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)
	}
	return n
}

// CheckCompatibility 检查单个 embed 对平台限制的兼容性
//
// 检查顺序（首个违例即返回）：
//  1. 字符数记账（必须最先执行——即使本 embed 随后检查失败，
//     其字符数也要计入全消息总量）
//  2. 字段数量、标题长度、描述长度
//  3. 作者栏、页脚（如存在）
//  4. 所有字段，按插入顺序
func (e *Embed) CheckCompatibility(ctx *validator.Context) error {
	if err := ctx.RegisterEmbedChars(e.charCount()); err != nil {
		return err
	}

	if !validator.FieldsPerEmbed.Contains(len(e.Fields)) {
		return validator.NewLimitExceeded(len(e.Fields), validator.FieldsPerEmbed)
	}
	if e.Title != nil {
		if err := validator.CheckLength(*e.Title, validator.EmbedTitleLen); err != nil {
			return err
		}
	}
	if e.Description != nil {
		if err := validator.CheckLength(*e.Description, validator.EmbedDescriptionLen); err != nil {
			return err
		}
	}

	if e.Author != nil {
		if err := e.Author.CheckCompatibility(ctx); err != nil {
			return err
		}
	}
	if e.Footer != nil {
		if err := e.Footer.CheckCompatibility(ctx); err != nil {
			return err
		}
	}

	for _, field := range e.Fields {
		if err := field.CheckCompatibility(ctx); err != nil {
			return err
		}
	}

	return nil
}

// CheckCompatibility 作者名长度检查（纯本地检查，不触碰上下文）
func (a *EmbedAuthor) CheckCompatibility(_ *validator.Context) error {
	return validator.CheckLength(a.Name, validator.EmbedAuthorNameLen)
}

// CheckCompatibility 页脚文字长度检查（纯本地检查，不触碰上下文）
func (f *EmbedFooter) CheckCompatibility(_ *validator.Context) error {
	return validator.CheckLength(f.Text, validator.EmbedFooterTextLen)
}

// CheckCompatibility 字段名值长度检查（纯本地检查，不触碰上下文）
func (f *EmbedField) CheckCompatibility(_ *validator.Context) error {
	if err := validator.CheckLength(f.Name, validator.EmbedFieldNameLen); err != nil {
		return err
	}
	return validator.CheckLength(f.Value, validator.EmbedFieldValueLen)
}

// runeLen 可选字符串的字符数，nil 计 0
func runeLen(s *string) int {
	if s == nil {
		return 0
	}
	return utf8.RuneCountInString(*s)
}
