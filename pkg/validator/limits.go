package validator

import (
	"unicode/utf8"

	"discord-webhook/pkg/types"
)

// 平台文档中的消息限制，每条限制以闭区间形式声明一次
// 参考：https://discord.com/developers/docs/resources/channel#embed-object-embed-limits
// 以及 https://discord.com/developers/docs/interactions/message-components
var (
	// ActionRowCount 单条消息内 action row 数量限制
	ActionRowCount = types.NewInterval("action row", 0, 5)
	// ButtonsPerRow 单个 action row 内按钮数量限制
	ButtonsPerRow = types.NewInterval("button", 0, 5)
	// ButtonLabelLen 按钮文字长度限制
	ButtonLabelLen = types.NewInterval("label", 0, 80)
	// CustomIDLen custom id 长度限制（至少 1 个字符）
	CustomIDLen = types.NewInterval("custom id", 1, 100)
	// EmbedTitleLen embed 标题长度限制
	EmbedTitleLen = types.NewInterval("title", 0, 256)
	// EmbedDescriptionLen embed 描述长度限制
	EmbedDescriptionLen = types.NewInterval("description", 0, 4096)
	// EmbedFooterTextLen embed 页脚文字长度限制
	EmbedFooterTextLen = types.NewInterval("footer text", 0, 2048)
	// EmbedAuthorNameLen embed 作者名长度限制
	EmbedAuthorNameLen = types.NewInterval("author name", 0, 256)
	// EmbedFieldNameLen embed 字段名长度限制
	EmbedFieldNameLen = types.NewInterval("field name", 0, 256)
	// EmbedFieldValueLen embed 字段值长度限制
	EmbedFieldValueLen = types.NewInterval("field value", 0, 1024)
	// FieldsPerEmbed 单个 embed 内字段数量限制
	FieldsPerEmbed = types.NewInterval("field", 0, 25)
	// EmbedTotalChars 全消息所有 embed 的字符总量限制
	// 计入：title、description、footer.text、author.name、所有 field 的 name+value
	EmbedTotalChars = types.NewInterval("character count across all embeds", 0, 6000)
)

// CheckLength 检查字符串长度是否满足约束
// 长度按 Unicode 字符数统计（平台限制以字符计，而非字节）
// 返回：超限时为 LengthExceeded 错误，否则为 nil
func CheckLength(value string, bound types.Interval[int]) error {
	n := utf8.RuneCountInString(value)
	if !bound.Contains(n) {
		return NewLengthExceeded(n, bound)
	}
	return nil
}
