package message

import (
	"discord-webhook/pkg/validator"
)

// 平台线格式的组件类型编码
const (
	componentTypeActionRow = 1
	componentTypeButton    = 2
)

// ButtonStyle 按钮样式的线格式编码（1-5）
type ButtonStyle int

// ButtonStyleLink 链接按钮样式，平台保留编码 5
// 链接按钮不可交互，不携带 custom id
const ButtonStyleLink ButtonStyle = 5

// NonLinkButtonStyle 交互按钮（非链接）可用的样式
// 独立类型确保交互按钮无法被赋予链接样式
type NonLinkButtonStyle ButtonStyle

const (
	// StylePrimary 主要按钮（蓝色）
	StylePrimary NonLinkButtonStyle = 1
	// StyleSecondary 次要按钮（灰色）
	StyleSecondary NonLinkButtonStyle = 2
	// StyleSuccess 成功按钮（绿色）
	StyleSuccess NonLinkButtonStyle = 3
	// StyleDanger 危险按钮（红色）
	StyleDanger NonLinkButtonStyle = 4
)

// Component action row 内的交互组件
// 目前平台在 webhook 消息中仅支持按钮
type Component interface {
	validator.Compatible
	// componentType 返回线格式类型编码
	componentType() int
}

// ActionRow 交互组件行，横向容纳至多 5 个组件
type ActionRow struct {
	// Type 线格式类型编码，恒为 1
	Type int `json:"type"`
	// Components 行内组件，按插入顺序
	Components []Component `json:"components"`
}

// newActionRow 创建空 action row
func newActionRow() *ActionRow {
	return &ActionRow{Type: componentTypeActionRow}
}

// AddRegularButton 追加一个交互按钮，通过闭包完成其构建
// 交互按钮必须设置样式与 custom id（由验证阶段强制）
func (r *ActionRow) AddRegularButton(build func(*Button) *Button) *ActionRow {
	r.Components = append(r.Components, build(newButton()))
	return r
}

// AddLinkButton 追加一个链接按钮，通过闭包完成其构建
// 链接按钮的样式固定为链接样式，必须设置 url（由验证阶段强制）
func (r *ActionRow) AddLinkButton(build func(*Button) *Button) *ActionRow {
	style := ButtonStyleLink
	button := newButton()
	button.Style = &style
	r.Components = append(r.Components, build(button))
	return r
}

// CheckCompatibility 检查单个 action row 对平台限制的兼容性
//
// 流程：
//  1. 通知上下文进入新行（重置行内按钮计数）
//  2. 空行立即失败——action row 必须承载至少一个组件
//  3. 按插入顺序检查各组件，首个违例即返回
func (r *ActionRow) CheckCompatibility(ctx *validator.Context) error {
	ctx.BeginActionRow()

	if len(r.Components) == 0 {
		return validator.NewEmptyComposite(validator.ActionRowCount.Name)
	}

	for _, component := range r.Components {
		if err := component.CheckCompatibility(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Emoji 按钮表情
type Emoji struct {
	// Name 表情名（unicode 表情直接填字符本身）
	Name string `json:"name"`
	// ID 自定义表情的 snowflake id，unicode 表情为空
	ID *string `json:"id,omitempty"`
	// Animated 是否为动态表情
	Animated bool `json:"animated,omitempty"`
}

// Button 按钮组件，链接与交互两种变体共用一个线格式结构
// 变体由样式区分：链接样式要求 url，其余样式要求 custom id
type Button struct {
	// Type 线格式类型编码，恒为 2
	Type int `json:"type"`
	// Style 按钮样式，交互按钮必填
	Style *ButtonStyle `json:"style,omitempty"`
	// Label 按钮文字
	Label *string `json:"label,omitempty"`
	// Emoji 按钮表情
	Emoji *Emoji `json:"emoji,omitempty"`
	// CustomID 交互标识，整条消息内全局唯一
	CustomID *string `json:"custom_id,omitempty"`
	// URL 链接按钮的跳转地址
	URL *string `json:"url,omitempty"`
	// Disabled 是否禁用
	Disabled bool `json:"disabled,omitempty"`
}

// newButton 创建空按钮
func newButton() *Button {
	return &Button{Type: componentTypeButton}
}

// SetStyle 设置交互按钮样式
// 类型上排除了链接样式；链接按钮经 AddLinkButton 自动获得链接样式
func (b *Button) SetStyle(style NonLinkButtonStyle) *Button {
	s := ButtonStyle(style)
	b.Style = &s
	return b
}

// SetLabel 设置按钮文字
func (b *Button) SetLabel(label string) *Button {
	b.Label = &label
	return b
}

// SetEmoji 设置按钮表情，自定义表情传 snowflake id，unicode 表情 id 传空串
func (b *Button) SetEmoji(name, id string) *Button {
	emoji := &Emoji{Name: name}
	if id != "" {
		emoji.ID = &id
	}
	b.Emoji = emoji
	return b
}

// SetCustomID 设置交互标识
func (b *Button) SetCustomID(customID string) *Button {
	b.CustomID = &customID
	return b
}

// SetURL 设置链接按钮的跳转地址
func (b *Button) SetURL(url string) *Button {
	b.URL = &url
	return b
}

// SetDisabled 设置禁用标志
func (b *Button) SetDisabled(disabled bool) *Button {
	b.Disabled = disabled
	return b
}

// componentType 实现 Component 接口
func (b *Button) componentType() int {
	return componentTypeButton
}

// CheckCompatibility 检查单个按钮对平台限制的兼容性
//
// 检查顺序：
//  1. 文字长度（如设置了 label）
//  2. 按样式分派：
//     - 未设置样式 → 缺少必填字段 style
//     - 链接样式 → 要求 url；不注册 custom id，不占行内按钮计数
//       （平台不会就链接按钮回传交互事件）
//     - 其他样式 → 要求 custom id，随后注册（长度、唯一性、行内计数）
func (b *Button) CheckCompatibility(ctx *validator.Context) error {
	if b.Label != nil {
		if err := validator.CheckLength(*b.Label, validator.ButtonLabelLen); err != nil {
			return err
		}
	}

	if b.Style == nil {
		return validator.NewMissingRequiredField("style")
	}

	if *b.Style == ButtonStyleLink {
		if b.URL == nil {
			return validator.NewMissingRequiredField("url")
		}
		return nil
	}

	if b.CustomID == nil {
		return validator.NewMissingRequiredField("custom id")
	}
	return ctx.RegisterButton(*b.CustomID)
}
