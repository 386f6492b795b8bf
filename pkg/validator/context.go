package validator

// Context 验证上下文，单次验证过程中的全局状态累加器
//
// 设计说明：
// - 每次验证创建（或从对象池获取）一个全新实例，验证结束后即废弃
// - 跨实体状态集中于此：custom id 去重集合、embed 字符总量、当前行按钮数
// - 上下文以显式参数形式贯穿整棵实体树的检查调用，不做共享所有权
//
// 注意事项：
// - 非线程安全：一次验证严格单协程执行，无需加锁
// - 验证失败后计数器不回滚，失败过的上下文严禁复用（对象池归还时整体重置）
type Context struct {
	// seenCustomIDs 本条消息内已注册的 custom id 集合
	// 去重范围是整条消息（跨所有 action row），而非单行
	seenCustomIDs map[string]struct{}
	// embedChars 所有 embed 的累计字符数
	embedChars int
	// rowButtons 当前 action row 内已注册的按钮数
	// 每进入一个新的 action row 时重置为 0
	rowButtons int
}

// NewContext 创建空的验证上下文
func NewContext() *Context {
	return &Context{
		seenCustomIDs: make(map[string]struct{}, 8),
	}
}

// RegisterCustomID 注册一个 custom id
//
// 检查顺序：
//  1. 长度检查：不满足 CustomIDLen 时返回 LengthExceeded
//  2. 唯一性检查：已存在时返回 DuplicateIdentifier（消息中带上冲突的 id）
//
// 注册成功后，该 id 在本次验证的剩余过程中保持占用
func (c *Context) RegisterCustomID(id string) error {
	if err := CheckLength(id, CustomIDLen); err != nil {
		return err
	}
	if _, exists := c.seenCustomIDs[id]; exists {
		return NewDuplicateIdentifier(CustomIDLen.Name, id)
	}
	c.seenCustomIDs[id] = struct{}{}
	return nil
}

// RegisterButton 注册一个带 custom id 的按钮
// 先注册 custom id（长度 + 唯一性），再递增当前行按钮计数并检查行内数量限制
// 注意：链接按钮不携带 custom id，不经过此注册，也不占用行内计数
func (c *Context) RegisterButton(id string) error {
	if err := c.RegisterCustomID(id); err != nil {
		return err
	}
	c.rowButtons++
	if !ButtonsPerRow.Contains(c.rowButtons) {
		return NewLimitExceeded(c.rowButtons, ButtonsPerRow)
	}
	return nil
}

// BeginActionRow 进入一个新的 action row
// 重置行内按钮计数（按钮数量限制按行计，custom id 唯一性仍按消息计）
// 每个 action row 验证其组件之前必须恰好调用一次
func (c *Context) BeginActionRow() {
	c.rowButtons = 0
}

// RegisterEmbedChars 累加一个 embed 的字符数并检查全消息总量
//
// 注意：先累加后检查——即使该 embed 的其他检查随后失败，
// 其字符数也已计入总量且不回滚，保证计数器反映所有见过的 embed
func (c *Context) RegisterEmbedChars(n int) error {
	c.embedChars += n
	if !EmbedTotalChars.Contains(c.embedChars) {
		return NewLimitExceeded(c.embedChars, EmbedTotalChars)
	}
	return nil
}

// EmbedChars 返回当前累计的 embed 字符数（用于观测与测试）
func (c *Context) EmbedChars() int {
	return c.embedChars
}

// Reset 重置上下文到初始状态，供对象池复用
func (c *Context) Reset() {
	clear(c.seenCustomIDs)
	c.embedChars = 0
	c.rowButtons = 0
}
