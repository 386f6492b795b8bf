package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_RegisterCustomID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantKind ErrorKind
	}{
		{"合法的短id", "0", 0},
		{"恰好100字符", strings.Repeat("a", 100), 0},
		{"超长101字符", strings.Repeat("a", 101), KindLengthExceeded},
		{"空id（最小长度为1）", "", KindLengthExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext()
			err := ctx.RegisterCustomID(tt.id)
			if tt.wantKind == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestContext_RegisterCustomID_Duplicate(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.RegisterCustomID("0"))

	err := ctx.RegisterCustomID("0")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindDuplicateIdentifier, verr.Kind)
	// 错误消息必须点名冲突的 id
	assert.Contains(t, err.Error(), `"0"`)
	assert.Contains(t, strings.ToLower(err.Error()), "twice")

	// 不同的 id 仍可注册
	assert.NoError(t, ctx.RegisterCustomID("1"))
}

func TestContext_RegisterCustomID_UnicodeLength(t *testing.T) {
	// 长度按字符计而非字节计：100个中文字符合法
	ctx := NewContext()
	assert.NoError(t, ctx.RegisterCustomID(strings.Repeat("按", 100)))
}

func TestContext_RegisterButton_RowLimit(t *testing.T) {
	ctx := NewContext()
	ctx.BeginActionRow()

	// 前5个按钮全部成功
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, ctx.RegisterButton(id))
	}

	// 第6个按钮超出单行限制
	err := ctx.RegisterButton("f")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindLimitExceeded, verr.Kind)
	assert.Equal(t, "button", verr.Field)
}

func TestContext_BeginActionRow_ResetsRowCounter(t *testing.T) {
	ctx := NewContext()

	// 第一行放满5个按钮
	ctx.BeginActionRow()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, ctx.RegisterButton(id))
	}

	// 进入新行后计数重置，可以继续放按钮
	ctx.BeginActionRow()
	assert.NoError(t, ctx.RegisterButton("f"))

	// 但 custom id 去重仍然跨行生效
	err := ctx.RegisterButton("a")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindDuplicateIdentifier, verr.Kind)
}

func TestContext_RegisterEmbedChars(t *testing.T) {
	ctx := NewContext()

	require.NoError(t, ctx.RegisterEmbedChars(4000))
	assert.Equal(t, 4000, ctx.EmbedChars())

	// 累计达到上界仍然合法
	require.NoError(t, ctx.RegisterEmbedChars(2000))
	assert.Equal(t, 6000, ctx.EmbedChars())

	// 再加1字符超出全消息预算
	err := ctx.RegisterEmbedChars(1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindLimitExceeded, verr.Kind)
	assert.Contains(t, err.Error(), "character count across all embeds")
}

// TestContext_RegisterEmbedChars_NoRollback 验证失败不回滚：
// 超限后计数器保持累加值，失败过的上下文不可复用
func TestContext_RegisterEmbedChars_NoRollback(t *testing.T) {
	ctx := NewContext()
	assert.Error(t, ctx.RegisterEmbedChars(7000))
	assert.Equal(t, 7000, ctx.EmbedChars())
}

func TestContext_Reset(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.RegisterCustomID("x"))
	require.NoError(t, ctx.RegisterEmbedChars(5000))
	ctx.BeginActionRow()
	require.NoError(t, ctx.RegisterButton("y"))

	ctx.Reset()

	// 重置后所有状态清零：id 可重新注册，字符总量归零
	assert.NoError(t, ctx.RegisterCustomID("x"))
	assert.Equal(t, 0, ctx.EmbedChars())
	assert.NoError(t, ctx.RegisterEmbedChars(6000))
}
