package message

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-webhook/pkg/validator"
)

func TestButton_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		build     func(*ActionRow) *ActionRow
		wantField string
	}{
		{
			name: "交互按钮未设置样式",
			build: func(r *ActionRow) *ActionRow {
				return r.AddRegularButton(func(b *Button) *Button {
					return b.SetCustomID("0")
				})
			},
			wantField: "style",
		},
		{
			name: "交互按钮未设置custom id",
			build: func(r *ActionRow) *ActionRow {
				return r.AddRegularButton(func(b *Button) *Button {
					return b.SetStyle(StylePrimary)
				})
			},
			wantField: "custom id",
		},
		{
			name: "链接按钮未设置url",
			build: func(r *ActionRow) *ActionRow {
				return r.AddLinkButton(func(b *Button) *Button {
					return b.SetLabel("test")
				})
			},
			wantField: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New().AddActionRow(tt.build)
			verr := assertKind(t, checkMessage(t, m), validator.KindMissingRequiredField)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestButton_LinkButtonWithLabelAndURL(t *testing.T) {
	m := New().AddActionRow(func(r *ActionRow) *ActionRow {
		return r.AddLinkButton(func(b *Button) *Button {
			return b.SetLabel("文档").SetURL("https://example.com/docs")
		})
	})
	assert.NoError(t, checkMessage(t, m))
}

func TestButton_CustomIDLength(t *testing.T) {
	buildWithID := func(id string) *Message {
		return New().AddActionRow(func(r *ActionRow) *ActionRow {
			return r.AddRegularButton(func(b *Button) *Button {
				return b.SetStyle(StylePrimary).SetCustomID(id)
			})
		})
	}

	t.Run("100字符合法", func(t *testing.T) {
		assert.NoError(t, checkMessage(t, buildWithID(strings.Repeat("a", 100))))
	})
	t.Run("101字符超限", func(t *testing.T) {
		verr := assertKind(t, checkMessage(t, buildWithID(strings.Repeat("a", 101))),
			validator.KindLengthExceeded)
		assert.Equal(t, "custom id", verr.Field)
	})
	t.Run("空id不合法（最小长度1）", func(t *testing.T) {
		assertKind(t, checkMessage(t, buildWithID("")), validator.KindLengthExceeded)
	})
}

func TestButton_LabelLength(t *testing.T) {
	buildWithLabel := func(label string) *Message {
		return New().AddActionRow(func(r *ActionRow) *ActionRow {
			return r.AddRegularButton(func(b *Button) *Button {
				return b.SetStyle(StylePrimary).SetCustomID("a").SetLabel(label)
			})
		})
	}

	t.Run("80字符合法", func(t *testing.T) {
		assert.NoError(t, checkMessage(t, buildWithLabel(strings.Repeat("l", 80))))
	})
	t.Run("81字符超限", func(t *testing.T) {
		verr := assertKind(t, checkMessage(t, buildWithLabel(strings.Repeat("l", 81))),
			validator.KindLengthExceeded)
		assert.Equal(t, "label", verr.Field)
	})
}

func TestActionRow_ButtonsPerRow(t *testing.T) {
	buildRow := func(n int) *Message {
		return New().AddActionRow(func(r *ActionRow) *ActionRow {
			for i := 0; i < n; i++ {
				id := strings.Repeat("x", i+1)
				r.AddRegularButton(func(b *Button) *Button {
					return b.SetStyle(StylePrimary).SetCustomID(id)
				})
			}
			return r
		})
	}

	t.Run("5个按钮合法", func(t *testing.T) {
		assert.NoError(t, checkMessage(t, buildRow(5)))
	})
	t.Run("6个按钮超限", func(t *testing.T) {
		verr := assertKind(t, checkMessage(t, buildRow(6)), validator.KindLimitExceeded)
		assert.Equal(t, "button", verr.Field)
	})
}

// TestActionRow_LinkButtonsSkipRowCount 链接按钮不注册 custom id，
// 也不占用行内按钮计数（保持与平台行为一致的不对称性）
func TestActionRow_LinkButtonsSkipRowCount(t *testing.T) {
	m := New().AddActionRow(func(r *ActionRow) *ActionRow {
		for i := 0; i < 5; i++ {
			id := strings.Repeat("y", i+1)
			r.AddRegularButton(func(b *Button) *Button {
				return b.SetStyle(StylePrimary).SetCustomID(id)
			})
		}
		// 行内已有5个交互按钮，再加链接按钮不触发行内计数超限
		return r.AddLinkButton(func(b *Button) *Button {
			return b.SetURL("https://example.com")
		})
	})
	assert.NoError(t, checkMessage(t, m))
}

// TestMessage_WireFormat 线格式回归：字段名与类型编码是对外固定契约
func TestMessage_WireFormat(t *testing.T) {
	m := New().
		SetContent("hi").
		SetUsername("bot").
		AddActionRow(func(r *ActionRow) *ActionRow {
			return r.
				AddRegularButton(func(b *Button) *Button {
					return b.SetStyle(StyleDanger).SetLabel("停止").SetCustomID("stop").
						SetEmoji("🛑", "")
				}).
				AddLinkButton(func(b *Button) *Button {
					return b.SetLabel("日志").SetURL("https://example.com/logs")
				})
		})

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "hi", got["content"])
	assert.Equal(t, "bot", got["username"])
	assert.NotContains(t, got, "avatar_url")

	rows := got["components"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, float64(1), row["type"])

	buttons := row["components"].([]any)
	require.Len(t, buttons, 2)

	regular := buttons[0].(map[string]any)
	assert.Equal(t, float64(2), regular["type"])
	assert.Equal(t, float64(4), regular["style"])
	assert.Equal(t, "stop", regular["custom_id"])
	assert.Equal(t, "🛑", regular["emoji"].(map[string]any)["name"])
	assert.NotContains(t, regular, "url")

	link := buttons[1].(map[string]any)
	assert.Equal(t, float64(5), link["style"])
	assert.Equal(t, "https://example.com/logs", link["url"])
	assert.NotContains(t, link, "custom_id")
}
