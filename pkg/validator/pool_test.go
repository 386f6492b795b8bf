package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextPool_AcquireReturnsCleanContext(t *testing.T) {
	// 弄脏一个上下文再归还
	ctx := acquireContext()
	require.NoError(t, ctx.RegisterCustomID("dirty"))
	require.NoError(t, ctx.RegisterEmbedChars(5000))
	releaseContext(ctx)

	// 再次获取时必须是干净状态（无论是否命中池）
	ctx2 := acquireContext()
	defer releaseContext(ctx2)
	assert.Equal(t, 0, ctx2.EmbedChars())
	assert.NoError(t, ctx2.RegisterCustomID("dirty"))
}

func TestContextPool_ReleaseNil(t *testing.T) {
	// 归还 nil 不应 panic
	assert.NotPanics(t, func() { releaseContext(nil) })
}

// fakeCompatible 测试用实体，记录收到的上下文
type fakeCompatible struct {
	gotCtx *Context
	err    error
}

func (f *fakeCompatible) CheckCompatibility(ctx *Context) error {
	f.gotCtx = ctx
	return f.err
}

func TestValidate_FreshContextPerCall(t *testing.T) {
	f := &fakeCompatible{}
	require.NoError(t, Validate(f))
	require.NotNil(t, f.gotCtx)
	assert.Equal(t, 0, f.gotCtx.EmbedChars())
}

func TestValidate_PropagatesFirstError(t *testing.T) {
	want := NewEmptyComposite("action row")
	f := &fakeCompatible{err: want}

	err := Validate(f)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindEmptyComposite, verr.Kind)
}

func TestValidate_NilTarget(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNilTarget)
}
