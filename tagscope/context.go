package tagscope

import "context"

// contextKey 私有 context 键类型，避免与其他包冲突
type contextKey struct{}

// NewContext 创建挂载了全新空作用域的 context
// 等价于 ContextWithScope(parent, NewScope())。
func NewContext(parent context.Context) context.Context {
	return ContextWithScope(parent, NewScope())
}

// ContextWithScope 将给定作用域挂载到 context 上
// 执行单元边界（中间件、拦截器）用它把作用域注入请求 context。
func ContextWithScope(parent context.Context, scope *Scope) context.Context {
	return context.WithValue(parent, contextKey{}, scope)
}

// FromContext 取出 context 中挂载的作用域
// 没有挂载时返回 nil；nil 作用域上的读取操作均按空集处理。
func FromContext(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	scope, _ := ctx.Value(contextKey{}).(*Scope)
	return scope
}

// Put 向当前执行单元的作用域写入或覆盖一个标签
// context 中没有作用域时返回 ErrNoScope；
// name 或 value 为空时返回包装了 xerrors.ErrInvalidInput 的错误。
func Put(ctx context.Context, name, value string) error {
	return FromContext(ctx).Put(name, value)
}

// Get 返回当前执行单元作用域的标签映射
// 没有作用域时返回独立的空映射。返回值应只读使用（见 Scope.Get）。
func Get(ctx context.Context) map[string]string {
	return FromContext(ctx).Get()
}

// IsEmpty 返回当前执行单元的作用域是否为空
// 没有作用域时视为空。
func IsEmpty(ctx context.Context) bool {
	return FromContext(ctx).IsEmpty()
}

// Clear 整体移除当前执行单元作用域的内容
// 没有作用域时为空操作。
func Clear(ctx context.Context) {
	FromContext(ctx).Clear()
}
