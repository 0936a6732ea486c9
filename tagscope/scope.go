// Package tagscope 提供执行单元级别的环境标签存储。
// 横切的维度信息（如租户 ID）可以在请求处理早期写入作用域，
// 在发射指标处统一读出，避免把参数逐层透传到每个调用点。
//
// 架构说明：
//   - 属于基础层（L0），仅依赖 xerrors
//   - 原始设计中的线程本地存储被重构为显式的 context 传递：
//     Scope 由执行单元边界（HTTP 中间件、gRPC 拦截器）创建并挂载到
//     context.Context 上，随调用链显式流动
//   - 一个 Scope 只属于一个执行单元，并发的执行单元之间互不可见，
//     因此 Scope 内部不加锁；同一执行单元内自行派生 goroutine 并
//     并发读写同一 Scope 时，由调用方负责避免竞争
//   - 执行单元可能被复用（协程池、连接复用）时，必须在单元边界调用
//     Clear，防止标签泄漏到后续不相关的任务中。本包提供的中间件和
//     拦截器已经负责这一清理
//
// 快速开始：
//
//	ctx := tagscope.NewContext(context.Background())
//	defer tagscope.Clear(ctx)
//
//	_ = tagscope.Put(ctx, "tenant", "tenant-id")
//
//	// 在发射指标处合并：
//	name := metricname.Build("my", "metric").TaggedFromContext(ctx)
package tagscope

import "github.com/ceyewan/metrictag/xerrors"

// ErrNoScope 表示 context 中没有挂载标签作用域。
// 只有写入操作会返回该错误；读取操作对缺失的作用域按空集处理。
var ErrNoScope = xerrors.New("no tag scope in context")

// Scope 单个执行单元的标签存储
// 内部 map 延迟初始化：首次写入或读取时才创建。
// 零值可用，NewScope 仅为可读性提供。
type Scope struct {
	tags map[string]string
}

// NewScope 创建一个空的标签作用域
// 通常由执行单元边界（中间件、拦截器）调用，再通过
// ContextWithScope 挂载到 context 上。
func NewScope() *Scope {
	return &Scope{}
}

// Put 写入或覆盖一个标签
// name 或 value 为空时返回包装了 xerrors.ErrInvalidInput 的错误；
// 作用域为 nil 时返回 ErrNoScope。
// 只影响当前执行单元的作用域。
func (s *Scope) Put(name, value string) error {
	if s == nil {
		return ErrNoScope
	}
	if name == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "tag name missing")
	}
	if value == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "tag value missing")
	}

	if s.tags == nil {
		s.tags = make(map[string]string)
	}
	s.tags[name] = value
	return nil
}

// Get 返回作用域当前的标签映射，不存在时延迟创建空映射
// 返回的是存活的内部映射而非副本：调用方应只读使用；
// 同一执行单元在遍历期间继续 Put 属于调用方需要避免的用法。
// nil 作用域返回一个独立的空映射。
func (s *Scope) Get() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	if s.tags == nil {
		s.tags = make(map[string]string)
	}
	return s.tags
}

// IsEmpty 返回作用域当前是否没有任何标签
// nil 作用域视为空。
func (s *Scope) IsEmpty() bool {
	return s == nil || len(s.tags) == 0
}

// Clear 整体移除作用域内容
// 之后的 Get/Put 从全新的空映射开始。执行单元可能被复用时，
// 必须在单元结束处调用，防止残留标签泄漏进后续任务。
// nil 作用域上为空操作。
func (s *Scope) Clear() {
	if s == nil {
		return
	}
	s.tags = nil
}
