// Package metricname 提供携带语义标签的指标名称。
// 替代传统的纯点分隔字符串命名方式，同时保持与只认识扁平名称的
// 指标后端兼容：标签会被无损、确定性地编码进旧格式字符串。
//
// 架构说明：
//   - 属于基础层（L0），仅依赖 tagscope 与 xerrors
//   - Name 是不可变值类型，所有"修改"操作返回新实例
//   - 标签在构造时即按键升序排序，相等性与编码结果与输入顺序无关
//   - 不与任何指标后端通信，也不管理指标生命周期
//
// 快速开始：
//
//	name := metricname.Build("my", "metric").Tagged(metricname.Tags{
//	    "tenant": "tenant-id",
//	})
//
//	// 输出 "my.metric[tenant:tenant-id]"
//	fmt.Println(name.LegacyFormat())
//
// 配合 tagscope 使用（环境标签随 context 传播）：
//
//	ctx = tagscope.NewContext(ctx)
//	_ = tagscope.Put(ctx, "tenant", "tenant-id")
//
//	// context 中的标签覆盖同名已有标签
//	name = metricname.Build("my", "metric").TaggedFromContext(ctx)
package metricname

import (
	"context"
	"strings"

	"github.com/ceyewan/metrictag/tagscope"
	"github.com/ceyewan/metrictag/xerrors"
)

// separator 路径段之间的分隔符
const separator = "."

// empty 空名称的共享常量
var empty = Name{path: "", tags: emptyTags}

// Name 携带标签的指标名称
// 由点分隔的路径和按键升序排序的标签集合组成。
//
// Name 是不可变值：构造之后不会被修改，所有派生操作（Resolve、
// Tagged、Append 等）都返回新实例。多个执行单元并发读取同一个
// Name 无需任何同步。
type Name struct {
	path string
	tags []Tag
}

// Empty 返回空的指标名称
func Empty() Name {
	return empty
}

// Build 用给定的路径段构造指标名称
// 等价于 Empty().Resolve(parts...)。
//
// 使用示例：
//
//	metricname.Build("http", "requests") // 路径为 "http.requests"
func Build(parts ...string) Name {
	return empty.Resolve(parts...)
}

// New 用路径和标签构造指标名称
// tags 可以为 nil 或空；存储的是按键升序排序的不可变副本，
// 因此相同键值内容的 tags 无论遍历顺序如何，结果相等。
func New(path string, tags Tags) Name {
	return Name{path: path, tags: sortedTags(tags)}
}

// Path 返回点分隔的路径部分，可能为空字符串
func (n Name) Path() string {
	return n.path
}

// Tags 返回标签集合的副本
// 返回的 map 可被调用方自由修改，不影响原名称。
func (n Name) Tags() Tags {
	if len(n.tags) == 0 {
		return Tags{}
	}
	tags := make(Tags, len(n.tags))
	for _, t := range n.tags {
		tags[t.Key] = t.Value
	}
	return tags
}

// SortedTags 返回按键升序排序的标签切片副本
// 这是标签的规范遍历顺序，也是旧格式编码使用的顺序。
func (n Name) SortedTags() []Tag {
	sorted := make([]Tag, len(n.tags))
	copy(sorted, n.tags)
	return sorted
}

// Resolve 在当前路径后追加路径段，返回新名称
// 新名称继承当前名称的标签。
//
// 边界语义：
//   - parts 为空时原样返回当前实例，不产生任何分配
//   - 空字符串段被跳过，不会产生连续或首尾的分隔符
//   - 仅含空白字符的段会被保留
func (n Name) Resolve(parts ...string) Name {
	if len(parts) == 0 {
		return n
	}

	segments := make([]string, 0, len(parts)+1)
	if n.path != "" {
		segments = append(segments, n.path)
	}
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return Name{path: strings.Join(segments, separator), tags: n.tags}
}

// Tagged 叠加合并标签，返回新名称
// add 中的值覆盖当前名称中的同名标签；仅存在于当前名称中的标签保留。
// 结果标签按键升序重新排序。
//
// 使用示例：
//
//	n := metricname.Build("m").Tagged(metricname.Tags{"a": "1"})
//	n = n.Tagged(metricname.Tags{"a": "2", "b": "3"})
//	// 标签为 {a:2, b:3}
func (n Name) Tagged(add Tags) Name {
	if len(add) == 0 {
		return n
	}

	merged := make(Tags, len(n.tags)+len(add))
	for _, t := range n.tags {
		merged[t.Key] = t.Value
	}
	for k, v := range add {
		merged[k] = v
	}
	return Name{path: n.path, tags: sortedTags(merged)}
}

// TaggedPairs 以变长 key,value,... 列表的形式叠加合并标签
// pairs 数量必须为偶数，否则返回包装了 xerrors.ErrInvalidInput 的错误。
// 列表内后出现的重复键覆盖先出现的，之后按 Tagged 的语义合并。
//
// 使用示例：
//
//	n, err := metricname.Build("my", "metric").TaggedPairs("tenant", "tenant-id")
func (n Name) TaggedPairs(pairs ...string) (Name, error) {
	if len(pairs) == 0 {
		return n, nil
	}
	if len(pairs)%2 != 0 {
		return n, xerrors.Wrapf(xerrors.ErrInvalidInput, "tagged pairs count must be even, got %d", len(pairs))
	}

	add := make(Tags, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		add[pairs[i]] = pairs[i+1]
	}
	return n.Tagged(add), nil
}

// TaggedFromContext 叠加合并 context 中标签作用域内的全部标签
// 作用域不存在或为空时，原样返回当前实例，不产生任何分配。
// 作用域中的标签覆盖当前名称中的同名标签。
//
// 典型用法是在请求处理早期通过 tagscope.Put 写入横切维度
// （如租户 ID），在发射指标处统一合并，避免逐层透传参数。
func (n Name) TaggedFromContext(ctx context.Context) Name {
	if tagscope.IsEmpty(ctx) {
		return n
	}
	return n.Tagged(Tags(tagscope.Get(ctx)))
}

// Append 拼接另一个名称的路径和标签，返回新名称
// 等价于 n.Resolve(other.Path()).Tagged(other 的标签)：
// other 的路径作为一个整体路径段追加（空路径被跳过），
// other 的标签覆盖当前名称中的同名标签。
func (n Name) Append(other Name) Name {
	resolved := n.Resolve(other.path)
	if len(other.tags) == 0 {
		return resolved
	}
	return resolved.Tagged(other.Tags())
}

// LegacyFormat 编码为旧格式字符串
// 无标签时返回纯路径；有标签时返回 path[k1:v1,k2:v2,...]，
// 标签按键升序排列。
//
// 注意：键和值中的 `.`、`:`、`,`、`[`、`]` 字符不做任何转义。
// 这是旧格式的既有约束：增加转义会破坏与现有消费方的编码兼容，
// 由调用方保证标签内容不含分隔符。
func (n Name) LegacyFormat() string {
	if len(n.tags) == 0 {
		return n.path
	}

	var b strings.Builder
	b.WriteString(n.path)
	b.WriteByte('[')
	for i, t := range n.tags {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.Key)
		b.WriteByte(':')
		b.WriteString(t.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// String 实现 fmt.Stringer，返回旧格式字符串
func (n Name) String() string {
	return n.LegacyFormat()
}

// Equal 判断两个名称是否相等
// 路径相等且标签集合作为键值对集合相等时为 true，
// 与标签的构造输入顺序无关。
func (n Name) Equal(other Name) bool {
	if n.path != other.path || len(n.tags) != len(other.tags) {
		return false
	}
	for i, t := range n.tags {
		if other.tags[i] != t {
			return false
		}
	}
	return true
}

// Compare 对名称进行全序比较，返回 -1、0 或 1
// 供使用方做确定性排序与去重。
//
// 比较规则：
//  1. 先按路径做字典序比较
//  2. 路径相等时，按键升序逐项比较标签：先比较键，
//     键相等时比较值（空值排在任何非空值之前）
//  3. 一方标签先遍历完时，标签少的一方排在前面
func (n Name) Compare(other Name) int {
	if c := strings.Compare(n.path, other.path); c != 0 {
		return c
	}

	for i := 0; i < len(n.tags) && i < len(other.tags); i++ {
		l, r := n.tags[i], other.tags[i]
		if c := strings.Compare(l.Key, r.Key); c != 0 {
			return c
		}
		if c := strings.Compare(l.Value, r.Value); c != 0 {
			return c
		}
	}

	switch {
	case len(n.tags) > len(other.tags):
		return 1
	case len(n.tags) < len(other.tags):
		return -1
	default:
		return 0
	}
}
