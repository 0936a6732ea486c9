package metricname

import "sort"

// Tag 指标标签结构体
// 用于为指标名称附加维度信息（如租户、区域），实现指标的细粒度分组。
//
// 标签命名约束：
//   - 键和值中避免使用 `.`、`:`、`,`、`[`、`]` 字符。
//     旧格式编码不做任何转义，包含这些分隔符会使下游解析产生歧义。
//     这是旧格式的既有约束，由调用方负责遵守（见 Name.LegacyFormat）。
//   - 避免高基数标签值（如请求 ID），控制标签数量（建议 < 10 个）。
//
// 使用示例：
//
//	// 方式1：使用便捷函数
//	name := metricname.Build("http", "requests").Tagged(metricname.Tags{"method": "GET"})
//
//	// 方式2：直接创建结构体
//	tag := metricname.Tag{Key: "method", Value: "GET"}
type Tag struct {
	// Key 标签键，表示维度名称
	Key string

	// Value 标签值，表示该维度的具体取值
	// 空字符串表示"无值"，在全序比较中排在任何非空值之前
	Value string
}

// T 便捷构造函数，创建一个 Tag 实例
//
// 使用示例：
//
//	tag := metricname.T("tenant", "tenant-id")
func T(key, value string) Tag {
	return Tag{
		Key:   key,
		Value: value,
	}
}

// Tags 无序的标签集合，调用方输入形式
// Name 内部始终持有按键升序排序后的不可变副本，
// 因此两个键值内容相同的 Tags 无论遍历顺序如何，构造出的 Name 相等。
type Tags map[string]string

// Pairs 将标签集合展开为 key,value,... 形式的扁平切片，
// 便于传给以变长字符串参数接收标签的客户端（如 statsd 风格的客户端）。
//
// 对 nil 安全：nil 接收者返回 nil。
// 注意：遍历顺序不确定；需要确定顺序时使用 Name.SortedTags。
func (t Tags) Pairs() []string {
	if t == nil {
		return nil
	}
	pairs := make([]string, 0, len(t)*2)
	for k, v := range t {
		pairs = append(pairs, k, v)
	}
	return pairs
}

// emptyTags 空标签集的共享单例，保证"无标签"永远不是 nil 区分态
var emptyTags = []Tag{}

// sortedTags 将无序标签集合复制为按键升序（字节序）排序的切片。
// 规范顺序在构造时固定，之后不再依赖 map 的遍历顺序。
func sortedTags(tags Tags) []Tag {
	if len(tags) == 0 {
		return emptyTags
	}
	sorted := make([]Tag, 0, len(tags))
	for k, v := range tags {
		sorted = append(sorted, Tag{Key: k, Value: v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}
