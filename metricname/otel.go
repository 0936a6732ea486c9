package metricname

import "go.opentelemetry.io/otel/attribute"

// Attributes 将标签集合转换为 OpenTelemetry 属性切片
// 属性按标签的规范顺序（键升序）排列，便于对接以属性为维度模型的
// 指标门面。无标签时返回 nil。
//
// 使用示例：
//
//	counter.Add(ctx, 1, metric.WithAttributes(name.Attributes()...))
func (n Name) Attributes() []attribute.KeyValue {
	if len(n.tags) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, len(n.tags))
	for i, t := range n.tags {
		attrs[i] = attribute.String(t.Key, t.Value)
	}
	return attrs
}
