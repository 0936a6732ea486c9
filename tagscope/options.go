package tagscope

import "github.com/gin-gonic/gin"

// GinMiddlewareOptions Gin 中间件配置
type GinMiddlewareOptions struct {
	// HeaderTags 请求头到标签名的映射
	// 请求头存在且非空时，其值以对应的标签名写入作用域。
	// 例如 {"X-Tenant-ID": "tenant"}。
	HeaderTags map[string]string

	// TagFunc 自定义标签提取函数
	// 返回的映射中键或值为空的条目被跳过。
	// 在 HeaderTags 之后应用，同名标签覆盖。
	TagFunc func(c *gin.Context) map[string]string
}

// InterceptorOption gRPC 拦截器选项函数
type InterceptorOption func(*interceptorOptions)

// interceptorOptions gRPC 拦截器选项配置（内部使用，小写）
type interceptorOptions struct {
	metadataTags map[string]string
}

// WithMetadataTags 设置 metadata 键到标签名的映射
// 对应的 metadata 键存在且首个值非空时，以标签名写入作用域。
// 例如 WithMetadataTags(map[string]string{"x-tenant-id": "tenant"})。
func WithMetadataTags(metadataTags map[string]string) InterceptorOption {
	return func(o *interceptorOptions) {
		o.metadataTags = metadataTags
	}
}
