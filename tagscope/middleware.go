package tagscope

import "github.com/gin-gonic/gin"

// GinMiddleware 创建 Gin 标签作用域中间件
//
// 每个请求挂载一个全新的作用域到请求 context，处理结束后清空，
// 保证标签不会跨请求泄漏（Gin 会复用处理 goroutine 和对象池）。
// 后续 handler 通过 tagscope.Put(c.Request.Context(), ...) 写入标签，
// 发射指标处通过 metricname 的 TaggedFromContext 统一合并。
//
// 使用示例:
//
//	r := gin.New()
//	r.Use(tagscope.GinMiddleware(&tagscope.GinMiddlewareOptions{
//	    HeaderTags: map[string]string{"X-Tenant-ID": "tenant"},
//	}))
func GinMiddleware(opts *GinMiddlewareOptions) gin.HandlerFunc {
	if opts == nil {
		opts = &GinMiddlewareOptions{}
	}

	return func(c *gin.Context) {
		scope := NewScope()
		c.Request = c.Request.WithContext(ContextWithScope(c.Request.Context(), scope))

		// 从请求头预置标签
		for header, tag := range opts.HeaderTags {
			if v := c.GetHeader(header); v != "" {
				// 标签名来自配置、值非空，写入不会失败
				_ = scope.Put(tag, v)
			}
		}

		// 自定义提取函数，后应用，同名覆盖
		if opts.TagFunc != nil {
			for name, value := range opts.TagFunc(c) {
				if name == "" || value == "" {
					continue
				}
				_ = scope.Put(name, value)
			}
		}

		// 请求结束后清空，防止泄漏进复用的执行单元
		defer scope.Clear()
		c.Next()
	}
}
