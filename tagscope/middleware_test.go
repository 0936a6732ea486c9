package tagscope

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGinMiddleware_Basic(t *testing.T) {
	t.Run("请求 context 中挂载了作用域", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(nil))

		var hasScope bool
		router.GET("/test", func(c *gin.Context) {
			hasScope = FromContext(c.Request.Context()) != nil
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasScope)
	})

	t.Run("handler 内写入的标签在同一请求内可见", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(nil))

		var seen map[string]string
		router.GET("/test", func(c *gin.Context) {
			ctx := c.Request.Context()
			require.NoError(t, Put(ctx, "tenant", "tenant-id"))
			seen = Get(ctx)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, map[string]string{"tenant": "tenant-id"}, seen)
	})

	t.Run("请求结束后作用域被清空", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(nil))

		var scope *Scope
		router.GET("/test", func(c *gin.Context) {
			scope = FromContext(c.Request.Context())
			require.NoError(t, scope.Put("k", "v"))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		require.NotNil(t, scope)
		assert.True(t, scope.IsEmpty())
	})

	t.Run("相邻请求之间标签不泄漏", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(nil))

		var second map[string]string
		router.GET("/first", func(c *gin.Context) {
			require.NoError(t, Put(c.Request.Context(), "leak", "v"))
			c.Status(http.StatusOK)
		})
		router.GET("/second", func(c *gin.Context) {
			second = Get(c.Request.Context())
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/first", nil))
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/second", nil))

		assert.Empty(t, second)
	})
}

func TestGinMiddleware_HeaderTags(t *testing.T) {
	t.Run("请求头预置为标签", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(&GinMiddlewareOptions{
			HeaderTags: map[string]string{"X-Tenant-ID": "tenant"},
		}))

		var seen map[string]string
		router.GET("/test", func(c *gin.Context) {
			seen = Get(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Tenant-ID", "tenant-id")
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, map[string]string{"tenant": "tenant-id"}, seen)
	})

	t.Run("缺失的请求头被跳过", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(&GinMiddlewareOptions{
			HeaderTags: map[string]string{"X-Tenant-ID": "tenant"},
		}))

		var empty bool
		router.GET("/test", func(c *gin.Context) {
			empty = IsEmpty(c.Request.Context())
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/test", nil))
		assert.True(t, empty)
	})
}

func TestGinMiddleware_TagFunc(t *testing.T) {
	t.Run("自定义提取函数写入标签", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(&GinMiddlewareOptions{
			TagFunc: func(c *gin.Context) map[string]string {
				return map[string]string{
					"route":   c.FullPath(),
					"skipped": "",
				}
			},
		}))

		var seen map[string]string
		router.GET("/test", func(c *gin.Context) {
			seen = Get(c.Request.Context())
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/test", nil))

		// 值为空的条目被跳过
		assert.Equal(t, map[string]string{"route": "/test"}, seen)
	})

	t.Run("TagFunc 覆盖 HeaderTags 的同名标签", func(t *testing.T) {
		router := setupTestRouter()
		router.Use(GinMiddleware(&GinMiddlewareOptions{
			HeaderTags: map[string]string{"X-Tenant-ID": "tenant"},
			TagFunc: func(c *gin.Context) map[string]string {
				return map[string]string{"tenant": "from-func"}
			},
		}))

		var seen map[string]string
		router.GET("/test", func(c *gin.Context) {
			seen = Get(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Tenant-ID", "from-header")
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, map[string]string{"tenant": "from-func"}, seen)
	})
}
