package tagscope

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryServerInterceptor 创建 gRPC 一元服务端拦截器
// 为每次调用挂载一个全新的标签作用域，调用结束后清空。
//
// 使用示例:
//
//	s := grpc.NewServer(
//	    grpc.UnaryInterceptor(tagscope.UnaryServerInterceptor(
//	        tagscope.WithMetadataTags(map[string]string{"x-tenant-id": "tenant"}),
//	    )),
//	)
func UnaryServerInterceptor(opts ...InterceptorOption) grpc.UnaryServerInterceptor {
	opt := interceptorOptions{}
	for _, o := range opts {
		o(&opt)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		scope := NewScope()
		ctx = ContextWithScope(ctx, scope)
		seedFromMetadata(ctx, scope, opt.metadataTags)

		defer scope.Clear()
		return handler(ctx, req)
	}
}

// StreamServerInterceptor 创建 gRPC 流式服务端拦截器
// 整个流共享一个作用域，流结束后清空。
func StreamServerInterceptor(opts ...InterceptorOption) grpc.StreamServerInterceptor {
	opt := interceptorOptions{}
	for _, o := range opts {
		o(&opt)
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		scope := NewScope()
		ctx := ContextWithScope(ss.Context(), scope)
		seedFromMetadata(ctx, scope, opt.metadataTags)

		defer scope.Clear()
		return handler(srv, &scopedServerStream{ServerStream: ss, ctx: ctx})
	}
}

// seedFromMetadata 按配置把传入 metadata 中的值预置为作用域标签
func seedFromMetadata(ctx context.Context, scope *Scope, metadataTags map[string]string) {
	if len(metadataTags) == 0 {
		return
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return
	}

	for key, tag := range metadataTags {
		values := md.Get(key)
		if len(values) == 0 || values[0] == "" {
			continue
		}
		// 标签名来自配置、值非空，写入不会失败
		_ = scope.Put(tag, values[0])
	}
}

// scopedServerStream 携带挂载了作用域的 context 的服务端流
type scopedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *scopedServerStream) Context() context.Context {
	return s.ctx
}
