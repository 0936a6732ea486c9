// xerrors 包为 metrictag 提供标准化的错误处理工具。
// 这是一个基础包，不依赖于其他组件。
package xerrors

import (
	"errors"
	"fmt"
)

// ============================================================================
// 哨兵错误
// ============================================================================

var (
	// ErrInvalidInput 表示输入参数无效，属于调用方编程错误。
	// 例如：标签键值对数量为奇数、标签名缺失等。
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound 表示请求的资源未找到。
	ErrNotFound = errors.New("not found")
)

// ============================================================================
// 错误包装 - 保留带上下文的错误链
// ============================================================================

// Wrap 用额外的上下文信息包装错误。
// 如果 err 为 nil，则返回 nil。
//
// 示例：
//
//	if err != nil {
//	    return xerrors.Wrap(err, "写入标签失败")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf 用格式化的上下文信息包装错误。
// 如果 err 为 nil，则返回 nil。
//
// 示例：
//
//	if err != nil {
//	    return xerrors.Wrapf(err, "合并 %d 个标签失败", n)
//	}
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Must 如果 err 不为 nil，则 panic。仅用于初始化阶段。
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("must: %v", err))
	}
	return v
}

// 标准库函数再导出，避免调用方同时导入 errors 和 xerrors。
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)
