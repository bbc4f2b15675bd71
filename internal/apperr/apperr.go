// Package apperr 定义了服务内部统一的错误分类。
// 错误在 service 层产生，在 handler 层一次性映射为 HTTP 状态码。
package apperr

import "errors"

// Kind 表示错误的类别。
type Kind int

const (
	// Validation 表示客户端缺失或非法的请求字段，映射为 400。
	Validation Kind = iota + 1
	// Upstream 表示外部情感分析服务调用失败，映射为 500。
	Upstream
	// Store 表示持久化操作失败，映射为 500。
	Store
)

// Error 携带错误类别和描述信息，可包装底层错误。
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New 创建一个不包装底层错误的分类错误。
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap 创建一个包装了底层错误的分类错误。
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind 返回错误的类别。
func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf 提取任意错误的类别，非分类错误返回 0。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}
