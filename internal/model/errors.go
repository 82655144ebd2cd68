package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOError 表示读取某个输入源失败。
// Err 保留底层错误，便于调用方使用 errors.Is 判断，例如 fs.ErrNotExist。
type IOError struct {
	Source string
	Err    error
}

// Error 在底层 *fs.PathError 已经包含 Source 时直接使用底层错误文本，避免路径重复。
func (e *IOError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Source {
		return e.Err.Error()
	}
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DecodeError 表示输入内容不是合法的 UTF-8 文本。
// Offset 为第一个非法字节序列的字节偏移。
type DecodeError struct {
	Source string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: invalid UTF-8 at byte offset %d", e.Source, e.Offset)
}
