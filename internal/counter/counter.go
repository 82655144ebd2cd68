// Package counter 提供单个输入源的计数能力。
// 该层只负责把完整内容转换为计数结果，不负责读取和输出。
package counter

import (
	"unicode"
	"unicode/utf8"

	"gowc/internal/model"
)

// Count 对 content 做一次完整扫描，返回带 label 的计数结果。
// 内容不是合法 UTF-8 时返回 *model.DecodeError。
func Count(label string, content []byte) (model.Record, error) {
	engine := &wordFSMEngine{}
	counts, ok := engine.count(content)
	if !ok {
		return model.Record{}, &model.DecodeError{Source: label, Offset: engine.offset}
	}
	return model.Record{Label: label, Counts: counts}, nil
}

// wordFSMEngine 维护一次扫描中的状态。
type wordFSMEngine struct {
	inWord bool
	offset int
}

// count 逐个 rune 扫描：
// - Bytes 为原始字节数
// - Chars 为 code point 数
// - Words 在“空白 -> 非空白”切换时 +1
// - Lines 为换行符个数，最后一行没有换行符时额外 +1
//
// 遇到非法字节序列时返回 false，此时 e.offset 指向该序列。
func (e *wordFSMEngine) count(content []byte) (model.Counts, bool) {
	counts := model.Counts{Bytes: int64(len(content))}

	for e.offset < len(content) {
		r, size := utf8.DecodeRune(content[e.offset:])
		if r == utf8.RuneError && size <= 1 {
			return counts, false
		}

		counts.Chars++
		if r == '\n' {
			counts.Lines++
		}

		switch {
		case unicode.IsSpace(r):
			e.inWord = false
		case !e.inWord:
			e.inWord = true
			counts.Words++
		}

		e.offset += size
	}

	if len(content) > 0 && content[len(content)-1] != '\n' {
		counts.Lines++
	}

	return counts, true
}
