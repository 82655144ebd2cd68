// Package report 提供 gowc 的输出能力。
// 每条记录输出为一行，数字列右对齐，最小宽度为 6。
package report

import (
	"fmt"
	"io"
	"strings"

	"gowc/internal/model"
)

// columnWidth 是数字列的最小宽度。
const columnWidth = 6

// Reporter 按照固定的 Options 把记录写入 writer。
type Reporter struct {
	writer  io.Writer
	options model.Options
}

// NewReporter 创建输出器。options 在整个运行期间保持不变。
func NewReporter(writer io.Writer, options model.Options) *Reporter {
	return &Reporter{
		writer:  writer,
		options: options,
	}
}

// Report 格式化并立即写出一条记录。
func (r *Reporter) Report(record model.Record) error {
	if _, err := io.WriteString(r.writer, FormatRecord(record, r.options)); err != nil {
		return fmt.Errorf("write record %s: %w", record.Label, err)
	}
	return nil
}

// FormatRecord 返回一条记录的输出行（含换行符）。
//
// 规则：
// - 未选择任何计数列时输出 lines, words, bytes, label
// - 否则按 lines, words, bytes|chars 的固定顺序输出已选择的列，每列后跟一个空格
// - bytes 与 chars 同时选择时只输出 bytes
func FormatRecord(record model.Record, options model.Options) string {
	if !options.AnyCountSelected() {
		return fmt.Sprintf(
			"%*d %*d %*d %s\n",
			columnWidth, record.Lines,
			columnWidth, record.Words,
			columnWidth, record.Bytes,
			record.Label,
		)
	}

	var line strings.Builder
	if options.Lines {
		writeColumn(&line, record.Lines)
	}
	if options.Words {
		writeColumn(&line, record.Words)
	}
	if options.Bytes {
		writeColumn(&line, record.Bytes)
	} else if options.Chars {
		writeColumn(&line, record.Chars)
	}

	line.WriteString(record.Label)
	line.WriteByte('\n')
	return line.String()
}

func writeColumn(line *strings.Builder, value int64) {
	fmt.Fprintf(line, "%*d ", columnWidth, value)
}
