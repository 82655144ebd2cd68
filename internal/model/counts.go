// Package model 定义 gowc 的核心数据模型。
// 这些结构会被计数器、解析层、输出层和调度层共同使用。
package model

// StdinLabel 是标准输入的展示名称。
const StdinLabel = "-"

// TotalLabel 是汇总记录的展示名称。
const TotalLabel = "Total"

// Counts 表示一组计数值。
type Counts struct {
	Bytes int64 `json:"bytes"`
	Chars int64 `json:"chars"`
	Words int64 `json:"words"`
	Lines int64 `json:"lines"`
}

// Record 表示单个输入源的计数结果。
// 由计数器一次性创建，之后不再修改。
type Record struct {
	Label string `json:"label"`
	Counts
}

// Total 表示全部输入源的汇总。
// 与 Record 的形状相同，但只有 Total 提供累加方法。
type Total struct {
	Label string `json:"label"`
	Counts
}

// NewTotal 创建一个全零的汇总，Label 为 TotalLabel。
func NewTotal() Total {
	return Total{Label: TotalLabel}
}

// Add 把一条记录的计数累加到汇总中。
func (t *Total) Add(record Record) {
	t.Bytes += record.Bytes
	t.Chars += record.Chars
	t.Words += record.Words
	t.Lines += record.Lines
}
