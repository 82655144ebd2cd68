package model

// Options 表示用户在命令行中选择的输出列。
//
// 注意：
// - 四个计数开关默认均为 false
// - 全部为 false 时输出层回退到默认模式（lines, words, bytes）
// - ExplicitSourceGiven 表示命令行中出现过至少一个输入源
type Options struct {
	Bytes bool `json:"bytes"`
	Chars bool `json:"chars"`
	Words bool `json:"words"`
	Lines bool `json:"lines"`

	ExplicitSourceGiven bool `json:"explicit_source_given"`
}

// AnyCountSelected 判断是否至少选择了一个计数列。
func (o Options) AnyCountSelected() bool {
	return o.Bytes || o.Chars || o.Words || o.Lines
}
