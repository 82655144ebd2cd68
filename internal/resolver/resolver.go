// Package resolver 把命令行参数解析为输出选项和有序的输入源列表。
//
// 参数不交给 pflag 解析器处理：pflag 会拒绝未知 flag，并把 -cw 拆成组合短参数。
// 这里只用 pflag 声明 flag 表，并按 token 精确匹配。
package resolver

import (
	"strings"

	"gowc/internal/model"

	"github.com/spf13/pflag"
)

const (
	flagBytes = "bytes"
	flagChars = "chars"
	flagWords = "words"
	flagLines = "lines"
)

// SourceKind 表示输入源类型。
type SourceKind int

const (
	// SourceStdin 表示标准输入。
	SourceStdin SourceKind = iota
	// SourceFile 表示命名文件。
	SourceFile
)

// Source 表示一个待计数的输入源。
type Source struct {
	Kind SourceKind
	Path string
}

// Stdin 返回标准输入源。
func Stdin() Source {
	return Source{Kind: SourceStdin}
}

// File 返回指向 path 的文件源，path 原样保留。
func File(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// Label 返回输入源在输出中的展示名称。
func (s Source) Label() string {
	if s.Kind == SourceStdin {
		return model.StdinLabel
	}
	return s.Path
}

// Resolution 是一次参数解析的结果。
type Resolution struct {
	Options model.Options
	Sources []Source
}

// NoSources 判断命令行中是否没有任何输入源。
// 调用方此时应把标准输入作为唯一的隐式输入源。
func (r Resolution) NoSources() bool {
	return !r.Options.ExplicitSourceGiven
}

// NewFlagSet 创建 gowc 支持的 flag 表。
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("gowc", pflag.ContinueOnError)
	flags.BoolP(flagBytes, "c", false, "print the byte counts")
	flags.BoolP(flagChars, "m", false, "print the character counts")
	flags.BoolP(flagWords, "w", false, "print the word counts")
	flags.BoolP(flagLines, "l", false, "print the newline counts")
	return flags
}

// Resolve 解析参数（不含程序名）。
//
// 规则：
// - 只有与 flag 表精确匹配的 token 才是 flag，重复出现等价于出现一次
// - "-" 表示标准输入
// - 其余 token（包括 -x、-cw 这类未知 flag）都按文件路径处理
func Resolve(args []string) Resolution {
	flags := NewFlagSet()
	resolution := Resolution{Sources: make([]Source, 0, len(args))}

	for _, token := range args {
		if flag := lookupFlag(flags, token); flag != nil {
			selectCount(&resolution.Options, flag.Name)
			continue
		}

		resolution.Options.ExplicitSourceGiven = true
		if token == model.StdinLabel {
			resolution.Sources = append(resolution.Sources, Stdin())
			continue
		}
		resolution.Sources = append(resolution.Sources, File(token))
	}

	return resolution
}

// lookupFlag 精确匹配 --name 或 -x 形式的 token，匹配失败返回 nil。
func lookupFlag(flags *pflag.FlagSet, token string) *pflag.Flag {
	switch {
	case strings.HasPrefix(token, "--") && len(token) > 2:
		return flags.Lookup(token[2:])
	case len(token) == 2 && token[0] == '-' && token[1] != '-':
		return flags.ShorthandLookup(token[1:])
	default:
		return nil
	}
}

// selectCount 打开名为 name 的计数列，name 只会是 flag 表中的长名称。
func selectCount(options *model.Options, name string) {
	switch name {
	case flagBytes:
		options.Bytes = true
	case flagChars:
		options.Chars = true
	case flagWords:
		options.Words = true
	case flagLines:
		options.Lines = true
	}
}
