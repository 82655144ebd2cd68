// Package cmd 提供 gowc 的命令行入口。
package cmd

import (
	"os"

	"gowc/internal/driver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string, logger *zap.Logger) error {
	rootCmd := newRootCmd(version, logger)
	return execute(rootCmd, os.Args[1:])
}

// execute 用 args 执行根命令。
//
// cobra 在执行时总会临时注册隐藏的 __complete 命令，
// 首个 token 命中它时直接调用 RunE，让该 token 仍按文件路径处理。
func execute(rootCmd *cobra.Command, args []string) error {
	if len(args) > 0 && isShellCompletionRequest(args[0]) {
		return rootCmd.RunE(rootCmd, args)
	}

	// 传入非 nil 切片，避免 cobra 回退到 os.Args。
	rootCmd.SetArgs(append([]string{}, args...))
	return rootCmd.Execute()
}

func isShellCompletionRequest(token string) bool {
	return token == cobra.ShellCompRequestCmd || token == cobra.ShellCompNoDescRequestCmd
}

// newRootCmd 创建根命令。
//
// 注意：
// - 关闭 cobra 自身的 flag 解析，全部 token 交给 resolver 处理
// - 不注册任何子命令，并关闭默认的 completion 命令，否则子命令名会遮蔽同名文件
func newRootCmd(version string, logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &cobra.Command{
		Use:   "gowc [-c|--bytes] [-m|--chars] [-w|--words] [-l|--lines] [file|-]...",
		Short: "统计字节数、字符数、单词数与行数",
		Long: "gowc 按 wc 的方式统计每个输入源的 bytes/chars/words/lines，\n" +
			"未指定输入源或输入源为 - 时读取标准输入。",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			service := driver.NewService(
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				logger.With(zap.String("version", version)),
			)
			_, err := service.Run(args)
			return err
		},
	}
}
