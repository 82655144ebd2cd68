// main.go 是 gowc 的程序入口。
// 该文件仅负责注入版本号、构建 logger 并执行 Cobra 根命令，
// 让业务逻辑保持在 cmd/internal 目录中，便于测试和扩展。
package main

import (
	"fmt"
	"os"

	"gowc/cmd"
	"gowc/internal/logging"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	logger, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gowc: %v\n", err)
		os.Exit(1)
	}

	err = cmd.Execute(version, logger)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gowc: %v\n", err)
		os.Exit(1)
	}
}
