// Package logging 负责构建 gowc 的诊断日志。
// 日志只写入 stderr，默认级别为 warn，正常运行时不会产生输出。
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// EnvLevel 是控制日志级别的环境变量。
const EnvLevel = "GOWC_LOG_LEVEL"

// DefaultLevel 是未设置 EnvLevel 时的日志级别。
const DefaultLevel = "warn"

// ParseLevel 解析日志级别，空字符串视为 DefaultLevel。
func ParseLevel(text string) (zapcore.Level, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		text = DefaultLevel
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return level, fmt.Errorf("parse %s: %w", EnvLevel, err)
	}
	return level, nil
}

// New 创建写入 stderr 的 logger。
// stderr 是终端时使用 development（console）编码，否则使用 production（JSON）编码。
func New(levelText string) (*zap.Logger, error) {
	level, err := ParseLevel(levelText)
	if err != nil {
		return nil, err
	}

	var config zap.Config
	if term.IsTerminal(int(os.Stderr.Fd())) {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// FromEnv 使用 EnvLevel 环境变量创建 logger。
func FromEnv() (*zap.Logger, error) {
	return New(os.Getenv(EnvLevel))
}
