package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gowc/internal/model"
)

// executeRoot 是测试辅助函数，用给定参数与标准输入执行根命令。
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	rootCmd := newRootCmd("test", nil)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)

	err := execute(rootCmd, args)
	return stdout.String(), err
}

// TestRootPipedStdin 验证无参数时统计标准输入。
func TestRootPipedStdin(t *testing.T) {
	output, err := executeRoot(t, "hello world\n")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if output != "     1      2     12 -\n" {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestRootFlagsReachResolver 验证 flag 不被 cobra 拦截。
func TestRootFlagsReachResolver(t *testing.T) {
	output, err := executeRoot(t, "café\n", "--bytes", "-m", "-")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if output != "     6 -\n" {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestRootHelpIsPath 验证 --help、help 以及 completion 相关 token 都被当作文件路径。
func TestRootHelpIsPath(t *testing.T) {
	for _, token := range []string{"--help", "help", "-h", "completion", "__complete", "__completeNoDesc"} {
		output, err := executeRoot(t, "", token)

		var ioErr *model.IOError
		if !errors.As(err, &ioErr) || ioErr.Source != token {
			t.Fatalf("token %s: expected io error, got %v", token, err)
		}
		if output != "" {
			t.Fatalf("token %s: expected no output, got %q", token, output)
		}
	}
}

// TestRootFileNamedLikeFlag 验证存在的同名文件可以被正常统计。
func TestRootFileNamedLikeFlag(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "-x")
	if err := os.WriteFile(filePath, []byte("a b\n"), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}

	output, err := executeRoot(t, "", "-w", filePath)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if output != "     2 "+filePath+"\n" {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestRootCompletionNamedFiles 验证名为 completion、__complete 的文件作为首个参数时被正常统计。
func TestRootCompletionNamedFiles(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"completion", "__complete"} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("a b\n"), 0o644); err != nil {
			t.Fatalf("write fixture file failed: %v", err)
		}
	}
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Fatalf("restore working directory failed: %v", err)
		}
	})

	output, err := executeRoot(t, "", "completion")
	if err != nil {
		t.Fatalf("execute completion failed: %v", err)
	}
	if output != "     1      2      4 completion\n" {
		t.Fatalf("unexpected completion output: %q", output)
	}

	output, err = executeRoot(t, "", "__complete", "-l", "completion")
	if err != nil {
		t.Fatalf("execute __complete failed: %v", err)
	}
	if output != "     1 __complete\n     1 completion\n" {
		t.Fatalf("unexpected __complete output: %q", output)
	}
}
