// Package driver 提供 gowc 的调度能力。
// 该层负责参数解析、输入读取、计数、输出和汇总的串联，不负责计数细节。
//
// 整个运行是单线程的线性流程：
// ParsingArgs -> ResolvingInputs -> ReadingAndCounting -> Reporting -> Done
package driver

import (
	"io"
	"os"

	"gowc/internal/counter"
	"gowc/internal/model"
	"gowc/internal/report"
	"gowc/internal/resolver"

	"go.uber.org/zap"
)

// Service 是调度服务对象。
type Service struct {
	stdin  io.Reader
	stdout io.Writer
	logger *zap.Logger
}

// NewService 创建调度服务。
// logger 为 nil 时使用 zap.NewNop()。
func NewService(stdin io.Reader, stdout io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
	}
}

// Run 处理一次完整运行，返回所有输入源的汇总记录。
//
// 每个输入源计数完成后立即输出。遇到第一个错误即返回，
// 之前已经输出的行保持不变，之后的输入源不再处理。
// 汇总记录只返回给调用方，不会被输出。
func (s *Service) Run(args []string) (model.Total, error) {
	total := model.NewTotal()

	resolution := resolver.Resolve(args)
	sources := resolution.Sources
	if resolution.NoSources() {
		sources = []resolver.Source{resolver.Stdin()}
	}

	s.logger.Debug("resolved arguments",
		zap.Any("options", resolution.Options),
		zap.Int("sources", len(sources)),
		zap.Bool("implicit_stdin", resolution.NoSources()),
	)

	reporter := report.NewReporter(s.stdout, resolution.Options)
	for _, source := range sources {
		record, err := s.countSource(source)
		if err != nil {
			return total, err
		}

		if err := reporter.Report(record); err != nil {
			return total, err
		}
		total.Add(record)
	}

	s.logger.Debug("run finished",
		zap.Int64("total_bytes", total.Bytes),
		zap.Int64("total_chars", total.Chars),
		zap.Int64("total_words", total.Words),
		zap.Int64("total_lines", total.Lines),
	)
	return total, nil
}

// countSource 读取一个输入源的全部内容并计数。
func (s *Service) countSource(source resolver.Source) (model.Record, error) {
	label := source.Label()

	content, err := s.readSource(source)
	if err != nil {
		return model.Record{}, &model.IOError{Source: label, Err: err}
	}
	s.logger.Debug("read source", zap.String("source", label), zap.Int("bytes", len(content)))

	record, err := counter.Count(label, content)
	if err != nil {
		return model.Record{}, err
	}
	s.logger.Debug("counted source", zap.String("source", label), zap.Any("counts", record.Counts))
	return record, nil
}

// readSource 阻塞读取到流结束（标准输入）或一次性读取整个文件。
func (s *Service) readSource(source resolver.Source) ([]byte, error) {
	if source.Kind == resolver.SourceStdin {
		return io.ReadAll(s.stdin)
	}
	return os.ReadFile(source.Path)
}
