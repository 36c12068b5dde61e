package outputters

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/config"
	"github.com/dotcommander/querylint/internal/output"
)

// Formatter renders a batch summary
type Formatter interface {
	Format(summary *batch.Summary) error
}

// FormatterFactory creates a Formatter for a format name
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory creates the built-in formatters from config
type DefaultFormatterFactory struct {
	cfg *config.Config
	w   io.Writer
}

// NewDefaultFormatterFactory creates a factory writing to stdout
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return NewDefaultFormatterFactoryWithWriter(cfg, os.Stdout)
}

// NewDefaultFormatterFactoryWithWriter creates a factory writing to w
func NewDefaultFormatterFactoryWithWriter(cfg *config.Config, w io.Writer) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{cfg: cfg, w: w}
}

// CreateFormatter returns the formatter for format
func (f *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	switch format {
	case config.FormatConsole:
		return output.NewConsoleFormatter(f.w, f.cfg.Quiet, f.cfg.Verbose), nil
	case config.FormatJSON:
		return output.NewJSONFormatter(f.w, true, f.cfg.Output), nil
	case config.FormatMarkdown:
		return output.NewMarkdownFormatter(f.w, f.cfg.Verbose, f.cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
}

// NewOutputter creates a new Outputter writing to stdout
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg))
}

// NewOutputterWithFactory creates an Outputter using factory
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{config: cfg, factory: factory}
}

// Format formats the summary using the given format
func (o *Outputter) Format(summary *batch.Summary, format string) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}

	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}

	if err := formatter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
