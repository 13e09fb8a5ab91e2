// Package cli implements the asphalt command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/service"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/bootstrap"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/entity"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/metrics"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/sheets"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/view"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	ConfigFile string
	LogLevel   string
}

// DefaultGlobalOptions returns options that load config from the default
// search paths.
func DefaultGlobalOptions() *GlobalOptions {
	return &GlobalOptions{}
}

// Bind registers the global flags.
func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile, "Path to configuration file")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error); overrides the config")
}

// env is what a command runs against.
type env struct {
	cfg       *config.Config
	log       *logger.Logger
	service   *service.EstimateService
	formatter view.Formatter
}

// load reads the config and builds the service. Logs go to stderr so stdout
// stays clean for results.
func (o *GlobalOptions) load(stderr io.Writer) (*env, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}

	log, err := bootstrap.NewLogger(cfg, stderr)
	if err != nil {
		return nil, err
	}

	svc, err := bootstrap.NewEstimateService(cfg, bootstrap.PortLogger(log), metrics.Nop{})
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:       cfg,
		log:       log,
		service:   svc,
		formatter: bootstrap.Formatter(cfg.Estimator),
	}, nil
}

// logger adapts the env logger to port.Logger.
func (e *env) logger() port.Logger {
	return bootstrap.PortLogger(e.log)
}

// OutputOptions select how a result is written.
type OutputOptions struct {
	JSON bool
	XLSX string
}

// Bind registers the output flags.
func (o *OutputOptions) Bind(fs *pflag.FlagSet) {
	fs.BoolVar(&o.JSON, "json", o.JSON, "Write the result as JSON")
	fs.StringVar(&o.XLSX, "xlsx", o.XLSX, "Also export a quote workbook to this path")
}

// Validate checks the export path.
func (o *OutputOptions) Validate() error {
	if o.XLSX != "" && !strings.EqualFold(filepath.Ext(o.XLSX), ".xlsx") {
		return fmt.Errorf("quote export path must end in .xlsx: %q", o.XLSX)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeQuote exports q to path and reports where it went on stderr.
func writeQuote(cmd *cobra.Command, path string, q *entity.Quote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating quote file: %w", err)
	}
	if err := sheets.WriteQuote(f, q); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing quote: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing quote: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Quote %s written to %s\n", q.ID, path)
	return nil
}
