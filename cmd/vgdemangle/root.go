package main

import (
	"fmt"
	"io"
	"os"

	"github.com/skdltmxn/vgdemangle/demangle"
	"github.com/skdltmxn/vgdemangle/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFile string
	configFile string
	logLevel   string
	output     io.Writer

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vgdemangle",
	Short: "Symbol name demangler",
	Long: `vgdemangle turns raw symbol names into human-readable ones.

It undoes Z-encoded redirect specifiers, Itanium C++ mangling and the
escaping the Rust compiler applies on top of C++ mangling.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configFile != "" {
			cfg, err = config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		} else {
			cfg = config.Default()
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		demangle.SetLogger(logger)

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = cmd.OutOrStdout()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(demangleCmd)
	rootCmd.AddCommand(zdecodeCmd)
	rootCmd.AddCommand(zencodeCmd)
	rootCmd.AddCommand(rustCmd)
}

// finish closes the output file and flushes the logger. Unlike a post-run
// hook it also runs when the command fails.
func finish() {
	if f, ok := output.(*os.File); ok && f != os.Stdout {
		f.Close()
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func newLogger(c *config.Config) (*zap.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
