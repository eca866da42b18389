// Command fincalc runs compound interest, loan, rate, margin, VAT and down
// payment calculations from flags or from a YAML batch file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/engine"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/output"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix prefixes environment variables that stand in for the shared
// flags, e.g. FINCALC_OUTPUT_FORMAT for --output-format.
const envPrefix = "FINCALC"

// Keys of the flags shared by every subcommand.
const (
	keyLogLevel     = "log-level"
	keyLogFormat    = "log-format"
	keyOutputFormat = "output-format"
	keyOutputFile   = "output-file"
)

// rootOptions resolves the shared flags. A flag set on the command line
// wins over its environment variable, which wins over the flag default.
type rootOptions struct {
	settings *viper.Viper
}

func (o *rootOptions) get(key string) string {
	return o.settings.GetString(key)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	opts := &rootOptions{settings: settings}

	rootCmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Financial calculators",
		Long: `fincalc projects compound growth, amortizes loans, solves for the rate
behind a growth target and computes margin, VAT and down payment figures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyLogLevel, "", "log level override (debug, info, warn, error)")
	flags.String(keyLogFormat, "", "log format override (json, console)")
	flags.StringP(keyOutputFormat, "o", "", "output format: pretty, csv, json, yaml")
	flags.String(keyOutputFile, "", "write results to this file instead of stdout")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newCompoundCmd(opts),
		newAmortizeCmd(opts),
		newRateCmd(opts),
		newMarginCmd(opts),
		newVATCmd(opts),
		newDownPaymentCmd(opts),
	)
	return rootCmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var configLocation string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculation in a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfiguration(configLocation)
			if err != nil {
				return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
			}
			return execute(cmd, opts, conf.Logging, conf.Output.Format, conf.ValidateConfiguration(), conf.Calculations)
		},
	}
	cmd.Flags().StringVarP(&configLocation, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	return cmd
}

// execute computes calcs and writes the results. CLI flags override the
// configured log format and output format.
func execute(cmd *cobra.Command, opts *rootOptions, logging config.LoggingConfig, outputFormat string, warnings []string, calcs []config.Calculation) (err error) {
	if logFormat := opts.get(keyLogFormat); logFormat != "" {
		logging.Format = logFormat
	}
	logger, err := initializeLogger(logging, opts.get(keyLogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if override := opts.get(keyOutputFormat); override != "" {
		outputFormat = override
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.execute"),
		)
	}

	results, err := engine.New(logger).ComputeAll(calcs)
	if err != nil {
		logger.Error("calculation failed",
			zap.String("op", "main.execute"),
			zap.Int("completed", len(results)),
			zap.Error(err),
		)
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputFile := opts.get(keyOutputFile); outputFile != "" {
		file, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputFile, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file %s: %w", outputFile, closeErr)
			}
		}()
		w = file
	}

	if err := output.Write(w, outputFormat, results); err != nil {
		return err
	}
	logger.Debug("results written",
		zap.String("op", "main.execute"),
		zap.String("format", outputFormat),
	)
	return nil
}

// executeSingle runs one calculation built from subcommand flags.
func executeSingle(cmd *cobra.Command, opts *rootOptions, calc config.Calculation) error {
	conf := &config.Configuration{Calculations: []config.Calculation{calc}}
	return execute(cmd, opts, conf.Logging, conf.Output.Format, conf.ValidateConfiguration(), conf.Calculations)
}
