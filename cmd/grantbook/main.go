// Package main provides the CLI entry point for grantbook.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/grantbook-go/internal/config"
	"github.com/ukaji3/grantbook-go/pkg/grantbook"
	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/ukaji3/grantbook-go/pkg/grantbook/output"
)

var (
	outputPath string
	logLevel   string

	inspectOutput string
	format        string
	pretty        bool
	mode          string
	formulas      bool
	checkRefs     bool
	sheetName     string
)

var logger = logrus.New()

func main() {
	cfg, err := config.Load(grantbook.DefaultOutputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetOutput(os.Stderr)

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grantbook",
		Short: "Generate the program-tracking Excel import template",
		Long: `grantbook writes the three-sheet import template (project data, monthly
report, expenditure) with named ranges, dropdown lists and lookup formulas.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", logLevel)
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: generate,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", cfg.OutputPath, "Output file path")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Read a template back into JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().StringVar(&mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	inspectCmd.Flags().BoolVar(&formulas, "formulas", false, "Include formula text (implied by --mode verbose)")
	inspectCmd.Flags().BoolVar(&checkRefs, "check-refs", false, "Report IDs and subjects missing from the project data sheet (default: on in standard and verbose modes, off in light mode)")
	inspectCmd.Flags().StringVar(&sheetName, "sheet", "", "Only output the named sheet")
	rootCmd.AddCommand(inspectCmd)

	return rootCmd
}

func generate(cmd *cobra.Command, args []string) error {
	opts := grantbook.DefaultOptions()
	opts.OutputPath = outputPath
	opts.Logger = logger

	path, err := grantbook.Generate(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Excel 範本已建立：%s\n", path)
	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	var extractMode grantbook.Mode
	switch mode {
	case "light":
		extractMode = grantbook.ModeLight
	case "standard":
		extractMode = grantbook.ModeStandard
	case "verbose":
		extractMode = grantbook.ModeVerbose
	default:
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}

	opts := grantbook.Options{
		Mode:   extractMode,
		Logger: logger,
	}
	if cmd.Flags().Changed("formulas") {
		opts.IncludeFormulas = &formulas
	}
	if cmd.Flags().Changed("check-refs") {
		opts.CheckReferences = &checkRefs
	}

	wb, err := grantbook.Extract(args[0], opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var sheet *models.SheetData
	if sheetName != "" {
		var ok bool
		if sheet, ok = wb.Sheet(sheetName); !ok {
			return fmt.Errorf("sheet not found: %s", sheetName)
		}
	}

	var data []byte
	switch {
	case format == "json" && sheet != nil:
		data, err = output.SheetToJSON(sheet, pretty)
	case format == "json":
		data, err = output.ToJSON(wb, pretty)
	case format == "yaml" && sheet != nil:
		data, err = output.SheetToYAML(sheet)
	case format == "yaml":
		data, err = output.ToYAML(wb)
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if inspectOutput != "" {
		if err := os.WriteFile(inspectOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
