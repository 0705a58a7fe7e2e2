// Package main provides the CLI entrypoint for confgen.
//
// confgen is a schema compiler: it reads a declarative variable schema
// (config.toml), resolves it into a normalized model of subjects,
// applications and conditional-requirement rules, and emits a Go source
// file with typed accessors and cross-field validation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"confgen/internal/gen"
	"confgen/internal/schema"
)

func main() {
	if err := command().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath    string
	outputPath    string
	packageName   string
	runtimeImport string
}

func command() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		SilenceUsage:  true, // Don't print usage on Run error.
		SilenceErrors: true, // Don't print errors; main does it.
		Use:           "confgen",
		Short:         "Generate typed configuration-access code from a variable schema",
		Long: `confgen compiles a declarative variable schema into a Go source file with
one typed accessor per subject, conditional-requirement validation, and an
aggregate startup validator per application.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "config.toml", "path to the schema document")
	cmd.Flags().StringVar(&opts.outputPath, "output", "config/config.gen.go", "path of the generated source file")
	cmd.Flags().StringVar(&opts.packageName, "package", "config", "package name of the generated file")
	cmd.Flags().StringVar(&opts.runtimeImport, "runtime-import", "confgen/runtime", "import path of the confgen runtime package")

	return cmd
}

func run(opts options) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := schema.Load(opts.configPath)
	if err != nil {
		return err
	}

	for _, w := range s.Warnings {
		logger.Warn("schema warning", zap.String("finding", w.String()))
	}

	logger.Info("schema parsed",
		zap.Int("subjects", len(s.Subjects)),
		zap.Int("applications", len(s.Applications)),
		zap.Int("variables", len(s.Variables)))

	g := gen.New(gen.Config{
		PackageName:   opts.packageName,
		RuntimeImport: opts.runtimeImport,
		Source:        opts.configPath,
	})

	code, err := g.Generate(s)
	if err != nil {
		return err
	}

	if err := gen.WriteFile(opts.outputPath, code); err != nil {
		return err
	}

	logger.Info("generated configuration code written", zap.String("path", opts.outputPath))
	fmt.Println(opts.outputPath)

	return nil
}
