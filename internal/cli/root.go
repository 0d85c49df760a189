package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/re2ab/pkg/config"
	"github.com/matzehuels/re2ab/pkg/document"
	"github.com/matzehuels/re2ab/pkg/errors"
	"github.com/matzehuels/re2ab/pkg/normalize"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	configPath string
	keys       []string
	base       string
	indent     int
	dryRun     bool
	stdout     bool
	check      bool
	noStrict   bool
}

func (o *rootOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (default .re2ab.toml, or $"+config.EnvVar+")")
	f.StringArrayVarP(&o.keys, "key", "k", nil, "key whose value is a path (repeatable, replaces the configured keys)")
	f.StringVar(&o.base, "base", "", "directory to resolve relative paths against (default: the file's directory)")
	f.IntVar(&o.indent, "indent", 4, "spaces per indentation level, -1 for a single line")
	f.BoolVar(&o.dryRun, "dry-run", false, "report rewrites without writing")
	f.BoolVar(&o.stdout, "stdout", false, "print the rewritten document instead of writing the file")
	f.BoolVar(&o.check, "check", false, "fail if any file is not normalized, without writing")
	f.BoolVar(&o.noStrict, "no-strict", false, "skip non-string path values instead of failing")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "stdout", "check")
}

// loadConfig reads the config file, if any, and applies flags on top of it.
func (o *rootOptions) loadConfig(cmd *cobra.Command, logger *log.Logger) (config.Config, error) {
	cfg := config.Default()
	if path, found := config.Locate(o.configPath); found {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		logger.Debug("loaded config", "file", path)
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("key") {
		cfg.Keys = o.keys
	}
	if f.Changed("indent") {
		cfg.Indent = o.indent
	}
	if f.Changed("no-strict") {
		cfg.Strict = !o.noStrict
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *rootOptions) normalizeOptions(cmd *cobra.Command, cfg config.Config) normalize.Options {
	opts := normalize.Options{
		Keys:   cfg.Keys,
		Base:   o.base,
		Strict: cfg.Strict,
		Encode: document.EncodeOptions{Indent: cfg.Indent, ASCII: cfg.EnsureASCII},
		Atomic: cfg.Atomic,
		DryRun: o.dryRun || o.check,
	}
	if o.stdout {
		opts.Output = cmd.OutOrStdout()
	}
	return opts
}

// runNormalize rewrites every target file in order and stops at the first error.
func (c *CLI) runNormalize(cmd *cobra.Command, args []string, o *rootOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := o.loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		files = cfg.Files
	}
	if len(files) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no files to normalize")
	}

	n := normalize.New(o.normalizeOptions(cmd, cfg), logger)
	out := cmd.OutOrStdout()
	prog := newProgress(logger)

	var pending []string
	for _, file := range files {
		res, err := n.NormalizeFile(ctx, file)
		if err != nil {
			return err
		}

		switch {
		case o.stdout:
			fmt.Fprintln(out)
		case o.dryRun:
			printReport(out, res)
		case o.check && res.Changed:
			printReport(out, res)
			pending = append(pending, file)
		}
	}

	if len(pending) > 0 {
		return errors.New(errors.ErrCodeNeedsRewrite, "%d of %d file(s) need rewriting: %s",
			len(pending), len(files), strings.Join(pending, ", "))
	}
	if o.check {
		printSuccess(out, "%d file(s) already normalized", len(files))
	}

	prog.done(fmt.Sprintf("Processed %d file(s)", len(files)))
	return nil
}
