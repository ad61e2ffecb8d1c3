package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"themekit/blocks"
	"themekit/config"
	"themekit/overrides"
	"themekit/preview"
	"themekit/theme"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	format      string
	logLevel    string
	stream      bool
	check       bool
	noStrict    bool
	pickVariant string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("themekit", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "path to config.toml (default: $XDG_CONFIG_HOME/themekit/config.toml)")
	flagSet.StringVar(&opts.format, "format", "", "output format: json, toml, yaml, i3bar, preview")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.stream, "stream", false, "read newline-delimited JSON overrides from stdin, resolve each")
	flagSet.BoolVar(&opts.check, "check", false, "validate the override without falling back; exit 1 on issues")
	flagSet.BoolVar(&opts.noStrict, "no-strict", false, "allow fields the theme schema does not declare")
	flagSet.StringVar(&opts.pickVariant, "pick-variant", "", "print a random variant index of the named component")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(1))
	}

	cfg, cfgErr := config.Load(opts.configPath)
	if opts.format != "" {
		format := strings.ToLower(opts.format)
		if !config.ValidFormat(format) {
			return fmt.Errorf("unknown format %q", opts.format)
		}
		cfg.Format = format
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noStrict {
		cfg.Strict = false
	}
	if flagSet.NArg() == 1 {
		cfg.Theme = flagSet.Arg(0)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if cfgErr != nil {
		if opts.configPath != "" {
			logger.Warn("config", "error", cfgErr)
		} else {
			logger.Debug("config", "error", cfgErr)
		}
	}

	resolver := theme.NewResolver(
		theme.WithValidator(theme.SchemaValidator{Strict: cfg.Strict}),
		theme.WithReporter(theme.SlogReporter{Logger: logger}),
	)
	inline := cfg.InlineOverrides()

	if opts.stream {
		return runStream(resolver, inline, cfg, stdin, stdout, logger)
	}

	partial, loadErr := loadOverride(cfg.Theme, inline)
	if opts.check {
		if loadErr != nil {
			return loadErr
		}
		return runCheck(resolver, partial, stdout, stderr)
	}
	if loadErr != nil {
		// An unreadable override is treated like an invalid one.
		logger.Error(theme.FallbackMessage, "error", loadErr)
		partial = nil
	}
	resolved := resolver.Resolve(partial)

	if opts.pickVariant != "" {
		idx, err := theme.PickVariant(resolved, opts.pickVariant)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, idx)
		return err
	}

	if cfg.Format == "i3bar" && loadErr != nil {
		row := append(blocks.FromTheme(resolved), blocks.ErrorBlock(resolved, "themekit", "theme err"))
		return blocks.WriteProtocol(stdout, row)
	}
	return emit(stdout, cfg, resolved)
}

// loadOverride layers the override file at path over the inline overrides.
func loadOverride(path string, inline theme.Tree) (theme.Tree, error) {
	if path == "" {
		return inline, nil
	}
	fromFile, err := overrides.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return theme.Merge(inline, fromFile), nil
}

func runCheck(resolver *theme.Resolver, partial theme.Tree, stdout, stderr io.Writer) error {
	err := resolver.Check(partial)
	if err == nil {
		_, werr := fmt.Fprintln(stdout, "theme is valid")
		return werr
	}
	issues := theme.Issues(err)
	for _, issue := range issues {
		fmt.Fprintf(stderr, "  - %s\n", issue)
	}
	return fmt.Errorf("%d validation issue(s) found", len(issues))
}

func runStream(resolver *theme.Resolver, inline theme.Tree, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var write func(theme.Tree) error
	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(stdout)
		write = func(t theme.Tree) error { return enc.Encode(t) }
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		defer enc.Close()
		write = func(t theme.Tree) error { return enc.Encode(t) }
	case "i3bar":
		pw := blocks.NewWriter(stdout)
		write = func(t theme.Tree) error { return pw.WriteRow(blocks.FromTheme(t)) }
	default:
		return fmt.Errorf("format %s does not support --stream", cfg.Format)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	in := make(chan theme.Tree, 16)
	go overrides.Read(ctx, stdin, in, logger)
	for partial := range in {
		if err := write(resolver.Resolve(theme.Merge(inline, partial))); err != nil {
			return err
		}
	}
	return nil
}

func emit(w io.Writer, cfg *config.Config, resolved theme.Tree) error {
	switch cfg.Format {
	case "toml":
		return toml.NewEncoder(w).Encode(resolved)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resolved); err != nil {
			return err
		}
		return enc.Close()
	case "i3bar":
		return blocks.WriteProtocol(w, blocks.FromTheme(resolved))
	case "preview":
		return preview.Render(w, resolved, preview.Options{Width: terminalWidth(w)})
	default:
		enc := json.NewEncoder(w)
		if cfg.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		}
		return enc.Encode(resolved)
	}
}

// terminalWidth returns the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `themekit resolves a partial theme override into a complete theme.

The override is merged over the built-in default theme and validated. An
invalid override is reported on stderr and the default theme is printed
instead.

Usage:
  themekit [flags] [override-file]

Override files may be TOML, YAML, JSON or JSONC, chosen by extension.

Examples:
  # Print the default theme
  themekit

  # Resolve a YAML override and preview it in the terminal
  themekit --format preview brand.yaml

  # Validate an override, listing every problem
  themekit --check brand.toml

  # Resolve a stream of overrides, one JSON object per line
  producer | themekit --stream

Flags:
%s`, flagSet.FlagUsages())
}
