package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bft-labs/baseconv/internal/adapters/terminal"
	"github.com/bft-labs/baseconv/internal/cliconfig"
	"github.com/bft-labs/baseconv/internal/ports"
	"github.com/bft-labs/baseconv/internal/session"
	"github.com/bft-labs/baseconv/pkg/baseconv"
	"github.com/bft-labs/baseconv/pkg/log"
)

const helpDescription = `
Convert numbers between positional bases 2 to 64, fractions included.

Digits use the symbols 0-9 A-Z Ñ a-z ñ. Up to base 37 input is case
insensitive. Fractions are shown with five digits.

Without a subcommand baseconv starts an interactive session: enter a
"{source base} {target base}" pair, then numbers to convert. Type /back to
pick another pair and /exit to quit.
`

var exampleUsage = strings.TrimSpace(`
  baseconv
  baseconv convert --from 16 --to 2 ff.8
  baseconv table 255
  printf '10 2\n0.1\n/back\n/exit\n' | baseconv --quiet
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by the commands of one invocation.
type app struct {
	cfg         cliconfig.Config
	cfgPath     string
	interactive bool
	logger      *log.ZerologAdapter
}

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

func logFailure(err error) {
	log.NewZerologAdapter(zerolog.ErrorLevel).Error("baseconv", log.Err(err))
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		logger: log.NewZerologAdapterWithLogger(zerolog.Nop()),
	}

	root := &cobra.Command{
		Use:           "baseconv",
		Short:         "Convert numbers between bases 2 to 64",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.baseconv/config.toml)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.cfg.HistoryFile, "history-file", a.cfg.HistoryFile, "interactive history file (empty disables history)")
	root.PersistentFlags().BoolVarP(&a.cfg.Quiet, "quiet", "q", a.cfg.Quiet, "do not print prompts")
	root.Flags().BoolVar(&a.interactive, "interactive", false, "use line editing even when stdin is not a terminal")

	root.AddCommand(newConvertCmd(a), newTableCmd(a))
	return root
}

// loadConfig layers file, environment and flags, in increasing precedence.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("config file %s not found", cfgFile)
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	// Settings used by a single subcommand are checked by that command.
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	a.logger = log.NewZerologAdapterWithLogger(cliconfig.Logger(lvl))
	a.logger.Debug("configuration", log.Any("config", a.cfg), log.String("config_file", cfgFile))
	return nil
}

func (a *app) converter() *baseconv.Converter {
	return baseconv.New(baseconv.WithLogger(a.logger))
}

func (a *app) runSession(cmd *cobra.Command) error {
	reader, err := a.newReader(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	s, err := session.New(session.Config{
		Reader:    reader,
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
		Converter: a.converter(),
		Logger:    a.logger,
		Quiet:     a.cfg.Quiet,
	})
	if err != nil {
		return err
	}
	return s.Run(cmd.Context())
}

// newReader picks line editing for terminals and a plain reader otherwise.
func (a *app) newReader(cmd *cobra.Command) (ports.LineReader, error) {
	in := cmd.InOrStdin()
	if !a.interactive && !isTerminal(in) {
		return terminal.NewLineReader(in), nil
	}

	history := a.cfg.HistoryFile
	if history != "" {
		if err := os.MkdirAll(filepath.Dir(history), 0o700); err != nil {
			a.logger.Warn("history disabled", log.String("history_file", history), log.Err(err))
			history = ""
		}
	}

	rc, ok := in.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(in)
	}
	return terminal.NewReadline(terminal.ReadlineConfig{
		HistoryFile: history,
		Completions: []string{session.CmdExit, session.CmdBack},
		Stdin:       rc,
		Stdout:      cmd.OutOrStdout(),
	})
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
