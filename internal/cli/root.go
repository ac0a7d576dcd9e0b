package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewsawatzky/themepref/internal/config"
	"github.com/matthewsawatzky/themepref/internal/storage"
	"github.com/matthewsawatzky/themepref/internal/theme"
)

type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootState struct {
	configPath     string
	dataDir        string
	logLevel       string
	storage        string
	nonInteractive bool
}

func NewRootCmd(v VersionInfo) *cobra.Command {
	state := &rootState{}
	explain := false

	cmd := &cobra.Command{
		Use:           "themepref",
		Short:         "Persist a light/dark/system theme preference and resolve it for the current host",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, state, "", explain)
		},
	}
	cmd.PersistentFlags().StringVar(&state.configPath, "config", "", "config path (default: platform user config)")
	cmd.PersistentFlags().StringVar(&state.dataDir, "data-dir", "", "data directory for the SQLite store")
	cmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&state.storage, "storage", "", "storage backend: "+strings.Join(storage.Backends(), "|"))
	cmd.PersistentFlags().BoolVar(&state.nonInteractive, "non-interactive", false, "do not query the host color scheme; system resolves to light")
	cmd.Flags().BoolVar(&explain, "explain", false, "print which host signal decided the result")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, state)
			if err != nil {
				return err
			}
			defer s.Close()
			fmt.Fprintln(cmd.OutOrStdout(), s.store.Get())
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Persist a new theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark", "system"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := theme.ParsePreference(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(cmd, state)
			if err != nil {
				return err
			}
			defer s.Close()
			switch err := s.store.Update(p); {
			case !s.store.Persistent():
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: no durable storage available; %s applies to this process only\n", p)
			case err != nil:
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not save preference (%v); %s applies to this process only\n", err, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme preference set to %s\n", s.store.Get())
			return nil
		},
	}

	resolveExplain := false
	resolveCmd := &cobra.Command{
		Use:   "resolve [light|dark|system]",
		Short: "Print the concrete mode (light or dark) for the stored or given preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pref := ""
			if len(args) == 1 {
				pref = args[0]
			}
			return runResolve(cmd, state, pref, resolveExplain)
		},
	}
	resolveCmd.Flags().BoolVar(&resolveExplain, "explain", false, "print which host signal decided the result")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print config location and effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, cfg, err := loadConfig(cmd, state)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", cfgPath)
			fmt.Fprintf(out, "Data dir: %s\n", cfg.DataDir)
			if err := config.Validate(cfg); err != nil {
				fmt.Fprintf(out, "Validation: failed (%v)\n", err)
			} else {
				fmt.Fprintln(out, "Validation: ok")
			}
			b, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Fprintln(out, string(b))
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Interactive first-run setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, state, cmd.InOrStdin())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "themepref %s\ncommit: %s\nbuilt: %s\n", v.Version, v.Commit, v.Date)
		},
	}

	cmd.AddCommand(getCmd, setCmd, resolveCmd, buildPaletteCommand(state), buildHistoryCommand(state), configCmd, initCmd, versionCmd)
	return cmd
}

func loadConfig(cmd *cobra.Command, state *rootState) (string, config.Config, error) {
	cfgPath := strings.TrimSpace(state.configPath)
	if cfgPath == "" {
		p, err := config.ConfigPathFromEnv()
		if err != nil {
			return "", config.Config{}, err
		}
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath, state.dataDir)
	if err != nil {
		return "", config.Config{}, err
	}
	if flagChanged(cmd, "log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(state.logLevel))
	}
	if flagChanged(cmd, "storage") {
		cfg.Storage = strings.ToLower(strings.TrimSpace(state.storage))
	}
	return cfgPath, cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func runResolve(cmd *cobra.Command, state *rootState, prefArg string, explain bool) error {
	s, err := openSession(cmd, state)
	if err != nil {
		return err
	}
	defer s.Close()

	pref := s.store.Get()
	if prefArg != "" {
		if pref, err = theme.ParsePreference(prefArg); err != nil {
			return err
		}
	}
	resolved := theme.Resolve(pref, s.host)
	out := cmd.OutOrStdout()
	if !explain {
		fmt.Fprintln(out, resolved)
		return nil
	}
	fmt.Fprintf(out, "%s -> %s (%s)\n", pref, resolved, explainSource(pref, s))
	return nil
}

func explainSource(pref theme.Preference, s *session) string {
	if pref != theme.PreferenceSystem {
		return "explicit preference"
	}
	if !s.host.Interactive() {
		return "non-interactive context"
	}
	sig := s.host.Query()
	if sig.Source == "" {
		return "no host signal"
	}
	return "host signal: " + sig.Source
}

func runInit(cmd *cobra.Command, state *rootState, in io.Reader) error {
	cfgPath, cfg, err := loadConfig(cmd, state)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := bufio.NewReader(in)
	fmt.Fprintln(out, "themepref first-run setup")
	cfg.Storage = strings.ToLower(askWithDefault(out, r, "Storage backend ("+strings.Join(storage.Backends(), "/")+")", cfg.Storage))
	if cfg.Storage == storage.BackendSQLite {
		cfg.DataDir = askWithDefault(out, r, "Data directory", cfg.DataDir)
	}
	cfg.DefaultPreference = strings.ToLower(askWithDefault(out, r, "Default preference (light/dark/system)", cfg.DefaultPreference))
	cfg.LogLevel = strings.ToLower(askWithDefault(out, r, "Log level (debug/info/warn/error)", cfg.LogLevel))
	cfg.PaletteFile = askWithDefault(out, r, "Palette override file (TOML, optional)", cfg.PaletteFile)
	cfg.TerminalBackground = askBoolWithDefault(out, r, "Use terminal background as a fallback signal", cfg.TerminalBackground)

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", cfgPath)
	fmt.Fprintln(out, "Run `themepref set <light|dark|system>` to choose a theme.")
	return nil
}

func askWithDefault(out io.Writer, r *bufio.Reader, label, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	text, _ := r.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	return text
}

func askBoolWithDefault(out io.Writer, r *bufio.Reader, label string, def bool) bool {
	defaultStr := "n"
	if def {
		defaultStr = "y"
	}
	for {
		v := strings.ToLower(askWithDefault(out, r, label+" (y/n)", defaultStr))
		switch v {
		case "y", "yes", "true", "1":
			return true
		case "n", "no", "false", "0":
			return false
		default:
			fmt.Fprintln(out, "Enter y or n.")
		}
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Execute runs the root command and returns the process exit code.
func Execute(v VersionInfo) int {
	return exitCode(NewRootCmd(v).Execute())
}
