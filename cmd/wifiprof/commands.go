package wifiprof

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/wifiprof/internal/version"
	"github.com/arthur-debert/wifiprof/pkg/cobrax/topics"
	"github.com/arthur-debert/wifiprof/pkg/config"
	"github.com/arthur-debert/wifiprof/pkg/dispatcher"
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/fetch"
	"github.com/arthur-debert/wifiprof/pkg/installer"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/arthur-debert/wifiprof/pkg/paths"
	"github.com/arthur-debert/wifiprof/pkg/profile"
	"github.com/arthur-debert/wifiprof/pkg/style"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the flags and lazily loaded configuration shared by the
// commands of one invocation
type app struct {
	verbosity  int
	configFile string
	dryRun     bool

	cfg *config.Config
}

// config loads the configuration on first use so that commands such as
// version work with a broken config file. Overrides come from command
// flags and win over every other source.
func (a *app) config(overrides map[string]interface{}) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(config.Options{File: a.configFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "wifiprof",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewMarkdownRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadRecord reads the profile at source and extracts its Wi-Fi payload
func loadRecord(ctx context.Context, cfg *config.Config, source string) (*types.ConfigurationRecord, error) {
	client := fetch.NewClient(fetch.Options{
		URL:       cfg.Client.URL,
		Timeout:   cfg.Client.Timeout,
		UserAgent: cfg.Client.UserAgent,
	})

	data, err := client.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	rec, ok := profile.Parse(data)
	if !ok {
		return nil, errors.New(errors.ErrProfileUnreadable, MsgErrUnreadable)
	}
	return rec, nil
}

// flagOverrides maps non-empty flag values to their config keys
func flagOverrides(values map[string]string) map[string]interface{} {
	overrides := make(map[string]interface{})
	for key, value := range values {
		if value != "" {
			overrides[key] = value
		}
	}
	return overrides
}

func backendOverride(name string) map[string]interface{} {
	return flagOverrides(map[string]string{"installer.backend": name})
}

// openBackend builds the configured credential store
func openBackend(cfg *config.Config) (types.Backend, string, error) {
	name := cfg.Installer.Backend
	backend, err := installer.Open(installer.Settings{
		Backend:    name,
		StorePath:  cfg.Installer.StorePath,
		NmcliPath:  cfg.Installer.NmcliPath,
		WpaCliPath: cfg.Installer.WpaCliPath,
		Interface:  cfg.Installer.Interface,
	})
	return backend, name, err
}

// withInstallerTimeout bounds one backend call
func withInstallerTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.Installer.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Installer.Timeout)
	}
	return context.WithCancel(ctx)
}

// richOutput reports whether w is a color capable terminal
func richOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && style.IsRich(f)
}

func backendCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return installer.Backends(), cobra.ShellCompDirectiveNoFileComp
}

func newShowCmd(a *app) *cobra.Command {
	var (
		format     string
		androidXML bool
		qr         bool
	)

	cmd := &cobra.Command{
		Use:     "show [file-or-url]",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if androidXML && qr {
				return errors.New(errors.ErrInvalidInput, MsgErrExclusiveShow)
			}
			f, err := style.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := a.config(nil)
			if err != nil {
				return err
			}

			rec, err := loadRecord(cmd.Context(), cfg, sourceArg(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case androidXML:
				return writeAndroidXML(out, rec)
			case qr:
				return writeQR(out, rec)
			}
			return writeRecord(out, rec, f.Resolve(outputFile(out)))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().BoolVar(&androidXML, "android-xml", false, MsgFlagAndroidXML)
	cmd.Flags().BoolVar(&qr, "qr", false, MsgFlagQR)

	return cmd
}

func newInstallCmd(a *app) *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:     "install [file-or-url]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(backendOverride(backendName))
			if err != nil {
				return err
			}

			rec, err := loadRecord(cmd.Context(), cfg, sourceArg(args))
			if err != nil {
				return err
			}

			backend, name, err := openBackend(cfg)
			if err != nil {
				return err
			}

			log.Info().
				Str("backend", name).
				Str("classification", string(rec.Classify())).
				Bool("dry_run", a.dryRun).
				Msg("Installing profile")

			ctx, cancel := withInstallerTimeout(cmd.Context(), cfg)
			defer cancel()

			d := dispatcher.New(dispatcher.Options{
				Installer: backend,
				DryRun:    a.dryRun,
				OnTransition: func(s dispatcher.State) {
					log.Trace().Str("state", string(s)).Msg("Install state")
				},
			})
			result := d.Run(ctx, *rec)

			out := cmd.OutOrStdout()
			writeResult(out, result, richOutput(out))
			return resultError(result)
		},
	}

	cmd.Flags().StringVarP(&backendName, "backend", "b", "", MsgFlagBackend)
	_ = cmd.RegisterFlagCompletionFunc("backend", backendCompletion)

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(backendOverride(backendName))
			if err != nil {
				return err
			}
			backend, name, err := openBackend(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := withInstallerTimeout(cmd.Context(), cfg)
			defer cancel()

			ids, err := backend.ListInstalledNetworkIdentifiers(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, MsgNoNetworks)
				return nil
			}
			fmt.Fprintf(out, MsgNetworksHeader+"\n", name)
			for _, id := range ids {
				fmt.Fprintf(out, MsgNetworkItem, id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&backendName, "backend", "b", "", MsgFlagBackend)
	_ = cmd.RegisterFlagCompletionFunc("backend", backendCompletion)

	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:     "remove <ssid-or-domain>",
		Short:   MsgRemoveShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(backendOverride(backendName))
			if err != nil {
				return err
			}
			backend, name, err := openBackend(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.dryRun {
				fmt.Fprintf(out, MsgDryRunRemove, args[0], name)
				return nil
			}

			ctx, cancel := withInstallerTimeout(cmd.Context(), cfg)
			defer cancel()

			if err := backend.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, MsgRemoved, args[0], name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&backendName, "backend", "b", "", MsgFlagBackend)
	_ = cmd.RegisterFlagCompletionFunc("backend", backendCompletion)

	return cmd
}

func newConfigCmd() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showPath {
				fmt.Fprintf(out, MsgConfigPathLabel, paths.ConfigFile())
			}
			fmt.Fprint(out, config.GenerateConfigContent())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagConfigPath)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return errors.New(errors.ErrInternal, "help command not found")
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			fmt.Fprintf(out, MsgVersionDate, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
