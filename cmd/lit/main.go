package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/studiowebux/lit/internal/cli"
	"github.com/studiowebux/lit/internal/config"
	"github.com/studiowebux/lit/internal/gitconfig"
	"github.com/studiowebux/lit/internal/history"
	"github.com/studiowebux/lit/internal/keybinds"
	"github.com/studiowebux/lit/internal/logging"
	"github.com/studiowebux/lit/internal/profiles"
	"github.com/studiowebux/lit/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lit",
	Short: "lit - git identity profile switcher",
	Long: `lit keeps named git identities (user.name and user.email) and applies
one of them to your global git configuration.

Run without arguments to open the interactive menu.

Examples:
  lit                                         # Start interactive menu
  lit add-profile work "Alice" alice@corp.com # Add a profile
  lit switch-profile work                     # Apply a profile
  lit switch-profile                          # Pick a profile from a list
  lit list-profiles -o json --query '[?active].name'
  lit history -n 10                           # Recent switches`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add-profile <name> [user-name] [user-email]",
	Short: "Add or overwrite a profile",
	Long: `Add a profile. Missing user name or email are prompted for when stdin is a terminal.
An existing profile with the same name is overwritten.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		userName, userEmail := argAt(args, 1), argAt(args, 2)
		return withApp(func(app *cli.App, _ *environment) error {
			return app.AddProfile(args[0], userName, userEmail)
		})
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch-profile [name]",
	Short: "Apply a profile to the global git configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.SwitchProfile(cmd.Context(), argAt(args, 0))
		})
	},
}

var updateProfileCmd = &cobra.Command{
	Use:   "update-profile <name> <user-name> <user-email>",
	Short: "Change the identity of an existing profile",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.UpdateProfile(args[0], args[1], args[2])
		})
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.DeleteProfile(args[0])
		})
	},
}

var listProfilesCmd = &cobra.Command{
	Use:   "list-profiles",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.ListProfiles(cli.ListOptions{
				Format: flagOutput,
				Query:  flagQuery,
			})
		})
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.Current(cmd.Context())
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the switch history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, _ *environment) error {
			return app.History(cli.HistoryOptions{
				Limit:   flagLimit,
				Profile: flagHistoryProfile,
				Format:  flagOutput,
				Query:   flagQuery,
				Clear:   flagClear,
				Stats:   flagStats,
			})
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Show the interactive menu key bindings",
	Long: `Show the effective key bindings, including overrides from keybinds.json.
Use --defaults to print a keybinds.json template with every default binding.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *cli.App, env *environment) error {
			return app.Keybinds(keybinds.LoadOrDefault(env.settings.Keybinds.File), cli.KeybindsOptions{
				Format:   flagOutput,
				Defaults: flagDefaults,
			})
		})
	},
}

// Persistent flags
var (
	flagConfig   string
	flagStore    string
	flagLogLevel string
)

// Output flags shared by list-profiles, history and keybinds
var (
	flagOutput string
	flagQuery  string
)

// Flags for history
var (
	flagLimit          int
	flagHistoryProfile string
	flagClear          bool
	flagStats          bool
)

// Flags for keybinds
var (
	flagDefaults bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default ~/.lit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Profile store file (default ~/.lit/profiles.json)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")

	listProfilesCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatText, "Output format (text/json/yaml)")
	listProfilesCmd.Flags().StringVar(&flagQuery, "query", "", "JMESPath query applied to json/yaml output")

	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", history.DefaultLimit, "Number of entries to show")
	historyCmd.Flags().StringVar(&flagHistoryProfile, "profile", "", "Only show switches to this profile")
	historyCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatText, "Output format (text/json/yaml)")
	historyCmd.Flags().StringVar(&flagQuery, "query", "", "JMESPath query applied to json/yaml output")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every history entry")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Summarize switches per profile")

	keybindsCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatText, "Output format (text/json/yaml)")
	keybindsCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the default keybinds.json")

	rootCmd.AddCommand(addProfileCmd)
	rootCmd.AddCommand(switchProfileCmd)
	rootCmd.AddCommand(updateProfileCmd)
	rootCmd.AddCommand(deleteProfileCmd)
	rootCmd.AddCommand(listProfilesCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// environment is everything a command needs, built from settings and flags
type environment struct {
	settings *config.Settings
	logLevel string
	store    *profiles.Store
	git      *gitconfig.Git
	history  *history.Manager // nil when history is disabled or unavailable
	switcher *profiles.Switcher
}

func setup() (*environment, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	env := &environment{settings: settings, logLevel: settings.Log.Level}
	if flagLogLevel != "" {
		env.logLevel = flagLogLevel
	}
	logging.Setup(os.Stderr, env.logLevel)

	storeFile := flagStore
	if storeFile == "" {
		storeFile = settings.Store.File
	}
	env.store = profiles.Load(config.GetStoreFilePath(storeFile))
	if env.store.Dirty() {
		if err := env.store.Save(); err != nil {
			logging.Warnf("failed to save repaired profile store: %v", err)
		}
	}

	env.git = gitconfig.New(settings.Git.Binary, settings.Git.Timeout)

	var recorder profiles.Recorder
	if settings.History.Enabled {
		mgr, err := history.NewManager(settings.History.File)
		if err != nil {
			logging.Warnf("switch history unavailable: %v", err)
		} else {
			env.history = mgr
			recorder = mgr
		}
	}
	env.switcher = profiles.NewSwitcher(env.store, env.git, recorder)

	return env, nil
}

func (e *environment) close() {
	if e.history != nil {
		if err := e.history.Close(); err != nil {
			logging.Warnf("error closing history database: %v", err)
		}
	}
}

// withApp builds the environment and a cli.App over stdio and runs fn
func withApp(fn func(app *cli.App, env *environment) error) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	app := cli.New(env.store, env.switcher, os.Stdin, os.Stdout, os.Stderr)
	app.Git = env.git
	if env.history != nil {
		app.HistoryDB = env.history
	}
	app.Interactive = isTerminal(os.Stdin)
	app.Color = isTerminal(os.Stdout)

	return fn(app, env)
}

// runTUI starts the interactive menu
func runTUI(cmd *cobra.Command) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("the interactive menu needs a terminal; see 'lit --help' for commands")
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	// Warnings about keybinds.json go to stderr before the screen is taken over
	keys := keybinds.LoadOrDefault(env.settings.Keybinds.File)

	var logFile io.Closer
	if env.settings.Log.File != "" {
		logFile, err = logging.ToFile(env.settings.Log.File, env.logLevel)
		if err != nil {
			return err
		}
		defer logFile.Close()
	} else {
		logging.Setup(io.Discard, env.logLevel)
	}

	return tui.Run(tui.Options{
		Store:        env.store,
		Switcher:     env.switcher,
		Keys:         keys,
		Debounce:     env.settings.Input.Debounce,
		PollInterval: env.settings.Input.PollInterval,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
