package commands

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textcrypt/internal/app"
	"textcrypt/internal/store"
)

var (
	configFile string
	verbose    bool
	appCtx     *app.Wire
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "textcrypt",
		Short:        "Sign, verify, encrypt and decrypt text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine.
			_ = godotenv.Load()

			v := app.NewViper()
			if err := app.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v, configFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = slog.LevelDebug
			}
			appCtx = app.NewWire(cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(textCmd(), base64Cmd(), genpassCmd(), csvCmd(), jwtCmd(), httpCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// checkInputs fails unless every ref is "-" or an existing file.
func checkInputs(refs ...string) error {
	for _, ref := range refs {
		if err := store.CheckInput(ref); err != nil {
			return err
		}
	}
	return nil
}
