package commands

import (
	"github.com/spf13/cobra"

	"textcrypt/internal/app"
)

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Text sign, verify, key generation and encryption",
	}
	cmd.AddCommand(
		textSignCmd(),
		textVerifyCmd(),
		textGenerateCmd(),
		textEncryptCmd(),
		textDecryptCmd(),
	)
	return cmd
}

// bindConfig marks flag name on cmd as an override of config key. The root
// command binds it before loading config.
func bindConfig(cmd *cobra.Command, name, key string) {
	_ = cmd.Flags().SetAnnotation(name, app.ConfigKeyAnnotation, []string{key})
}

// formatFlag registers --format as an override of the configured default.
func formatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "blake3 or ed25519 (default from config)")
	bindConfig(cmd, "format", app.KeyFormat)
}
