package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textcrypt/internal/app"
)

// text generate: blake3 writes blake3.txt, ed25519 writes ed25519.sk then ed25519.pk.
func textGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key or key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := appCtx.Config.Format
			blobs, err := appCtx.Text.GenerateKey(f)
			if err != nil {
				return err
			}
			paths, err := appCtx.Keys.SaveKeys(f, blobs)
			if err != nil {
				return err
			}
			for _, p := range paths {
				appCtx.Logger.Info("wrote key", "path", p)
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	formatFlag(cmd)
	cmd.Flags().StringP("output", "o", "", "output directory (default from config)")
	bindConfig(cmd, "output", app.KeyKeyDir)
	return cmd
}
