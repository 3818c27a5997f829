package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func textVerifyCmd() *cobra.Command {
	var input, key, sig string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed message",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := appCtx.Config.Format
			if err := checkInputs(input, key); err != nil {
				return err
			}
			ok, err := appCtx.Text.Verify(input, key, f, sig)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file (public key for ed25519)")
	formatFlag(cmd)
	cmd.Flags().StringVarP(&sig, "sig", "s", "", "signature, URL-safe base64")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
