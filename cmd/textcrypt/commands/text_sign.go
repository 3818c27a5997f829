package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func textSignCmd() *cobra.Command {
	var input, key string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a private/shared key",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := appCtx.Config.Format
			if err := checkInputs(input, key); err != nil {
				return err
			}
			sig, err := appCtx.Text.Sign(input, key, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file")
	formatFlag(cmd)
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
