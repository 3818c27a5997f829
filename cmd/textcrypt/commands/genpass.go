package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textcrypt/internal/services/genpass"
)

func genpassCmd() *cobra.Command {
	var opts genpass.Options
	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := appCtx.Passwords.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			// Strength goes to stderr so stdout stays pipeable.
			fmt.Fprintf(cmd.ErrOrStderr(), "Estimated strength: %d\n", genpass.Strength(pw))
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Length, "length", "l", 16, "password length")
	cmd.Flags().BoolVar(&opts.Upper, "uppercase", true, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.Lower, "lowercase", true, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.Number, "number", true, "include digits")
	cmd.Flags().BoolVar(&opts.Symbol, "symbol", true, "include symbols")
	return cmd
}
