package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"textcrypt/internal/domain"
)

func base64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode or decode",
	}
	cmd.AddCommand(base64EncodeCmd(), base64DecodeCmd())
	return cmd
}

func base64EncodeCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a string to base64",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseBase64Format(format)
			if err != nil {
				return err
			}
			if err := checkInputs(input); err != nil {
				return err
			}
			out, err := appCtx.Base64.Encode(input, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVar(&format, "format", "standard", "standard or urlsafe")
	return cmd
}

func base64DecodeCmd() *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a base64 string",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseBase64Format(format)
			if err != nil {
				return err
			}
			if err := checkInputs(input); err != nil {
				return err
			}
			out, err := appCtx.Base64.Decode(input, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVar(&format, "format", "standard", "standard or urlsafe")
	return cmd
}
