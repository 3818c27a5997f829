package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func textEncryptCmd() *cobra.Command {
	var input, key string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt with chacha20poly1305 and output base64 encoded text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(input, key); err != nil {
				return err
			}
			ct, err := appCtx.Text.Encrypt(input, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&key, "key", "k", "", "44-byte key file (nonce || key)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func textDecryptCmd() *cobra.Command {
	var input, key string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt chacha20poly1305 ciphertext from base64 encoded text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(input, key); err != nil {
				return err
			}
			pt, err := appCtx.Text.Decrypt(input, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&key, "key", "k", "", "44-byte key file (nonce || key)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
