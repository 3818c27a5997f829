package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"textcrypt/internal/app"
	"textcrypt/internal/domain"
	"textcrypt/internal/services/token"
)

func jwtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Sign or verify HS256 JSON Web Tokens",
	}
	cmd.AddCommand(jwtSignCmd(), jwtVerifyCmd())
	return cmd
}

// secretFlag registers --secret as an override of the configured jwt_secret.
func secretFlag(cmd *cobra.Command) {
	cmd.Flags().String("secret", "", "HMAC secret (default from config)")
	bindConfig(cmd, "secret", app.KeyJWTSecret)
}

func jwtSignCmd() *cobra.Command {
	var sub, aud, exp string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Generate a new token, exp supports s/m/h/d suffixes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := token.ParseTTL(exp)
			if err != nil {
				return err
			}
			raw, err := appCtx.Tokens.Sign(sub, aud, ttl, appCtx.Config.JWTSecret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "subject claim")
	cmd.Flags().StringVar(&aud, "aud", "", "audience claim")
	cmd.Flags().StringVar(&exp, "exp", "1d", "lifetime, e.g. 30m or 14d")
	secretFlag(cmd)
	_ = cmd.MarkFlagRequired("sub")
	_ = cmd.MarkFlagRequired("aud")
	return cmd
}

func jwtVerifyCmd() *cobra.Command {
	var raw string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := appCtx.Tokens.Verify(raw, appCtx.Config.JWTSecret)
			if errors.Is(err, domain.ErrVerification) {
				appCtx.Logger.Warn("token rejected", "error", err)
				fmt.Fprintln(cmd.OutOrStdout(), false)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), true)
			// Claims go to stderr so stdout stays pipeable.
			fmt.Fprintf(cmd.ErrOrStderr(), "sub=%s aud=%s exp=%s\n",
				claims.Subject, claims.Audience, claims.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVarP(&raw, "token", "t", "", "compact JWT")
	secretFlag(cmd)
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
