package commands

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"textcrypt/internal/domain"
	"textcrypt/internal/services/csvconv"
	"textcrypt/internal/store"
)

// csv writes output.<format> unless -o names a file; "-o -" prints instead.
func csvCmd() *cobra.Command {
	var input, output, format, delimiter string
	var header bool
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			d, size := utf8.DecodeRuneInString(delimiter)
			if size == 0 || size != len(delimiter) {
				return domain.Errorf(domain.ErrConfig, "delimiter must be a single character, got %q", delimiter)
			}
			if err := checkInputs(input); err != nil {
				return err
			}

			out, err := appCtx.CSV.Convert(input, csvconv.Options{Format: f, Delimiter: d, Header: header})
			if err != nil {
				return err
			}
			if output == store.StdinRef {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
			if output == "" {
				output = "output." + f.String()
			}
			if err := store.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			appCtx.Logger.Info("wrote csv output", "path", output, "format", f)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", `CSV file, "-" for stdin`)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default output.<format>)`)
	cmd.Flags().StringVar(&format, "format", "json", "json or yaml")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter")
	cmd.Flags().BoolVar(&header, "header", true, "first record holds column names")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
