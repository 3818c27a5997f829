package csvconv

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"textcrypt/internal/domain"
	"textcrypt/internal/store"
)

// Options controls how the input is read and rendered.
type Options struct {
	Format    domain.OutputFormat
	Delimiter rune
	// Header treats the first record as column names.
	Header bool
}

// DefaultOptions returns comma-separated input with a header, rendered as
// JSON.
func DefaultOptions() Options {
	return Options{Format: domain.OutputJSON, Delimiter: ',', Header: true}
}

// Service reads CSV through the store resolver.
type Service struct {
	stdin io.Reader
	log   *slog.Logger
}

// New returns a Service reading "-" from stdin.
func New(stdin io.Reader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{stdin: stdin, log: log}
}

// Convert reads the CSV input and returns the rendered document.
func (s *Service) Convert(input string, opts Options) ([]byte, error) {
	s.log.Debug("csv convert", "format", opts.Format, "input", input)

	if !validDelimiter(opts.Delimiter) {
		return nil, domain.Errorf(domain.ErrConfig, "invalid delimiter %q", opts.Delimiter)
	}
	r, err := store.OpenInput(input, s.stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	records, err := cr.ReadAll()
	if err != nil {
		return nil, domain.Wrapf(domain.ErrEncoding, err, "read csv %s", input)
	}

	var rows any = records
	if opts.Header {
		rows = objects(records)
	}
	return render(opts.Format, rows)
}

func validDelimiter(r rune) bool {
	switch r {
	case 0, '"', '\r', '\n', utf8.RuneError:
		return false
	}
	return utf8.ValidRune(r)
}

// objects pairs every record after the first with the header row. The CSV
// reader already rejects records whose length differs from the header.
func objects(records [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(records))
	if len(records) == 0 {
		return out
	}
	header := records[0]
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = rec[i]
		}
		out = append(out, row)
	}
	return out
}

func render(f domain.OutputFormat, rows any) ([]byte, error) {
	switch f {
	case domain.OutputJSON:
		b, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, domain.Wrapf(domain.ErrEncoding, err, "render json")
		}
		return append(b, '\n'), nil
	case domain.OutputYAML:
		b, err := yaml.Marshal(rows)
		if err != nil {
			return nil, domain.Wrapf(domain.ErrEncoding, err, "render yaml")
		}
		return b, nil
	}
	return nil, domain.Errorf(domain.ErrConfig, "unsupported output format %s", f)
}
