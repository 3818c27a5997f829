package app

import (
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"textcrypt/internal/domain"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "TEXTCRYPT"

// Config keys.
const (
	KeyFormat     = "format"
	KeyKeyDir     = "key_dir"
	KeyLogLevel   = "log_level"
	KeyPrettyLogs = "pretty_logs"
	KeyJWTSecret  = "jwt_secret"
	KeyHTTPPort   = "http_port"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Format     domain.Format // default sign format, e.g. blake3
	KeyDir     string        // where text generate writes keys
	LogLevel   slog.Level
	PrettyLogs bool // console-slog handler instead of plain text
	JWTSecret  string
	HTTPPort   int
}

// ConfigKeyAnnotation marks a command flag with the config key it
// overrides. See BindFlags.
const ConfigKeyAnnotation = "textcrypt_config_key"

// BindFlags binds every flag in fs annotated with ConfigKeyAnnotation to its
// config key. A flag set on the command line wins over env and file values;
// an unset flag leaves them alone.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[ConfigKeyAnnotation]
		if len(keys) == 0 || bindErr != nil {
			return
		}
		if err := v.BindPFlag(keys[0], f); err != nil {
			bindErr = domain.Wrapf(domain.ErrConfig, err, "bind flag --%s", f.Name)
		}
	})
	return bindErr
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFormat, "blake3")
	v.SetDefault(KeyKeyDir, ".")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyPrettyLogs, true)
	v.SetDefault(KeyHTTPPort, 8080)
	return v
}

// LoadConfig reads file into v when file is non-empty, then validates the
// merged settings.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, domain.Wrapf(domain.ErrConfig, err, "read config file %s", file)
		}
	}

	format, err := domain.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, domain.Wrapf(domain.ErrConfig, err, "log level")
	}
	port := v.GetInt(KeyHTTPPort)
	if port < 1 || port > 65535 {
		return Config{}, domain.Errorf(domain.ErrConfig, "http port %d out of range", port)
	}
	dir := v.GetString(KeyKeyDir)
	if dir == "" {
		dir = "."
	}

	return Config{
		Format:     format,
		KeyDir:     dir,
		LogLevel:   level,
		PrettyLogs: v.GetBool(KeyPrettyLogs),
		JWTSecret:  v.GetString(KeyJWTSecret),
		HTTPPort:   port,
	}, nil
}
