package zosmfgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the generator configuration file.
const ConfigName = "zosmfgen"

// Providers.
const (
	ProviderSource = "source"
	ProviderCUE    = "cue"
)

// Config holds the configuration for code generation.
type Config struct {
	// Provider selects the schema surface: "source" (default) reads
	// annotated builder structs, "cue" reads a CUE endpoint list.
	Provider string `mapstructure:"provider" validate:"oneof=source cue"`

	// Output is the name of the generated file in each package directory.
	Output string `mapstructure:"output" validate:"required,endswith=.go,excludes=/"`

	// CUE is the schema file read by the cue provider. Its directory is
	// the package the builders are generated into.
	CUE string `mapstructure:"cue" validate:"required_if=Provider cue"`

	// PackageName is the Go package name of the cue provider's output.
	PackageName string `mapstructure:"package_name" validate:"required_if=Provider cue"`

	// Packages are the package patterns read by the source provider.
	Packages []string `mapstructure:"packages"`

	// Dir is the root that patterns and output paths are relative to.
	Dir string `mapstructure:"dir"`
}

var validate = validator.New()

// Validate reports configuration errors, one per offending key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("config: %s: failed %q check (value %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", ProviderSource)
	v.SetDefault("output", "zz_endpoints.go")
	v.SetDefault("packages", []string{"."})
	v.SetDefault("dir", ".")
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// LoadConfig reads zosmfgen.yaml from dir, if present, and applies
// ZOSMFGEN_* environment overrides on top of the defaults. Relative
// directories in the result are resolved against dir.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("ZOSMFGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.Dir) {
		cfg.Dir = filepath.Join(dir, cfg.Dir)
	}
	if cfg.CUE != "" && !filepath.IsAbs(cfg.CUE) {
		cfg.CUE = filepath.Join(cfg.Dir, cfg.CUE)
	}
	return &cfg, nil
}
