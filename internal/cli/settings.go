package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"ark-import/internal/config"
)

// override copies one viper key onto the config when a flag, an
// environment variable or the config file has set it.
type override struct {
	key   string
	apply func(c *config.Config, v *viper.Viper)
}

var overrides = []override{
	{"input.downloads_dir", func(c *config.Config, v *viper.Viper) { c.Input.DownloadsDir = v.GetString("input.downloads_dir") }},
	{"input.report_pattern", func(c *config.Config, v *viper.Viper) { c.Input.ReportPattern = v.GetString("input.report_pattern") }},
	{"input.contract_pattern", func(c *config.Config, v *viper.Viper) {
		c.Input.ContractPattern = v.GetString("input.contract_pattern")
	}},
	{"input.template_path", func(c *config.Config, v *viper.Viper) { c.Input.TemplatePath = v.GetString("input.template_path") }},
	{"output.dir", func(c *config.Config, v *viper.Viper) { c.Output.Dir = v.GetString("output.dir") }},
	{"output.encoding", func(c *config.Config, v *viper.Viper) { c.Output.Encoding = v.GetString("output.encoding") }},
	{"output.skip_report", func(c *config.Config, v *viper.Viper) { c.Output.SkipReport = v.GetBool("output.skip_report") }},
	{"validation.required_fields", func(c *config.Config, v *viper.Viper) {
		c.Validation.RequiredFields = v.GetStringSlice("validation.required_fields")
	}},
	{"validation.min_birth_year", func(c *config.Config, v *viper.Viper) {
		c.Validation.MinBirthYear = v.GetInt("validation.min_birth_year")
	}},
	{"fees.min_exit_fee", func(c *config.Config, v *viper.Viper) { c.Fees.MinExitFee = v.GetInt("fees.min_exit_fee") }},
	{"logging.level", func(c *config.Config, v *viper.Viper) { c.Logging.Level = v.GetString("logging.level") }},
}

// loadSettings resolves the effective configuration, highest priority
// first: flags, ARKIMPORT_* environment, config file, built-in defaults.
func loadSettings(v *viper.Viper) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if file := v.ConfigFileUsed(); file != "" {
		loaded, err := config.LoadConfig(file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	for _, o := range overrides {
		if v.IsSet(o.key) {
			o.apply(cfg, v)
		}
	}
	if v.GetBool("verbose") {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
