// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// Format selects the encoder: console or json.
	Format string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// OutputConfig holds settings for the output writer.
type OutputConfig struct {
	// Dir is the directory summaries are written to (default "outputs/rfp_summaries").
	Dir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// HTML also renders the Markdown summary to an HTML preview file.
	HTML bool `json:"html" yaml:"html" mapstructure:"html"`
}

// ParserConfig groups everything the rfp-parser command reads from flags,
// environment, and config file.
type ParserConfig struct {
	LogConfig    `yaml:",inline" mapstructure:",squash"`
	OutputConfig `yaml:",inline" mapstructure:",squash"`

	// SchemaTemplate is an optional YAML file replacing the embedded template.
	SchemaTemplate string `json:"schema_template,omitempty" yaml:"schema_template,omitempty" mapstructure:"schema_template"`

	// MissingExitCode is the process exit code used when the input file does
	// not exist (default 0).
	MissingExitCode int `json:"missing_exit_code" yaml:"missing_exit_code" mapstructure:"missing_exit_code"`

	// NoColor disables colored console notices.
	NoColor bool `json:"no_color" yaml:"no_color" mapstructure:"no_color"`
}
