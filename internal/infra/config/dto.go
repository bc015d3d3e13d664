package config

// fileConfig is the on-disk shape shared by .ghxml.yaml and .ghxml.toml.
// Pointers and empty strings mean "keep the default".
type fileConfig struct {
	API struct {
		BaseURL string `yaml:"base_url" toml:"base_url"`
		Login   string `yaml:"login" toml:"login"`
		Token   string `yaml:"token" toml:"token"`
	} `yaml:"api" toml:"api"`

	HTTP struct {
		Timeout      string `yaml:"timeout" toml:"timeout"`
		MaxBodyBytes *int64 `yaml:"max_body_bytes" toml:"max_body_bytes"`
		UserAgent    string `yaml:"user_agent" toml:"user_agent"`
	} `yaml:"http" toml:"http"`

	Log struct {
		Level string `yaml:"level" toml:"level"`
		Path  string `yaml:"path" toml:"path"`
	} `yaml:"log" toml:"log"`

	Output struct {
		Format string `yaml:"format" toml:"format"`
	} `yaml:"output" toml:"output"`
}
