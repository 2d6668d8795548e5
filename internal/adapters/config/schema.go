package config

// Stampfile represents the structure of the stamp.yaml configuration file.
// Unset fields keep their defaults.
type Stampfile struct {
	Root       string   `yaml:"root"`
	Cache      string   `yaml:"cache"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Field      string   `yaml:"field"`
	Identity   string   `yaml:"identity"`
	Hash       string   `yaml:"hash"`
	Workers    *int     `yaml:"workers"`
}
