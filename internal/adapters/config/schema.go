package config

// Mulfile represents the structure of the mulpath.yaml configuration file.
type Mulfile struct {
	Version   string            `yaml:"version"`
	Root      string            `yaml:"root"`
	HashDir   string            `yaml:"hash_dir"`
	Overrides map[string]string `yaml:"overrides"`
	MapWidths map[int]int       `yaml:"map_widths"`
}
