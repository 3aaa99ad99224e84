package domain

// Settings is the validated configuration of a catalog host.
type Settings struct {
	// Root is the client installation directory.
	Root string
	// HashDir is the directory holding sidecar digest files.
	HashDir string
	// Overrides maps known assets to user-chosen paths.
	Overrides map[AssetName]string
	// MapWidths holds the recorded width per overworld map id.
	MapWidths map[int]int
}

// NewSettings returns empty settings with initialized maps.
func NewSettings() *Settings {
	return &Settings{
		Overrides: make(map[AssetName]string),
		MapWidths: make(map[int]int),
	}
}
