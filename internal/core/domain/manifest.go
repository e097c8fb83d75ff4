package domain

// ManifestEntry records one file delivered to the compiler.
type ManifestEntry struct {
	Path     string `json:"path"`
	URI      string `json:"uri"`
	Importer string `json:"importer,omitempty"`
	Digest   string `json:"digest"`
	Size     int    `json:"size"`
}

// ProjectConfig is the content of the project configuration file.
type ProjectConfig struct {
	Options PartialOptions
	// ManifestPath is where resolutions are recorded. Empty disables the manifest.
	ManifestPath string
}
