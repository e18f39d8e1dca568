package config

import "os"

const (
	catalogDirEnv = "CATALOG_DIR"

	defaultCatalogDir = "data"
)

// CatalogConfig locates the local quote catalog database.
type CatalogConfig struct {
	Dir string
}

func LoadCatalogConfig() *CatalogConfig {
	dir := os.Getenv(catalogDirEnv)
	if dir == "" {
		dir = defaultCatalogDir
	}

	return &CatalogConfig{
		Dir: dir,
	}
}
