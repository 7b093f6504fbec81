package exposure

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	CatalogExtension        = "lrcat"
	CatalogDataDirExtension = "lrdata"
)

// FindCatalogs expands a list of paths into the Lightroom catalog
// files they contain. File paths are kept if they have the catalog
// extension; directories are walked recursively.
func FindCatalogs(paths ...string) []string {
	found := make([]string, 0, len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.WithFields(log.Fields{
				"action": "find_catalogs",
				"status": "stat_error",
				"path":   path,
				"error":  err,
			}).Warn("Cannot stat path")
			continue
		}

		if !info.IsDir() {
			if strings.HasSuffix(path, CatalogExtension) {
				found = append(found, path)
			}
		} else {
			found = append(found, findCatalogsInDir(path)...)
		}
	}
	return found
}

func findCatalogsInDir(path string) []string {
	found := make([]string, 0, 8)

	filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithFields(log.Fields{
				"action": "find_catalogs",
				"status": "walk_error",
				"path":   path,
				"error":  err,
			}).Warn("Error walking path")
		} else if !info.IsDir() {
			found = append(found, FindCatalogs(p)...)
		} else if info.IsDir() {
			// Skip the .lrdata directories which contain the
			// potentially huge number of cached image previews
			if strings.HasSuffix(p, CatalogDataDirExtension) {
				return filepath.SkipDir
			}
		}
		return nil
	})

	return found
}
