package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalpern/exposure"
	"github.com/cloudfoundry/bytefmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdStats() *cobra.Command {
	var outfile string
	var perCatalog bool
	var prettyPrint bool
	var stop string

	cmd := &cobra.Command{
		Use:   "stats PATH...",
		Short: "Tally photos by standard shutter speed",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().StringVarP(&outfile, "outfile", "o", "shutterspeeds.json",
		"Path to output file")
	cmd.Flags().BoolVarP(&perCatalog, "per-catalog", "c", false,
		"Output a summary .json file for each catalog, in addition to the merged output")
	cmd.Flags().BoolVarP(&prettyPrint, "pretty-print", "p", false,
		"Format the JSON output indented for human readability")
	cmd.Flags().StringVar(&stop, "stop", "",
		`Snap only to one stop grouping, "1/2" or "1/3"`)

	cmd.Run = func(cmd *cobra.Command, args []string) {
		var filter exposure.ShutterSpeedFilter
		if stop != "" {
			filter = func(s *exposure.ShutterSpeed) bool {
				return s.Stop().String() == stop
			}
		}

		merged := exposure.DistributionList{}
		catalogPaths := exposure.FindCatalogs(args...)
		var total int

		for _, path := range catalogPaths {
			c, err := exposure.OpenCatalog(path)
			if err != nil {
				log.WithFields(log.Fields{
					"action":  "catalog_open",
					"catalog": path,
					"error":   err,
				}).Warn("Error opening catalog, skipping")
				continue
			}

			dist, err := c.GetShutterSpeedDistribution(filter)
			if err != nil {
				log.WithFields(log.Fields{
					"action":  "catalog_stats",
					"catalog": path,
					"error":   err,
				}).Warn("Error reading catalog, skipping")
				c.Close()
				continue
			}

			if perCatalog {
				jsPath := strings.Replace(filepath.Base(path),
					"."+exposure.CatalogExtension, ".json", 1)
				write(jsPath, dist, prettyPrint)
			}

			total++
			log.WithFields(log.Fields{
				"action": "process_catalog",
				"path":   path,
				"size":   catalogSize(path),
				"status": "ok",
			}).Info("Processed catalog")

			merged = merged.Merge(dist)
			c.Close()
		}

		write(outfile, merged, prettyPrint)

		log.WithFields(log.Fields{
			"action":             "status",
			"status":             "complete",
			"catalogs_processed": total,
		}).Info("Complete")
	}

	return cmd
}

func catalogSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown"
	}
	return bytefmt.ByteSize(uint64(info.Size()))
}
