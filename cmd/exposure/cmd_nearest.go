package main

import (
	"strconv"

	"github.com/aalpern/exposure"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func CmdNearest(app *cli.Cli) {
	app.Command("nearest", "Find the closest standard shutter speed", func(cmd *cli.Cmd) {
		cmd.Spec = "[--pretty-print] [--seconds] [--stop] VALUE..."

		prettyPrint := cmd.BoolOpt("p pretty-print", false,
			"Format the JSON output indented for human readability")
		asSeconds := cmd.BoolOpt("s seconds", false,
			"Interpret numeric values as exposure times in seconds rather than codes")
		stop := cmd.StringOpt("stop", "",
			`Restrict candidates to one stop grouping, "1/2" or "1/3"`)
		values := cmd.StringsArg("VALUE", nil,
			"Codes, exposure times or labels to match")

		cmd.Action = func() {
			filter := stopFilter(*stop)
			for _, arg := range *values {
				speed := nearest(arg, *asSeconds, filter)
				if speed == nil {
					log.WithFields(log.Fields{
						"action": "nearest",
						"value":  arg,
					}).Warn("No matching shutter speed, skipping")
					continue
				}
				dump(speed, *prettyPrint)
			}
		}
	})
}

func nearest(arg string, asSeconds bool, filter exposure.ShutterSpeedFilter) *exposure.ShutterSpeed {
	if asSeconds {
		if seconds, err := strconv.ParseFloat(arg, 64); err == nil {
			return exposure.NearestShutterSpeedForSeconds(seconds, filter)
		}
	} else if code, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return exposure.NearestShutterSpeed(code, filter)
	}
	return exposure.NearestShutterSpeedForLabel(arg, filter)
}

func stopFilter(stop string) exposure.ShutterSpeedFilter {
	if stop == "" {
		return nil
	}
	return func(s *exposure.ShutterSpeed) bool {
		return s.Stop().String() == stop
	}
}
