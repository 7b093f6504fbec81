package main

import (
	"strconv"

	"github.com/aalpern/exposure"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func CmdLookup(app *cli.Cli) {
	app.Command("lookup", "Resolve raw shutter speed codes", func(cmd *cli.Cmd) {
		cmd.Spec = "[--pretty-print] CODE..."

		prettyPrint := cmd.BoolOpt("p pretty-print", false,
			"Format the JSON output indented for human readability")
		codes := cmd.StringsArg("CODE", nil, "Shutter speed codes to resolve")

		cmd.Action = func() {
			for _, arg := range *codes {
				code, err := strconv.ParseInt(arg, 0, 64)
				if err != nil {
					log.WithFields(log.Fields{
						"action": "lookup",
						"code":   arg,
						"error":  err,
					}).Warn("Not an integer code, skipping")
					continue
				}
				dump(exposure.ShutterSpeedFromCode(code), *prettyPrint)
			}
		}
	})
}

func CmdLabel(app *cli.Cli) {
	app.Command("label", "Resolve shutter speed display labels", func(cmd *cli.Cmd) {
		cmd.Spec = "[--pretty-print] LABEL..."

		prettyPrint := cmd.BoolOpt("p pretty-print", false,
			"Format the JSON output indented for human readability")
		labels := cmd.StringsArg("LABEL", nil,
			`Labels to resolve, e.g. "1/125", "2.5" or "Bulb"`)

		cmd.Action = func() {
			for _, label := range *labels {
				speed := exposure.ShutterSpeedForLabel(label)
				if speed == nil {
					log.WithFields(log.Fields{
						"action": "label",
						"label":  label,
					}).Warn("No matching shutter speed, skipping")
					continue
				}
				dump(speed, *prettyPrint)
			}
		}
	})
}
