package main

import (
	"github.com/aalpern/exposure"
	"github.com/jawher/mow.cli"
)

func CmdTables(app *cli.Cli) {
	app.Command("tables", "Dump the standard shutter speed tables", func(cmd *cli.Cmd) {
		cmd.Spec = "[--pretty-print] [--stop]"

		prettyPrint := cmd.BoolOpt("p pretty-print", false,
			"Format the JSON output indented for human readability")
		stop := cmd.StringOpt("stop", "",
			`Limit output to one stop grouping, "1/2" or "1/3"`)

		cmd.Action = func() {
			filter := stopFilter(*stop)
			speeds := []*exposure.ShutterSpeed{}
			for _, s := range exposure.ShutterSpeeds() {
				if filter == nil || filter(s) {
					speeds = append(speeds, s)
				}
			}
			dump(speeds, *prettyPrint)
		}
	})
}
