package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.App("exposure", "Work with camera shutter speed codes")

	app.Spec = "[--verbose]"

	verbose := app.BoolOpt("v verbose", false, "Enable debug logging")

	app.Before = func() {
		if *verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	CmdLookup(app)
	CmdLabel(app)
	CmdNearest(app)
	CmdTables(app)

	app.Run(os.Args)
}

func dump(data interface{}, prettyPrint bool) {
	var js []byte
	if prettyPrint {
		js, _ = json.MarshalIndent(data, "", "  ")
	} else {
		js, _ = json.Marshal(data)
	}
	fmt.Println(string(js))
}
