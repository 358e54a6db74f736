package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/revsys/dic/pkg/app"
	"github.com/revsys/dic/pkg/config"
	"github.com/revsys/dic/pkg/utils"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	query string
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("dic")
	flaggy.SetDescription("Find local Docker images by tag and remove them")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/revsys/dic"

	flaggy.AddPositionalValue(&query, "QUERY", 1, true, "Text to look for in image tags, e.g. myapp or :old")
	flaggy.SetVersion(info)

	flaggy.Parse()

	log.SetFlags(0)

	appConfig, err := config.NewAppConfig("dic", version, commit, date, buildSource, false)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := app.Run(context.Background(), query); err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(utils.Stylize(errMessage, utils.StyleError, app.Theme))
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", utils.Stylize(app.Tr.ErrorOccurred, utils.StyleError, app.Theme), err.Error()))
	}
}
