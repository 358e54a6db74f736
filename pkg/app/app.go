package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docker/docker/client"
	"github.com/revsys/dic/pkg/cleaner"
	"github.com/revsys/dic/pkg/commands"
	"github.com/revsys/dic/pkg/config"
	"github.com/revsys/dic/pkg/i18n"
	"github.com/revsys/dic/pkg/log"
	"github.com/revsys/dic/pkg/presentation"
	"github.com/revsys/dic/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// App struct
type App struct {
	Config *config.AppConfig
	Log    *logrus.Entry
	Tr     *i18n.TranslationSet
	Theme  utils.Theme

	In  io.Reader
	Out io.Writer

	// NewService opens a connection to the image store. Each phase of a run
	// opens its own and closes it when done.
	NewService func(ctx context.Context) (commands.ImageService, error)
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
		Theme:  themeFromConfig(config.UserConfig.Theme),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}
	app.NewService = func(ctx context.Context) (commands.ImageService, error) {
		return commands.NewImageService(ctx, app.Log, config.UserConfig.Runtime)
	}
	return app, nil
}

func themeFromConfig(theme config.ThemeConfig) utils.Theme {
	return utils.Theme{
		utils.StyleBanner: theme.BannerColor,
		utils.StyleQuery:  theme.QueryColor,
		utils.StyleMatch:  theme.MatchColor,
		utils.StyleError:  theme.ErrorColor,
		utils.StylePrompt: theme.PromptColor,
	}
}

func (app *App) println(str string) {
	fmt.Fprintln(app.Out, str)
}

// Run looks for images with a tag containing query, lists them and removes
// them once the operator confirms. Declining and finding nothing are both
// successful runs.
func (app *App) Run(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return commands.NewComplexError(commands.UsageError, "no query given", nil)
	}

	app.println(utils.ResolvePlaceholderString(
		utils.Stylize(app.Tr.LookingForImages, utils.StyleBanner, app.Theme),
		map[string]string{"query": utils.Stylize(query, utils.StyleQuery, app.Theme)},
	))
	app.println("")

	images, err := app.listImages(ctx)
	if err != nil {
		return err
	}
	app.Log.Infof("runtime reported %d images", len(images))

	matches := cleaner.FindMatches(images, query, func(match cleaner.Match) {
		app.println(presentation.MatchLine(match, app.Theme))
	})
	if len(matches) == 0 {
		app.Log.Infof("no tags matched %q", query)
		app.println(app.Tr.NoMatchingImages)
		return nil
	}

	candidates := cleaner.Candidates(matches)
	app.Log.Infof("%d tags matched %q across %d images", len(matches), query, len(candidates))
	if table, err := presentation.CandidateTable(candidates); err == nil {
		app.Log.Debug("removal candidates:\n" + table)
	}

	decision, err := cleaner.Confirm(app.In, app.Out, utils.Stylize(app.Tr.ConfirmDelete, utils.StylePrompt, app.Theme))
	if err != nil {
		return err
	}
	app.Log.Infof("removal %s", decision)

	if decision == cleaner.Declined {
		app.println(app.Tr.LeavingImagesAlone)
		return nil
	}

	return app.removeImages(ctx, candidates)
}

func (app *App) openService(ctx context.Context) (commands.ImageService, error) {
	service, err := app.NewService(ctx)
	if err != nil {
		return nil, asServiceUnavailable("could not connect to the container runtime", err)
	}
	return service, nil
}

func (app *App) closeService(service commands.ImageService) {
	if err := service.Close(); err != nil {
		app.Log.Warnf("closing %s client: %v", service.Mode(), err)
	}
}

func (app *App) listImages(ctx context.Context) ([]*commands.Image, error) {
	service, err := app.openService(ctx)
	if err != nil {
		return nil, err
	}
	defer app.closeService(service)

	images, err := service.ListImages(ctx, true)
	if err != nil {
		return nil, asServiceUnavailable("could not list images", err)
	}
	return images, nil
}

func (app *App) removeImages(ctx context.Context, images []*commands.Image) error {
	service, err := app.openService(ctx)
	if err != nil {
		return err
	}
	defer app.closeService(service)

	outcomes, err := cleaner.Remove(ctx, service, images, func(image *commands.Image) {
		app.println(utils.ResolvePlaceholderString(app.Tr.RemovingImage, map[string]string{"id": image.ID}))
	})
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			app.Log.Errorf("removing %s: %v", outcome.ImageID, outcome.Err)
			continue
		}
		app.Log.Infof("removed %s", outcome.ImageID)
	}
	return err
}

// asServiceUnavailable leaves errors that already carry a code alone
func asServiceUnavailable(message string, err error) error {
	var complexErr commands.ComplexError
	if xerrors.As(err, &complexErr) {
		return err
	}
	return commands.NewComplexError(commands.ServiceUnavailable, message, err)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "Got permission denied while trying to connect to the Docker daemon socket",
			newError:      app.Tr.CannotAccessDockerSocketError,
		},
		{
			originalError: "permission denied (are you in the docker group?)",
			newError:      app.Tr.CannotAccessDockerSocketError,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	if client.IsErrConnectionFailed(err) {
		return app.Tr.ConnectionFailed, true
	}

	switch {
	case commands.HasErrorCode(err, commands.UsageError):
		return app.Tr.MissingQuery, true
	case commands.HasErrorCode(err, commands.InputClosed):
		return app.Tr.InputClosed, true
	case commands.HasErrorCode(err, commands.ServiceUnavailable):
		return app.Tr.ConnectionFailed + "\n" + errorMessage, true
	case commands.HasErrorCode(err, commands.RemovalFailed):
		return app.removalMessage(err), true
	}

	return "", false
}

func (app *App) removalMessage(err error) string {
	var removalErr *cleaner.RemovalError
	if !xerrors.As(err, &removalErr) {
		return err.Error()
	}

	arguments := map[string]string{"id": removalErr.ImageID}
	switch commands.ClassifyRemovalError(removalErr.Err) {
	case commands.ReasonImageInUse:
		return utils.ResolvePlaceholderString(app.Tr.ImageInUse, arguments)
	case commands.ReasonNotFound:
		return utils.ResolvePlaceholderString(app.Tr.ImageNotFound, arguments)
	default:
		return utils.ResolvePlaceholderString(app.Tr.RemovalFailed, arguments) + ": " + removalErr.Err.Error()
	}
}
