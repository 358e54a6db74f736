package presentation

import (
	"strings"

	"github.com/revsys/dic/pkg/cleaner"
	"github.com/revsys/dic/pkg/commands"
	"github.com/revsys/dic/pkg/utils"
	"github.com/samber/lo"
)

// MatchLine renders a single match as it is listed before the prompt
func MatchLine(match cleaner.Match, theme utils.Theme) string {
	return "  - " + utils.Stylize(match.Tag, utils.StyleMatch, theme) + " " + utils.FormatDecimalBytes(match.Image.Size)
}

func getImageDisplayStrings(image *commands.Image) []string {
	return []string{
		image.ShortID(),
		strings.Join(image.Tags, ","),
		utils.FormatDecimalBytes(image.Size),
	}
}

// CandidateTable lays out the images about to be removed, one per row
func CandidateTable(images []*commands.Image) (string, error) {
	return utils.RenderTable(lo.Map(images, func(image *commands.Image, _ int) []string {
		return getImageDisplayStrings(image)
	}))
}
