package cleaner

import (
	"sort"
	"strings"

	"github.com/revsys/dic/pkg/commands"
	"github.com/samber/lo"
)

// Match pairs an image with the tag that matched the query
type Match struct {
	Image *commands.Image
	Tag   string
}

// FindMatches returns one Match per tag containing query, in image order then
// tag order. onMatch, if given, is called as each match is found so it can be
// displayed before the whole list has been built. An image with several
// matching tags shows up once per tag.
func FindMatches(images []*commands.Image, query string, onMatch func(Match)) []Match {
	matches := []Match{}
	for _, image := range images {
		for _, tag := range image.Tags {
			if !strings.Contains(tag, query) {
				continue
			}
			match := Match{Image: image, Tag: tag}
			if onMatch != nil {
				onMatch(match)
			}
			matches = append(matches, match)
		}
	}
	return matches
}

// DedupSort sorts images by ID, descending, and drops repeated IDs. The input
// slice is left alone.
func DedupSort(images []*commands.Image) []*commands.Image {
	sorted := make([]*commands.Image, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	result := make([]*commands.Image, 0, len(sorted))
	for i, image := range sorted {
		if i > 0 && image.ID == sorted[i-1].ID {
			continue
		}
		result = append(result, image)
	}
	return result
}

// Candidates returns the images to remove for a set of matches
func Candidates(matches []Match) []*commands.Image {
	return DedupSort(lo.Map(matches, func(match Match, _ int) *commands.Image {
		return match.Image
	}))
}
