package config

// UserConfig holds all of the user-configurable options. The fields here are all in
// PascalCase but in your actual config.yml they'll be in camelCase. The file is
// optional; anything left out falls back to GetDefaultConfig.
type UserConfig struct {
	// Language is the language console messages are printed in. "auto" picks it
	// up from the environment's locale, otherwise one of "en", "pl"
	Language string `yaml:"language,omitempty"`

	// Runtime forces the client used to talk to the image store. "auto" inspects
	// the socket we end up connecting to, "docker" and "podman" skip that guess.
	Runtime string `yaml:"runtime,omitempty"`

	// Theme determines what colors the various console lines are printed in
	Theme ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig is for setting the colors of the console output. Each entry is a
// list of color attributes e.g. [red, bold]
type ThemeConfig struct {
	BannerColor []string `yaml:"bannerColor,omitempty"`
	QueryColor  []string `yaml:"queryColor,omitempty"`
	MatchColor  []string `yaml:"matchColor,omitempty"`
	ErrorColor  []string `yaml:"errorColor,omitempty"`
	PromptColor []string `yaml:"promptColor,omitempty"`
}

const (
	RuntimeAuto   = "auto"
	RuntimeDocker = "docker"
	RuntimePodman = "podman"
)

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language: "auto",
		Runtime:  RuntimeAuto,
		Theme: ThemeConfig{
			BannerColor: []string{"green"},
			QueryColor:  []string{"blue"},
			MatchColor:  []string{"default"},
			ErrorColor:  []string{"red"},
			PromptColor: []string{"default"},
		},
	}
}
