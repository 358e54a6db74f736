package config

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

var validColorNames = []string{
	"default", "black", "red", "green", "yellow", "blue",
	"magenta", "cyan", "white", "bold", "underline",
}

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if !lo.Contains([]string{RuntimeAuto, RuntimeDocker, RuntimePodman}, config.Runtime) {
		return fmt.Errorf("Unsupported runtime '%s'. Expected one of: %s, %s, %s",
			config.Runtime, RuntimeAuto, RuntimeDocker, RuntimePodman)
	}

	return validateTheme(config.Theme)
}

// validateTheme walks every color list in the theme so that new entries are
// covered without touching this function
func validateTheme(theme ThemeConfig) error {
	value := reflect.ValueOf(theme)
	for _, field := range reflect.VisibleFields(reflect.TypeOf(theme)) {
		colors, ok := value.FieldByName(field.Name).Interface().([]string)
		if !ok {
			continue
		}
		for _, color := range colors {
			if !lo.Contains(validColorNames, color) {
				return fmt.Errorf("Unrecognized color '%s' for 'theme.%s'", color, field.Name)
			}
		}
	}
	return nil
}
