package configuration

import (
	"fmt"
	"maps"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads KEY=value configuration files using godotenv.
type GodotenvProvider struct{}

// Read reads the files in order into one map, values of later files
// overriding those of earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	values := make(map[string]string)

	for _, name := range filenames {
		data, err := godotenv.Read(name)
		if err != nil {
			return nil, fmt.Errorf("(config-godotenv) failed to read %s: %w", name, err)
		}

		maps.Copy(values, data)
	}

	return values, nil
}
