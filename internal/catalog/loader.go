package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadFile reads a question bank from a YAML file and validates it with the
// same rules as the built-in bank. Deployments that don't provide a file use
// Default().
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no questions", path)
	}
	c, err := New(f.Questions)
	if err != nil {
		return nil, fmt.Errorf("catalog: validate %s: %w", path, err)
	}
	slog.Info("question catalog loaded", "path", path, "questions", c.Len())
	return c, nil
}
