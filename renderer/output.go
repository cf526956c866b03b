package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snakeskin/figrender/grid"
)

// PrepareOutputFolder creates folder and any missing parents.
func PrepareOutputFolder(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("%w %s: %v", ErrOutputFolder, folder, err)
	}
	return nil
}

// OutputPath returns the raw output location for point p of exp.
func OutputPath(folder string, exp *grid.Experiment, p grid.Point) string {
	return filepath.Join(folder, exp.FileName(p))
}
