package trialset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/endovision/depth-rater/internal/domain"
)

// Config describes the on-disk survey layout: three parallel directory trees
// that share the same category subfolders. The reference tree holds the
// original frames, the two result trees hold the depth maps produced by each
// model for the same filenames.
type Config struct {
	ReferenceDir string    `yaml:"reference_dir"`
	ResultDirs   [2]string `yaml:"result_dirs"`
	Categories   []string  `yaml:"categories"`
}

func (c Config) Validate() error {
	if c.ReferenceDir == "" {
		return fmt.Errorf("reference_dir is required")
	}
	if c.ResultDirs[0] == "" || c.ResultDirs[1] == "" {
		return fmt.Errorf("both result_dirs are required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	return nil
}

// Scan walks the configured categories and returns every (category, filename)
// present as a regular file in all three trees. Files missing from one or two
// trees are skipped without a warning; the lenient matching is deliberate.
// An unreadable category directory under the reference tree is an error since
// the layout contract itself is broken.
func Scan(cfg Config) ([]domain.Item, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var items []domain.Item
	for _, cat := range cfg.Categories {
		refDir := filepath.Join(cfg.ReferenceDir, cat)
		entries, err := os.ReadDir(refDir)
		if err != nil {
			return nil, fmt.Errorf("read reference category %q: %w", cat, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			ref := filepath.Join(refDir, name)
			if !isRegularFile(ref) {
				continue
			}

			var results [2]string
			complete := true
			for i, root := range cfg.ResultDirs {
				p := filepath.Join(root, cat, name)
				if !isRegularFile(p) {
					complete = false
					break
				}
				results[i] = p
			}
			if !complete {
				continue
			}

			items = append(items, domain.Item{
				Category:  cat,
				Filename:  name,
				Reference: ref,
				Results:   results,
			})
		}
	}

	return items, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
