package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// matchAssets returns the files under root matching any of the patterns,
// as sorted slash-separated paths relative to root.
func matchAssets(root string, patterns []string) ([]string, error) {
	if root == "" || len(patterns) == 0 {
		return nil, nil
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, rel := range found {
			if seen[rel] {
				continue
			}
			info, err := fs.Stat(fsys, rel)
			if err != nil || info.IsDir() {
				continue
			}
			seen[rel] = true
			matches = append(matches, rel)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
