package fs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// LoadFile 加载文件
func LoadFile(filePath string) []byte {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	return buf
}

// GetFilePaths returns the file paths matching loadFilePattern, walking the
// pattern's directory recursively. Files and directories matching any of
// excludedPatterns are skipped.
func GetFilePaths(loadFilePattern string, excludedPatterns ...string) ([]string, error) {
	dir, file := filepath.Split(loadFilePattern)
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, item := range excludedPatterns {
				if matched, _ := filepath.Match(item, d.Name()); matched {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if matched, _ := filepath.Match(file, d.Name()); matched && !isExcluded(d, excludedPatterns...) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func isExcluded(d fs.DirEntry, patterns ...string) bool {
	for _, item := range patterns {
		if matched, _ := filepath.Match(item, d.Name()); matched {
			return true
		}
	}
	return false
}
