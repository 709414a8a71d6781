package utils

import (
	"github.com/spf13/afero"
	"os"
	"path/filepath"
)

// MakeDirIfNotExist creates the directory holding filePath when it is missing.
// It returns the directory and whether it already existed.
func MakeDirIfNotExist(fs afero.Fs, filePath string) (string, bool, error) {
	dirPath := filepath.Dir(filePath)

	exists, err := afero.DirExists(fs, dirPath)
	if err != nil {
		return dirPath, exists, err
	}

	if !exists {
		if err := fs.MkdirAll(dirPath, os.ModePerm); err != nil {
			return dirPath, exists, err
		}
	}

	return dirPath, exists, nil
}

// RemoveFileIfExists deletes filePath, a missing file is not an error
func RemoveFileIfExists(fs afero.Fs, filePath string) error {
	exists, err := afero.Exists(fs, filePath)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return fs.Remove(filePath)
}
