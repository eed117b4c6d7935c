package fs

import "os"

// Hooks used for testing (overridable)
var (
	open       = os.Open
	readFile   = os.ReadFile
	writeFile  = os.WriteFile
	stat       = os.Stat
	readDir    = os.ReadDir
	remove     = os.Remove
	rename     = os.Rename
	createTemp = os.CreateTemp
	mkdirAll   = os.MkdirAll
)

var exists = func(path string) bool {
	_, err := stat(path)
	return err == nil
}

var IsDir = func(path string) bool {
	fi, err := stat(path)
	return err == nil && fi.IsDir()
}

// setters for test override
func SetStat(f func(string) (os.FileInfo, error)) { stat = f }
func SetReadFile(f func(string) ([]byte, error)) { readFile = f }
func SetWriteFile(f func(string, []byte, os.FileMode) error) {
	writeFile = f
}
func SetMkdirAll(f func(string, os.FileMode) error) { mkdirAll = f }
