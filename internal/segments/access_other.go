//go:build !unix

package segments

import "os"

func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().Perm()&0o200 != 0
}
