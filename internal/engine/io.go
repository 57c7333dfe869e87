package engine

import "os"

func writeFile(path string, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
