package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	storeExt = ".sbstore"
	psetExt  = ".pset"
)

// listFiles is one named list and the pair of files that back it.
type listFiles struct {
	name      string
	storePath string
	psetPath  string
}

// scanDir finds the store files in dir and pairs each with its prefix
// set file. The prefix set is not required to exist at scan time;
// decoding reports the missing file. If only is non-empty, all other
// list names are skipped.
func scanDir(dir, only string) ([]listFiles, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var lists []listFiles
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), storeExt) {
			continue
		}
		name := strings.TrimSuffix(ent.Name(), storeExt)
		if only != "" && only != name {
			continue
		}
		lists = append(lists, listFiles{
			name:      name,
			storePath: filepath.Join(dir, ent.Name()),
			psetPath:  filepath.Join(dir, name+psetExt),
		})
	}
	return lists, nil
}
