// Command sbdump decodes the SafeBrowsing database files of a browser
// profile ('safebrowsing' under the profile directory, holding paired
// .sbstore and .pset files) and dumps their contents as text.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/pflag"

	"github.com/bsm/sbstore"
)

func main() {
	verbose := pflag.BoolP("verbose", "v", false, "list database contents (prefixes/completes) in hex")
	dry := pflag.BoolP("dry", "n", false, "dry run, list available databases and quit")
	only := pflag.String("name", "", "process only the list named NAME")
	strict := pflag.Bool("strict", false, "verify the trailing MD5 digest of each store file")
	pflag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] SBSTORE_DIR\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}
	dir := pflag.Arg(0)

	lists, err := scanDir(dir, *only)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot scan database directory")
	}
	if len(lists) == 0 {
		logger.Warn().Str("dir", dir).Msg("no sbstore files found")
	}
	for _, lf := range lists {
		logger.Info().Str("list", lf.name).Msg("reading sbstore")
	}
	if *dry {
		return
	}

	// lists are independent, decode them in parallel
	type result struct {
		name string
		ds   *sbstore.ListDataset
		err  error
	}
	p := pool.NewWithResults[result]().WithMaxGoroutines(runtime.NumCPU())
	for _, lf := range lists {
		lf := lf
		p.Go(func() result {
			ds, err := decodeListFiles(lf, *strict)
			return result{name: lf.name, ds: ds, err: err}
		})
	}
	results := p.Wait()
	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })

	rep := &reporter{w: os.Stdout, verbose: *verbose}
	failed := 0
	for _, res := range results {
		if res.err != nil {
			logger.Error().Err(res.err).Str("list", res.name).Msg("decode failed")
			failed++
			continue
		}
		rep.report(res.ds)
	}
	if failed != 0 {
		os.Exit(1)
	}
}

func decodeListFiles(lf listFiles, strict bool) (*sbstore.ListDataset, error) {
	data, err := os.ReadFile(lf.storePath)
	if err != nil {
		return nil, err
	}
	store, err := sbstore.ParseStore(data)
	if err != nil {
		return nil, err
	}
	if strict {
		if err := store.VerifyChecksum(); err != nil {
			return nil, err
		}
	}

	pset, err := os.ReadFile(lf.psetPath)
	if err != nil {
		return nil, err
	}
	prefixes, err := sbstore.DecodePrefixSet(pset)
	if err != nil {
		return nil, err
	}
	return store.Build(lf.name, prefixes)
}
