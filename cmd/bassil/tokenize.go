package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bassil/internal/diagfmt"
	"bassil/internal/driver"
	"bassil/internal/persist"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.bas...]",
	Short: "Tokenize bassil source files",
	Long: `Tokenize breaks bassil source files into their constituent tokens.
With no arguments the project manifest's [run].main is used.`,
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|jsonl|msgpack)")
	tokenizeCmd.Flags().String("out", "", "write the token stream to a file instead of stdout")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for multiple files (0 = all CPUs)")
}

// fileStream is one file's resolved output plus what the scan reported.
type fileStream struct {
	path    string
	records []diagfmt.TokenRecord
	result  *driver.FileResult
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "jsonl", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no input files and no %s found", manifestName)
		}
		mainPath, err := resolveManifestMain(manifest)
		if err != nil {
			return err
		}
		paths = []string{mainPath}
	}

	opts := driver.TokenizeOptions{
		MaxDiagnostics: maxDiagnostics,
		Trace:          logger.WithField("phase", "lexer"),
	}

	var streams []fileStream
	if useCache {
		streams, err = tokenizeCached(paths, opts)
	} else {
		streams, err = tokenizeParallel(cmd, paths, jobs, opts)
	}
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     colorEnabled(cmd, os.Stderr),
		ShowNotes: true,
	}

	sawError := false
	for _, stream := range streams {
		res := stream.result
		if res == nil {
			continue // cache hit, nothing was scanned
		}
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			if err := diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts); err != nil {
				return err
			}
		}
		if res.Bag.HasErrors() || res.ScanErr != nil {
			sawError = true
		}
		if res.ScanErr != nil {
			logger.WithField("file", stream.path).Error(res.ScanErr)
		}
	}

	emit := func(f *os.File) error {
		for _, stream := range streams {
			var err error
			switch format {
			case "pretty":
				if len(streams) > 1 {
					fmt.Fprintf(f, "== %s\n", stream.path)
				}
				err = diagfmt.FormatRecordsPretty(f, stream.records)
			case "jsonl":
				err = diagfmt.FormatRecordsJSONL(f, stream.records)
			case "msgpack":
				err = diagfmt.FormatRecordsMsgpack(f, stream.records)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	if outPath != "" {
		if err := persist.WriteFileAtomic(outPath, emit); err != nil {
			return err
		}
	} else if err := emit(os.Stdout); err != nil {
		return err
	}

	if sawError {
		return fmt.Errorf("tokenization finished with errors")
	}
	return nil
}

// tokenizeCached goes file by file through the token cache.
func tokenizeCached(paths []string, opts driver.TokenizeOptions) ([]fileStream, error) {
	cache, err := driver.OpenTokenCache("bassil")
	if err != nil {
		return nil, fmt.Errorf("open token cache: %w", err)
	}

	streams := make([]fileStream, 0, len(paths))
	for _, path := range paths {
		records, res, _, err := driver.TokenizeCached(path, cache, opts)
		if err != nil {
			return nil, err
		}
		stream := fileStream{path: path, records: records}
		if res != nil {
			stream.result = &driver.FileResult{
				Path:    path,
				FileID:  res.File.ID,
				Tokens:  res.Tokens,
				Bag:     res.Bag,
				ScanErr: res.ScanErr,
				FileSet: res.FileSet,
			}
		}
		streams = append(streams, stream)
	}
	return streams, nil
}

func tokenizeParallel(cmd *cobra.Command, paths []string, jobs int, opts driver.TokenizeOptions) ([]fileStream, error) {
	fileSet, results, err := driver.TokenizeFiles(cmd.Context(), paths, jobs, opts)
	if err != nil {
		return nil, err
	}
	streams := make([]fileStream, 0, len(results))
	for i := range results {
		res := &results[i]
		streams = append(streams, fileStream{
			path:    res.Path,
			records: diagfmt.TokenRecords(res.Tokens, fileSet),
			result:  res,
		})
	}
	return streams, nil
}
