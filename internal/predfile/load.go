package predfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/tql/internal/logger"
)

// LoadMode controls how errors are handled during loading and compiling.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the definitions read from a path.
type LoadResult struct {
	Definitions []Definition
	FileCount   int
}

// Load reads definitions from path: a .yaml or .yml file, or a directory
// holding a CUE package. A nil result means nothing could be read; a
// non-nil result with errors holds the definitions that did decode.
func Load(path string, mode LoadMode) (*LoadResult, []error) {
	log := logger.Named("predfile")

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("path not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing path: %v", err)}}
	}

	if info.IsDir() {
		defs, files, errs := LoadCUE(path, mode)
		if defs == nil && len(errs) > 0 {
			return nil, errs
		}
		log.Debugw("loaded CUE definitions", logger.FieldPath, path, logger.FieldCount, len(defs))
		return &LoadResult{Definitions: defs, FileCount: files}, errs
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		defs, err := LoadYAML(path)
		if err != nil {
			return nil, []error{err}
		}
		log.Debugw("loaded YAML definitions", logger.FieldPath, path, logger.FieldCount, len(defs))
		return &LoadResult{Definitions: defs, FileCount: 1}, nil
	default:
		return nil, []error{&LoadError{
			Code:    ErrCodeLoadFailed,
			Message: fmt.Sprintf("unsupported definition file %s: want .yaml, .yml or a CUE directory", path),
		}}
	}
}
