package predfile

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
)

// LoadCUE loads the CUE package in dir and extracts every field of the
// top-level predicate struct, in declaration order.
func LoadCUE(dir string, mode LoadMode) ([]Definition, int, []error) {
	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, 0, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, 0, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, len(cueFiles), []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, len(cueFiles), []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	root := ctx.BuildInstance(inst)
	if err := root.Err(); err != nil {
		return nil, len(cueFiles), []error{formatCUEError(err, ErrCodeBuildFailed)}
	}

	preds := root.LookupPath(cue.ParsePath("predicate"))
	if !preds.Exists() {
		return nil, len(cueFiles), []error{&LoadError{Code: ErrCodeGeneric, Message: "no predicate struct found"}}
	}

	iter, err := preds.Fields()
	if err != nil {
		return nil, len(cueFiles), []error{formatCUEError(err, ErrCodeGeneric)}
	}

	var (
		defs []Definition
		errs []error
	)
	for iter.Next() {
		def, err := decodeDefinition(iter.Label(), iter.Value())
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return defs, len(cueFiles), errs
			}
			continue
		}
		defs = append(defs, def)
	}
	return defs, len(cueFiles), errs
}

// decodeDefinition reads {op, field, value} from one predicate struct.
func decodeDefinition(name string, v cue.Value) (Definition, error) {
	def := Definition{Name: name, Pos: v.Pos()}

	op, err := stringField(v, "op")
	if err != nil {
		return def, err
	}
	def.Op = op

	field, err := stringField(v, "field")
	if err != nil {
		return def, err
	}
	def.Field = field

	val := v.LookupPath(cue.ParsePath("value"))
	if val.Exists() {
		native, err := cueNative(val)
		if err != nil {
			return def, err
		}
		def.Value = native
	}
	return def, nil
}

func stringField(v cue.Value, label string) (string, error) {
	f := v.LookupPath(cue.ParsePath(label))
	if !f.Exists() {
		return "", nil
	}
	s, err := f.String()
	if err != nil {
		return "", formatCUEError(err, ErrCodeInvalidValue)
	}
	return s, nil
}

// cueNative converts a concrete CUE value into the Go natives value.Of
// accepts. Structs become maps so that range bounds go through the same
// path as YAML.
func cueNative(v cue.Value) (any, error) {
	switch v.Kind() {
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		b, err := v.Bool()
		return b, wrapCUE(err)
	case cue.IntKind:
		n, err := v.Int64()
		return n, wrapCUE(err)
	case cue.FloatKind:
		f, err := v.Float64()
		return f, wrapCUE(err)
	case cue.StringKind:
		s, err := v.String()
		return s, wrapCUE(err)
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, wrapCUE(err)
		}
		out := []any{}
		for iter.Next() {
			elem, err := cueNative(iter.Value())
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, wrapCUE(err)
		}
		out := map[string]any{}
		for iter.Next() {
			elem, err := cueNative(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Label()] = elem
		}
		return out, nil
	default:
		return nil, &LoadError{
			Code:    ErrCodeInvalidValue,
			Message: fmt.Sprintf("value must be concrete, got %v", v.IncompleteKind()),
			Pos:     v.Pos(),
		}
	}
}

func wrapCUE(err error) error {
	if err == nil {
		return nil
	}
	return formatCUEError(err, ErrCodeInvalidValue)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error, code string) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
