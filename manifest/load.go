package manifest

import (
	"os"

	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/errors"
)

// Load reads manifest files in order and returns the validated program.
func Load(paths ...string) (*decl.Program, error) {
	if len(paths) == 0 {
		return nil, errors.WithHint(
			errors.New("no manifest files given"),
			"pass one or more declaration manifests (.yaml, .json or .toml)",
		)
	}

	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return Build(files...)
}

// ReadFile reads and decodes one manifest file.
func ReadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Build merges decoded manifests, in order, into a validated program.
func Build(files ...*File) (*decl.Program, error) {
	p := &decl.Program{}

	for _, f := range files {
		if f.RootType != "" {
			if p.RootType != "" && normalize(p.RootType) != normalize(f.RootType) {
				return nil, errors.NewInvalidManifestError("conflicting root types %s and %s", p.RootType, f.RootType)
			}
			p.RootType = normalize(f.RootType)
		}

		for _, spec := range f.Types {
			d, err := toDeclaration(spec)
			if err != nil {
				return nil, err
			}
			p.Declarations = append(p.Declarations, d)
		}
	}

	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
