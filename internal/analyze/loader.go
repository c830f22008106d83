package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// Analyzer loads Go packages and extracts their constants and entry types.
type Analyzer struct {
	dir  string
	tags []string
}

// NewAnalyzer creates an Analyzer that resolves patterns from dir ("" for
// the working directory) with the given build tags.
func NewAnalyzer(dir string, tags ...string) *Analyzer {
	return &Analyzer{dir: dir, tags: tags}
}

// LoadPackages loads the specified packages keyed by import path.
// Patterns are standard Go package patterns (e.g., "./native/controlid").
func (a *Analyzer) LoadPackages(patterns ...string) (map[string]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	if len(a.tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	res := make(map[string]*PackageInfo, len(pkgs))
	for _, pkg := range pkgs {
		res[pkg.PkgPath] = processPackage(pkg)
	}

	return res, nil
}

// LoadPackage loads exactly one package.
func (a *Analyzer) LoadPackage(pattern string) (*PackageInfo, error) {
	infos, err := a.LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	if len(infos) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(infos))
	}

	for _, info := range infos {
		return info, nil
	}

	return nil, nil
}

func processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:      pkg.PkgPath,
		Name:      pkg.Name,
		Constants: map[string]ConstInfo{},
	}

	qualifier := types.RelativeTo(pkg.Types)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		switch o := obj.(type) {
		case *types.Const:
			info.Constants[name] = ConstInfo{
				Name:  name,
				Type:  types.TypeString(o.Type(), qualifier),
				Value: o.Val(),
			}
		case *types.TypeName:
			if isEntry(o.Type()) {
				info.Entries = append(info.Entries, name)
			}
		}
	}

	slices.Sort(info.Entries)

	return info
}

// isEntry reports whether t has the methods generated for every control
// type.
func isEntry(t types.Type) bool {
	values := types.NewMethodSet(t)
	pointers := types.NewMethodSet(types.NewPointer(t))

	return values.Lookup(nil, "ID") != nil &&
		values.Lookup(nil, "Value") != nil &&
		pointers.Lookup(nil, "UnmarshalControl") != nil
}
