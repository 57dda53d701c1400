package gen

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/syssam/modulegen/compiler/load"
)

// Structure is the on-disk shape of a module.
type Structure int

const (
	// StructureDescriptor modules export a single descriptor from
	// entities/<name>.ts. Unknown modules are assumed to use it.
	StructureDescriptor Structure = iota
	// StructureLegacy modules keep their metadata in entities/<name>.meta.ts.
	StructureLegacy
)

// String implements fmt.Stringer.
func (s Structure) String() string {
	if s == StructureLegacy {
		return "legacy"
	}
	return "descriptor"
}

// ParseStructure parses the name of a structure.
func ParseStructure(s string) (Structure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "meta":
		return StructureLegacy, nil
	case "descriptor", "new", "":
		return StructureDescriptor, nil
	default:
		return StructureDescriptor, fmt.Errorf("unknown module structure %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Structure) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := ParseStructure(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Structure) MarshalYAML() (any, error) {
	return s.String(), nil
}

// ModuleRef identifies a module by the directory it lives in and its
// kebab-case name. Directory is relative to the source root, or the
// foundation sentinel.
type ModuleRef struct {
	Directory string `yaml:"directory"`
	Name      string `yaml:"name"`
}

// String implements fmt.Stringer.
func (r ModuleRef) String() string {
	return path.Join(r.Directory, r.Name)
}

// normalize cleans the directory so "features/" and "features" name the
// same module.
func (r ModuleRef) normalize() ModuleRef {
	return ModuleRef{Directory: cleanDir(r.Directory), Name: r.Name}
}

// ModuleRegistry answers which structure a referenced module uses.
type ModuleRegistry interface {
	Structure(ref ModuleRef) Structure
}

// ModuleInfo is one entry of a registry listing.
type ModuleInfo struct {
	ModuleRef `yaml:",inline"`
	Structure Structure `yaml:"structure"`
}

// StaticRegistry is a ModuleRegistry backed by a map. It is populated once,
// by a scan or from a manifest, and is safe for concurrent reads.
type StaticRegistry struct {
	mu      sync.RWMutex
	modules map[ModuleRef]Structure
}

// NewStaticRegistry returns an empty registry.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{modules: make(map[ModuleRef]Structure)}
}

// Set records the structure of a module. The directory is cleaned.
func (r *StaticRegistry) Set(ref ModuleRef, s Structure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[ref.normalize()] = s
}

// Structure implements ModuleRegistry. Unknown modules use the descriptor structure.
func (r *StaticRegistry) Structure(ref ModuleRef) Structure {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[ref.normalize()]
}

// Has reports if the registry knows the module.
func (r *StaticRegistry) Has(ref ModuleRef) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.modules[ref.normalize()]
	return ok
}

// Modules lists the known modules sorted by directory and name.
func (r *StaticRegistry) Modules() []ModuleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]ModuleInfo, 0, len(r.modules))
	for ref, s := range r.modules {
		infos = append(infos, ModuleInfo{ModuleRef: ref, Structure: s})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Directory != infos[j].Directory {
			return infos[i].Directory < infos[j].Directory
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// scanRoots are the directories under the source root holding modules.
var scanRoots = []string{"features", "foundations"}

// ScanRegistry walks the source root and the foundation directory of the
// config and records every module found. A module is any directory with an
// entities/ subdirectory. It is legacy if entities/<name>.meta.ts exists.
func ScanRegistry(cfg *Config) (*StaticRegistry, error) {
	reg := NewStaticRegistry()
	for _, root := range scanRoots {
		dir := filepath.Join(cfg.Root, root)
		ok, err := afero.DirExists(cfg.Fs, dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		err = afero.Walk(cfg.Fs, dir, func(p string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() || info.Name() != "entities" {
				return nil
			}
			moduleDir := filepath.Dir(p)
			rel, err := filepath.Rel(cfg.Root, filepath.Dir(moduleDir))
			if err != nil {
				return err
			}
			name := filepath.Base(moduleDir)
			legacy, err := anyExists(cfg.Fs, p, name+".meta.ts")
			if err != nil {
				return err
			}
			reg.Set(ModuleRef{Directory: filepath.ToSlash(rel), Name: name}, structureOf(legacy))
			return filepath.SkipDir
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	}
	if cfg.FoundationDir == "" {
		return reg, nil
	}
	ok, err := afero.DirExists(cfg.Fs, cfg.FoundationDir)
	if err != nil || !ok {
		return reg, err
	}
	entries, err := afero.ReadDir(cfg.Fs, cfg.FoundationDir)
	if err != nil {
		return nil, fmt.Errorf("scan foundations: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		entities := filepath.Join(cfg.FoundationDir, e.Name(), "entities")
		ok, err := afero.DirExists(cfg.Fs, entities)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		legacy, err := anyExists(cfg.Fs, entities, e.Name()+".meta.ts", e.Name()+".meta.d.ts", e.Name()+".meta.js")
		if err != nil {
			return nil, err
		}
		reg.Set(ModuleRef{Directory: load.FoundationDirectory, Name: e.Name()}, structureOf(legacy))
	}
	return reg, nil
}

// manifest is the file format read by LoadManifest.
type manifest struct {
	Modules []ModuleInfo `yaml:"modules"`
}

// LoadManifest reads a registry from a YAML manifest:
//
//	modules:
//	  - directory: features
//	    name: topic
//	    structure: legacy
func LoadManifest(fsys afero.Fs, file string) (*StaticRegistry, error) {
	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", file, err)
	}
	reg := NewStaticRegistry()
	for i, info := range m.Modules {
		if info.Directory == "" || info.Name == "" {
			return nil, fmt.Errorf("parse manifest %s: module %d needs a directory and a name", file, i)
		}
		reg.Set(info.ModuleRef, info.Structure)
	}
	return reg, nil
}

// MarshalManifest renders the registry in the manifest format.
func (r *StaticRegistry) MarshalManifest() ([]byte, error) {
	return yaml.Marshal(manifest{Modules: r.Modules()})
}

func anyExists(fsys afero.Fs, dir string, names ...string) (bool, error) {
	for _, name := range names {
		ok, err := afero.Exists(fsys, filepath.Join(dir, name))
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func structureOf(legacy bool) Structure {
	if legacy {
		return StructureLegacy
	}
	return StructureDescriptor
}
