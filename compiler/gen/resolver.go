package gen

import (
	"path"
	"strings"
)

// ResolveImportPath returns the path from the root of a module living in
// fromDir to target inside toDir. Both directories are relative to the
// source root. Modules in the same directory are siblings, otherwise the
// path climbs out of the module and every segment of fromDir up to the
// source root before descending into toDir.
//
//	ResolveImportPath("features", "features", "topic")              // ../topic
//	ResolveImportPath("features/community", "features", "topic")    // ../../../features/topic
func ResolveImportPath(fromDir, toDir, target string) string {
	fromDir, toDir = cleanDir(fromDir), cleanDir(toDir)
	if fromDir == toDir {
		return "../" + target
	}
	up := 1 + len(strings.Split(fromDir, "/"))
	return strings.Repeat("../", up) + path.Join(toDir, target)
}

func cleanDir(dir string) string {
	return strings.Trim(path.Clean(dir), "/")
}

// Import locates a related module for import statements. A foundation
// module is imported from its package; any other module by a relative path
// which depends on the depth of the importing artifact.
type Import struct {
	// Package is set for modules of the foundation package.
	Package string
	// Base is the path from the importing module root to the related module root.
	Base string
	// Kebab is the file stem of the related module.
	Kebab string
	// Legacy modules keep the entity type in entities/<kebab>.entity.ts,
	// next to their meta file.
	Legacy bool
}

// Entity returns the specifier of the related entity file.
func (i Import) Entity(from Artifact) string {
	if i.Legacy {
		return i.path(from, "entities/"+i.Kebab+".entity")
	}
	return i.path(from, "entities/"+i.Kebab)
}

// Meta returns the specifier of the related meta file.
func (i Import) Meta(from Artifact) string {
	return i.path(from, "entities/"+i.Kebab+".meta")
}

// DTO returns the specifier of the related base DTO file.
func (i Import) DTO(from Artifact) string {
	return i.path(from, "dtos/"+i.Kebab+".dto")
}

func (i Import) path(from Artifact, file string) string {
	if i.Package != "" {
		return i.Package
	}
	return strings.Repeat("../", from.Depth()) + i.Base + "/" + file
}
