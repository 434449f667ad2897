package generator

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/paths"
)

// components returns every prefix of dir from the top, dir included.
// The filesystem root and "." are left out.
func components(dir string) []string {
	var out []string
	for p := filepath.Clean(dir); ; {
		parent := filepath.Dir(p)
		if p == "." || parent == p {
			break
		}
		out = append(out, p)
		p = parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ensureTree stages the missing standard directories of a namespace. It
// returns the first conflicting path, or "" when the tree is complete. Symlinks are
// followed above the namespace directory only.
func (g *Generator) ensureTree(namespace string, result *Result) (string, error) {
	nsDir := g.layout.NamespaceDir(namespace)

	for _, sub := range paths.StandardDirs {
		for _, dir := range components(g.layout.Dir(namespace, sub)) {
			if g.dirs[dir] {
				continue
			}

			inspect := g.fs.Lstat
			if len(dir) < len(nsDir) {
				inspect = g.fs.Stat
			}
			info, err := inspect(dir)
			switch {
			case err == nil && info.IsDir():
				g.dirs[dir] = true
			case err == nil:
				return dir, nil
			case os.IsNotExist(err):
				g.exec.Mkdir(dir, g.dirMode)
				g.logger.Debug().Str("dir", dir).Bool("dry_run", g.dryRun).Msg("Staged directory")
				g.dirs[dir] = true
				result.CreatedDirs = append(result.CreatedDirs, dir)
			default:
				return "", errors.Wrapf(err, errors.ErrFileRead, "failed to inspect %s", dir).
					WithDetail("path", dir)
			}
		}
	}
	return "", nil
}
