// Package templates is the catalog of artifact contents keyed by project
// kind, template name and artifact.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Literal artifact bodies live at files/<kind>/<artifact>.<template>.
// Files under files/common apply to every kind.
//
//go:embed files
var contentFS embed.FS

const (
	contentRoot = "files"
	commonKind  = "common"
)

type contentKey struct {
	kind     string
	artifact ArtifactID
	template string
}

// loadStatic indexes every embedded file by (kind, artifact, template).
func loadStatic(fsys fs.FS) (map[contentKey]string, error) {
	index := make(map[contentKey]string)

	err := fs.WalkDir(fsys, contentRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, contentRoot+"/")
		kind, name := path.Split(rel)
		kind = strings.TrimSuffix(kind, "/")

		dot := strings.LastIndex(name, ".")
		if kind == "" || dot <= 0 || dot == len(name)-1 {
			return fmt.Errorf("malformed content file name %q", p)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading content %s: %w", p, err)
		}

		index[contentKey{kind: kind, artifact: ArtifactID(name[:dot]), template: name[dot+1:]}] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return index, nil
}
