// # internal/output/render.go
package output

import (
	"os"
	"os/exec"
	"path/filepath"

	"symgraph/internal/errdefs"
)

// Renderer turns a DOT document into an image by shelling out to graphviz.
// A render failure never invalidates the analysis; callers report it and
// move on.
type Renderer struct {
	Dir    string // output directory for the .dot and image files
	Format string // graphviz -T format, defaults to png
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir, Format: "png"}
}

// Render writes dot to <dir>/<name>.dot and invokes the graphviz dot binary
// to produce <dir>/<name>.<format>. The written .dot file survives even when
// graphviz is unavailable.
func (r *Renderer) Render(name, dot string) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return errdefs.Wrap(err, errdefs.CodeExportFailed, "failed to create render directory")
	}

	dotPath := filepath.Join(r.Dir, name+".dot")
	if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
		return errdefs.Wrap(err, errdefs.CodeExportFailed, "failed to write dot file")
	}

	bin, err := exec.LookPath("dot")
	if err != nil {
		return errdefs.Wrap(err, errdefs.CodeExportFailed, "graphviz dot binary not found")
	}

	imgPath := filepath.Join(r.Dir, name+"."+r.Format)
	cmd := exec.Command(bin, "-T"+r.Format, "-o", imgPath, dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errdefs.AddContext(
			errdefs.Wrap(err, errdefs.CodeExportFailed, "graphviz failed: "+string(out)),
			errdefs.CtxFile, dotPath)
	}
	return nil
}
