// Package convert turns capture files into rendered artifacts.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkship/inkship/pkg/log"
	"github.com/inkship/inkship/pkg/render"
	"github.com/inkship/inkship/pkg/wpi"
)

// Config controls where and how artifacts are written.
type Config struct {
	Formats []render.Format
	Render  render.Options

	// OutDir, when set, receives all artifacts instead of the input's directory.
	OutDir string

	StrictStrokes bool
}

// Converter decodes capture files and writes one artifact per format.
type Converter struct {
	renderers []render.Renderer
	outDir    string
	strict    bool
	decodeOpt []wpi.Option
	logger    log.Logger
}

// New builds a Converter. logger may be nil.
func New(cfg Config, logger log.Logger) (*Converter, error) {
	if len(cfg.Formats) == 0 {
		return nil, fmt.Errorf("no output format configured")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	c := &Converter{outDir: cfg.OutDir, strict: cfg.StrictStrokes, logger: logger}
	for _, f := range cfg.Formats {
		r, err := render.New(f, cfg.Render)
		if err != nil {
			return nil, err
		}
		c.renderers = append(c.renderers, r)
	}

	policy := wpi.IdlePointsKeep
	if cfg.StrictStrokes {
		policy = wpi.IdlePointsDrop
	}
	c.decodeOpt = []wpi.Option{
		wpi.WithLogger(logger),
		wpi.WithDiagnostics(wpi.LogDiagnostics(logger)),
		wpi.WithIdlePoints(policy),
	}
	return c, nil
}

// OutputPath names the artifact for input in. Without outDir the extension is
// appended to the input path (note.wpi -> note.wpi.svg).
func OutputPath(in, outDir, ext string) string {
	if outDir == "" {
		return in + ext
	}
	return filepath.Join(outDir, filepath.Base(in)+ext)
}

// Convert decodes path and writes every configured artifact. Nothing is
// written when decoding fails. It returns the artifact paths.
func (c *Converter) Convert(path string) ([]string, error) {
	c.logger.Info("opening", log.String("file", path))
	res, err := wpi.DecodeFile(path, c.decodeOpt...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	c.logger.Info("decoded",
		log.String("file", path),
		log.Int("strokes", len(res.Strokes)),
		log.Int("dropped", res.Stats.DroppedPoints),
		log.Bool("strict", c.strict))

	// Render everything before touching the filesystem so a renderer error
	// leaves no partial set of artifacts.
	outputs := make([]string, 0, len(c.renderers))
	bufs := make([]bytes.Buffer, len(c.renderers))
	for i, r := range c.renderers {
		if err := r.Render(&bufs[i], res.Strokes); err != nil {
			return nil, fmt.Errorf("render %s: %w", r.Format(), err)
		}
	}

	if c.outDir != "" {
		if err := os.MkdirAll(c.outDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	for i, r := range c.renderers {
		out := OutputPath(path, c.outDir, r.Extension())
		c.logger.Info("writing", log.String("file", out), log.String("format", string(r.Format())))
		if err := writeFileAtomic(out, bufs[i].Bytes()); err != nil {
			return outputs, fmt.Errorf("write %s: %w", out, err)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// writeFileAtomic writes to a temp file next to path, then renames it.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
