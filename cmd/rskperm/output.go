package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rskperm/engine"
	"github.com/katalvlaran/rskperm/matrix"
	"github.com/katalvlaran/rskperm/shape"
	"github.com/katalvlaran/rskperm/tableau"
)

// Text output abbreviates σ and skips the matrix beyond this many cells.
const (
	textFullLimit = 200
	textPreview   = 20
)

// resultDoc is the json/yaml view of an engine.Result.
type resultDoc struct {
	RunID       string  `json:"run_id" yaml:"run_id"`
	Shape       []int   `json:"shape" yaml:"shape,flow"`
	N           int     `json:"n" yaml:"n"`
	Mode        string  `json:"mode" yaml:"mode"`
	P           [][]int `json:"p" yaml:"p,flow"`
	Q           [][]int `json:"q" yaml:"q,flow"`
	Permutation []int   `json:"permutation" yaml:"permutation,flow"`
}

type tableauDoc struct {
	Shape   []int   `json:"shape" yaml:"shape,flow"`
	Tableau [][]int `json:"tableau" yaml:"tableau,flow"`
}

func encode(w io.Writer, format string, doc any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// writeResult prints res in cfg.Format.
func writeResult(w io.Writer, cfg *Config, res *engine.Result) error {
	if cfg.Format != "text" {
		return encode(w, cfg.Format, resultDoc{
			RunID:       res.ID.String(),
			Shape:       res.Shape,
			N:           res.Permutation.Len(),
			Mode:        res.Mode.String(),
			P:           res.P.Cells(),
			Q:           res.Q.Cells(),
			Permutation: res.Permutation,
		})
	}

	n := res.Permutation.Len()
	var b strings.Builder
	fmt.Fprintf(&b, "shape: %s (n=%d)\nmode: %s\n", res.Shape, n, res.Mode)
	if n > textFullLimit {
		fmt.Fprintf(&b, "σ of size %d (first %d): %v\n", n, textPreview, []int(res.Permutation[:textPreview]))
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "P:\n%sQ:\n%sσ = %v\n", res.P, res.Q, []int(res.Permutation))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	mark, _ := utf8.DecodeRuneInString(cfg.Mark)
	blank, _ := utf8.DecodeRuneInString(cfg.Blank)
	return matrix.Render(w, res.Matrix, mark, blank)
}

// writeTableau prints a single SYT in format.
func writeTableau(w io.Writer, format string, p shape.Partition, t *tableau.Tableau) error {
	if format != "text" {
		return encode(w, format, tableauDoc{Shape: p, Tableau: t.Cells()})
	}
	_, err := fmt.Fprintf(w, "shape: %s (n=%d)\n%s", p, p.Size(), t)
	return err
}
