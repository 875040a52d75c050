package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/gridpath"
	"github.com/katalvlaran/gridwalk/internal/config"
)

// point is the wire form of a position.
type point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// count wraps an arbitrary-precision total so it encodes as a bare number
// in both JSON and YAML.
type count struct{ n *big.Int }

func (c count) MarshalJSON() ([]byte, error) {
	return c.n.MarshalJSON()
}

func (c count) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: c.n.String()}, nil
}

// report is the structured (json/yaml) output document.
type report struct {
	MaxDistance int      `json:"max_distance" yaml:"max_distance"`
	Robot       point    `json:"robot" yaml:"robot"`
	Treasure    point    `json:"treasure" yaml:"treasure"`
	Count       count    `json:"count" yaml:"count"`
	Limit       int      `json:"limit,omitempty" yaml:"limit,omitempty"`
	Paths       []string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

func newReport(req request, n *big.Int) report {
	return report{
		MaxDistance: req.MaxRun,
		Robot:       point{X: req.Start.X, Y: req.Start.Y},
		Treasure:    point{X: req.Target.X, Y: req.Target.Y},
		Count:       count{n: n},
	}
}

// writeHeader echoes the parsed configuration.
func writeHeader(w io.Writer, req request) {
	fmt.Fprintln(w, "Explorer initialized with:")
	fmt.Fprintln(w, "Max Distance:", req.MaxRun)
	fmt.Fprintln(w, "Robot Position:", req.Start)
	fmt.Fprintln(w, "Treasure Position:", req.Target)
}

func renderPaths(w io.Writer, cfg config.Config, req request, e *gridpath.Explorer) error {
	total := big.NewInt(int64(e.Count()))

	switch cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		rep := newReport(req, total)
		rep.Limit = cfg.Limit
		for _, p := range e.Paths() {
			rep.Paths = append(rep.Paths, p.String())
		}

		return encode(w, cfg.Format, rep)
	default:
		writeHeader(w, req)
		if _, err := e.WriteTo(w); err != nil {
			return err
		}
		if cfg.Summary {
			longest := 0
			for _, p := range e.Paths() {
				longest = max(longest, p.LongestRun())
			}
			writeSummary(w, [][2]string{
				{"paths", total.String()},
				{"distance", fmt.Sprint(gridpath.Manhattan(req.Start, req.Target))},
				{"longest run", fmt.Sprint(longest)},
				{"max run", fmt.Sprint(req.MaxRun)},
			})
		}

		return nil
	}
}

func renderCount(w io.Writer, cfg config.Config, req request, n *big.Int) error {
	switch cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		return encode(w, cfg.Format, newReport(req, n))
	default:
		writeHeader(w, req)
		fmt.Fprintln(w, "Total Paths:", n)
		if cfg.Summary {
			writeSummary(w, [][2]string{
				{"paths", n.String()},
				{"distance", fmt.Sprint(gridpath.Manhattan(req.Start, req.Target))},
				{"max run", fmt.Sprint(req.MaxRun)},
			})
		}

		return nil
	}
}

func encode(w io.Writer, format string, rep report) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// writeSummary draws a bordered key/value box. Styling degrades to plain
// text when w is not a terminal.
func writeSummary(w io.Writer, rows [][2]string) {
	r := lipgloss.NewRenderer(w)
	key := r.NewStyle().Bold(true).Width(12)
	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = key.Render(row[0]+":") + row[1]
	}
	fmt.Fprintln(w, box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
