package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/wordchain/wordchain"
)

// noSolution is printed, with exit status 0, when no chain exists.
const noSolution = "No solution is possible."

// OutputFormat represents the output format type.
type OutputFormat string

const (
	// FormatPlain prints the chain as space-separated words (default).
	FormatPlain OutputFormat = "plain"
	// FormatJSON outputs a report as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs a report as YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatPretty prints a styled chain with arrows.
	FormatPretty OutputFormat = "pretty"
)

var formats = []OutputFormat{FormatPlain, FormatJSON, FormatYAML, FormatPretty}

// parseFormat validates a --format value.
func parseFormat(s string) (OutputFormat, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported output format %q (want one of %s)", s, strings.Join(names, ", "))
}

// report is the structured form of a result for json and yaml output.
type report struct {
	Found      bool       `json:"found" yaml:"found"`
	Chain      []string   `json:"chain" yaml:"chain"`
	Words      int        `json:"words" yaml:"words"`
	Edges      int        `json:"edges" yaml:"edges"`
	Connected  bool       `json:"connected" yaml:"connected"`
	Components [][]string `json:"components,omitempty" yaml:"components,omitempty"`
	Message    string     `json:"message,omitempty" yaml:"message,omitempty"`
}

func newReport(res *wordchain.Result) report {
	r := report{
		Found:     res.Found(),
		Chain:     res.Chain,
		Words:     len(res.Words),
		Edges:     res.Graph.Edges(),
		Connected: res.Connected,
	}
	if r.Chain == nil {
		r.Chain = []string{}
	}
	for _, comp := range res.Components {
		words := make([]string, len(comp))
		for k, i := range comp {
			words[k] = res.Words[i]
		}
		r.Components = append(r.Components, words)
	}
	if !r.Found {
		r.Message = noSolution
	}
	return r
}

// writeResult writes res to w in the given format.
func writeResult(w io.Writer, res *wordchain.Result, format OutputFormat) error {
	switch format {
	case FormatPlain, "":
		return outputPlain(w, res)
	case FormatJSON:
		return outputJSON(w, newReport(res))
	case FormatYAML:
		return outputYAML(w, newReport(res))
	case FormatPretty:
		return outputPretty(w, res)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputPlain(w io.Writer, res *wordchain.Result) error {
	if !res.Found() {
		_, err := fmt.Fprintln(w, noSolution)
		return err
	}
	var sb strings.Builder
	for _, word := range res.Chain {
		sb.WriteString(word)
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func outputJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func outputYAML(w io.Writer, r report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputPretty(w io.Writer, res *wordchain.Result) error {
	if !res.Found() {
		lines := []string{errorLine(noSolution)}
		if !res.Connected && len(res.Components) > 1 {
			lines = append(lines, detailLine(fmt.Sprintf("the words fall into %d unconnected groups", len(res.Components))))
		}
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", successLine(fmt.Sprintf("chain of %d words", len(res.Chain))), prettyChain(res.Chain))
	return err
}
