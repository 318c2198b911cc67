package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/payload"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type scoreRow struct {
	Mode  string `yaml:"mode"`
	Score int    `yaml:"score"`
}

type report struct {
	Mode         string         `yaml:"mode"`
	Source       string         `yaml:"source"`
	SessionID    string         `yaml:"session_id"`
	RawInput     string         `yaml:"raw_input"`
	Scores       []scoreRow     `yaml:"scores"`
	Preprocessed map[string]any `yaml:"preprocessed"`
}

func newReport(decision master.RouteDecision, source master.Source, scores map[mode.Mode]int) report {
	rows := make([]scoreRow, 0, len(scores))
	for _, m := range mode.All() {
		rows = append(rows, scoreRow{Mode: string(m), Score: scores[m]})
	}
	return report{
		Mode:         string(decision.Mode),
		Source:       string(source),
		SessionID:    decision.SessionID,
		RawInput:     decision.RawInput,
		Scores:       rows,
		Preprocessed: payload.Encode(decision.Preprocessed),
	}
}

func (r report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func (r report) Print(w io.Writer) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprint(w, "Mode:   ")
	green.Fprintln(w, r.Mode)
	fmt.Fprint(w, "Source: ")
	faint.Fprintln(w, r.Source)
	fmt.Fprintln(w)

	bold.Fprintln(w, "Scores")
	fmt.Fprintln(w, strings.Repeat("─", 24))
	for _, row := range r.Scores {
		line := fmt.Sprintf("  %-10s %5d", row.Mode, row.Score)
		if row.Mode == r.Mode {
			green.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	bold.Fprintln(w, "Preprocessed")
	body, err := json.MarshalIndent(r.Preprocessed, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%v\n", r.Preprocessed)
		return
	}
	fmt.Fprintln(w, string(body))
}
