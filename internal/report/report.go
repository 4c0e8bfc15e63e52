// Package report renders evaluation snapshots for human and machine
// readers. Generation is pure (Run holds everything); writing is the
// caller's concern.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"proofbench/internal/evaluate"
	"proofbench/internal/profile"
)

// Run bundles the snapshots of one evaluation pass over a registry.
// RunID and GeneratedAt are provenance only — neither feeds any hash, so
// two runs over an unchanged registry differ only in these fields.
type Run struct {
	RunID       string              `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time           `json:"generated_at" yaml:"generated_at"`
	Snapshots   []evaluate.Snapshot `json:"snapshots" yaml:"snapshots"`
}

// NewRun evaluates every profile in the registry, in insertion order.
func NewRun(reg *profile.Registry) Run {
	run := Run{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Snapshots:   make([]evaluate.Snapshot, 0, reg.Len()),
	}
	for p := range reg.All() {
		run.Snapshots = append(run.Snapshots, evaluate.Evaluate(p))
	}
	return run
}

// Format selects a rendering of a run or snapshot.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
}

// Render produces the full document for the run in the requested format.
func (r Run) Render(f Format) (string, error) {
	switch f {
	case FormatText:
		return r.renderText(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal run: %w", err)
		}
		return string(out) + "\n", nil
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("marshal run: %w", err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("unknown format %q", f)
}

// RenderOne produces the document for a single snapshot in the requested
// format, without run provenance.
func RenderOne(s evaluate.Snapshot, f Format) (string, error) {
	switch f {
	case FormatText:
		return RenderSnapshot(s), nil
	case FormatJSON:
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal snapshot: %w", err)
		}
		return string(out) + "\n", nil
	case FormatYAML:
		out, err := yaml.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("marshal snapshot: %w", err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("unknown format %q", f)
}

// ---------------------------------------------------------------------------
// Text rendering
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(22)
	indexStyle = lipgloss.NewStyle().Bold(true)
	hashStyle  = lipgloss.NewStyle().Faint(true)
)

func (r Run) renderText() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cryptographic Architecture Comparison") + "\n")
	b.WriteString(fmt.Sprintf("run %s — %d profiles — %s\n\n",
		r.RunID, len(r.Snapshots), r.GeneratedAt.Format(time.RFC3339)))
	for i, s := range r.Snapshots {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderSnapshot(s))
	}
	return b.String()
}

// RenderSnapshot renders one snapshot as human-readable text. Dimensions
// are shown raw; the quality index is formatted to two decimals (display
// only — full precision is retained internally and in the hash input).
func RenderSnapshot(s evaluate.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", s.Profile.Name, s.Profile.Family)) + "\n")
	if s.Profile.Description != "" {
		b.WriteString(s.Profile.Description + "\n")
	}
	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + " " + value + "\n")
	}
	field("Privacy strength", dim(s.Profile.PrivacyStrength))
	field("Soundness guarantee", dim(s.Profile.SoundnessGuarantee))
	field("Proving cost", dim(s.Profile.ProvingCost))
	field("Verification cost", dim(s.Profile.VerificationCost))
	field("Quality index", indexStyle.Render(fmt.Sprintf("%.2f", s.QualityIndex)))
	field("Evaluated at", s.Timestamp.Format(time.RFC3339))
	field("Metadata hash", hashStyle.Render(s.MetadataHash))
	return b.String()
}

// dim formats a raw dimension without trailing zeros (9.3 → "9.3", 10 → "10").
func dim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
