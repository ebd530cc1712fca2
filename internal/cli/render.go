package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fernandezvara/passadvisor"
)

const meterCells = 20

// analysisReport is the JSON shape of one analysis. The password itself is
// never included.
type analysisReport struct {
	Index int `json:"index,omitempty"`
	passadvisor.Result
}

// generatedReport is the JSON shape of one generated password.
type generatedReport struct {
	Password string              `json:"password"`
	Analysis *passadvisor.Result `json:"analysis,omitempty"`
}

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func meter(level passadvisor.StrengthLevel) string {
	filled := level.MeterWidth() * meterCells / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", meterCells-filled) + "]"
}

// writeResultText prints res in the human-readable layout.
func writeResultText(w io.Writer, res passadvisor.Result) error {
	var b strings.Builder
	if res.Empty() {
		fmt.Fprintf(&b, "Strength:    %s\n", res.Level)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Strength:    %s (%d/100)\n", res.Level, res.Score)
	fmt.Fprintf(&b, "Meter:       %s %d%%\n", meter(res.Level), res.Level.MeterWidth())
	fmt.Fprintf(&b, "Crack time:  %s\n", res.CrackTime)
	if res.BreachDetected {
		b.WriteString("Warning:     this password appears in a list of leaked passwords\n")
	}
	if res.PersonalInfoDetected {
		b.WriteString("Warning:     this password contains your personal information\n")
	}
	if len(res.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range res.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
