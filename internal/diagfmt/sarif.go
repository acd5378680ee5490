package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"ferret/internal/diag"
	"ferret/internal/source"
)

const sarifSchema = "https://json.schemastore.org/sarif-2.1.0.json"

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID string `json:"id"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

// Sarif writes the bag as a SARIF v2.1.0 log with a single run.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	items := bag.Items()
	results := make([]sarifResult, 0, len(items))
	ruleSet := make(map[string]struct{})

	for i := range items {
		d := &items[i]
		id := d.Code.ID()
		ruleSet[id] = struct{}{}

		res := sarifResult{
			RuleID:  id,
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
		}
		if loc, ok := sarifLocationFor(d.Primary, fs); ok {
			res.Locations = append(res.Locations, loc)
		}
		results = append(results, res)
	}

	rules := make([]sarifRule, 0, len(ruleSet))
	for id := range ruleSet {
		rules = append(rules, sarifRule{ID: id})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	log := sarifLog{
		Version: "2.1.0",
		Schema:  sarifSchema,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    meta.ToolName,
				Version: meta.ToolVersion,
				Rules:   rules,
			}},
			Results: results,
		}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func sarifLocationFor(sp source.Span, fs *source.FileSet) (sarifLocation, bool) {
	// I/O diagnostics carry no span at all
	if sp.Empty() && sp.Start == 0 {
		return sarifLocation{}, false
	}
	f := fs.Get(sp.File)
	if f == nil {
		return sarifLocation{}, false
	}
	start, end := fs.Resolve(sp)
	return sarifLocation{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifactLocation{URI: f.Path},
			Region: sarifRegion{
				StartLine:   start.Line,
				StartColumn: start.Col,
				EndLine:     end.Line,
				EndColumn:   end.Col,
			},
		},
	}, true
}
