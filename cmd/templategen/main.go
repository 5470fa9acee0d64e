// cmd/templategen generates form definition payloads from CUE templates.
//
// It reads the CUE package in ./templates, which declares named form
// templates (schema tree, state list, seed behaviors), and writes one JSON
// file per template to gen/forms/. The output files are complete bodies for
// POST /v1/forms, so a designer can keep form definitions in version control
// and load them with curl or the seed tooling.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/form"
)

// formTemplate mirrors the CUE #FormTemplate definition.
type formTemplate struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	States      []string          `json:"states"`
	Schema      *form.Node        `json:"schema"`
	Behaviors   []behavior.Bundle `json:"behaviors,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("templategen: ")

	ctx := cuecontext.New()
	projectRoot := findProjectRoot()

	insts := load.Instances([]string{"./templates"}, &load.Config{Dir: projectRoot})
	if len(insts) == 0 {
		log.Fatal("no CUE instances found in ./templates")
	}
	if insts[0].Err != nil {
		log.Fatalf("loading templates CUE: %v", insts[0].Err)
	}
	val := ctx.BuildInstance(insts[0])
	if val.Err() != nil {
		log.Fatalf("building templates CUE value: %v", val.Err())
	}

	templates := parseTemplates(val)
	if len(templates) == 0 {
		log.Fatal("no templates declared (expected a top-level templates struct)")
	}

	outDir := filepath.Join(projectRoot, "gen", "forms")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tpl := templates[name]
		if err := validateTemplate(name, tpl); err != nil {
			log.Fatalf("template %s: %v", name, err)
		}
		outPath := filepath.Join(outDir, name+".form.json")
		if err := writeJSON(outPath, tpl); err != nil {
			log.Fatalf("writing template %s: %v", name, err)
		}
		fmt.Printf("Generated gen/forms/%s.form.json\n", name)
	}
	fmt.Printf("templategen: generated %d form templates\n", len(templates))
}

// parseTemplates decodes every entry of the top-level templates struct.
func parseTemplates(val cue.Value) map[string]formTemplate {
	out := make(map[string]formTemplate)

	tplVal := val.LookupPath(cue.ParsePath("templates"))
	if tplVal.Err() != nil {
		return out
	}
	iter, err := tplVal.Fields()
	if err != nil {
		log.Fatalf("iterating templates: %v", err)
	}
	for iter.Next() {
		name := iter.Selector().String()
		var tpl formTemplate
		if err := iter.Value().Decode(&tpl); err != nil {
			log.Fatalf("decoding template %s: %v", name, err)
		}
		if tpl.Name == "" {
			tpl.Name = name
		}
		out[name] = tpl
	}
	return out
}

// validateTemplate rejects templates that the API would refuse or that
// would render to nothing.
func validateTemplate(name string, tpl formTemplate) error {
	if tpl.Schema == nil {
		return fmt.Errorf("missing schema")
	}
	if len(tpl.States) == 0 {
		return fmt.Errorf("missing states")
	}
	fields := form.ExtractFields(tpl.Schema)
	if len(fields) == 0 {
		return fmt.Errorf("schema declares no form fields")
	}

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		if known[f.Key] {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		known[f.Key] = true
	}
	states := make(map[string]bool, len(tpl.States))
	for _, s := range tpl.States {
		states[s] = true
	}
	for _, b := range tpl.Behaviors {
		if !states[b.State] {
			return fmt.Errorf("behavior references undeclared state %q", b.State)
		}
		for _, row := range b.Rows {
			if !known[row.FieldName] {
				return fmt.Errorf("behavior for state %q references unknown field %q", b.State, row.FieldName)
			}
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Fatal("could not find project root (no go.mod found)")
		}
		dir = parent
	}
}
