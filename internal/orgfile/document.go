package orgfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ms-henglu/orgchart/internal/org"
	"gopkg.in/yaml.v3"
)

// employeeDoc is the YAML/JSON shape of an employee. A document with a
// reports key, even an empty one, is a manager.
type employeeDoc struct {
	Name    string         `yaml:"name" json:"name"`
	Reports *[]employeeDoc `yaml:"reports,omitempty" json:"reports,omitempty"`
}

// ParseYAML decodes an org chart document such as:
//
//	name: Betty Bian
//	reports:
//	  - name: Konrad Kraikupt
//	  - name: Lars Littlebear
//	    reports:
//	      - name: Mandy Maalouf
func ParseYAML(src []byte, filename string) (org.Employee, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc employeeDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid org chart %s: empty document", filename)
		}
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: an org chart file holds a single document", filename)
	}
	return toEmployee(doc, filename)
}

// ParseJSON decodes the JSON form of the ParseYAML document.
func ParseJSON(src []byte, filename string) (org.Employee, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()

	var doc employeeDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: unexpected content after the org chart", filename)
	}
	return toEmployee(doc, filename)
}

func toEmployee(doc employeeDoc, filename string) (org.Employee, error) {
	e, err := convertDoc(doc, "root")
	if err != nil {
		return nil, fmt.Errorf("invalid org chart %s: %w", filename, err)
	}
	return e, nil
}

func convertDoc(doc employeeDoc, path string) (org.Employee, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return nil, fmt.Errorf("employee at %s has no name", path)
	}
	if doc.Reports == nil {
		return org.NewIndividualContributor(doc.Name), nil
	}

	subordinates := make([]org.Employee, 0, len(*doc.Reports))
	for i, report := range *doc.Reports {
		sub, err := convertDoc(report, fmt.Sprintf("%s.reports[%d]", path, i))
		if err != nil {
			return nil, err
		}
		subordinates = append(subordinates, sub)
	}
	return org.NewManager(doc.Name, subordinates...), nil
}
