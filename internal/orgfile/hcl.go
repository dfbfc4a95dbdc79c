package orgfile

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/ms-henglu/orgchart/internal/org"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	blockManager    = "manager"
	blockIndividual = "individual"
	attrName        = "name"
)

// ParseHCL decodes an org chart written as nested manager/individual blocks:
//
//	manager "Betty Bian" {
//	  individual "Konrad Kraikupt" {}
//	  manager "Lars Littlebear" {
//	    individual {
//	      name = "Mandy Maalouf"
//	    }
//	  }
//	}
func ParseHCL(src []byte, filename string) (org.Employee, error) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse %s: unexpected body type %T", filename, f.Body)
	}

	root, diags := decodeRoot(body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid org chart %s: %s", filename, diags.Error())
	}
	return root, nil
}

func decodeRoot(body *hclsyntax.Body) (org.Employee, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	for _, attr := range body.Attributes {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("An argument named %q is not expected at the top level of an org chart.", attr.Name),
			Subject:  attr.NameRange.Ptr(),
		})
	}

	var root org.Employee
	for _, block := range body.Blocks {
		if root != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Multiple roots",
				Detail:   "An org chart must have exactly one top-level manager or individual block.",
				Subject:  block.TypeRange.Ptr(),
			})
			continue
		}
		e, blockDiags := decodeEmployee(block)
		diags = append(diags, blockDiags...)
		root = e
	}

	if root == nil && !diags.HasErrors() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty org chart",
			Detail:   "An org chart must have exactly one top-level manager or individual block.",
			Subject:  body.SrcRange.Ptr(),
		})
	}
	return root, diags
}

func decodeEmployee(block *hclsyntax.Block) (org.Employee, hcl.Diagnostics) {
	switch block.Type {
	case blockManager, blockIndividual:
	default:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   fmt.Sprintf("Blocks of type %q are not expected here; use %q or %q.", block.Type, blockManager, blockIndividual),
			Subject:  block.TypeRange.Ptr(),
		}}
	}

	name, diags := blockName(block)
	if strings.TrimSpace(name) == "" && !diags.HasErrors() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty name",
			Detail:   "Employee names must not be empty.",
			Subject:  block.DefRange().Ptr(),
		})
	}

	if block.Type == blockIndividual {
		for _, nested := range block.Body.Blocks {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Individual contributor with reports",
				Detail:   fmt.Sprintf("%q is an individual contributor and cannot have reports; declare it as a manager instead.", name),
				Subject:  nested.TypeRange.Ptr(),
			})
		}
		return org.NewIndividualContributor(name), diags
	}

	var subordinates []org.Employee
	for _, nested := range block.Body.Blocks {
		sub, subDiags := decodeEmployee(nested)
		diags = append(diags, subDiags...)
		if sub != nil {
			subordinates = append(subordinates, sub)
		}
	}
	return org.NewManager(name, subordinates...), diags
}

// blockName reads the employee name from the single block label or from the name attribute.
func blockName(block *hclsyntax.Block) (string, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	for attrKey, attr := range block.Body.Attributes {
		if attrKey != attrName {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected in a %s block.", attrKey, block.Type),
				Subject:  attr.NameRange.Ptr(),
			})
		}
	}

	attr, hasAttr := block.Body.Attributes[attrName]
	switch {
	case len(block.Labels) > 1:
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Too many labels",
			Detail:   fmt.Sprintf("A %s block takes at most one label, the employee name.", block.Type),
			Subject:  block.LabelRanges[1].Ptr(),
		})
	case len(block.Labels) == 1 && hasAttr:
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate name",
			Detail:   "The employee name is given both as a label and as the name argument.",
			Subject:  attr.NameRange.Ptr(),
		})
	case len(block.Labels) == 1:
		return block.Labels[0], diags
	case !hasAttr:
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing name",
			Detail:   fmt.Sprintf("A %s block needs a label or a name argument.", block.Type),
			Subject:  block.TypeRange.Ptr(),
		})
	}

	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return "", diags
	}

	var name string
	if err := gocty.FromCtyValue(val, &name); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid name",
			Detail:   fmt.Sprintf("The name argument must be a string: %s.", err),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	return name, diags
}
