package orgfile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/ms-henglu/orgchart/internal/org"
)

// MarshalHCL returns the HCL form of the chart rooted at root, readable by ParseHCL.
func MarshalHCL(root org.Employee) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.AppendUnstructuredTokens(hclwrite.Tokens{
		{Type: hclsyntax.TokenComment, Bytes: []byte(fmt.Sprintf("# %d employees, %d levels\n", org.Count(root), org.Depth(root)))},
	})
	appendEmployee(body, root)
	return hclwrite.Format(f.Bytes())
}

// WriteHCL writes the HCL form of the chart rooted at root to w.
func WriteHCL(w io.Writer, root org.Employee) error {
	_, err := w.Write(MarshalHCL(root))
	return err
}

func appendEmployee(body *hclwrite.Body, e org.Employee) {
	switch e := e.(type) {
	case *org.IndividualContributor:
		body.AppendNewBlock(blockIndividual, []string{e.Name()})
	case *org.Manager:
		block := body.AppendNewBlock(blockManager, []string{e.Name()})
		for _, sub := range e.Subordinates() {
			appendEmployee(block.Body(), sub)
		}
	default:
		panic(fmt.Sprintf("orgfile: unsupported employee %T", e))
	}
}
