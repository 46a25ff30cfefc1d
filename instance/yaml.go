package instance

import (
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/StivenCastro138/Dashboard-Optimizaci-n-Producci-n-NVIDIA/model"
)

// document is the YAML layout of a problem:
//
//	name: production mix
//	sense: max
//	variables:
//	  - {name: RTX 4090, objective: 849}
//	constraints:
//	  - {name: hours, coefficients: [8], op: "<=", rhs: 50000}
type document struct {
	Name        string             `json:"name,omitempty"`
	Sense       string             `json:"sense,omitempty"`
	Variables   []model.Variable   `json:"variables"`
	Constraints []model.Constraint `json:"constraints"`
}

// ReadYAML decodes and validates a problem document.
func ReadYAML(r io.Reader) (*model.Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading problem document")
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding problem document")
	}

	sense, err := model.ParseSense(doc.Sense)
	if err != nil {
		return nil, err
	}
	p := &model.Problem{
		Name:        doc.Name,
		Sense:       sense,
		Variables:   doc.Variables,
		Constraints: doc.Constraints,
	}
	for i := range p.Constraints {
		if p.Constraints[i].Op == "" {
			p.Constraints[i].Op = model.LessEqual
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadYAML reads a problem document from path.
func LoadYAML(path string) (*model.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	p, err := ReadYAML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return p, nil
}

// WriteYAML encodes p as a problem document.
func WriteYAML(w io.Writer, p *model.Problem) error {
	doc := document{
		Name:        p.Name,
		Sense:       p.Sense.String(),
		Variables:   p.Variables,
		Constraints: p.Constraints,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding problem document")
	}
	_, err = w.Write(data)
	return errors.WithStack(err)
}
