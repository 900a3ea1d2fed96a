package page

import (
	"io"

	"github.com/friendsofgo/errors"
	"gopkg.in/yaml.v3"

	"gcp-instance-page/pkg/models"
)

// RenderYAML writes the instance details as a YAML document
func RenderYAML(w io.Writer, inst models.Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&inst); err != nil {
		return errors.Wrap(err, "failed to marshal instance to YAML")
	}
	return errors.Wrap(enc.Close(), "failed to marshal instance to YAML")
}
