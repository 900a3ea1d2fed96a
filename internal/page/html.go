package page

import (
	"io"
	"text/template"

	"github.com/friendsofgo/errors"

	"gcp-instance-page/pkg/models"
)

// text/template on purpose: metadata values are written exactly as the server returned them.
var instanceHTML = template.Must(template.New("instance").Parse(`
<html><body>
<h2>Welcome to your custom website.</h2>
<h3>Created with a Go application!</h3>
<p><b>Instance Name:</b> {{ .Hostname }}</p>
<p><b>Instance Private IP Address:</b> {{ .LocalIPv4 }}</p>
<p><b>Zone:</b> {{ .Zone }}</p>
<p><b>Project ID:</b> {{ .ProjectID }}</p>
<p><b>Network Tags:</b> {{ .NetworkTags }}</p>
</body></html>
`))

// RenderHTML writes the instance page
func RenderHTML(w io.Writer, inst models.Instance) error {
	if err := instanceHTML.Execute(w, inst); err != nil {
		return errors.Wrap(err, "failed to render instance page")
	}
	return nil
}
