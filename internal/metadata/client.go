package metadata

import (
	"context"
	"net/http"

	gce "cloud.google.com/go/compute/metadata"
	"github.com/friendsofgo/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gcp-instance-page/pkg/models"
)

// Sub-resources of http://<host>/computeMetadata/v1 read for every page
const (
	PathLocalIPv4   = "instance/network-interfaces/0/ip"
	PathZone        = "instance/zone"
	PathProjectID   = "project/project-id"
	PathNetworkTags = "instance/tags"
)

// Client reads instance details from the metadata server
type Client struct {
	gce *gce.Client
}

// NewClient returns a client that sends every query to host, which may carry a port.
// A nil base uses a clone of http.DefaultTransport.
func NewClient(host string, base http.RoundTripper) (*Client, error) {
	if host == "" {
		return nil, errors.New("metadata host is empty")
	}
	if base == nil {
		base = defaultTransport()
	}

	hc := &http.Client{
		Transport: otelhttp.NewTransport(&pinnedHostTransport{host: host, base: base}),
	}
	return &Client{gce: gce.NewClient(hc)}, nil
}

// Instance queries the private IPv4, zone, project ID and network tags, in that order.
// The first failed query aborts the rest. Hostname is left empty.
func (c *Client) Instance(ctx context.Context) (models.Instance, error) {
	var inst models.Instance

	fields := []struct {
		path string
		dst  *string
	}{
		{PathLocalIPv4, &inst.LocalIPv4},
		{PathZone, &inst.Zone},
		{PathProjectID, &inst.ProjectID},
		{PathNetworkTags, &inst.NetworkTags},
	}

	for _, f := range fields {
		v, err := c.gce.GetWithContext(ctx, f.path)
		if err != nil {
			return models.Instance{}, errors.Wrapf(err, "failed to query metadata %s", f.path)
		}
		*f.dst = v
	}

	return inst, nil
}
