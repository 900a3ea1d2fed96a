package models

// Instance is what the metadata service reports about the VM serving the page,
// plus the hostname resolved locally. Values are kept exactly as returned.
type Instance struct {
	Hostname    string `yaml:"hostname"`
	LocalIPv4   string `yaml:"localIPv4"`
	Zone        string `yaml:"zone"`
	ProjectID   string `yaml:"projectID"`
	NetworkTags string `yaml:"networkTags"`
}
