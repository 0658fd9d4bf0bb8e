package registry

// jsrMetaResponse is the package metadata served at {base}/{name}/meta.json.
type jsrMetaResponse struct {
	Scope    string                    `json:"scope"`
	Name     string                    `json:"name"`
	Latest   string                    `json:"latest"`
	Versions map[string]jsrVersionInfo `json:"versions"`
}

// jsrVersionInfo describes one published version.
type jsrVersionInfo struct {
	Yanked bool `json:"yanked,omitempty"`
}

// npmPackument is the registry document served at {base}/{name}.
type npmPackument struct {
	Name     string                    `json:"name"`
	DistTags map[string]string         `json:"dist-tags"`
	Versions map[string]npmVersionInfo `json:"versions"`
}

// npmVersionInfo is the per-version manifest subset the fetcher needs.
type npmVersionInfo struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Dist    npmDist `json:"dist"`
}

// npmDist carries the distribution location and checksums.
type npmDist struct {
	Tarball   string `json:"tarball"`
	Shasum    string `json:"shasum"`
	Integrity string `json:"integrity,omitempty"`
}
