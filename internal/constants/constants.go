package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `vaultglass`
	ConfigFileType = `yaml`
	ConfigDir      = `/.vaultglass/`

	NoteExtension = `.md`

	// UnprocessedTag marks a daily note as still awaiting routing. It is
	// consumed wherever it appears in plain text, not only at line start.
	UnprocessedTag = `#unprocessed`

	// SectionPrefix starts a markdown section header, the unit of
	// emptiness pruning.
	SectionPrefix = `# `

	// IndexSentinel delimits the machine-owned link body of an index file
	// from its user-owned header and footer.
	IndexSentinel = `---`
)
