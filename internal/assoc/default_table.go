package assoc

// DefaultTable mirrors the original's three hard-coded example groups: a
// browser with a separate renderer/plugin host binary, an office suite
// whose launcher shells out to its real binary, and a mail client with a
// spell-check helper. Each inner slice's last element is the group's main
// key. Callers needing real-world coverage should load a provisioned
// table via LoadJSONC instead.
var DefaultTable = [][]string{
	{
		"/usr/lib/firefox/plugin-container",
		"/usr/lib/firefox/firefox-bin",
		"/usr/bin/firefox",
	},
	{
		"/usr/lib/libreoffice/program/oosplash",
		"/usr/lib/libreoffice/program/soffice.bin",
		"/usr/bin/soffice",
	},
	{
		"/usr/lib/thunderbird/thunderbird-bin",
		"/usr/bin/hunspell",
		"/usr/bin/thunderbird",
	},
}

// NewDefaultRegistry builds a Registry from DefaultTable.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultTable)
}
