package config

// Template returns a commented starter configuration for `gomdview init`.
func Template() []byte {
	return []byte(`# gomdview configuration.
#
# mode: decoration mode used when --mode is not given.
#   editable  - syntax near the cursor stays raw
#   read-only - every construct is always decorated
mode: read-only

# color: colorize output (auto, always, never).
color: auto

# vault: root directory image embeds like ![[name.png]] resolve against.
# Empty means the directory of the previewed file.
vault: ""

# scans: pattern-driven scans; the structural decorator is always active.
scans:
  math: true
  highlight: true
  embeds: true
  tables: true

# log_level: debug, info, warn, error.
log_level: info
`)
}
