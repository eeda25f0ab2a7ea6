package parse

import "github.com/fixcik/yexp/format"

type parseOpts struct {
	format   format.Format
	maxNodes int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxNodes bounds the number of nodes a YAML document may expand to through
// aliases. Zero means the default.
func MaxNodes(n int) ParseOption {
	return func(o *parseOpts) { o.maxNodes = n }
}
