// Package encode renders ir trees as YAML or JSON.
//
// YAML goes through the gopkg.in/yaml.v3 node encoder: key order and custom
// tags are kept, strings that would read back as another type are quoted, and
// floats always carry a decimal point or exponent. JSON is written directly so
// object keys keep their order; tags cannot be written in JSON.
//
// Colors are applied after rendering by re-tokenizing the output with
// github.com/goccy/go-yaml and printing each token class with the escape
// sequence of a github.com/fatih/color attribute.
package encode
