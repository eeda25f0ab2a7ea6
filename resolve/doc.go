// Package resolve turns a configuration document and every document it
// references into one tree.
//
// Two references are recognised. A mapping at a document root may name base
// documents under the key "extend", either one path or a list of paths:
//
//	extend: [defaults.yaml, prod.yaml]
//	replicas: 3
//
// The document is deep merged over its bases with its own keys winning, and
// among the bases later entries win. Anywhere in a document a node tagged
// !include is replaced by the resolved contents of the file it names:
//
//	db: !include db.yaml
//
// Relative paths are taken from the directory of the file that contains the
// reference, after symlinks are resolved. Referenced files are resolved with
// the same pipeline before they are merged or spliced, so the result carries
// no extend directive at its root and no !include tags.
package resolve
