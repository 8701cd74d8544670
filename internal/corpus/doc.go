// Package corpus handles access to source text files (.tess format) and the
// metadata describing each text in the collection.
package corpus
