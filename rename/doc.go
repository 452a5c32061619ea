// Package rename renames the files of a single directory in one sequential pass.
// An [Applier] walks the entries listed by [Enumerate], asks a [Transformer] for each new name,
// refuses to overwrite existing entries and reports one [Outcome] per file.
package rename
