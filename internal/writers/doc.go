// Package writers turns assembly results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, FASTA wrapping, JSON/YAML).
//   • core/ stays domain-only; the app only picks a format by name.
//   • JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
