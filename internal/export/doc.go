// Package export serializes classification results to spreadsheet files in
// the output directory.
//
// File names follow the downstream reporting convention:
// Priority_1_Rejected_Final and Priority_<key>_STRICT_CROSSCHECKED_Final
// for the crosscheck rules. Writes are guarded by an advisory lock on the
// output directory so concurrent runs cannot interleave their files.
package export
