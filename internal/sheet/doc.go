// Package sheet provides the in-memory table abstraction the classifier
// operates on, together with the spreadsheet loaders and writers that adapt
// CSV and XLSX files to it.
//
// A Table is an ordered list of column names plus rows of string cells. The
// package deliberately keeps cells untyped; date parsing is exposed as a
// helper so callers decide which columns carry timestamps. Loaders never
// reject malformed cell data, only structurally unreadable files.
package sheet
