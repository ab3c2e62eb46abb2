// Package history persists a record of every classification run in a local
// SQLite database.
//
// Each run stores the input file, its row and group counts, the "as of" date
// the rules were evaluated against, and the per-rule result counts, so
// operators can audit when a submission first surfaced in a priority bucket.
package history
