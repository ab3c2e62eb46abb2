// Package refkey canonicalizes free-text reference codes into stable grouping
// keys.
//
// Reference values arrive with inconsistent prefixes, duplicated bracket
// annotations, and whitespace noise from manual spreadsheet entry. Normalize
// collapses all textual variants of the same submission to one key so that
// grouping and deduplication in the classifier see them as a single unit.
//
// Normalization is idempotent: applying it to an already-normalized key
// returns the key unchanged.
package refkey
