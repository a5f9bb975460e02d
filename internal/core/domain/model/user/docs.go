// Package user provides the User entity of the user registry: a stable
// identity for a display name and the role it currently holds.
//
// Users are never created directly by clients. They are upserted as a side
// effect of order placement, keyed on the trimmed full name, and their role
// is recomputed on every upsert.
package user
