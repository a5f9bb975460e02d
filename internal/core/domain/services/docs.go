// Package services provides domain services for the room service system:
// business rules that do not belong to a single aggregate.
//
// The package includes:
//   - RolePolicy: decides whether a display name belongs to an administrator
package services
