// Package order provides domain entities and business logic for room service
// orders. It implements the Order aggregate root together with its line items
// and the status state machine.
//
// The package includes:
//   - Order: The aggregate root that owns identity, placement details, lifecycle and items
//   - Item: A line item value object (product name and quantity)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - An order always owns at least one item
//   - Orders are born Active and may be edited only while Active
//   - Active -> Completed happens exactly once and stamps the completion time
//   - Any order may be duplicated into a new Active order linked to its source
package order
