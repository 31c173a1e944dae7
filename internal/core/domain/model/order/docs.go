// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves forward-only through Cooking, Ready, OnTheWay, and Delivered.
// The aggregate owns its line items and guarantees the total always equals the
// sum of line-item sub-totals. Cross-aggregate rules (one active order per
// customer, one active delivery per driver, at-most-one claim winner) are
// enforced by the persistence adapters under internal/adapters/out/postgres.
package order
