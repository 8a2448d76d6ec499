// Package services provides domain services that work across menu items
// through the OrderItem capability rather than a concrete item type.
//
// The package includes:
//   - TicketPrinter: renders an order line as kitchen ticket text
package services
