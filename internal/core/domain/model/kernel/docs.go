// Package kernel provides the primitives shared by the point-of-sale domain model.
//
// The package includes:
//   - UUID: the identifier of an order line, rejecting the nil UUID
//   - PropertyChanged: a synchronous registry of property-changed handlers
//     that models use to drive storefront data binding
//
// Models expose change notification through the PropertyChangedNotifier
// interface and keep the registry itself private, so only the model decides
// which property names are announced.
package kernel
