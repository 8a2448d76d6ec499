// Package menu provides the sellable items of the point-of-sale storefront.
//
// The package includes:
//   - OrderItem: the capability every item on an order line exposes to
//     checkout and display (current price and special instructions)
//   - FruitFilling: the closed set of Cobbler fillings
//   - Cobbler: a dessert order line whose fruit and ice cream can be
//     customized while the order is being entered
//
// Key business rules:
//   - A Cobbler is served with ice cream unless told otherwise
//   - Price and special instructions depend only on the ice cream choice and
//     are computed on every read
//   - Every setter announces its property and "SpecialInstructions" to
//     subscribers, whether or not the value changed; "Price" is never announced
//
// Setters never fail. Validation of fillings happens where untrusted data
// enters: parsing, persistence and the HTTP adapter.
package menu
