package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Cobbler is the JSON representation of an order line.
type Cobbler struct {
	Id                  openapi_types.UUID `json:"id"`
	Fruit               string             `json:"fruit"`
	WithIceCream        bool               `json:"withIceCream"`
	Price               float64            `json:"price"`
	SpecialInstructions []string           `json:"specialInstructions"`
}

// ChooseFruitFilling is the body of PUT /api/v1/cobblers/{cobblerId}/fruit.
type ChooseFruitFilling struct {
	Fruit string `json:"fruit"`
}

// ServeWithIceCream is the body of PUT /api/v1/cobblers/{cobblerId}/ice-cream.
type ServeWithIceCream struct {
	WithIceCream *bool `json:"withIceCream"`
}

// PropertyChanges lists the properties a customization announced, in order.
type PropertyChanges struct {
	Changed []string `json:"changed"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}
