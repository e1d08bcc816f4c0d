package superstaq

// TSPOutput is the result of a traveling salesperson optimization. Route is
// the closed tour over the submitted locations; RouteListNumbers gives the
// same tour as indices into the submitted list.
type TSPOutput struct {
	Route            []string
	RouteListNumbers []int
	TotalDistance    float64
	MapLink          []string
}

// A WarehousePair assigns one customer destination to a warehouse.
type WarehousePair struct {
	Warehouse   string
	Destination string
}

// WarehouseOutput is the result of a warehouse assignment optimization.
type WarehouseOutput struct {
	WarehouseToDestination []WarehousePair
	TotalDistance          float64
	MapLink                string
	OpenWarehouses         []string
}
