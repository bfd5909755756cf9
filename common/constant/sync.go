package constant

import "ticket-scan/model"

// SyncResourceOrder is the fixed dependency order of a sync session.
// Order positions reference items and orders, so orders always sync last.
var SyncResourceOrder = []model.ResourceType{
	model.ResourceCategories,
	model.ResourceItems,
	model.ResourceSubEvents,
	model.ResourceOrders,
}
