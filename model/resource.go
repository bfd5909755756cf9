package model

// ResourceType names one syncable collection, matching the server's URL path
// part for that collection.
type ResourceType string

const (
	ResourceCategories ResourceType = "categories"
	ResourceItems      ResourceType = "items"
	ResourceSubEvents  ResourceType = "subevents"
	ResourceOrders     ResourceType = "orders"
)

// Resource is a tagged batch of records of exactly one resource type. Only
// the slice matching Type is set; consumers dispatch on Type instead of
// inspecting runtime types.
type Resource struct {
	Type       ResourceType
	Categories []ItemCategory
	Items      []Item
	SubEvents  []SubEvent
	Orders     []Order
}

func CategoryResource(categories []ItemCategory) Resource {
	return Resource{Type: ResourceCategories, Categories: categories}
}

func ItemResource(items []Item) Resource {
	return Resource{Type: ResourceItems, Items: items}
}

func SubEventResource(subEvents []SubEvent) Resource {
	return Resource{Type: ResourceSubEvents, SubEvents: subEvents}
}

func OrderResource(orders []Order) Resource {
	return Resource{Type: ResourceOrders, Orders: orders}
}

// Len returns the number of records in the batch.
func (r Resource) Len() int {
	switch r.Type {
	case ResourceCategories:
		return len(r.Categories)
	case ResourceItems:
		return len(r.Items)
	case ResourceSubEvents:
		return len(r.SubEvents)
	case ResourceOrders:
		return len(r.Orders)
	default:
		return 0
	}
}
