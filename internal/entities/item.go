package entities

// ItemAttribute is what an item offers toward one attribute
type ItemAttribute struct {
	Value     float64 `json:"value" yaml:"value"`
	IsGrouped bool    `json:"isGrouped" yaml:"isGrouped"`
}

// Item is a piece of equipment or any other object. Only attributes the item
// meaningfully participates in are listed.
type Item struct {
	ID         string                   `json:"id" yaml:"id"`
	Name       string                   `json:"name" yaml:"name"`
	Attributes map[string]ItemAttribute `json:"attributes" yaml:"attributes"`
}

// Attribute looks up an attribute case-insensitively
func (i *Item) Attribute(name string) (ItemAttribute, bool) {
	if i == nil {
		return ItemAttribute{}, false
	}
	return lookupAttribute(i.Attributes, name)
}
