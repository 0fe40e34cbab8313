package models

// Selection modes for an option group.
const (
	SelectionModeSingle = "single"
	SelectionModeMulti  = "multi"
)

// Option is a single configurable choice. PriceDelta is signed; negative
// deltas are discounts and are preserved exactly.
type Option struct {
	ID         string `bson:"id" json:"id"`
	Label      string `bson:"label" json:"label"`
	PriceDelta int64  `bson:"priceDelta" json:"priceDelta"`
}

// OptionGroup is a named set of mutually related choices with a selection
// mode. Single-select groups carry a designated default option.
type OptionGroup struct {
	ID              string   `bson:"id" json:"id"`
	Label           string   `bson:"label" json:"label"`
	SelectionMode   string   `bson:"selectionMode" json:"selectionMode"`
	DefaultOptionID string   `bson:"defaultOptionId,omitempty" json:"defaultOptionId,omitempty"`
	Options         []Option `bson:"options" json:"options"`
}

// Option returns the option with the given id, if present.
func (g OptionGroup) Option(id string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// ServiceDefinition describes an offered service. Non-configurable services
// contribute only their base price; configurable ones own an ordered list of
// option groups (the config schema).
type ServiceDefinition struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	BasePrice    int64         `bson:"basePrice" json:"basePrice"`
	Configurable bool          `bson:"configurable" json:"configurable"`
	ConfigSchema []OptionGroup `bson:"configSchema,omitempty" json:"configSchema,omitempty"`
	Rank         int           `bson:"rank" json:"-"`
}

// Group returns the option group with the given id, if present.
func (s ServiceDefinition) Group(id string) (OptionGroup, bool) {
	for _, g := range s.ConfigSchema {
		if g.ID == id {
			return g, true
		}
	}
	return OptionGroup{}, false
}
