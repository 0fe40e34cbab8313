package quote

import "quotely/models"

// activeOptions resolves the contributing options of one group under the
// given settings. A missing record falls back to the group's default; an
// empty multi-select contributes nothing.
func activeOptions(group models.OptionGroup, settings models.ServiceSettings) []models.Option {
	sel, ok := settings[group.ID]

	if group.SelectionMode == models.SelectionModeSingle {
		optionID := group.DefaultOptionID
		if ok && sel.OptionID != "" {
			optionID = sel.OptionID
		}
		if opt, found := group.Option(optionID); found {
			return []models.Option{opt}
		}
		return nil
	}

	if !ok {
		return nil
	}
	active := make(map[string]bool, len(sel.OptionIDs))
	for _, id := range sel.OptionIDs {
		active[id] = true
	}
	// Emit in the group's option order so quotes are stable regardless of
	// toggle order.
	var opts []models.Option
	for _, opt := range group.Options {
		if active[opt.ID] {
			opts = append(opts, opt)
		}
	}
	return opts
}

// Compute turns a catalog-resolved selection into a quote breakdown. It is
// pure: one line item per active option (zero deltas included), subtotal =
// base price + sum of deltas, total = sum of subtotals. Nothing is ever
// clamped; discounts may push a subtotal arbitrarily low.
func Compute(selected []models.ServiceDefinition, state models.SelectionState) models.Quote {
	var q models.Quote
	q.Services = make([]models.ServiceQuote, 0, len(selected))

	for _, def := range selected {
		sq := models.ServiceQuote{
			ServiceID:   def.ID,
			ServiceName: def.Name,
			BasePrice:   def.BasePrice,
			LineItems:   []models.QuoteLineItem{},
			Subtotal:    def.BasePrice,
		}
		if def.Configurable {
			settings := state.PerServiceSettings[def.ID]
			for _, group := range def.ConfigSchema {
				for _, opt := range activeOptions(group, settings) {
					sq.LineItems = append(sq.LineItems, models.QuoteLineItem{
						Label: opt.Label,
						Price: opt.PriceDelta,
					})
					sq.Subtotal += opt.PriceDelta
				}
			}
		}
		q.Services = append(q.Services, sq)
		q.Total += sq.Subtotal
	}
	return q
}
