package quote

import "quotely/models"

// defaultSettings builds the settings record for a freshly selected
// configurable service: every single-select group at its default option,
// every multi-select group empty.
func defaultSettings(def models.ServiceDefinition) models.ServiceSettings {
	settings := make(models.ServiceSettings, len(def.ConfigSchema))
	for _, group := range def.ConfigSchema {
		if group.SelectionMode == models.SelectionModeSingle {
			settings[group.ID] = models.GroupSelection{OptionID: group.DefaultOptionID}
		} else {
			settings[group.ID] = models.GroupSelection{OptionIDs: []string{}}
		}
	}
	return settings
}

// ToggleService flips membership of the service in the selection. First
// selection of a configurable service initializes its settings to the schema
// defaults; deselection keeps the settings record so a later reselect
// restores the prior configuration.
func ToggleService(def models.ServiceDefinition, state models.SelectionState) models.SelectionState {
	next := state.Clone()

	if next.IsSelected(def.ID) {
		kept := next.SelectedServiceIDs[:0]
		for _, id := range next.SelectedServiceIDs {
			if id != def.ID {
				kept = append(kept, id)
			}
		}
		next.SelectedServiceIDs = kept
		return next
	}

	next.SelectedServiceIDs = append(next.SelectedServiceIDs, def.ID)
	if def.Configurable {
		if _, exists := next.PerServiceSettings[def.ID]; !exists {
			next.PerServiceSettings[def.ID] = defaultSettings(def)
		}
	}
	return next
}

// resolveGroup validates that the service is selected and owns the group.
func resolveGroup(def models.ServiceDefinition, state models.SelectionState, groupID string) (models.OptionGroup, error) {
	if !state.IsSelected(def.ID) {
		return models.OptionGroup{}, StateError{Op: "configure", Reason: "service " + def.ID + " is not selected"}
	}
	group, ok := def.Group(groupID)
	if !ok {
		return models.OptionGroup{}, ValidationError{Kind: "group", ID: groupID}
	}
	return group, nil
}

// SetSingleChoice replaces the active option of a single-select group.
func SetSingleChoice(def models.ServiceDefinition, state models.SelectionState, groupID, optionID string) (models.SelectionState, error) {
	group, err := resolveGroup(def, state, groupID)
	if err != nil {
		return state, err
	}
	if group.SelectionMode != models.SelectionModeSingle {
		return state, StateError{Op: "setSingleChoice", Reason: "group " + groupID + " is not single-select"}
	}
	if _, ok := group.Option(optionID); !ok {
		return state, ValidationError{Kind: "option", ID: optionID}
	}

	next := state.Clone()
	settings := next.PerServiceSettings[def.ID]
	if settings == nil {
		settings = defaultSettings(def)
		next.PerServiceSettings[def.ID] = settings
	}
	settings[groupID] = models.GroupSelection{OptionID: optionID}
	return next, nil
}

// ToggleMultiOption adds the option to a multi-select group's active set if
// absent, removes it if present.
func ToggleMultiOption(def models.ServiceDefinition, state models.SelectionState, groupID, optionID string) (models.SelectionState, error) {
	group, err := resolveGroup(def, state, groupID)
	if err != nil {
		return state, err
	}
	if group.SelectionMode != models.SelectionModeMulti {
		return state, StateError{Op: "toggleMultiOption", Reason: "group " + groupID + " is not multi-select"}
	}
	if _, ok := group.Option(optionID); !ok {
		return state, ValidationError{Kind: "option", ID: optionID}
	}

	next := state.Clone()
	settings := next.PerServiceSettings[def.ID]
	if settings == nil {
		settings = defaultSettings(def)
		next.PerServiceSettings[def.ID] = settings
	}

	active := settings[groupID].OptionIDs
	found := false
	kept := make([]string, 0, len(active)+1)
	for _, id := range active {
		if id == optionID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		kept = append(kept, optionID)
	}
	settings[groupID] = models.GroupSelection{OptionIDs: kept}
	return next, nil
}
