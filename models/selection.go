package models

// GroupSelection holds the active choice(s) for one option group.
// Exactly one of the fields is used, depending on the group's mode.
type GroupSelection struct {
	OptionID  string   `json:"optionId,omitempty"`
	OptionIDs []string `json:"optionIds,omitempty"`
}

// ServiceSettings maps group id to the active selection for that group.
type ServiceSettings map[string]GroupSelection

// SelectionState captures which services are chosen and how each configurable
// one is configured. Settings records survive deselection so a reselected
// service comes back with its prior configuration.
type SelectionState struct {
	SelectedServiceIDs []string                   `json:"selectedServiceIds"`
	PerServiceSettings map[string]ServiceSettings `json:"perServiceSettings"`
}

// NewSelectionState returns an empty selection.
func NewSelectionState() SelectionState {
	return SelectionState{
		SelectedServiceIDs: []string{},
		PerServiceSettings: map[string]ServiceSettings{},
	}
}

// IsSelected reports whether the service is currently selected.
func (s SelectionState) IsSelected(serviceID string) bool {
	for _, id := range s.SelectedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate freely without aliasing.
func (s SelectionState) Clone() SelectionState {
	out := SelectionState{
		SelectedServiceIDs: make([]string, len(s.SelectedServiceIDs)),
		PerServiceSettings: make(map[string]ServiceSettings, len(s.PerServiceSettings)),
	}
	copy(out.SelectedServiceIDs, s.SelectedServiceIDs)
	for svcID, settings := range s.PerServiceSettings {
		cp := make(ServiceSettings, len(settings))
		for groupID, sel := range settings {
			selCp := GroupSelection{OptionID: sel.OptionID}
			if sel.OptionIDs != nil {
				selCp.OptionIDs = make([]string, len(sel.OptionIDs))
				copy(selCp.OptionIDs, sel.OptionIDs)
			}
			cp[groupID] = selCp
		}
		out.PerServiceSettings[svcID] = cp
	}
	return out
}
