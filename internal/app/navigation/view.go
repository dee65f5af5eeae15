package navigation

import "fmt"

// ViewModel is what a renderer needs to draw the current state
type ViewModel struct {
	Mode                Mode
	HasItem             bool
	ItemID              int
	DisplayText         string
	Loading             bool
	CanGoPrev           bool
	CanGoNext           bool
	ResultPositionLabel *string
	NoResults           bool
	Error               string
}

// View builds the view model for the current state
func (c *Controller) View() ViewModel {
	vm := ViewModel{
		Mode:      c.Mode(),
		Loading:   c.loading,
		CanGoPrev: c.CanAdvance(-1),
		CanGoNext: c.CanAdvance(1),
	}

	if c.failed {
		vm.Error = FailedText
	}

	switch {
	case vm.Mode == ModeSearch && len(c.results) == 0:
		vm.DisplayText = NoResultsText
		vm.NoResults = true
	case vm.Mode == ModeSearch:
		item := c.results[c.index]
		vm.HasItem = true
		vm.ItemID = item.ID
		vm.DisplayText = item.Text
		label := PositionLabel(c.index, len(c.results))
		vm.ResultPositionLabel = &label
	case c.current != nil:
		vm.HasItem = true
		vm.ItemID = c.current.ID
		vm.DisplayText = c.current.Text
	case c.failed:
		vm.DisplayText = FailedText
	default:
		vm.DisplayText = LoadingText
	}

	return vm
}

// PositionLabel formats the search cursor for display
func PositionLabel(index, total int) string {
	return fmt.Sprintf("Showing result %d of %d", index+1, total)
}
