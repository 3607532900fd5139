package site

import (
	"errors"
	"fmt"

	"github.com/HaiderNakara/doc-extract-web/internal/content"
)

// ErrUnknownTab is returned when selecting a tab id a group does not have.
var ErrUnknownTab = errors.New("site: unknown tab")

// Tab is one trigger in a tab list.
type Tab struct {
	ID    string
	Label string
	Icon  content.Icon
}

// TabGroup is an independent tabbed display. Every panel of the group is
// rendered; only the active one is visible.
type TabGroup struct {
	ID     string
	Tabs   []Tab
	Active string
}

// NewTabGroup creates a group with the given default tab active.
func NewTabGroup(id string, tabs []Tab, active string) *TabGroup {
	return &TabGroup{ID: id, Tabs: tabs, Active: active}
}

// Select makes tabID the visible panel of this group.
func (g *TabGroup) Select(tabID string) error {
	if !g.Has(tabID) {
		return fmt.Errorf("%w %q in group %q", ErrUnknownTab, tabID, g.ID)
	}
	g.Active = tabID
	return nil
}

// Has reports whether the group contains tabID.
func (g *TabGroup) Has(tabID string) bool {
	for _, t := range g.Tabs {
		if t.ID == tabID {
			return true
		}
	}
	return false
}

// IsActive reports whether tabID is the visible panel.
func (g *TabGroup) IsActive(tabID string) bool {
	return g.Active == tabID
}

// PanelID is the DOM id of a tab's panel.
func (g *TabGroup) PanelID(tabID string) string {
	return g.ID + "-" + tabID
}
