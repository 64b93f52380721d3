// Package view holds pure presentation grouping for the register and
// history screens. Nothing here touches the store.
package view

import (
	"sort"

	"github.com/kedai-labs/kopitiam/internal/dto"
	"github.com/kedai-labs/kopitiam/internal/entity"
)

// MenuSection is one accordion group on the register screen.
type MenuSection struct {
	Title string
	Items []dto.MenuItemResponse
}

// SectionTitle builds the accordion group key for a menu item:
// the category, suffixed with the temperature when present
// ("Coffee • iced").
func SectionTitle(category string, temp *string) string {
	if temp == nil || *temp == "" {
		return category
	}
	return category + " • " + *temp
}

// MenuSections groups menu items by category + temperature, preserving
// the catalog sort order within each section. Sections appear in the
// order their first item occurs, matching the accordion layout.
func MenuSections(items []dto.MenuItemResponse) []MenuSection {
	index := make(map[string]int, len(items))
	sections := make([]MenuSection, 0)
	for _, item := range items {
		title := SectionTitle(item.Category, item.Temp)
		i, ok := index[title]
		if !ok {
			i = len(sections)
			index[title] = i
			sections = append(sections, MenuSection{Title: title})
		}
		sections[i].Items = append(sections[i].Items, item)
	}
	return sections
}

// OrdersByDay filters orders to finished ones (served or cancelled) and
// groups them by calendar day. Days are newest-first, and so are the
// orders within each day.
func OrdersByDay(orders []dto.OrderResponse) []dto.DayGroup {
	byDay := make(map[string][]dto.OrderResponse)
	for _, o := range orders {
		if !entity.OrderStatus(o.Status).Terminal() {
			continue
		}
		day := o.CreatedAt.Format("2006-01-02")
		byDay[day] = append(byDay[day], o)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	groups := make([]dto.DayGroup, 0, len(days))
	for _, day := range days {
		dayOrders := byDay[day]
		sort.Slice(dayOrders, func(i, j int) bool {
			return dayOrders[i].CreatedAt.After(dayOrders[j].CreatedAt)
		})
		groups = append(groups, dto.DayGroup{Date: day, Orders: dayOrders})
	}
	return groups
}
