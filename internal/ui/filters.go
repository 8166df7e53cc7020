package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/buddywhitman/foodswipe-sub000/internal/filter"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Tags treated as dietary preferences; everything else on an item is a
// cuisine tag.
var dietaryTags = map[string]bool{
	"vegetarian":  true,
	"vegan":       true,
	"non-veg":     true,
	"gluten-free": true,
	"jain":        true,
}

type filtersAppliedMsg struct {
	cfg filter.Config
}

type filtersCancelledMsg struct{}

type toggleRow struct {
	label    string
	value    string
	selected bool
}

// FiltersModel is the filter editing form. The first four fields are
// text inputs; the rows after them toggle with space or enter.
type FiltersModel struct {
	inputs       []textinput.Model
	cuisines     []toggleRow
	dietary      []toggleRow
	restaurants  []toggleRow // selected means excluded
	focusedField int
	error        string
}

const filterTextFields = 4

// NewFiltersModel builds the form from the current config and the
// catalog's tag and restaurant universe.
func NewFiltersModel(catalog []model.CatalogItem, cfg filter.Config) *FiltersModel {
	inputs := make([]textinput.Model, filterTextFields)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "0"
	inputs[0].CharLimit = 6
	inputs[0].SetValue(strconv.Itoa(cfg.PriceMin))
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = strconv.Itoa(filter.DefaultPriceMax)
	inputs[1].CharLimit = 6
	inputs[1].SetValue(strconv.Itoa(cfg.PriceMax))

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "0.0"
	inputs[2].CharLimit = 4
	if cfg.MinRating > 0 {
		inputs[2].SetValue(strconv.FormatFloat(cfg.MinRating, 'f', 1, 64))
	}

	inputs[3] = textinput.New()
	inputs[3].Placeholder = strconv.Itoa(filter.DefaultMaxDeliveryMinutes)
	inputs[3].CharLimit = 4
	inputs[3].SetValue(strconv.Itoa(cfg.MaxDeliveryMinutes))

	m := &FiltersModel{inputs: inputs}

	selectedCuisine := toSet(cfg.Cuisines)
	selectedDietary := toSet(cfg.Dietary)
	excluded := toSet(cfg.ExcludedRestaurants)

	seenTag := map[string]bool{}
	seenRest := map[string]bool{}
	for _, item := range catalog {
		for _, tag := range item.Tags {
			if seenTag[tag] {
				continue
			}
			seenTag[tag] = true
			row := toggleRow{label: tag, value: tag}
			if dietaryTags[tag] {
				row.selected = selectedDietary[tag]
				m.dietary = append(m.dietary, row)
			} else {
				row.selected = selectedCuisine[tag]
				m.cuisines = append(m.cuisines, row)
			}
		}
		if !seenRest[item.RestaurantID] {
			seenRest[item.RestaurantID] = true
			m.restaurants = append(m.restaurants, toggleRow{
				label:    item.RestaurantName,
				value:    item.RestaurantID,
				selected: excluded[item.RestaurantID],
			})
		}
	}
	sort.Slice(m.cuisines, func(i, j int) bool { return m.cuisines[i].label < m.cuisines[j].label })
	sort.Slice(m.dietary, func(i, j int) bool { return m.dietary[i].label < m.dietary[j].label })
	sort.Slice(m.restaurants, func(i, j int) bool { return m.restaurants[i].label < m.restaurants[j].label })

	return m
}

func (m *FiltersModel) fieldCount() int {
	return filterTextFields + len(m.cuisines) + len(m.dietary) + len(m.restaurants)
}

func (m *FiltersModel) toggleAt(idx int) *toggleRow {
	idx -= filterTextFields
	if idx < 0 {
		return nil
	}
	if idx < len(m.cuisines) {
		return &m.cuisines[idx]
	}
	idx -= len(m.cuisines)
	if idx < len(m.dietary) {
		return &m.dietary[idx]
	}
	idx -= len(m.dietary)
	if idx < len(m.restaurants) {
		return &m.restaurants[idx]
	}
	return nil
}

// Update handles input.
func (m FiltersModel) Update(msg tea.KeyMsg) (FiltersModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return filtersCancelledMsg{} }
	case "ctrl+s":
		return m, m.apply()
	case "ctrl+x":
		return m, func() tea.Msg { return filtersAppliedMsg{cfg: filter.Cleared()} }
	case "tab", "down":
		m.nextField()
		return m, nil
	case "shift+tab", "up":
		m.prevField()
		return m, nil
	case " ", "enter":
		if row := m.toggleAt(m.focusedField); row != nil {
			row.selected = !row.selected
			return m, nil
		}
		if msg.String() == "enter" {
			return m, m.apply()
		}
	}

	if m.focusedField < filterTextFields {
		var cmd tea.Cmd
		m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the form.
func (m *FiltersModel) View(width, height int) string {
	var sections []string

	sections = append(sections, renderFormField("Price from (₹)", m.inputs[0], m.focusedField == 0))
	sections = append(sections, renderFormField("Price to (₹)", m.inputs[1], m.focusedField == 1))
	sections = append(sections, renderFormField("Minimum rating", m.inputs[2], m.focusedField == 2))
	sections = append(sections, renderFormField("Max delivery (min)", m.inputs[3], m.focusedField == 3))

	idx := filterTextFields
	idx = appendToggleSection(&sections, "Cuisines (any of)", m.cuisines, idx, m.focusedField)
	idx = appendToggleSection(&sections, "Dietary (any of)", m.dietary, idx, m.focusedField)
	appendToggleSection(&sections, "Hide restaurants", m.restaurants, idx, m.focusedField)

	sections = append(sections, "")
	sections = append(sections, HelpDescStyle.Render("ctrl+s apply · ctrl+x clear all · esc cancel"))
	if m.error != "" {
		sections = append(sections, ErrorStyle.Render(m.error))
	}

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(strings.Join(sections, "\n"))
}

func appendToggleSection(sections *[]string, title string, rows []toggleRow, startIdx, focused int) int {
	if len(rows) == 0 {
		return startIdx
	}
	*sections = append(*sections, "", LabelStyle.Render(title))
	for i, row := range rows {
		mark := "[ ]"
		if row.selected {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, row.label)
		if startIdx+i == focused {
			line = SelectedRowStyle.Render(line)
		} else {
			line = NormalRowStyle.Render(line)
		}
		*sections = append(*sections, line)
	}
	return startIdx + len(rows)
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	l := BreadcrumbStyle.Render(label)
	if focused {
		l = LabelStyle.Render(label)
	}
	return l + "  " + input.View()
}

func (m *FiltersModel) nextField() {
	m.blurFocused()
	m.focusedField = (m.focusedField + 1) % m.fieldCount()
	m.focusFocused()
}

func (m *FiltersModel) prevField() {
	m.blurFocused()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = m.fieldCount() - 1
	}
	m.focusFocused()
}

func (m *FiltersModel) blurFocused() {
	if m.focusedField < filterTextFields {
		m.inputs[m.focusedField].Blur()
	}
}

func (m *FiltersModel) focusFocused() {
	if m.focusedField < filterTextFields {
		m.inputs[m.focusedField].Focus()
	}
}

func (m *FiltersModel) apply() tea.Cmd {
	cfg, err := m.buildConfig()
	if err != nil {
		return func() tea.Msg { return model.ErrorMsg{Err: err} }
	}
	return func() tea.Msg { return filtersAppliedMsg{cfg: cfg} }
}

func (m *FiltersModel) buildConfig() (filter.Config, error) {
	cfg := filter.Cleared()

	if v := strings.TrimSpace(m.inputs[0].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("price from must be a non-negative number")
		}
		cfg.PriceMin = n
	}
	if v := strings.TrimSpace(m.inputs[1].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("price to must be a non-negative number")
		}
		cfg.PriceMax = n
	}
	if cfg.PriceMax < cfg.PriceMin {
		return cfg, fmt.Errorf("price range is inverted")
	}
	if v := strings.TrimSpace(m.inputs[2].Value()); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 5 {
			return cfg, fmt.Errorf("minimum rating must be between 0 and 5")
		}
		cfg.MinRating = f
	}
	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		n, err := filter.ParseMinutes(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("max delivery must be a positive number of minutes")
		}
		cfg.MaxDeliveryMinutes = n
	}

	for _, row := range m.cuisines {
		if row.selected {
			cfg.Cuisines = append(cfg.Cuisines, row.value)
		}
	}
	for _, row := range m.dietary {
		if row.selected {
			cfg.Dietary = append(cfg.Dietary, row.value)
		}
	}
	for _, row := range m.restaurants {
		if row.selected {
			cfg.ExcludedRestaurants = append(cfg.ExcludedRestaurants, row.value)
		}
	}
	return cfg, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
