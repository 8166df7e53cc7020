package ui

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buddywhitman/foodswipe-sub000/internal/catalog"
	"github.com/buddywhitman/foodswipe-sub000/internal/coupon"
	"github.com/buddywhitman/foodswipe-sub000/internal/gesture"
	"github.com/buddywhitman/foodswipe-sub000/internal/location"
	"github.com/buddywhitman/foodswipe-sub000/internal/model"
	"github.com/buddywhitman/foodswipe-sub000/internal/payment"
	"github.com/buddywhitman/foodswipe-sub000/internal/pricing"
	"github.com/buddywhitman/foodswipe-sub000/internal/session"
)

const collaboratorTimeout = 10 * time.Second

// Deps are the collaborators the UI is wired with.
type Deps struct {
	Session   *session.Controller
	Client    *catalog.Client // nil in offline mode
	CacheDB   *sql.DB
	Resolver  *location.Resolver
	Payments  payment.Collaborator
	Policy    pricing.Policy
	Logger    *slog.Logger
	StatePath string
}

// Model is the root Bubble Tea model. All state transitions run inside
// Update; collaborator calls go out as commands whose responses carry a
// sequence number so stale results are superseded, never applied.
type Model struct {
	deps    Deps
	session *session.Controller
	screen  model.Screen

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	classifier gesture.Classifier
	deck       DeckModel
	filters    *FiltersModel
	cartView   *CartModel
	checkout   *CheckoutModel

	coupons       []model.Coupon
	applied       *model.Coupon
	pendingCoupon string // coupon code carried over from a saved session

	location model.Position

	// Request sequence counters; responses with an older seq are
	// superseded.
	catalogSeq  int
	couponSeq   int
	locationSeq int

	keys KeyMap
}

// New creates the root model and restores any saved session state.
func New(deps Deps) Model {
	m := Model{
		deps:        deps,
		session:     deps.Session,
		screen:      model.ScreenDeck,
		cartView:    NewCartModel(),
		checkout:    NewCheckoutModel(),
		keys:        DefaultKeyMap(),
		catalogSeq:  1,
		couponSeq:   1,
		locationSeq: 1,
	}
	m.pendingCoupon = m.restoreState()
	return m
}

// Init kicks off the catalog, coupon, and location fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchCatalogCmd(m.deps, m.catalogSeq, ""),
		fetchCouponsCmd(m.deps, m.couponSeq),
		resolveLocationCmd(m.deps, m.locationSeq),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.saveState()
			return m, tea.Quit
		}
		if msg.String() == "?" && !m.textEntryActive() {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.screen == model.ScreenDeck {
			return m.handleDeckMouse(msg)
		}
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.CatalogLoadedMsg:
		if msg.Seq != m.catalogSeq {
			m.deps.Logger.Info("superseded catalog response dropped", "seq", msg.Seq, "current", m.catalogSeq)
			return m, nil
		}
		m.session.SetCatalog(msg.Items)
		m.error = ""
		if msg.FromCache && m.deps.Client != nil {
			m.info = "Network unavailable — showing your last saved menu"
		}
		return m, nil

	case model.CouponsLoadedMsg:
		if msg.Seq != m.couponSeq {
			m.deps.Logger.Info("superseded coupon response dropped", "seq", msg.Seq, "current", m.couponSeq)
			return m, nil
		}
		m.coupons = msg.Coupons
		if m.pendingCoupon != "" {
			// Re-apply the coupon saved with the previous session,
			// quietly dropping it if it no longer validates.
			if c, err := coupon.Validate(m.pendingCoupon, m.coupons, m.session.Cart().Subtotal(), time.Now()); err == nil {
				m.applied = &c
			} else {
				m.deps.Logger.Info("saved coupon no longer valid", "code", m.pendingCoupon, "reason", err.Error())
			}
			m.pendingCoupon = ""
		}
		return m, nil

	case model.LocationResolvedMsg:
		if msg.Seq != m.locationSeq {
			return m, nil
		}
		m.location = msg.Position
		if msg.Position.City != "" {
			m.catalogSeq++
			return m, fetchCatalogCmd(m.deps, m.catalogSeq, msg.Position.City)
		}
		return m, nil

	case couponValidatedMsg:
		if msg.seq != m.couponSeq {
			m.deps.Logger.Info("superseded coupon validation dropped", "seq", msg.seq, "current", m.couponSeq)
			return m, nil
		}
		if msg.coupons != nil {
			m.coupons = msg.coupons
		}
		// Validate against the subtotal as it stands now, not as it
		// stood when the request went out.
		c, err := coupon.Validate(msg.code, m.coupons, m.session.Cart().Subtotal(), time.Now())
		if err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.applied = &c
		m.error = ""
		m.info = fmt.Sprintf("Coupon %s applied", c.Code)
		m.saveState()
		return m, nil

	case paymentResultMsg:
		if msg.err != nil {
			m.checkout.SetResult(payment.Result{Outcome: payment.OutcomeFailure, Reason: msg.err.Error()})
			return m, nil
		}
		m.checkout.SetResult(msg.result)
		switch msg.result.Outcome {
		case payment.OutcomeSuccess:
			m.deps.Logger.Info("order placed", "payment_id", msg.result.PaymentID)
			m.screen = model.ScreenDone
		default:
			// Cart and coupon stay intact so the user can retry.
			m.deps.Logger.Warn("payment did not complete", "outcome", msg.result.Outcome.String(), "reason", msg.result.Reason)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) textEntryActive() bool {
	if m.screen == model.ScreenFilters {
		return true
	}
	return m.screen == model.ScreenCart && m.cartView.EnteringCode()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenDeck:
		return m.handleDeckKey(msg)
	case model.ScreenFilters:
		return m.handleFiltersKey(msg)
	case model.ScreenCart:
		return m.handleCartKey(msg)
	case model.ScreenCheckout:
		return m.handleCheckoutKey(msg)
	case model.ScreenDone:
		return m.handleDoneKey(msg)
	}
	return m, nil
}

// Deck screen

func (m Model) handleDeckKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit
	case "l", "right":
		return m.commitDecision(gesture.DecisionLike), nil
	case "h", "left":
		return m.commitDecision(gesture.DecisionPass), nil
	case "f":
		m.filters = NewFiltersModel(m.session.Catalog(), m.session.Filters())
		m.screen = model.ScreenFilters
		return m, nil
	case "c":
		m.cartView.ClampCursor(m.session.Cart().Len())
		m.screen = model.ScreenCart
		return m, nil
	case "r":
		m.session.Restart()
		m.info = "Deck restarted"
		return m, nil
	}
	return m, nil
}

// commitDecision issues a programmatic like/pass for the top card.
func (m Model) commitDecision(d gesture.Decision) Model {
	top, ok := m.session.TopCard()
	if !ok {
		return m
	}
	res, ok := m.classifier.Commit(d)
	if !ok || !res.Committed {
		return m
	}
	m.applyDecision(res.Decision, top.ID)
	return m
}

func (m *Model) applyDecision(d gesture.Decision, itemID string) {
	m.session.OnDecision(d, itemID)
	if d == gesture.DecisionLike {
		m.info = "Added to cart"
	} else {
		m.info = ""
	}
	m.saveState()
}

func (m Model) handleDeckMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		_, hasTop := m.session.TopCard()
		if m.classifier.StartDrag(hasTop) {
			m.deck.BeginDrag(msg.X, msg.Y)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.deck.Dragging() {
			x, y := m.deck.DragOffset(msg.X, msg.Y)
			m.classifier.Drag(x, y)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.deck.Dragging() {
			return m, nil
		}
		m.deck.EndDrag()
		top, hasTop := m.session.TopCard()
		res := m.classifier.Release()
		if res.Committed && hasTop {
			m.applyDecision(res.Decision, top.ID)
		}
		return m, nil
	}
	return m, nil
}

// Filters screen

func (m Model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filters == nil {
		m.screen = model.ScreenDeck
		return m, nil
	}
	newForm, cmd := m.filters.Update(msg)
	m.filters = &newForm
	if cmd == nil {
		return m, nil
	}
	// Forms deliver their outcome as a message; apply it here so the
	// transition happens in one Update pass.
	switch out := cmd().(type) {
	case filtersAppliedMsg:
		m.session.ApplyFilters(out.cfg)
		m.screen = model.ScreenDeck
		m.filters = nil
		m.info = "Filters applied"
		m.saveState()
		return m, nil
	case filtersCancelledMsg:
		m.screen = model.ScreenDeck
		m.filters = nil
		return m, nil
	case model.ErrorMsg:
		m.error = out.Err.Error()
		return m, nil
	default:
		return m, cmd
	}
}

// Cart screen

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cartView.EnteringCode() {
		switch msg.String() {
		case "esc":
			m.cartView.EndCouponEntry()
			return m, nil
		case "enter":
			code := m.cartView.EndCouponEntry()
			if code == "" {
				return m, nil
			}
			m.couponSeq++
			return m, applyCouponCmd(m.deps, m.couponSeq, code, m.coupons)
		}
		var cmd tea.Cmd
		*m.cartView.CouponInput(), cmd = m.cartView.CouponInput().Update(msg)
		return m, cmd
	}

	lines := m.session.Cart().Lines()
	switch msg.String() {
	case "b", "esc":
		m.screen = model.ScreenDeck
		return m, nil
	case "q":
		m.saveState()
		return m, tea.Quit
	case "j", "down":
		m.cartView.MoveDown(len(lines))
		return m, nil
	case "k", "up":
		m.cartView.MoveUp()
		return m, nil
	case "+", "=":
		if line, ok := m.cartView.SelectedLine(lines); ok {
			m.session.Cart().SetQuantity(line.ID, line.Quantity+1)
			m.saveState()
		}
		return m, nil
	case "-":
		if line, ok := m.cartView.SelectedLine(lines); ok {
			m.session.Cart().SetQuantity(line.ID, line.Quantity-1)
			m.cartView.ClampCursor(m.session.Cart().Len())
			m.saveState()
		}
		return m, nil
	case "d":
		if line, ok := m.cartView.SelectedLine(lines); ok {
			m.session.Cart().RemoveLine(line.ID)
			m.cartView.ClampCursor(m.session.Cart().Len())
			m.saveState()
		}
		return m, nil
	case "p":
		m.cartView.BeginCouponEntry()
		return m, nil
	case "P":
		if m.applied != nil {
			m.applied = nil
			m.info = "Coupon removed"
			m.saveState()
		}
		return m, nil
	case "o":
		if m.session.Cart().Len() == 0 {
			m.error = "Your cart is empty"
			return m, nil
		}
		m.checkout = NewCheckoutModel()
		m.screen = model.ScreenCheckout
		return m, nil
	}
	return m, nil
}

// Checkout screen

func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc":
		if !m.checkout.Paying() {
			m.screen = model.ScreenCart
		}
		return m, nil
	case "enter":
		if m.checkout.Paying() {
			return m, nil
		}
		totals := m.totals()
		intent := payment.Intent{
			GrandTotal: totals.GrandTotal,
			Lines:      m.session.Cart().Lines(),
		}
		if m.applied != nil {
			intent.CouponCode = m.applied.Code
		}
		m.checkout.SetPaying(true)
		return m, collectPaymentCmd(m.deps, intent)
	}
	return m, nil
}

// Done screen

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		// Fresh session: empty cart, no coupon, deck rewound.
		m.session.Cart().Clear()
		m.applied = nil
		m.session.Restart()
		m.checkout = NewCheckoutModel()
		m.screen = model.ScreenDeck
		m.info = "New session started"
		m.saveState()
		return m, nil
	}
	return m, nil
}

func (m Model) totals() pricing.Totals {
	return pricing.Compute(m.session.Cart().Subtotal(), m.applied, time.Now(), m.deps.Policy)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var content string
	var breadcrumbParts []string

	contentHeight := m.height - 4
	showTabs := m.screen == model.ScreenDeck || m.screen == model.ScreenCart
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenDeck:
		breadcrumbParts = []string{"Discover"}
		cursor, length := m.session.Progress()
		content = m.deck.View(m.session.VisibleStack(), &m.classifier, cursor, length, m.width, contentHeight)
	case model.ScreenFilters:
		breadcrumbParts = []string{"Discover", "Filters"}
		if m.filters != nil {
			content = m.filters.View(m.width, contentHeight)
		}
	case model.ScreenCart:
		breadcrumbParts = []string{"Cart"}
		content = m.cartView.View(m.session, m.applied, m.totals(), m.width, contentHeight)
	case model.ScreenCheckout:
		breadcrumbParts = []string{"Cart", "Checkout"}
		content = m.checkout.View(m.session, m.applied, m.totals(), m.width, contentHeight)
	case model.ScreenDone:
		breadcrumbParts = []string{"Order placed"}
		content = m.checkout.View(m.session, m.applied, m.totals(), m.width, contentHeight)
	}

	header := m.renderHeader(breadcrumbParts)
	footer := RenderHelp(m.keys, m.screen, m.width)

	contentStyle := lipgloss.NewStyle().Width(m.width).Height(contentHeight)
	content = contentStyle.Render(content)

	var rows []string
	rows = append(rows, header)
	if showTabs {
		rows = append(rows, m.renderTabs())
	}
	if m.error != "" {
		rows = append(rows, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		rows = append(rows, SuccessStyle.Width(m.width).Render(m.info))
	}
	rows = append(rows, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTabs() string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Discover", model.ScreenDeck},
		{fmt.Sprintf("Cart (%d)", m.session.Cart().Units()), model.ScreenCart},
	}

	var tabStrings []string
	for _, tab := range tabs {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted)
		if m.screen == tab.screen {
			style = style.Foreground(ColorText).Bold(true).Underline(true)
		}
		tabStrings = append(tabStrings, style.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("foodswipe")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb
	right := BreadcrumbStyle.Render(m.headerRight()) + "  "

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) headerRight() string {
	if m.location.City != "" {
		return m.location.City
	}
	return time.Now().Format("Mon 02 Jan")
}

// Persisted session state

// stateFile wraps the session snapshot with the applied coupon code.
type stateFile struct {
	CouponCode string          `json:"coupon_code,omitempty"`
	Session    json.RawMessage `json:"session"`
}

func (m *Model) saveState() {
	if m.deps.StatePath == "" {
		return
	}
	snap, err := m.session.Snapshot()
	if err != nil {
		m.deps.Logger.Error("failed to snapshot session", "error", err.Error())
		return
	}
	state := stateFile{Session: snap}
	if m.applied != nil {
		state.CouponCode = m.applied.Code
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		m.deps.Logger.Error("failed to marshal state", "error", err.Error())
		return
	}
	if err := os.WriteFile(m.deps.StatePath, data, 0644); err != nil {
		m.deps.Logger.Error("failed to write state", "error", err.Error())
	}
}

// restoreState loads the previous session, returning the saved coupon
// code so it can be re-validated once coupons arrive.
func (m *Model) restoreState() string {
	if m.deps.StatePath == "" {
		return ""
	}
	data, err := os.ReadFile(m.deps.StatePath)
	if err != nil {
		return ""
	}
	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		m.deps.Logger.Warn("ignoring unreadable state file", "error", err.Error())
		return ""
	}
	if len(state.Session) > 0 {
		if err := m.session.Restore(state.Session); err != nil {
			m.deps.Logger.Warn("ignoring unrestorable session", "error", err.Error())
		}
	}
	return state.CouponCode
}

// Commands

func fetchCatalogCmd(deps Deps, seq int, locationHint string) tea.Cmd {
	return func() tea.Msg {
		if deps.Client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
			defer cancel()
			items, err := deps.Client.FetchCatalog(ctx, locationHint)
			if err == nil {
				if deps.CacheDB != nil {
					if saveErr := catalog.SaveCatalog(deps.CacheDB, items); saveErr != nil {
						deps.Logger.Warn("failed to cache catalog", "error", saveErr.Error())
					}
				}
				return model.CatalogLoadedMsg{Seq: seq, Items: items}
			}
			deps.Logger.Warn("catalog fetch failed, falling back to cache", "error", err.Error())
		}
		if deps.CacheDB != nil {
			if items, err := catalog.LoadCatalog(deps.CacheDB); err == nil && len(items) > 0 {
				return model.CatalogLoadedMsg{Seq: seq, Items: items, FromCache: true}
			}
		}
		return model.CatalogLoadedMsg{Seq: seq, Items: catalog.SampleCatalog(), FromCache: true}
	}
}

func fetchCouponsCmd(deps Deps, seq int) tea.Cmd {
	return func() tea.Msg {
		coupons, fromCache := loadCoupons(deps)
		return model.CouponsLoadedMsg{Seq: seq, Coupons: coupons, FromCache: fromCache}
	}
}

// applyCouponCmd refreshes the coupon list and hands the code back for
// validation against whatever the subtotal is when the response lands.
func applyCouponCmd(deps Deps, seq int, code string, known []model.Coupon) tea.Cmd {
	return func() tea.Msg {
		coupons, _ := loadCoupons(deps)
		if coupons == nil {
			coupons = known
		}
		return couponValidatedMsg{seq: seq, code: code, coupons: coupons}
	}
}

func loadCoupons(deps Deps) ([]model.Coupon, bool) {
	if deps.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
		defer cancel()
		coupons, err := deps.Client.FetchCoupons(ctx)
		if err == nil {
			if deps.CacheDB != nil {
				if saveErr := catalog.SaveCoupons(deps.CacheDB, coupons); saveErr != nil {
					deps.Logger.Warn("failed to cache coupons", "error", saveErr.Error())
				}
			}
			return coupons, false
		}
		deps.Logger.Warn("coupon fetch failed, falling back to cache", "error", err.Error())
	}
	if deps.CacheDB != nil {
		if coupons, err := catalog.LoadCoupons(deps.CacheDB); err == nil && len(coupons) > 0 {
			return coupons, true
		}
	}
	return catalog.SampleCoupons(), true
}

func resolveLocationCmd(deps Deps, seq int) tea.Cmd {
	return func() tea.Msg {
		if deps.Resolver == nil {
			return model.LocationResolvedMsg{Seq: seq}
		}
		ctx, cancel := context.WithTimeout(context.Background(), location.ResolveTimeout)
		defer cancel()
		pos, err := deps.Resolver.ResolveCurrentPosition(ctx)
		if err != nil {
			// Location is only a defaulting hint; skip it on failure.
			deps.Logger.Warn("geolocation failed", "error", err.Error())
			return model.LocationResolvedMsg{Seq: seq}
		}
		return model.LocationResolvedMsg{Seq: seq, Position: pos}
	}
}

func collectPaymentCmd(deps Deps, intent payment.Intent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), collaboratorTimeout)
		defer cancel()
		result, err := deps.Payments.Collect(ctx, intent)
		return paymentResultMsg{result: result, err: err}
	}
}

// Local message types

type couponValidatedMsg struct {
	seq     int
	code    string
	coupons []model.Coupon
}

type paymentResultMsg struct {
	result payment.Result
	err    error
}
