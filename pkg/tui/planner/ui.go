package plannerui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/voyage/pkg/app"
	"tableflip.dev/voyage/pkg/planner"
	"tableflip.dev/voyage/pkg/store"
	"tableflip.dev/voyage/pkg/trip"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeCommand
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAddTrip
	actionAddDay
	actionAddActivity
	actionEditTrip
	actionEditDay
	actionEditActivity
)

type pane int

const (
	paneTrips pane = iota
	paneDays
	paneActivities
)

// trip item for the left list
type tripItem struct{ t *trip.Trip }

func (it tripItem) Title() string {
	name := it.t.Color.Sprint(it.t.Name)
	if it.t.Active {
		return name + " ●"
	}
	return name
}
func (it tripItem) Description() string { return "" }
func (it tripItem) FilterValue() string { return it.t.Name }

// day item for the middle list
type dayItem struct{ d *trip.Day }

func (it dayItem) Title() string {
	if it.d.Date.IsZero() {
		return it.d.Name
	}
	return fmt.Sprintf("%s  %s", it.d.Name, it.d.Date.Display())
}
func (it dayItem) Description() string { return "" }
func (it dayItem) FilterValue() string { return it.d.Name }

// activity item for the right list
type activityItem struct{ a *trip.Activity }

func (it activityItem) Title() string {
	return fmt.Sprintf("%s  %s", it.a.Time, it.a.Title)
}
func (it activityItem) Description() string { return "" }
func (it activityItem) FilterValue() string { return it.a.Title }

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action

	focus pane

	tripList list.Model
	dayList  list.Model
	actList  list.Model

	input textinput.Model

	status string

	awaitingDD bool
	lastDTime  time.Time
	pending    pendingDelete

	watch <-chan store.Event

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused lists should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dFocus, 30, 20)
	l1.Title = "Trips"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)

	l2 := list.New([]list.Item{}, dBlur, 26, 20)
	l2.Title = "Days"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)

	l3 := list.New([]list.Item{}, dBlur, 44, 20)
	l3.Title = "Activities"
	l3.SetShowHelp(false)
	l3.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		mode:     modeNormal,
		action:   actionNone,
		focus:    paneTrips,
		tripList: l1,
		dayList:  l2,
		actList:  l3,
		input:    ti,
		status:   "NORMAL: h/l panes, j/k move, J/K move activity, o add, i edit, x activate, dd delete, r refresh, ? help",
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	if ch, err := svc.Watch(m.ctx); err == nil {
		m.watch = ch
	}
	return m
}

// pendingDelete holds the target of a dd gesture awaiting confirmation.
type pendingDelete struct {
	focus  pane
	tripID string
	dayID  string
	what   string
}

// messages
type errMsg struct{ err error }
type stateLoadedMsg struct{ st planner.State }
type sessionEventMsg struct{ ev planner.Event }
type storeChangedMsg struct{ ev store.Event }

// Init loads initial data and arms the session and store subscriptions.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadState(), m.waitForEvent(), m.waitForStoreChange())
}

func (m *Model) loadState() tea.Cmd {
	return func() tea.Msg {
		return stateLoadedMsg{st: m.svc.State()}
	}
}

// waitForEvent blocks on the session channel so background changes, like a
// store watch or a remote resync, repaint the UI.
func (m *Model) waitForEvent() tea.Cmd {
	events := m.svc.Session.Events()
	return func() tea.Msg {
		return sessionEventMsg{ev: <-events}
	}
}

// waitForStoreChange blocks on the store watch so edits made by another
// process show up without pressing r.
func (m *Model) waitForStoreChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{ev: ev}
	}
}

func (m *Model) selectedTrip() *trip.Trip {
	sel := m.tripList.SelectedItem()
	if sel == nil {
		return nil
	}
	return sel.(tripItem).t
}

func (m *Model) selectedDay() *trip.Day {
	sel := m.dayList.SelectedItem()
	if sel == nil {
		return nil
	}
	return sel.(dayItem).d
}

func (m *Model) selectedActivity() *trip.Activity {
	sel := m.actList.SelectedItem()
	if sel == nil {
		return nil
	}
	return sel.(activityItem).a
}

// applyState rebuilds the three lists from a state snapshot, keeping the
// cursors on the same ids where they still exist.
func (m *Model) applyState(st planner.State) {
	keepTrip := ""
	if t := m.selectedTrip(); t != nil {
		keepTrip = t.ID
	}
	keepDay := ""
	if d := m.selectedDay(); d != nil {
		keepDay = d.ID
	}
	keepAct := ""
	if a := m.selectedActivity(); a != nil {
		keepAct = a.ID
	}

	tripItems := make([]list.Item, 0, len(st.Trips))
	for _, t := range st.Trips {
		tripItems = append(tripItems, tripItem{t: t})
	}
	m.tripList.SetItems(tripItems)
	m.tripList.Select(indexOfTrip(st.Trips, keepTrip))

	m.rebuildDays(keepDay, keepAct)
}

func (m *Model) rebuildDays(keepDay, keepAct string) {
	t := m.selectedTrip()
	if t == nil {
		m.dayList.SetItems(nil)
		m.actList.SetItems(nil)
		return
	}
	dayItems := make([]list.Item, 0, len(t.Days))
	for _, d := range t.Days {
		dayItems = append(dayItems, dayItem{d: d})
	}
	m.dayList.SetItems(dayItems)
	m.dayList.Select(indexOfDay(t.Days, keepDay))
	m.rebuildActivities(keepAct)
}

func (m *Model) rebuildActivities(keepAct string) {
	d := m.selectedDay()
	if d == nil {
		m.actList.SetItems(nil)
		return
	}
	actItems := make([]list.Item, 0, len(d.Activities))
	for _, a := range d.Activities {
		actItems = append(actItems, activityItem{a: a})
	}
	m.actList.SetItems(actItems)
	m.actList.Select(indexOfActivity(d.Activities, keepAct))
}

func indexOfTrip(trips []*trip.Trip, id string) int {
	for i, t := range trips {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func indexOfDay(days []*trip.Day, id string) int {
	for i, d := range days {
		if d.ID == id {
			return i
		}
	}
	return 0
}

func indexOfActivity(activities []*trip.Activity, id string) int {
	for i, a := range activities {
		if a.ID == id {
			return i
		}
	}
	return 0
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case stateLoadedMsg:
		m.applyState(msg.st)
	case sessionEventMsg:
		m.applyState(m.svc.State())
		cmds = append(cmds, m.waitForEvent())
	case storeChangedMsg:
		cmds = append(cmds, func() tea.Msg {
			if err := m.svc.Refresh(m.ctx); err != nil {
				return errMsg{err}
			}
			return stateLoadedMsg{st: m.svc.State()}
		}, m.waitForStoreChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			cmds = append(cmds, m.updateInsert(msg)...)
		case modeCommand:
			cmds = append(cmds, m.updateCommand(msg)...)
		case modeConfirm:
			cmds = append(cmds, m.updateConfirm(msg)...)
		case modeNormal:
			cmds = append(cmds, m.updateNormal(msg)...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case ":":
		m.enterCommandMode(&cmds)

	// pane focus
	case "h", "left":
		if m.focus > paneTrips {
			m.focus--
			m.updateFocusHeaders()
		}
	case "l", "right":
		if m.focus < paneActivities {
			m.focus++
			m.updateFocusHeaders()
		}

	// movement
	case "j", "down":
		m.cursorDown()
	case "k", "up":
		m.cursorUp()
	case "g":
		m.cursorTo(0)
	case "G":
		m.cursorTo(-1)

	// grab-move the selected activity
	case "J":
		m.moveActivity(&cmds, +1)
	case "K":
		m.moveActivity(&cmds, -1)

	// add
	case "o", "O":
		m.enterInsert(&cmds)

	// edit
	case "i":
		m.enterEdit(&cmds)

	// activate trip
	case "x":
		if m.focus == paneTrips {
			if t := m.selectedTrip(); t != nil {
				if err := m.svc.ActivateTrip(m.ctx, t.ID); err != nil {
					cmds = append(cmds, errCmd(err))
				} else {
					m.status = fmt.Sprintf("%s is now the active trip", t.Name)
					cmds = append(cmds, m.loadState())
				}
			}
		}

	// delete with a double-d guard
	case "d":
		if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
			m.requestDelete(&cmds)
			m.awaitingDD = false
		} else {
			m.awaitingDD = true
			m.lastDTime = time.Now()
		}

	case "r":
		cmds = append(cmds, func() tea.Msg {
			if err := m.svc.Refresh(m.ctx); err != nil {
				return errMsg{err}
			}
			return stateLoadedMsg{st: m.svc.State()}
		})
	case "?":
		m.mode = modeHelp
	case "q":
		m.status = "Use :q to quit"
	}
	return cmds
}

func (m *Model) cursorDown() {
	switch m.focus {
	case paneTrips:
		m.tripList.CursorDown()
		m.syncSelection()
		m.rebuildDays("", "")
	case paneDays:
		m.dayList.CursorDown()
		m.syncSelection()
		m.rebuildActivities("")
	case paneActivities:
		m.actList.CursorDown()
	}
}

func (m *Model) cursorUp() {
	switch m.focus {
	case paneTrips:
		m.tripList.CursorUp()
		m.syncSelection()
		m.rebuildDays("", "")
	case paneDays:
		m.dayList.CursorUp()
		m.syncSelection()
		m.rebuildActivities("")
	case paneActivities:
		m.actList.CursorUp()
	}
}

func (m *Model) cursorTo(i int) {
	l := m.focusedList()
	if len(l.Items()) == 0 {
		return
	}
	if i < 0 {
		i = len(l.Items()) - 1
	}
	l.Select(i)
	switch m.focus {
	case paneTrips:
		m.syncSelection()
		m.rebuildDays("", "")
	case paneDays:
		m.syncSelection()
		m.rebuildActivities("")
	}
}

func (m *Model) focusedList() *list.Model {
	switch m.focus {
	case paneDays:
		return &m.dayList
	case paneActivities:
		return &m.actList
	default:
		return &m.tripList
	}
}

// syncSelection mirrors the cursor into the session so other surfaces agree
// on what is selected.
func (m *Model) syncSelection() {
	t := m.selectedTrip()
	if t == nil {
		return
	}
	_ = m.svc.Session.SelectTrip(t.ID)
	if d := m.selectedDay(); d != nil {
		_ = m.svc.Session.SelectDay(t.ID, d.ID)
	}
}

func (m *Model) moveActivity(cmds *[]tea.Cmd, delta int) {
	if m.focus != paneActivities {
		return
	}
	t := m.selectedTrip()
	d := m.selectedDay()
	a := m.selectedActivity()
	if t == nil || d == nil || a == nil {
		return
	}
	if err := m.svc.MoveActivity(m.ctx, t.ID, d.ID, a.ID, delta); err != nil {
		*cmds = append(*cmds, errCmd(err))
		return
	}
	m.status = "Moved " + a.Title
	m.applyState(m.svc.State())
}

// requestDelete removes the selected activity outright; trips and days take
// their whole subtree with them, so those wait for a y/n confirm.
func (m *Model) requestDelete(cmds *[]tea.Cmd) {
	t := m.selectedTrip()
	switch m.focus {
	case paneTrips:
		if t == nil {
			return
		}
		m.pending = pendingDelete{focus: paneTrips, tripID: t.ID, what: t.Name}
		m.mode = modeConfirm
		m.status = fmt.Sprintf("Delete trip %q and all its days? y/n", t.Name)
	case paneDays:
		d := m.selectedDay()
		if t == nil || d == nil {
			return
		}
		m.pending = pendingDelete{focus: paneDays, tripID: t.ID, dayID: d.ID, what: d.Name}
		m.mode = modeConfirm
		m.status = fmt.Sprintf("Delete %q and its activities? y/n", d.Name)
	case paneActivities:
		d := m.selectedDay()
		a := m.selectedActivity()
		if t == nil || d == nil || a == nil {
			return
		}
		if err := m.svc.DeleteActivity(m.ctx, t.ID, d.ID, a.ID); err != nil {
			*cmds = append(*cmds, errCmd(err))
			return
		}
		m.status = "Deleted " + a.Title
		m.applyState(m.svc.State())
	}
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	pending := m.pending
	m.pending = pendingDelete{}
	m.mode = modeNormal
	if key := msg.String(); key != "y" && key != "Y" {
		m.status = "Delete cancelled"
		return cmds
	}
	var err error
	switch pending.focus {
	case paneDays:
		err = m.svc.DeleteDay(m.ctx, pending.tripID, pending.dayID)
	default:
		err = m.svc.DeleteTrip(m.ctx, pending.tripID)
	}
	if err != nil {
		cmds = append(cmds, errCmd(err))
		return cmds
	}
	m.status = "Deleted " + pending.what
	m.applyState(m.svc.State())
	return cmds
}

func (m *Model) enterInsert(cmds *[]tea.Cmd) {
	switch m.focus {
	case paneTrips:
		m.action = actionAddTrip
		m.input.Placeholder = "New trip name"
	case paneDays:
		if m.selectedTrip() == nil {
			return
		}
		m.action = actionAddDay
		m.input.Placeholder = "New day name (blank for default)"
	case paneActivities:
		if m.selectedDay() == nil {
			return
		}
		m.action = actionAddActivity
		m.input.Placeholder = "New activity title"
	}
	m.mode = modeInsert
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) enterEdit(cmds *[]tea.Cmd) {
	var current string
	switch m.focus {
	case paneTrips:
		t := m.selectedTrip()
		if t == nil {
			return
		}
		m.action = actionEditTrip
		current = t.Name
		m.input.Placeholder = "Trip name"
	case paneDays:
		d := m.selectedDay()
		if d == nil {
			return
		}
		m.action = actionEditDay
		current = d.Name
		m.input.Placeholder = "Day name"
	case paneActivities:
		a := m.selectedActivity()
		if a == nil {
			return
		}
		m.action = actionEditActivity
		current = a.Title
		m.input.Placeholder = "Activity title"
	}
	m.mode = modeInsert
	m.input.SetValue(current)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) updateInsert(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		m.commitInsert(&cmds, input)
		m.mode = modeNormal
		m.action = actionNone
		m.input.Reset()
		m.input.Blur()
		cmds = append(cmds, m.loadState())
	case "esc":
		m.mode = modeNormal
		m.action = actionNone
		m.input.Reset()
		m.input.Blur()
		m.status = "Cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) commitInsert(cmds *[]tea.Cmd, input string) {
	t := m.selectedTrip()
	d := m.selectedDay()
	a := m.selectedActivity()

	var err error
	switch m.action {
	case actionAddTrip:
		_, err = m.svc.AddTrip(m.ctx, trip.Draft{Name: input})
		m.status = "Added trip"
	case actionAddDay:
		if t == nil {
			return
		}
		_, err = m.svc.AddDay(m.ctx, t.ID, trip.DayDraft{Name: input})
		m.status = "Added day"
	case actionAddActivity:
		if t == nil || d == nil {
			return
		}
		_, err = m.svc.AddActivity(m.ctx, t.ID, d.ID, trip.ActivityDraft{Title: input})
		m.status = "Added activity"
	case actionEditTrip:
		if t == nil || input == "" {
			return
		}
		err = m.svc.EditTrip(m.ctx, t.ID, trip.TripPatch{Name: trip.String(input)})
		m.status = "Renamed trip"
	case actionEditDay:
		if t == nil || d == nil || input == "" {
			return
		}
		err = m.svc.EditDay(m.ctx, t.ID, d.ID, trip.DayPatch{Name: trip.String(input)})
		m.status = "Renamed day"
	case actionEditActivity:
		if t == nil || d == nil || a == nil || input == "" {
			return
		}
		err = m.svc.EditActivity(m.ctx, t.ID, d.ID, a.ID, trip.ActivityPatch{Title: trip.String(input)})
		m.status = "Renamed activity"
	}
	if err != nil {
		*cmds = append(*cmds, errCmd(err))
	}
}

func (m *Model) updateCommand(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		switch input {
		case "q", "quit", "exit":
			cmds = append(cmds, tea.Quit)
		case "":
			// nothing
		default:
			m.status = fmt.Sprintf("Unknown command: %s", input)
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Command cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) enterCommandMode(cmds *[]tea.Cmd) {
	m.mode = modeCommand
	m.input.Reset()
	m.input.Placeholder = "command"
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "COMMAND: type :q to quit"
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

// View renders three lists and optional input/help overlays
func (m Model) View() string {
	left := m.tripList.View()
	middle := m.dayList.View()
	right := m.actList.View()
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeCommand: "CMD", modeConfirm: "CONFIRM", modeHelp: "HELP"}[m.mode]
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), middle, gap(" "), right)

	if m.mode == modeInsert {
		body += "\n\n" + m.input.Placeholder + ": " + m.input.View()
	}
	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l switch panes, j/k move, g/G top/bottom, J/K move activity within its day, o add, i rename, x activate trip, dd delete (y confirms trips and days), r refresh, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + status
}

// Run launches the planner UI.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 4
	if left < 24 {
		left = 24
	}
	middle := m.termWidth / 4
	if middle < 22 {
		middle = 22
	}
	right := m.termWidth - left - middle - 6
	if right < 24 {
		right = 24
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.tripList.SetSize(left, height)
	m.dayList.SetSize(middle, height)
	m.actList.SetSize(right, height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	const on = "» "
	const off = "  "
	titles := map[pane]string{paneTrips: "Trips", paneDays: "Days", paneActivities: "Activities"}
	lists := map[pane]*list.Model{paneTrips: &m.tripList, paneDays: &m.dayList, paneActivities: &m.actList}
	for p, l := range lists {
		if p == m.focus {
			l.Title = on + titles[p]
			l.SetDelegate(m.focusDel)
		} else {
			l.Title = off + titles[p]
			l.SetDelegate(m.blurDel)
		}
	}
}
