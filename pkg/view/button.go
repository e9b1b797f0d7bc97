package view

// Action is a control-independent command. It has exactly one handler, fixed
// when the action is created.
type Action struct {
	handler func()
	count   int
}

// NewAction creates an action running handler when performed.
func NewAction(handler func()) *Action {
	return &Action{handler: handler}
}

// Perform runs the handler.
func (a *Action) Perform() {
	if a == nil {
		return
	}
	a.count++
	if a.handler != nil {
		a.handler()
	}
}

// Performed reports how many times the action ran.
func (a *Action) Performed() int {
	if a == nil {
		return 0
	}
	return a.count
}

// Button is a titled control performing an action when pressed.
type Button struct {
	title    string
	action   *Action
	disabled bool
}

func (*Button) isNode() {}

// NewButton creates an enabled button bound to action.
func NewButton(title string, action *Action) *Button {
	return &Button{title: title, action: action}
}

// Title returns the button title.
func (b *Button) Title() string {
	return b.title
}

// Action returns the action the button performs.
func (b *Button) Action() *Action {
	return b.action
}

// Enabled reports whether presses are delivered.
func (b *Button) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables the button.
func (b *Button) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Press delivers a press event. Disabled buttons ignore presses.
func (b *Button) Press() bool {
	if b.disabled || b.action == nil {
		return false
	}
	b.action.Perform()
	return true
}
