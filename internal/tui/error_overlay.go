package tui

// errorOverlay is a modal notice shown on top of the current view until the
// user dismisses it.
type errorOverlay struct {
	title   string
	message string
}

func (o errorOverlay) visible() bool { return o.message != "" }

func (o *errorOverlay) dismiss() { *o = errorOverlay{} }

func (o errorOverlay) View() string {
	title := o.title
	if title == "" {
		title = "Ошибка"
	}
	content := errorStyle.Render(title) + "\n\n" + o.message + "\n\n" + helpStyle.Render("enter / esc закрыть")
	return overlayBoxStyle.Render(content)
}
