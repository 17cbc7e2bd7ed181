// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/authform"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const tokenPreviewLen = 32

// inputs are stored in this order regardless of mode
var allFields = [3]authform.Field{authform.FieldName, authform.FieldEmail, authform.FieldPassword}

var fieldLabels = map[authform.Field]string{
	authform.FieldName:     "Имя",
	authform.FieldEmail:    "Email",
	authform.FieldPassword: "Пароль",
}

// appModel renders the controller state. It never changes form data on its
// own: every keystroke goes through the controller and the inputs are
// re-synchronised from the resulting state.
type appModel struct {
	ctx       context.Context
	ctrl      *authform.Controller
	sessions  SessionSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	state   authform.State
	inputs  [3]textinput.Model
	focus   int
	spinner spinner.Model

	hint          string
	notice        string
	showBuildInfo bool
	errorOverlay  errorOverlay
}

func newAppModel(ctx context.Context, ctrl *authform.Controller, sessions SessionSource, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := appModel{
		ctx:       ctx,
		ctrl:      ctrl,
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    log,
		state:     ctrl.State(),
		spinner:   sp,
	}
	for i, f := range allFields {
		m.inputs[i] = newFieldInput(f)
	}
	m.syncInputs()
	m.applyFocus()

	return m
}

func newFieldInput(field authform.Field) textinput.Model {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 40

	switch field {
	case authform.FieldName:
		in.Placeholder = "Ваше имя"
	case authform.FieldEmail:
		in.Placeholder = "you@example.com"
	case authform.FieldPassword:
		in.Placeholder = "password"
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case submitDoneMsg:
		m.state = m.ctrl.Finish(msg.outcome)
		m.syncInputs()
		m.applyFocus()
		return m, nil
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case copiedMsg:
		m.notice = "Токен скопирован"
		return m, cmdClearNotice()
	case copyFailedMsg:
		m.showErrorf("Буфер обмена", "Не удалось скопировать токен: %v", msg.err)
		return m, nil
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}
	if m.errorOverlay.visible() {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errorOverlay.dismiss()
		}
		return m, nil
	}
	if m.state.Authenticated() {
		return m.updateAuthenticated(msg)
	}
	return m.updateForm(msg)
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.focusPrev()
		return m, nil
	case key.Matches(msg, keys.toggle):
		m.state = m.ctrl.ToggleMode()
		m.hint = ""
		m.focus = 0
		m.syncInputs()
		m.applyFocus()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateAuthenticated(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.state = m.ctrl.Logout()
		m.notice = ""
		m.focus = 0
		m.syncInputs()
		m.applyFocus()
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		token := m.sessions.Session().Token
		if token == "" {
			m.showErrorf("Буфер обмена", "Сервер не выдал токен для этой сессии")
			return m, nil
		}
		return m, cmdCopyToClipboard(token)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

// submit starts a submission. A missing required field only produces an
// inline hint; the controller state stays as it was.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	sub, err := m.ctrl.BeginSubmit()

	var required *authform.RequiredFieldError
	switch {
	case errors.Is(err, authform.ErrSubmitInFlight):
		return m, nil
	case errors.As(err, &required):
		m.hint = fmt.Sprintf("Заполните поле «%s»", fieldLabels[required.Field])
		m.focusField(required.Field)
		return m, nil
	case err != nil:
		m.logger.Err(err).Msg("submission rejected")
		return m, nil
	}

	m.hint = ""
	m.state = m.ctrl.State()
	return m, tea.Batch(m.spinner.Tick, m.cmdExecute(sub))
}

// cmdExecute runs the remote call off the event loop. The context is the
// application one, so no keystroke can abort a started submission.
func (m appModel) cmdExecute(sub authform.Submission) tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl

	return func() tea.Msg {
		return submitDoneMsg{outcome: ctrl.Execute(ctx, sub)}
	}
}

// updateFocusedInput forwards msg to the focused input and reports a changed
// value to the controller.
func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Authenticated() {
		return m, nil
	}

	field := m.visibleFields()[m.focus]
	idx := fieldIndex(field)

	before := m.inputs[idx].Value()
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)

	if after := m.inputs[idx].Value(); after != before {
		state, err := m.ctrl.EditField(field, after)
		if err != nil {
			m.logger.Err(err).Str("field", string(field)).Msg("edit rejected")
		}
		m.state = state
		m.hint = ""
	}

	return m, cmd
}

func (m appModel) visibleFields() []authform.Field {
	return authform.RequiredFields(m.state.Mode)
}

// syncInputs copies the form values of the controller state into the inputs.
func (m *appModel) syncInputs() {
	for i, f := range allFields {
		v, _ := m.state.Form.Get(f)
		if m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *appModel) applyFocus() {
	visible := m.visibleFields()
	if m.focus < 0 || m.focus >= len(visible) {
		m.focus = 0
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if !m.state.Authenticated() {
		m.inputs[fieldIndex(visible[m.focus])].Focus()
	}
}

func (m *appModel) focusNext() {
	m.focus = (m.focus + 1) % len(m.visibleFields())
	m.applyFocus()
}

func (m *appModel) focusPrev() {
	n := len(m.visibleFields())
	m.focus = (m.focus - 1 + n) % n
	m.applyFocus()
}

func (m *appModel) focusField(field authform.Field) {
	for i, f := range m.visibleFields() {
		if f == field {
			m.focus = i
			break
		}
	}
	m.applyFocus()
}

func (m *appModel) showErrorf(title, format string, args ...any) {
	m.errorOverlay = errorOverlay{title: title, message: fmt.Sprintf(format, args...)}
}

func fieldIndex(field authform.Field) int {
	for i, f := range allFields {
		if f == field {
			return i
		}
	}
	return 0
}

func (m appModel) View() string {
	if m.errorOverlay.visible() {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.state.Authenticated() {
		if m.showBuildInfo {
			return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
		}
		return appStyle.Render(m.viewAuthenticated())
	}
	return appStyle.Render(m.viewForm())
}

func (m appModel) viewForm() string {
	var b strings.Builder

	title, subtitle, button, switchHint := "ВХОД", "Войдите в свой аккаунт", "[Войти]", "Нет аккаунта? ctrl+t: регистрация"
	if m.state.Mode == authform.ModeRegister {
		title, subtitle, button, switchHint = "РЕГИСТРАЦИЯ", "Создайте новый аккаунт", "[Зарегистрироваться]", "Уже есть аккаунт? ctrl+t: вход"
	}

	b.WriteString(subtitleStyle.Render(subtitle))
	b.WriteString("\n\n")

	for _, f := range m.visibleFields() {
		fmt.Fprintf(&b, "%-6s │ [%s]\n", fieldLabels[f], m.inputs[fieldIndex(f)].View())
	}
	b.WriteString("\n")

	if m.state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" [Обработка...]\n")
	} else {
		b.WriteString(button)
		b.WriteString("\n")
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString(renderStatus(m.state.Status))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(switchHint))

	return renderPage(title, b.String(), "tab: след. поле │ enter: подтвердить │ ctrl+t: сменить режим")
}

func (m appModel) viewAuthenticated() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("Добро пожаловать!"))
	b.WriteString("\n")
	b.WriteString("Вы успешно вошли в систему\n\n")

	session := m.sessions.Session()
	if session.Email != "" {
		b.WriteString("Аккаунт: ")
		b.WriteString(session.Email)
		b.WriteString("\n")
	}
	b.WriteString("Токен:   ")
	if session.Token != "" {
		b.WriteString(fitText(session.Token, tokenPreviewLen))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")

	b.WriteString(renderStatus(m.state.Status))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
	}

	return renderPage("СЕССИЯ", b.String(), "l: выйти │ c: копировать токен │ v: о программе │ q: выход")
}

func renderStatus(s authform.Status) string {
	switch {
	case s.IsError():
		return "\n" + errorStyle.Render("Ошибка: "+s.Text) + "\n"
	case s.IsSuccess():
		return "\n" + successStyle.Render(s.Text) + "\n"
	}
	return ""
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
