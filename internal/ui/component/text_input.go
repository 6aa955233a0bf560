package component

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/query"
	"github.com/leighmacdonald/fpl-tui/internal/ui/styles"
)

var errNotNumeric = errors.New("not a number")

type InputValidator interface {
	Validate(string) error
}

func NewValidatingTextInputModel(label string, value string, placeholder string, width int,
	validators ...InputValidator,
) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder, width)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render(" " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FilterLabel.Render(m.Label+":"),
		m.Input.View(),
		errRow)
}

func (m *ValidatingTextInputModel) Value() string {
	return m.Input.Value()
}

// SetValue replaces the text and re-runs validation.
func (m *ValidatingTextInputModel) SetValue(value string) {
	m.Input.SetValue(value)
	if m.Input.Validate != nil {
		m.Input.Err = m.Input.Validate(value)
	}
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

// NumericValidator accepts an empty value or anything that parses as a float. Rejected text
// is still applied to the filter, which then excludes every known value for the stat.
type NumericValidator struct{}

func (v NumericValidator) Validate(value string) error {
	if !query.ValidBound(value) {
		return errNotNumeric
	}

	return nil
}
