package prompt

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/spectrena/sw/internal/ui/styles"
)

type typedModel struct {
	textInput textinput.Model
	prompt    string
	word      string
	done      bool
	cancelled bool
}

func (m typedModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m typedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m typedModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	hint := styles.MutedStyle.Render(fmt.Sprintf("(type %q to confirm, anything else aborts)", m.word))
	return tea.NewView(fmt.Sprintf("%s %s\n%s", m.prompt, hint, m.textInput.View()))
}

// ConfirmTyped shows a prompt that only confirms when the user types word
// exactly. Anything else, including an empty answer, declines. Used before
// discarding uncommitted changes where a single stray keypress must not
// destroy work.
func ConfirmTyped(prompt, word string) (ConfirmResult, error) {
	ti := textinput.New()
	ti.Placeholder = word
	ti.Focus()
	ti.CharLimit = 32
	ti.SetWidth(20)

	model := typedModel{
		textInput: ti,
		prompt:    prompt,
		word:      word,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(typedModel)
	if m.cancelled {
		return ConfirmResult{Cancelled: true}, nil
	}
	return ConfirmResult{
		Confirmed: strings.TrimSpace(m.textInput.Value()) == m.word,
	}, nil
}
