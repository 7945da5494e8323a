package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paisacalc/paisa/internal/domain"
)

// View renders the active scene.
func (m Model) View() string {
	switch m.currentScene {
	case sceneEditor:
		return m.viewEditor()
	default:
		return m.viewPicker()
	}
}

func (m Model) viewPicker() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Paisa Calculators"))
	sb.WriteString("\n")

	for i, p := range products {
		cursor := "  "
		style := unselectedItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		sb.WriteString(cursor + style.Render(p.Title) + "\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))
	return sb.String()
}

func (m Model) viewEditor() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.product.Title))
	sb.WriteString("\n")

	for i, f := range m.product.Fields {
		sb.WriteString(labelStyle.Render(f.Label))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	if m.summary != nil {
		var box strings.Builder
		for _, line := range m.summary.Lines {
			box.WriteString(resultLabelStyle.Render(line.Label))
			box.WriteString(resultValueStyle.Render(line.Value))
			box.WriteString("\n")
		}
		sb.WriteString(resultBoxStyle.Render(strings.TrimRight(box.String(), "\n")))
		sb.WriteString("\n")

		for _, fieldErr := range m.summary.Errors {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("! %s: %s", fieldErr.Field, fieldErr.Message)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(helpStyle.Render("tab next field · esc back · ctrl+c quit"))
	return sb.String()
}

func formatLimitDefault(lim domain.FieldLimit) string {
	return strconv.FormatFloat(lim.Default, 'f', -1, 64)
}
