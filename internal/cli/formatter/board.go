package formatter

import (
	"fmt"
	"strings"

	"daybelt/internal/api"
	"daybelt/internal/domain"
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
	// HereMarker flags the task whose slot contains the current time.
	HereMarker = "You are here →"
)

// RenderBoard renders today's checklist for the terminal.
func RenderBoard(b *api.Board, barWidth int) string {
	var sb strings.Builder

	if b.Title != "" {
		sb.WriteString(StyleTitle.Render(b.Title))
		sb.WriteString("\n")
	}
	if b.Caption != "" {
		sb.WriteString(Dim(b.Caption))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(Header("Progress"))
	sb.WriteString("\n")
	sb.WriteString(RenderProgress(b.Progress, barWidth))
	sb.WriteString("\n\n")

	sb.WriteString(Header(fmt.Sprintf("Today’s conveyor belt (%s)", b.Date)))
	sb.WriteString("\n")
	width := len(fmt.Sprint(len(b.Tasks)))
	for i, task := range b.Tasks {
		sb.WriteString(RenderTaskLine(i+1, width, task, i == b.Current))
		sb.WriteString("\n")
	}

	if b.Tip != "" {
		sb.WriteString("\n")
		sb.WriteString(Dim(b.Tip))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderTaskLine renders one numbered checklist row. The current row gets
// the here marker appended.
func RenderTaskLine(number, width int, task domain.TaskState, current bool) string {
	box := uncheckedBox
	label := task.Label
	if task.Done {
		box = StyleGreen.Render(checkedBox)
		label = Dim(label)
	}

	line := fmt.Sprintf("%*d. %s %s %s", width, number, box, StyleBlue.Render("["+task.Time+"]"), label)
	if current {
		line += "  " + StyleYellow.Render(HereMarker) + " " + Dim("this is the current time block")
	}
	return line
}

// RenderNow renders the answer to "what should I be doing right now".
func RenderNow(slot *api.CurrentSlot) string {
	if slot == nil || slot.Task == nil {
		return Dim("No task is scheduled right now.")
	}
	state := "not done"
	if slot.Task.Done {
		state = "done"
	}
	return fmt.Sprintf("%s %d. %s %s (%s)",
		StyleYellow.Render(HereMarker),
		slot.Number,
		StyleBlue.Render("["+slot.Task.Time+"]"),
		Bold(slot.Task.Label),
		state)
}
