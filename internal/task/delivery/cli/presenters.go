package cli

import (
	"encoding/json"
	"fmt"

	"taskie/internal/task"
	"taskie/pkg/taskie"
)

type itemResp struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Priority  taskie.Priority `json:"priority"`
	Severity  taskie.Severity `json:"severity"`
	Checklist *checklistResp  `json:"checklist,omitempty"`
}

type checklistResp struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

type profileResp struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
}

func newItemResp(it task.Item) itemResp {
	resp := itemResp{
		ID:       it.ID,
		Title:    it.Title,
		Content:  it.Content,
		Priority: it.Priority,
		Severity: it.Severity,
	}
	if !it.Checklist.Empty() {
		resp.Checklist = &checklistResp{Done: it.Checklist.Done, Total: it.Checklist.Total}
	}
	return resp
}

func newItemsResp(items []task.Item) []itemResp {
	resp := make([]itemResp, 0, len(items))
	for _, it := range items {
		resp = append(resp, newItemResp(it))
	}
	return resp
}

func newProfileResp(out task.ProfileOutput) profileResp {
	return profileResp{
		Email:     out.Email,
		Name:      out.Name,
		TaskCount: out.TaskCount,
	}
}

func (h *Handler) printJSON(v any) error {
	enc := json.NewEncoder(h.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (h *Handler) printMessage(msg string) error {
	_, err := fmt.Fprintln(h.out, h.styles.success.Render(msg))
	return err
}

func (h *Handler) renderItem(it task.Item) {
	line := h.styles.badge(it.Severity) + " " + h.styles.title.Render(it.Title)
	if !it.Checklist.Empty() {
		line += " " + h.styles.subtle.Render("("+it.Checklist.String()+")")
	}
	fmt.Fprintf(h.out, "%s %s\n", line, h.styles.subtle.Render(it.ID))
	if it.Content != "" {
		fmt.Fprintf(h.out, "    %s\n", it.Content)
	}
}

func (h *Handler) renderList(out task.ListOutput) {
	if out.Empty || len(out.Items) == 0 {
		fmt.Fprintln(h.out, h.styles.subtle.Render("No data available"))
		return
	}
	for _, it := range out.Items {
		h.renderItem(it)
	}
}

func (h *Handler) renderProfile(out task.ProfileOutput) {
	fmt.Fprintf(h.out, "%s <%s>\n", h.styles.title.Render(out.Name), out.Email)
	fmt.Fprintf(h.out, "Open tasks: %d\n", out.TaskCount)
}
