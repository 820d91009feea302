package cli

import (
	"io"

	"github.com/spf13/cobra"

	"taskie/internal/task"
	pkgLog "taskie/pkg/log"
)

// Handler turns task use case calls into cobra subcommands.
type Handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	out    io.Writer
	styles styles
}

// New creates a new CLI handler writing to out. color toggles lipgloss styling.
func New(l pkgLog.Logger, uc task.UseCase, out io.Writer, color bool) *Handler {
	return &Handler{
		l:      l,
		uc:     uc,
		out:    out,
		styles: newStyles(color),
	}
}

// Commands returns every task subcommand, ready to be added to a root command.
func (h *Handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.registerCmd(),
		h.loginCmd(),
		h.logoutCmd(),
		h.listCmd(),
		h.addCmd(),
		h.completeCmd(),
		h.deleteCmd(),
		h.profileCmd(),
	}
}
