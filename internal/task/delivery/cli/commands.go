package cli

import (
	"github.com/spf13/cobra"

	"taskie/internal/task"
)

func (h *Handler) registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(flagName)
			email, _ := cmd.Flags().GetString(flagEmail)
			password, _ := cmd.Flags().GetString(flagPassword)

			out, err := h.uc.Register(cmd.Context(), task.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return h.mapError(err)
			}
			return h.printMessage(out.Message)
		},
	}
	cmd.Flags().String(flagName, "", "Display name")
	addCredentialFlags(cmd.Flags())
	return cmd
}

func (h *Handler) loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString(flagEmail)
			password, _ := cmd.Flags().GetString(flagPassword)

			if err := h.uc.Login(cmd.Context(), task.LoginInput{Email: email, Password: password}); err != nil {
				return h.mapError(err)
			}
			return h.printMessage("Logged in as " + email)
		},
	}
	addCredentialFlags(cmd.Flags())
	return cmd
}

func (h *Handler) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.uc.Logout(cmd.Context()); err != nil {
				return h.mapError(err)
			}
			return h.printMessage("Logged out")
		},
	}
}

func (h *Handler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.uc.List(cmd.Context())
			if err != nil {
				return h.mapError(err)
			}
			if jsonOutput(cmd) {
				return h.printJSON(newItemsResp(out.Items))
			}
			h.renderList(out)
			return nil
		},
	}
	addJSONFlag(cmd.Flags())
	return cmd
}

func (h *Handler) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString(flagTitle)
			content, _ := cmd.Flags().GetString(flagContent)
			priority, _ := cmd.Flags().GetInt(flagPriority)

			out, err := h.uc.Add(cmd.Context(), task.AddInput{
				Title:    title,
				Content:  content,
				Priority: priority,
			})
			if err != nil {
				return h.mapError(err)
			}
			if jsonOutput(cmd) {
				return h.printJSON(newItemResp(out.Item))
			}
			h.renderItem(out.Item)
			return nil
		},
	}
	cmd.Flags().String(flagTitle, "", "Task title")
	cmd.Flags().String(flagContent, "", "Task content")
	cmd.Flags().Int(flagPriority, 1, "Priority: 1 low, 2 medium, 3 high")
	addJSONFlag(cmd.Flags())
	return cmd
}

func (h *Handler) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.uc.Complete(cmd.Context(), args[0]); err != nil {
				return h.mapError(err)
			}
			return h.printMessage("Completed " + args[0])
		},
	}
}

func (h *Handler) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.uc.Delete(cmd.Context(), args[0])
			if err != nil {
				return h.mapError(err)
			}
			return h.printMessage(out.Message)
		},
	}
}

func (h *Handler) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user and open task count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.uc.Profile(cmd.Context())
			if err != nil {
				return h.mapError(err)
			}
			if jsonOutput(cmd) {
				return h.printJSON(newProfileResp(out))
			}
			h.renderProfile(out)
			return nil
		},
	}
	addJSONFlag(cmd.Flags())
	return cmd
}
