package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
)

func (a *App) supportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "support",
		Short:             "Customer support tickets",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.supportListCmd(), a.supportStatusCmd())
	return cmd
}

func (a *App) supportListCmd() *cobra.Command {
	var params domain.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List support tickets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.console.Support.GetSupportQueries(cmd.Context(), params)
			if err != nil {
				return a.apiError(cmd, err)
			}

			out := cmd.OutOrStdout()
			t := newTable("ID", "CUSTOMER", "SUBJECT", "PRIORITY", "STATUS", "OPENED")
			for _, tk := range list.Tickets {
				t.add(tk.ID, tk.CustomerName, tk.Subject, badge(string(tk.Priority)),
					badge(string(tk.Status)), tk.CreatedAt.Local().Format(timeLayout))
			}
			t.render(out)
			fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("Page %d of %d, %d tickets", list.CurrentPage, list.TotalPages, list.TotalTickets)))
			return nil
		},
	}

	bindListFlags(cmd.Flags(), &params)
	return cmd
}

func (a *App) supportStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <ticket-id> <status>",
		Short: "Change the status of a support ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validation.TicketStatusForm{Status: args[1]}
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			tk, err := a.console.Support.UpdateSupportStatus(cmd.Context(), args[0], domain.TicketStatus(form.Status))
			if err != nil {
				return a.apiError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s is now %s\n", tk.ID, badge(string(tk.Status)))
			return nil
		},
	}
}
