package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
)

func (a *App) notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "notify",
		Short:             "Send and review notifications",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.notifySendCmd(), a.notifyListCmd())
	return cmd
}

func (a *App) notifySendCmd() *cobra.Command {
	var form validation.NotificationForm

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			n, err := a.console.Notifications.SendNotification(cmd.Context(), form.Input())
			if err != nil {
				return a.apiError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %q to %s (%s)\n", okStyle.Render("Sent"), n.Title, n.Audience, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "notification title")
	cmd.Flags().StringVar(&form.Message, "message", "", "notification body")
	cmd.Flags().StringVar(&form.Audience, "audience", "", "customers, staff or all (default customers)")
	return cmd
}

func (a *App) notifyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sent notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.console.Notifications.GetNotifications(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No notifications sent yet")
				return nil
			}

			t := newTable("ID", "SENT", "AUDIENCE", "TITLE")
			for _, n := range list {
				t.add(n.ID, n.CreatedAt.Local().Format(timeLayout), n.Audience, n.Title)
			}
			t.render(out)
			return nil
		},
	}
}
