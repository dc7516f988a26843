package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
)

func (a *App) loginCmd() *cobra.Command {
	var form validation.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a restaurant operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			res, err := a.console.Auth.Login(cmd.Context(), form.Credentials())
			if err != nil {
				return a.authError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", okStyle.Render("Signed in as"), res.User.Name, res.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func (a *App) registerCmd() *cobra.Command {
	var form validation.RegistrationForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a restaurant owner account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("confirm-password") {
				form.ConfirmPassword = form.Password
			}
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			res, err := a.console.Auth.Register(cmd.Context(), form.Registration())
			if err != nil {
				return a.authError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", okStyle.Render("Registered and signed in as"), res.User.Name, res.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "restaurant or owner name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "10 digit phone number")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "repeat the password (defaults to --password)")
	cmd.Flags().StringVar(&form.InviteCode, "invite", "", "registration invitation code")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.console.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			snap := a.console.Session.Snapshot()
			if !snap.IsAuthenticated || snap.User == nil {
				fmt.Fprintln(out, "Not signed in")
				return nil
			}

			u := snap.User
			field(out, "Name", u.Name)
			field(out, "Email", u.Email)
			field(out, "Role", u.Role)
			field(out, "Restaurant", u.RestaurantID)
			if exp, ok := a.console.Session.TokenExpiry(); ok {
				field(out, "Token expires", exp.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}

func (a *App) refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "refresh",
		Short:   "Exchange the session token for a fresh one",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.console.Auth.RefreshToken(cmd.Context()); err != nil {
				return a.apiError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token refreshed")
			return nil
		},
	}
}
