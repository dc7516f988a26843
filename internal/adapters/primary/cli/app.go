// Package cli is the operator's command line front end to the restaurant
// console.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/core/console"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
)

// ErrInvalidInput is returned after form errors have been printed.
var ErrInvalidInput = errors.New("invalid input, see the errors above")

// App binds the commands to one console.
type App struct {
	console *console.Console
}

// NewRootCommand builds the command tree over c.
func NewRootCommand(c *console.Console) *cobra.Command {
	app := &App{console: c}

	root := &cobra.Command{
		Use:   "console",
		Short: "Restaurant operator console",
		Long: `Manage a restaurant on the delivery platform: menu, orders, customer
support, notifications, profile and settings.

Sign in first with "console login". The session is kept between runs in
CONSOLE_SESSION_FILE, by default session.json under the user config
directory. Set CONSOLE_SESSION_IN_MEMORY=true to forget it on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		app.loginCmd(),
		app.registerCmd(),
		app.logoutCmd(),
		app.whoamiCmd(),
		app.refreshCmd(),
		app.dashboardCmd(),
		app.menuCmd(),
		app.ordersCmd(),
		app.supportCmd(),
		app.profileCmd(),
		app.settingsCmd(),
		app.notifyCmd(),
	)
	return root
}

// Execute runs root and prints a failure to its error stream. It returns
// the process exit code.
func Execute(ctx context.Context, root *cobra.Command) int {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("Error:"), err)
		return 1
	}
	return 0
}

// apiError turns a failed console call into the message shown to the
// operator. A 401 on an authenticated call also signs the operator out.
func (a *App) apiError(cmd *cobra.Command, err error) error {
	return errors.New(a.console.HandleAPIError(cmd.Context(), err))
}

// authError keeps the server's explanation for rejected credentials, which
// would otherwise read as an expired session.
func (a *App) authError(cmd *cobra.Command, err error) error {
	var statusErr *apperrors.HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return errors.New(statusErr.Message)
	}
	return a.apiError(cmd, err)
}

// checkForm prints errs and reports whether the form may be submitted.
func checkForm(w io.Writer, errs *apperrors.ValidationErrors) error {
	if errs == nil || !errs.HasErrors() {
		return nil
	}
	printFormErrors(w, errs)
	return ErrInvalidInput
}

// requireSession fails fast when nobody is signed in.
func (a *App) requireSession(cmd *cobra.Command, _ []string) error {
	if !a.console.Session.IsAuthenticated() {
		return errors.New(`not signed in, run "console login" first`)
	}
	return nil
}
