package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "profile",
		Short:             "Restaurant profile",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.profileGetCmd(), a.profileUpdateCmd())
	return cmd
}

func printProfile(w io.Writer, r domain.Restaurant) {
	heading(w, r.Name)
	field(w, "ID", r.ID)
	field(w, "Description", r.Description)
	field(w, "Cuisine", strings.Join(r.Cuisine, ", "))
	field(w, "Address", r.Address)
	field(w, "Phone", r.Phone)
	field(w, "Email", r.Email)
	field(w, "Hours", r.OpeningHours)
	if r.IsOpen {
		field(w, "Status", okStyle.Render("open"))
	} else {
		field(w, "Status", errorStyle.Render("closed"))
	}
}

func (a *App) profileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the restaurant profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.console.Restaurant.GetRestaurantDetails(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}
			printProfile(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func (a *App) profileUpdateCmd() *cobra.Command {
	var changes validation.ProfileForm

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit the restaurant profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.console.Restaurant.GetRestaurantDetails(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}

			form := validation.ProfileForm{
				Name:         current.Name,
				Description:  current.Description,
				Cuisine:      current.Cuisine,
				Address:      current.Address,
				Phone:        current.Phone,
				Email:        current.Email,
				OpeningHours: current.OpeningHours,
				IsOpen:       current.IsOpen,
			}
			fs := cmd.Flags()
			if fs.Changed("name") {
				form.Name = changes.Name
			}
			if fs.Changed("description") {
				form.Description = changes.Description
			}
			if fs.Changed("cuisine") {
				form.Cuisine = changes.Cuisine
			}
			if fs.Changed("address") {
				form.Address = changes.Address
			}
			if fs.Changed("phone") {
				form.Phone = changes.Phone
			}
			if fs.Changed("email") {
				form.Email = changes.Email
			}
			if fs.Changed("hours") {
				form.OpeningHours = changes.OpeningHours
			}
			if fs.Changed("open") {
				form.IsOpen = changes.IsOpen
			}
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			r := form.Restaurant()
			r.ID = current.ID
			updated, err := a.console.Restaurant.UpdateRestaurantDetails(cmd.Context(), r)
			if err != nil {
				return a.apiError(cmd, err)
			}
			printProfile(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&changes.Name, "name", "", "restaurant name")
	fs.StringVar(&changes.Description, "description", "", "short description")
	fs.StringSliceVar(&changes.Cuisine, "cuisine", nil, "comma separated cuisines")
	fs.StringVar(&changes.Address, "address", "", "street address")
	fs.StringVar(&changes.Phone, "phone", "", "contact phone")
	fs.StringVar(&changes.Email, "email", "", "contact email")
	fs.StringVar(&changes.OpeningHours, "hours", "", `opening hours, for example "10:00 AM - 11:00 PM"`)
	fs.BoolVar(&changes.IsOpen, "open", false, "whether the restaurant is taking orders now")
	return cmd
}

func (a *App) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "settings",
		Short:             "Restaurant settings",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.settingsGetCmd(), a.settingsSetCmd())
	return cmd
}

func printSettings(w io.Writer, s domain.Settings) {
	field(w, "Accepting orders", s.AcceptingOrders)
	field(w, "Auto-confirm orders", s.AutoConfirmOrders)
	field(w, "Preparation buffer", strconv.Itoa(s.PreparationBufferMinutes)+" min")
	field(w, "Notification channels", strings.Join(s.NotificationChannels, ", "))
	field(w, "Currency", s.Currency)
	field(w, "Tax rate", strconv.FormatFloat(s.TaxRate, 'f', -1, 64)+"%")
}

func (a *App) settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the restaurant settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.console.Settings.GetRestaurantSettings(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}
			printSettings(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func (a *App) settingsSetCmd() *cobra.Command {
	var changes validation.SettingsForm

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change restaurant settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.console.Settings.GetRestaurantSettings(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}

			form := validation.SettingsForm{
				AcceptingOrders:          current.AcceptingOrders,
				AutoConfirmOrders:        current.AutoConfirmOrders,
				PreparationBufferMinutes: current.PreparationBufferMinutes,
				NotificationChannels:     current.NotificationChannels,
				Currency:                 current.Currency,
				TaxRate:                  current.TaxRate,
			}
			fs := cmd.Flags()
			if fs.Changed("accepting-orders") {
				form.AcceptingOrders = changes.AcceptingOrders
			}
			if fs.Changed("auto-confirm") {
				form.AutoConfirmOrders = changes.AutoConfirmOrders
			}
			if fs.Changed("buffer") {
				form.PreparationBufferMinutes = changes.PreparationBufferMinutes
			}
			if fs.Changed("channels") {
				form.NotificationChannels = changes.NotificationChannels
			}
			if fs.Changed("currency") {
				form.Currency = changes.Currency
			}
			if fs.Changed("tax") {
				form.TaxRate = changes.TaxRate
			}
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			updated, err := a.console.Settings.UpdateRestaurantSettings(cmd.Context(), form.Settings())
			if err != nil {
				return a.apiError(cmd, err)
			}
			printSettings(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&changes.AcceptingOrders, "accepting-orders", false, "accept new orders")
	fs.BoolVar(&changes.AutoConfirmOrders, "auto-confirm", false, "confirm new orders automatically")
	fs.IntVar(&changes.PreparationBufferMinutes, "buffer", 0, "minutes added to every preparation estimate")
	fs.StringSliceVar(&changes.NotificationChannels, "channels", nil, "comma separated: email, sms, push")
	fs.StringVar(&changes.Currency, "currency", "", "ISO currency code, for example INR")
	fs.Float64Var(&changes.TaxRate, "tax", 0, "tax rate in percent")
	return cmd
}
