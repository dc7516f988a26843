package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
)

func (a *App) menuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "menu",
		Short:             "List and edit menu items",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.menuListCmd(), a.menuAddCmd(), a.menuUpdateCmd(), a.menuDeleteCmd())
	return cmd
}

func (a *App) menuListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.console.Menu.GetMenuItems(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "The menu is empty")
				return nil
			}

			t := newTable("ID", "NAME", "CATEGORY", "PRICE", "PREP", "TAGS", "STOCK")
			for _, item := range items {
				t.add(item.ID, item.Name, item.Category, rupees(item.Price),
					strconv.Itoa(item.PreparationTime)+"m", menuTags(item), stock(item))
			}
			t.render(out)
			return nil
		},
	}
}

func menuTags(item domain.MenuItem) string {
	var tags []string
	if item.IsVegetarian {
		tags = append(tags, "veg")
	}
	if item.IsSpicy {
		tags = append(tags, "spicy")
	}
	return strings.Join(tags, ",")
}

func stock(item domain.MenuItem) string {
	if item.Available() {
		return okStyle.Render("available")
	}
	return errorStyle.Render("out of stock")
}

// bindMenuFlags binds every item form field to a flag on fs.
func bindMenuFlags(fs *pflag.FlagSet, form *validation.MenuItemForm) {
	fs.StringVar(&form.Name, "name", form.Name, "item name")
	fs.StringVar(&form.Description, "description", form.Description, "item description")
	fs.Float64Var(&form.Price, "price", form.Price, "price in rupees")
	fs.StringVar(&form.Category, "category", form.Category, "one of: "+strings.Join(domain.MenuCategories, ", "))
	fs.StringVar(&form.Image, "image", form.Image, "image URL")
	fs.IntVar(&form.PreparationTime, "prep", form.PreparationTime, "preparation time in minutes")
	fs.BoolVar(&form.IsVegetarian, "veg", form.IsVegetarian, "vegetarian item")
	fs.BoolVar(&form.IsSpicy, "spicy", form.IsSpicy, "spicy item")
	fs.BoolVar(&form.IsOutOfStock, "out-of-stock", form.IsOutOfStock, "mark the item out of stock")
	fs.StringSliceVar(&form.Allergens, "allergens", form.Allergens, "comma separated: "+strings.Join(domain.Allergens, ", "))
	fs.IntVar(&form.NutritionalInfo.Calories, "calories", form.NutritionalInfo.Calories, "calories per serving")
	fs.Float64Var(&form.NutritionalInfo.Protein, "protein", form.NutritionalInfo.Protein, "protein in grams")
	fs.Float64Var(&form.NutritionalInfo.Carbs, "carbs", form.NutritionalInfo.Carbs, "carbohydrates in grams")
	fs.Float64Var(&form.NutritionalInfo.Fat, "fat", form.NutritionalInfo.Fat, "fat in grams")
}

func (a *App) menuAddCmd() *cobra.Command {
	var form validation.MenuItemForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a menu item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			item, err := a.console.Menu.AddMenuItem(cmd.Context(), form.Input())
			if err != nil {
				return a.apiError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", okStyle.Render("Added"), item.Name, item.ID)
			return nil
		},
	}

	bindMenuFlags(cmd.Flags(), &form)
	return cmd
}

// menuUpdateCmd starts from the stored item so only the flags given change.
func (a *App) menuUpdateCmd() *cobra.Command {
	var changes validation.MenuItemForm

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Edit a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.console.Menu.GetMenuItems(cmd.Context())
			if err != nil {
				return a.apiError(cmd, err)
			}

			var current *domain.MenuItem
			for i := range items {
				if items[i].ID == args[0] {
					current = &items[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("menu item %s not found", args[0])
			}

			form := validation.MenuItemFormFrom(*current)
			applyMenuChanges(cmd.Flags(), &form, changes)
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			item, err := a.console.Menu.UpdateMenuItem(cmd.Context(), current.ID, form.Input())
			if err != nil {
				return a.apiError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", okStyle.Render("Updated"), item.Name, item.ID)
			return nil
		},
	}

	bindMenuFlags(cmd.Flags(), &changes)
	return cmd
}

// applyMenuChanges copies the explicitly set flags from changes onto form.
func applyMenuChanges(fs *pflag.FlagSet, form *validation.MenuItemForm, changes validation.MenuItemForm) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("name", func() { form.Name = changes.Name })
	set("description", func() { form.Description = changes.Description })
	set("price", func() { form.Price = changes.Price })
	set("category", func() { form.Category = changes.Category })
	set("image", func() { form.Image = changes.Image })
	set("prep", func() { form.PreparationTime = changes.PreparationTime })
	set("veg", func() { form.IsVegetarian = changes.IsVegetarian })
	set("spicy", func() { form.IsSpicy = changes.IsSpicy })
	set("out-of-stock", func() { form.IsOutOfStock = changes.IsOutOfStock })
	set("allergens", func() { form.Allergens = changes.Allergens })
	set("calories", func() { form.NutritionalInfo.Calories = changes.NutritionalInfo.Calories })
	set("protein", func() { form.NutritionalInfo.Protein = changes.NutritionalInfo.Protein })
	set("carbs", func() { form.NutritionalInfo.Carbs = changes.NutritionalInfo.Carbs })
	set("fat", func() { form.NutritionalInfo.Fat = changes.NutritionalInfo.Fat })
}

func (a *App) menuDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Remove a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.console.Menu.DeleteMenuItem(cmd.Context(), args[0]); err != nil {
				return a.apiError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("Deleted"), args[0])
			return nil
		},
	}
}
