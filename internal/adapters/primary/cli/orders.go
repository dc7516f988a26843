package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/core/domain"
)

const timeLayout = "02 Jan 15:04"

func (a *App) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "orders",
		Short:             "Browse orders and move them through the kitchen",
		PersistentPreRunE: a.requireSession,
	}
	cmd.AddCommand(a.ordersListCmd(), a.ordersShowCmd(), a.ordersStatusCmd())
	return cmd
}

func bindListFlags(fs *pflag.FlagSet, params *domain.ListParams) {
	fs.IntVar(&params.Page, "page", validation.DefaultPage, "page number")
	fs.IntVar(&params.Limit, "limit", validation.DefaultLimit, "items per page")
	fs.StringVar(&params.Status, "status", "", `only this status ("all" for every status)`)
}

func (a *App) ordersListCmd() *cobra.Command {
	var params domain.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.console.Orders.GetOrders(cmd.Context(), params)
			if err != nil {
				return a.apiError(cmd, err)
			}

			out := cmd.OutOrStdout()
			t := newTable("ID", "NUMBER", "CUSTOMER", "ITEMS", "TOTAL", "STATUS", "PLACED")
			for _, o := range list.Orders {
				t.add(o.ID, o.OrderNumber, o.Customer.Name, strconv.Itoa(o.ItemCount()),
					rupees(o.TotalAmount), badge(string(o.Status)), o.CreatedAt.Local().Format(timeLayout))
			}
			t.render(out)
			fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("Page %d of %d, %d orders", list.CurrentPage, list.TotalPages, list.TotalOrders)))
			return nil
		},
	}

	bindListFlags(cmd.Flags(), &params)
	return cmd
}

func (a *App) ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.console.Orders.GetOrderDetails(cmd.Context(), args[0])
			if err != nil {
				return a.apiError(cmd, err)
			}

			out := cmd.OutOrStdout()
			heading(out, "Order "+o.OrderNumber)
			field(out, "Status", badge(string(o.Status)))
			field(out, "Customer", o.Customer.Name+" "+o.Customer.Phone)
			field(out, "Address", o.DeliveryAddress)
			field(out, "Payment", o.PaymentMethod)
			field(out, "Placed", o.CreatedAt.Local().Format(time.RFC1123))
			if o.EstimatedDeliveryTime != nil {
				field(out, "Estimated delivery", o.EstimatedDeliveryTime.Local().Format(time.RFC1123))
			}

			t := newTable("ITEM", "QTY", "PRICE", "SUBTOTAL")
			for _, item := range o.Items {
				t.add(item.Name, strconv.Itoa(item.Quantity), rupees(item.Price), rupees(item.Price*float64(item.Quantity)))
			}
			t.render(out)
			field(out, "Total", rupees(o.TotalAmount))
			return nil
		},
	}
}

func (a *App) ordersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Change the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := validation.OrderStatusForm{Status: args[1]}
			if err := checkForm(cmd.ErrOrStderr(), form.Validate()); err != nil {
				return err
			}

			o, err := a.console.Orders.UpdateOrderStatus(cmd.Context(), args[0], domain.OrderStatus(form.Status))
			if err != nil {
				return a.apiError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", o.OrderNumber, badge(string(o.Status)))
			return nil
		},
	}
}
