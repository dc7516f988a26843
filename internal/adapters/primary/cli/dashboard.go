package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorrc/restaurant-console/internal/core/domain"
)

func (a *App) dashboardCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Sales, order counts, daily report and recent activity",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := reportParams(from, to)
			if err != nil {
				return err
			}

			if err := a.console.Dashboard.Refresh(cmd.Context(), params); err != nil {
				return a.apiError(cmd, err)
			}

			state := a.console.Dashboard.State()
			out := cmd.OutOrStdout()

			if m := state.DashboardMetrics; m != nil {
				heading(out, "Sales")
				sales := newTable("PERIOD", "ORDERS", "REVENUE")
				sales.add("Today", strconv.Itoa(m.Sales.Today.OrderCount), rupees(m.Sales.Today.TotalSales))
				sales.add("Last 7 days", strconv.Itoa(m.Sales.Week.OrderCount), rupees(m.Sales.Week.TotalSales))
				sales.add("Last 30 days", strconv.Itoa(m.Sales.Month.OrderCount), rupees(m.Sales.Month.TotalSales))
				sales.render(out)

				heading(out, "Orders by status")
				counts := newTable("STATUS", "COUNT")
				for _, s := range domain.OrderStatuses {
					counts.add(badge(string(s)), strconv.Itoa(m.OrderStatusCounts[s]))
				}
				counts.render(out)
			}

			heading(out, "Daily report")
			report := newTable("DATE", "ORDERS", "REVENUE")
			for _, e := range state.Reports {
				report.add(e.Date, strconv.Itoa(e.OrderCount), rupees(e.TotalSales))
			}
			report.render(out)

			heading(out, "Recent activity")
			activity := newTable("WHEN", "ACTION", "DETAIL", "STATUS")
			for _, act := range state.RecentActivity {
				activity.add(act.Timestamp.Local().Format(timeLayout), act.Action, act.Description, badge(act.Status))
			}
			activity.render(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "report start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "report end date (YYYY-MM-DD)")
	return cmd
}

func reportParams(from, to string) (domain.ReportParams, error) {
	var params domain.ReportParams
	var err error
	if from != "" {
		if params.From, err = time.Parse(time.DateOnly, from); err != nil {
			return params, fmt.Errorf("--from must be a date in YYYY-MM-DD format")
		}
	}
	if to != "" {
		if params.To, err = time.Parse(time.DateOnly, to); err != nil {
			return params, fmt.Errorf("--to must be a date in YYYY-MM-DD format")
		}
	}
	return params, nil
}
