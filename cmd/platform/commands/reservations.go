package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewReservationsCommand creates the reservations command group.
func NewReservationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservation", "res"},
		Short:   "Manage reservations",
		Long:    "List, inspect, cancel and reschedule reservations, and check table availability",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Reservation]{
		Use:   "list",
		Short: "List reservations",
		Noun:  "reservations",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "status", Param: "status", Usage: "filter by status"},
			{Flag: "date", Param: "date", Usage: "filter by date (YYYY-MM-DD)"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Reservation] {
			return client.Reservations().List
		},
		Headers: []string{"ID", "Customer", "Party", "Date", "Time", "Status"},
		Row: func(reservation platform.Reservation) []string {
			return []string{
				reservation.ID,
				reservation.CustomerName,
				strconv.Itoa(reservation.PartySize),
				reservation.Date,
				reservation.Time,
				string(reservation.Status),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Reservation]{
		Use:   "get RESERVATION_ID",
		Short: "Show reservation details",
		Noun:  "reservation",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Reservation, error) {
			return client.Reservations().Get(ctx, id)
		},
		Details: reservationRows,
	}))
	cmd.AddCommand(newReservationCancelCommand())
	cmd.AddCommand(newReservationRescheduleCommand())
	cmd.AddCommand(newReservationStatusCommand())
	cmd.AddCommand(newReservationAvailabilityCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete RESERVATION_ID",
		Short: "Delete a reservation",
		Noun:  "reservation",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Reservations().Delete(ctx, id)
		},
	}))

	return cmd
}

func reservationRows(reservation *platform.Reservation) []detailRow {
	rows := []detailRow{
		{"ID", reservation.ID},
		{"Customer", reservation.CustomerName},
		{"Phone", valueOr(reservation.CustomerPhone, constants.None)},
		{"Party Size", strconv.Itoa(reservation.PartySize)},
		{"Date", reservation.Date},
		{"Time", reservation.Time},
		{"Status", string(reservation.Status)},
		{"Source", valueOr(reservation.Source, constants.NotAvailable)},
		{"Notes", valueOr(reservation.Notes, constants.None)},
	}

	if reservation.CancellationReason != "" {
		rows = append(rows, detailRow{"Cancellation Reason", reservation.CancellationReason})
	}

	return rows
}

func newReservationCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel RESERVATION_ID",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			reservation, err := client.Reservations().Cancel(cmd.Context(), args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to cancel reservation: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), reservation,
				fmt.Sprintf("Reservation '%s' cancelled", reservation.ID))
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")

	return cmd
}

func newReservationRescheduleCommand() *cobra.Command {
	request := &platform.ReservationRescheduleRequest{}

	cmd := &cobra.Command{
		Use:   "reschedule RESERVATION_ID",
		Short: "Move a reservation to a new date and time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			reservation, err := client.Reservations().Reschedule(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to reschedule reservation: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), reservation, reservationRows(reservation))
		},
	}

	cmd.Flags().StringVar(&request.Date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&request.Time, "time", "", "new time (HH:MM)")
	cmd.Flags().StringVar(&request.Reason, "reason", "", "reason for the change")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newReservationStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status RESERVATION_ID STATUS",
		Short: "Set the status of a reservation",
		Long:  "Set the status of a reservation: pending, confirmed, seated, completed, cancelled or no_show",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			reservation, err := client.Reservations().UpdateStatus(cmd.Context(), args[0], platform.ReservationStatus(args[1]))
			if err != nil {
				return fmt.Errorf("failed to update reservation status: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), reservation,
				fmt.Sprintf("Reservation '%s' is now %s", reservation.ID, reservation.Status))
		},
	}
}

func newReservationAvailabilityCommand() *cobra.Command {
	query := &platform.AvailabilityQuery{}

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check table availability for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			availability, err := client.Reservations().CheckAvailability(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to check availability: %w", err)
			}

			if len(availability.Slots) == 0 && !isStructuredOutput() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No slots found for %s\n", availability.Date)

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), availability, func(table *tablewriter.Table) {
				table.Header("Time", "Available", "Capacity")

				for _, slot := range availability.Slots {
					_ = table.Append(slot.Time, formatBool(slot.Available), strconv.Itoa(slot.Capacity))
				}
			})
		},
	}

	cmd.Flags().StringVar(&query.ProjectID, "project", "", "project ID")
	cmd.Flags().StringVar(&query.Date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&query.PartySize, "party-size", 2, "number of guests")
	cmd.Flags().StringVar(&query.Time, "time", "", "preferred time (HH:MM)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
