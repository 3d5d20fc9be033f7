package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var zoneRenderer = &OutputRenderer[alldressed.Zone]{
	Columns: []column[alldressed.Zone]{
		{Header: "ID", Value: func(z *alldressed.Zone) string { return z.ID() }},
		{Header: "Name", Value: func(z *alldressed.Zone) string { return z.Name() }},
	},
	NoItemsMsg: "No zones found.",
}

var scheduleRenderer = &OutputRenderer[alldressed.DeliverySchedule]{
	Columns: []column[alldressed.DeliverySchedule]{
		{Header: "ID", Value: func(s *alldressed.DeliverySchedule) string { return s.ID() }},
		{Header: "Day", Value: func(s *alldressed.DeliverySchedule) string { return s.Day() }},
		{Header: "Name", Value: func(s *alldressed.DeliverySchedule) string { return s.String("name") }},
	},
	NoItemsMsg: "No delivery schedules found.",
}

var frequencyRenderer = &OutputRenderer[alldressed.DeliveryFrequency]{
	Columns: []column[alldressed.DeliveryFrequency]{
		{Header: "Days", Value: func(f *alldressed.DeliveryFrequency) string { return formatInt(f.Days()) }},
	},
	NoItemsMsg: "No delivery frequencies found.",
}

// NewZonesCommand creates the zones command group
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "Inspect delivery zones",
		Long:    "List delivery zones and find the zone serving a postal code",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List delivery zones",
		Long:  "List the delivery zones of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			zones, err := client.Zones().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list zones: %w", err)
			}

			return zoneRenderer.Render(cmd, zones)
		},
	}
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POSTCODE",
		Short: "Get the zone of a postal code",
		Long:  "Display the delivery zone serving a postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			zone, err := client.Zones().ForPostcode(args[0]).First(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get zone: %w", err)
			}

			if zone == nil {
				return fmt.Errorf("%w: %s", alldressed.ErrZoneNotFound, args[0])
			}

			return zoneRenderer.RenderOne(cmd, zone)
		},
	}
}

// NewSchedulesCommand creates the schedules command group
func NewSchedulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Inspect delivery schedules",
		Long:    "List the delivery schedules serving a postal code",
	}

	cmd.AddCommand(newSchedulesListCommand())

	return cmd
}

func newSchedulesListCommand() *cobra.Command {
	var (
		postcode  string
		available bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivery schedules",
		Long:  "List the delivery schedules of the zone serving a postal code",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.DeliverySchedules().ForPostcode(postcode)
			if available {
				builder = builder.Available()
			}

			schedules, err := builder.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list delivery schedules: %w", err)
			}

			return scheduleRenderer.Render(cmd, schedules)
		},
	}

	cmd.Flags().StringVar(&postcode, "postcode", "", "postal code of the delivery address")
	cmd.Flags().BoolVar(&available, "available", false, "only schedules open for new deliveries")
	_ = cmd.MarkFlagRequired("postcode")

	return cmd
}

// NewFrequenciesCommand creates the frequencies command group
func NewFrequenciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "frequencies",
		Aliases: []string{"frequency"},
		Short:   "Inspect delivery frequencies",
		Long:    "List the delivery frequencies offered by a schedule",
	}

	cmd.AddCommand(newFrequenciesListCommand())

	return cmd
}

func newFrequenciesListCommand() *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivery frequencies",
		Long:  "List the delivery frequencies offered by a delivery schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			frequencies, err := client.DeliveryFrequencies().ForSchedule(schedule).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list delivery frequencies: %w", err)
			}

			return frequencyRenderer.Render(cmd, frequencies)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "delivery schedule id")
	_ = cmd.MarkFlagRequired("schedule")

	return cmd
}
