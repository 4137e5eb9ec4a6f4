package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"blueprint/internal/bodygraph"
	"blueprint/internal/solar"
	"blueprint/internal/wheel"
)

func (a *app) designTimeCmd() *cobra.Command {
	var birth, format string
	cmd := &cobra.Command{
		Use:     "design-time",
		Short:   "Print the design instant for a birth instant",
		Example: `  blueprint design-time --birth 1990-06-15T08:00:00-04:00`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := time.Parse(time.RFC3339, birth)
			if err != nil {
				return fmt.Errorf("birth: %w", err)
			}
			off, err := solar.DesignInstant(at)
			if err != nil {
				return err
			}
			outFormat, err := a.outputFormat(format)
			if err != nil {
				return err
			}
			if outFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), off)
			}
			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Row("Birth", off.Birth.Format(time.RFC3339)))
			fmt.Fprintln(out, s.Row("Design", off.Design.Format(time.RFC3339)))
			fmt.Fprintln(out, s.Row("Offset", fmt.Sprintf("%.4f days", off.Days)))
			fmt.Fprintln(out, s.Row("Solar motion", fmt.Sprintf("%.10f °/day", off.Motion)))
			return nil
		},
	}
	cmd.Flags().StringVar(&birth, "birth", "", "Birth instant, RFC 3339 (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or text (default from config)")
	_ = cmd.MarkFlagRequired("birth")
	return cmd
}

func (a *app) gateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate <longitude>",
		Short: "Print the gate, line and sign position of an ecliptic longitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("longitude %q: %w", args[0], err)
			}
			pos, err := wheel.Locate(lon)
			if err != nil {
				return err
			}
			center, err := bodygraph.CenterOf(pos.Gate)
			if err != nil {
				return err
			}
			s := a.styles
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Title.Render(pos.Notation()+" "+wheel.GateName(pos.Gate)))
			fmt.Fprintln(out, s.Row("Longitude", fmt.Sprintf("%.4f°", pos.Longitude)))
			fmt.Fprintln(out, s.Row("Sign", fmt.Sprintf("%s %d°%02d'", pos.Sign, pos.DegreesInSign, pos.MinutesInSign)))
			fmt.Fprintln(out, s.Row("Center", center.String()))
			mid, err := wheel.Midpoint(pos.Gate, pos.Line)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s.Row("Line midpoint", fmt.Sprintf("%.4f°", mid)))
			return nil
		},
	}
}

func (a *app) channelsCmd() *cobra.Command {
	var center string
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channel table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := bodygraph.Channels[:]
			if center != "" {
				c, err := bodygraph.ParseCenter(center)
				if err != nil {
					return err
				}
				list = bodygraph.ChannelsOf(c)
			}
			s := a.styles
			out := cmd.OutOrStdout()
			for _, ch := range list {
				fmt.Fprintln(out, s.Row(ch.Key(), fmt.Sprintf("%-16s %s - %s", ch.Name, ch.Centers[0], ch.Centers[1])))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&center, "center", "", "Only channels touching this center")
	return cmd
}

func (a *app) gatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the gates in wheel order with their spans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.styles
			out := cmd.OutOrStdout()
			for _, gate := range wheel.Order() {
				start, width, err := wheel.Span(gate)
				if err != nil {
					return err
				}
				center, err := bodygraph.CenterOf(gate)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s.Row(strconv.Itoa(gate), fmt.Sprintf("%-26s %8.4f° +%.4f°  %s",
					wheel.GateName(gate), start, width, center)))
			}
			return nil
		},
	}
}
