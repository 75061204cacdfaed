package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fieldglass/ballistics/internal/applog"
	"github.com/fieldglass/ballistics/internal/profile"
	"github.com/fieldglass/ballistics/solver"
)

type windTableFlags struct {
	profileName string
	distanceYd  float64
	windDir     float64
	speeds      []float64
}

func newWindTableCmd(verbose *bool) *cobra.Command {
	flags := &windTableFlags{}

	cmd := &cobra.Command{
		Use:   "wind-table",
		Short: "Print windage across a range of wind speeds at a fixed distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindTable(applog.New(levelFor(*verbose)), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.profileName, "profile", "p", "", "profile name under ~/.dopecli")
	cmd.Flags().Float64VarP(&flags.distanceYd, "distance", "d", 0, "target distance (yd), required")
	cmd.Flags().Float64Var(&flags.windDir, "wind-dir", 90, "wind direction, degrees")
	cmd.Flags().Float64SliceVar(&flags.speeds, "speeds", []float64{0, 5, 10, 15, 20}, "wind speeds to tabulate (mph)")
	cmd.MarkFlagRequired("distance")

	return cmd
}

func runWindTable(log *logrus.Logger, flags *windTableFlags) error {
	if flags.profileName == "" {
		return fmt.Errorf("dopecli: --profile is required")
	}

	p, err := profile.Load(flags.profileName)
	if err != nil {
		return err
	}

	rifle, ammo, atmo, err := p.ToSolverInputs()
	if err != nil {
		return err
	}

	log.WithField("distance_yd", flags.distanceYd).Info("generating wind table")

	entries, err := solver.GenerateWindTable(rifle, ammo, flags.distanceYd, atmo, solver.WindTableOptions{
		WindSpeedsMph:    flags.speeds,
		WindDirectionDeg: flags.windDir,
	})
	if err != nil {
		if solverErr, ok := err.(*solver.Error); ok {
			log.WithField("kind", solverErr.Kind.String()).Error("wind table failed")
		}
		return err
	}

	fmt.Printf("%10s %10s %10s\n", "mph", "drift(in)", "drift(MIL)")
	for _, e := range entries {
		fmt.Printf("%10.1f %10.2f %10.3f\n", e.WindSpeedMph, e.WindDriftIn, e.WindageMIL)
	}
	return nil
}
