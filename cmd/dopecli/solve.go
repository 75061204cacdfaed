package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fieldglass/ballistics/internal/applog"
	"github.com/fieldglass/ballistics/internal/profile"
	"github.com/fieldglass/ballistics/solver"
)

type solveFlags struct {
	profileName string
	distanceYd  float64
	angleDeg    float64
	windSpeed   float64
	windDir     float64
	latitudeDeg float64
	hasAzimuth  bool
	azimuthDeg  float64
	showTable   bool
}

func newSolveCmd(verbose *bool) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single shot and print its DOPE card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(applog.New(levelFor(*verbose)), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.profileName, "profile", "p", "", "profile name under ~/.dopecli")
	cmd.Flags().Float64VarP(&flags.distanceYd, "distance", "d", 0, "target distance (yd), required")
	cmd.Flags().Float64Var(&flags.angleDeg, "angle", 0, "shot angle, degrees, positive uphill")
	cmd.Flags().Float64Var(&flags.windSpeed, "wind-speed", 0, "wind speed (mph)")
	cmd.Flags().Float64Var(&flags.windDir, "wind-dir", 0, "wind direction, degrees (0=head, 90=from the right)")
	cmd.Flags().Float64Var(&flags.latitudeDeg, "latitude", 0, "firing latitude, degrees (enables Coriolis)")
	cmd.Flags().BoolVar(&flags.hasAzimuth, "has-azimuth", false, "enable vertical Coriolis using --azimuth")
	cmd.Flags().Float64Var(&flags.azimuthDeg, "azimuth", 0, "firing azimuth, degrees true, 0=north")
	cmd.Flags().BoolVar(&flags.showTable, "table", false, "print the full trajectory table")
	cmd.MarkFlagRequired("distance")

	return cmd
}

func runSolve(log *logrus.Logger, flags *solveFlags) error {
	if flags.profileName == "" {
		return fmt.Errorf("dopecli: --profile is required")
	}

	log.WithField("profile", flags.profileName).Debug("loading profile")
	p, err := profile.Load(flags.profileName)
	if err != nil {
		return err
	}

	rifle, ammo, atmo, err := p.ToSolverInputs()
	if err != nil {
		return err
	}

	shot := solver.ShotParameters{
		DistanceYd:       flags.distanceYd,
		AngleDeg:         flags.angleDeg,
		WindSpeedMph:     flags.windSpeed,
		WindDirectionDeg: flags.windDir,
		HasLatitude:      flags.latitudeDeg != 0,
		LatitudeDeg:      flags.latitudeDeg,
		HasAzimuth:       flags.hasAzimuth,
		AzimuthDeg:       flags.azimuthDeg,
	}

	log.WithFields(logrus.Fields{
		"distance_yd": shot.DistanceYd,
		"wind_mph":    shot.WindSpeedMph,
	}).Info("solving trajectory")

	sol, err := solver.CalculateBallisticSolution(rifle, ammo, shot, atmo, flags.showTable)
	if err != nil {
		if solverErr, ok := err.(*solver.Error); ok {
			log.WithField("kind", solverErr.Kind.String()).Error("solve failed")
		}
		return err
	}

	printSolution(sol)
	return nil
}

func printSolution(sol solver.BallisticSolution) {
	fmt.Printf("DOPE for %.0f yd:\n", sol.Shot.DistanceYd)
	fmt.Printf("  velocity    %8.1f fps\n", sol.VelocityFps)
	fmt.Printf("  energy      %8.1f ft-lb\n", sol.EnergyFtLbf)
	fmt.Printf("  drop        %8.2f in  (%.2f MIL / %.2f MOA elevation)\n", sol.DropIn, sol.ElevationMIL, sol.ElevationMOA)
	fmt.Printf("  windage     %8.2f in  (%.2f MIL / %.2f MOA)\n", sol.WindageIn, sol.WindageMIL, sol.WindageMOA)
	fmt.Printf("  time of flight %5.3f s\n", sol.TimeOfFlightS)
	fmt.Printf("  max ordinate   %6.2f in at %.0f yd\n", sol.MaxOrdinateIn, sol.MaxOrdinateDistanceYd)
	if sol.HasSpinDrift {
		fmt.Printf("  spin drift  %8.2f in (SG=%.2f)\n", sol.SpinDriftIn, sol.StabilityFactor)
	}
	if sol.HasCoriolisHorizontal {
		fmt.Printf("  coriolis    horizontal %6.2f in", sol.CoriolisHorizontalIn)
		if sol.HasCoriolisVertical {
			fmt.Printf(", vertical %6.2f in", sol.CoriolisVerticalIn)
		}
		fmt.Println()
	}

	if len(sol.Trajectory) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("%8s %8s %8s %8s %8s\n", "yd", "vel", "drop", "wind", "time")
	for _, p := range sol.Trajectory {
		fmt.Printf("%8.0f %8.1f %8.2f %8.2f %8.3f\n", p.DistanceYd, p.VelocityFps, p.DropIn, p.WindageIn, p.TimeS)
	}
}
