// Package profile loads a named rifle/ammo profile from
// ~/.dopecli/<name>.yaml, so a shooter doesn't have to re-type zero
// distance, twist rate, and BC on every invocation.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fieldglass/ballistics/drag"
	"github.com/fieldglass/ballistics/solver"
)

// Profile is the on-disk shape of a saved rifle/ammo/atmosphere
// configuration.
type Profile struct {
	Rifle struct {
		ZeroDistanceYd   float64 `mapstructure:"zero_distance_yd"`
		SightHeightIn    float64 `mapstructure:"sight_height_in"`
		TwistRate        string  `mapstructure:"twist_rate"`
		BarrelLengthIn   float64 `mapstructure:"barrel_length_in"`
		Caliber          string  `mapstructure:"caliber"`
		IsRightHandTwist bool    `mapstructure:"right_hand_twist"`
	} `mapstructure:"rifle"`

	Ammo struct {
		BulletWeightGrains   float64 `mapstructure:"bullet_weight_grains"`
		BallisticCoefficient float64 `mapstructure:"ballistic_coefficient"`
		DragModel            string  `mapstructure:"drag_model"`
		MuzzleVelocityFps    float64 `mapstructure:"muzzle_velocity_fps"`
	} `mapstructure:"ammo"`

	Atmosphere struct {
		TemperatureF float64 `mapstructure:"temperature_f"`
		PressureInHg float64 `mapstructure:"pressure_inhg"`
		AltitudeFt   float64 `mapstructure:"altitude_ft"`
		HumidityPct  float64 `mapstructure:"humidity_pct"`
	} `mapstructure:"atmosphere"`
}

// Dir returns ~/.dopecli, creating it if it doesn't exist.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("profile: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".dopecli")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("profile: cannot create profile directory %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads the named profile file (without extension) from ~/.dopecli.
func Load(name string) (Profile, error) {
	dir, err := Dir()
	if err != nil {
		return Profile{}, err
	}

	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		return Profile{}, fmt.Errorf("profile: cannot read profile %q: %w", name, err)
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return Profile{}, fmt.Errorf("profile: cannot parse profile %q: %w", name, err)
	}
	return p, nil
}

func parseDragModel(name string) (drag.Model, error) {
	switch name {
	case "G1", "g1", "":
		return drag.G1, nil
	case "G2", "g2":
		return drag.G2, nil
	case "G5", "g5":
		return drag.G5, nil
	case "G6", "g6":
		return drag.G6, nil
	case "G7", "g7":
		return drag.G7, nil
	case "G8", "g8":
		return drag.G8, nil
	case "GI", "gi":
		return drag.GI, nil
	case "GL", "gl":
		return drag.GL, nil
	default:
		return drag.G1, fmt.Errorf("profile: unknown drag model %q", name)
	}
}

// ToSolverInputs converts a loaded Profile into the solver package's
// input types.
func (p Profile) ToSolverInputs() (solver.RifleConfig, solver.AmmoConfig, solver.AtmosphericConditions, error) {
	model, err := parseDragModel(p.Ammo.DragModel)
	if err != nil {
		return solver.RifleConfig{}, solver.AmmoConfig{}, solver.AtmosphericConditions{}, err
	}

	rifle := solver.RifleConfig{
		ZeroDistanceYd:   p.Rifle.ZeroDistanceYd,
		SightHeightIn:    p.Rifle.SightHeightIn,
		TwistRate:        p.Rifle.TwistRate,
		BarrelLengthIn:   p.Rifle.BarrelLengthIn,
		Caliber:          p.Rifle.Caliber,
		IsRightHandTwist: p.Rifle.IsRightHandTwist,
	}
	ammo := solver.AmmoConfig{
		BulletWeightGrains:   p.Ammo.BulletWeightGrains,
		BallisticCoefficient: p.Ammo.BallisticCoefficient,
		DragModel:            model,
		MuzzleVelocityFps:    p.Ammo.MuzzleVelocityFps,
	}
	atmo := solver.AtmosphericConditions{
		TemperatureF: p.Atmosphere.TemperatureF,
		PressureInHg: p.Atmosphere.PressureInHg,
		AltitudeFt:   p.Atmosphere.AltitudeFt,
		HasHumidity:  p.Atmosphere.HumidityPct > 0,
		HumidityPct:  p.Atmosphere.HumidityPct,
	}
	return rifle, ammo, atmo, nil
}
