package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xraydb/xraydb"
)

func printResult(v interface{}) {
	if cfg.OutputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fail(err)
		}
		return
	}
	fmt.Printf("%+v\n", v)
}

var elementCmd = &cobra.Command{
	Use:   "element [id]",
	Short: "Look up an element by symbol, name, or atomic number",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		el, err := xraydb.Lookup(args[0])
		if err != nil {
			fail(err)
		}
		printResult(el)
	},
}

var edgeCmd = &cobra.Command{
	Use:   "edges [element]",
	Short: "List absorption edges for an element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		edges, err := xraydb.Edges(args[0])
		if err != nil {
			fail(err)
		}
		printResult(edges)
	},
}

var lineCmd = &cobra.Command{
	Use:   "lines [element]",
	Short: "List emission lines for an element",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lines, err := xraydb.Lines(args[0], xraydb.LinesQuery{})
		if err != nil {
			fail(err)
		}
		printResult(lines)
	},
}

var muKindFlag string

func parseMuKind(s string) (xraydb.MuKind, error) {
	switch strings.ToLower(s) {
	case "photo":
		return xraydb.Photo, nil
	case "coherent":
		return xraydb.Coherent, nil
	case "incoherent":
		return xraydb.Incoherent, nil
	case "total", "":
		return xraydb.Total, nil
	default:
		return 0, fmt.Errorf("unknown mu kind %q (want photo, coherent, incoherent, or total)", s)
	}
}

var muCmd = &cobra.Command{
	Use:   "mu [element] [energy_eV...]",
	Short: "Elam mass-attenuation coefficient (cm^2/g)",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := parseMuKind(muKindFlag)
		if err != nil {
			fail(err)
		}
		energies, err := parseFloats(args[1:])
		if err != nil {
			fail(err)
		}
		mu, err := xraydb.MuElam(args[0], energies, kind)
		if err != nil {
			fail(err)
		}
		printResult(mu)
	},
}

var (
	materialDensityFlag float64
)

var materialCmd = &cobra.Command{
	Use:   "material [name_or_formula] [energy_eV...]",
	Short: "Mass-attenuation coefficient (1/cm) for a registry material or formula",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := parseMuKind(muKindFlag)
		if err != nil {
			fail(err)
		}
		energies, err := parseFloats(args[1:])
		if err != nil {
			fail(err)
		}
		mu, err := xraydb.MaterialMuNamed(args[0], materialDensityFlag, energies, kind)
		if err != nil {
			fail(err)
		}
		printResult(mu)
	},
}

var (
	ionchamberVolts       float64
	ionchamberLengthCM    float64
	ionchamberSensitivity float64
	ionchamberWithCompton bool
	ionchamberBothCarrier bool
)

var ionchamberCmd = &cobra.Command{
	Use:   "ionchamber [energy_eV] [gas=fraction...]",
	Short: "Invert an ion chamber voltage reading into incident photon flux",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		energy, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fail(err)
		}
		gases, err := parseGasFractions(args[1:])
		if err != nil {
			fail(err)
		}
		fluxes, err := xraydb.IonChamber(gases, ionchamberVolts, ionchamberLengthCM, energy, ionchamberSensitivity, ionchamberWithCompton, ionchamberBothCarrier)
		if err != nil {
			fail(err)
		}
		printResult(fluxes)
	},
}

var (
	darwinLatticeA float64
	darwinM        int
)

var darwinCmd = &cobra.Command{
	Use:   "darwin [crystal] [h] [k] [l] [energy_eV]",
	Short: "Darwin width of a diamond-structure crystal reflection",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := strconv.Atoi(args[1])
		if err != nil {
			fail(err)
		}
		k, err := strconv.Atoi(args[2])
		if err != nil {
			fail(err)
		}
		l, err := strconv.Atoi(args[3])
		if err != nil {
			fail(err)
		}
		energy, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			fail(err)
		}
		dw, err := xraydb.DarwinWidth(energy, args[0], h, k, l, darwinLatticeA, xraydb.PolarizationS, false, false, darwinM)
		if err != nil {
			fail(err)
		}
		if dw == nil {
			logrus.WithField("crystal", args[0]).Info("Bragg condition not satisfied at this energy")
			return
		}
		printResult(dw)
	},
}

func init() {
	muCmd.Flags().StringVar(&muKindFlag, "kind", "total", "photo, coherent, incoherent, or total")
	materialCmd.Flags().StringVar(&muKindFlag, "kind", "total", "photo, coherent, incoherent, or total")
	materialCmd.Flags().Float64Var(&materialDensityFlag, "density", 0, "density in g/cm^3 (overrides the registry default)")

	ionchamberCmd.Flags().Float64Var(&ionchamberVolts, "volts", 1.0, "measured voltage")
	ionchamberCmd.Flags().Float64Var(&ionchamberLengthCM, "length", 10.0, "chamber length in cm")
	ionchamberCmd.Flags().Float64Var(&ionchamberSensitivity, "sensitivity", 1e-6, "current sensitivity in A/V")
	ionchamberCmd.Flags().BoolVar(&ionchamberWithCompton, "with-compton", true, "include Compton electron energy contribution")
	ionchamberCmd.Flags().BoolVar(&ionchamberBothCarrier, "both-carriers", true, "count both electron and ion carriers")

	darwinCmd.Flags().Float64Var(&darwinLatticeA, "lattice", 0, "lattice constant override in Angstrom")
	darwinCmd.Flags().IntVar(&darwinM, "order", 1, "reflection order")
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid energy %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseGasFractions(args []string) ([]xraydb.GasFraction, error) {
	out := make([]xraydb.GasFraction, len(args))
	for i, a := range args {
		parts := strings.SplitN(a, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid gas=fraction entry %q", a)
		}
		frac, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction in %q: %w", a, err)
		}
		out[i] = xraydb.GasFraction{Name: parts[0], Fraction: frac}
	}
	return out, nil
}
