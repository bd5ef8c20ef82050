// qbersweep runs seeded BB84 simulations for each entry in the cartesian
// product of a collection of channel parameters, e.g. fiber length and
// depolarization probability, and outputs a CSV comparing the observed error
// rates against the closed-form QBER estimate. Scenario YAML files and the
// built-in presets can be swept instead of raw parameter grids.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/template"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/qkdlab/bb84sim/bb84"
	"github.com/qkdlab/bb84sim/bb84/optics"
)

var (
	rounds = flag.Int("rounds", 4096, "Photons to send per simulation run.")
	trials = flag.Int("trials", 8, "Seeded runs to average per parameter combination.")
	seed   = flag.Int64("seed", 42, "Base RNG seed; trial i runs with seed+i.")

	scenarioFile = flag.String("scenarios", "", "Path to a YAML scenario file to sweep instead of the parameter grid.")
	presetNames  = flag.StringSlice("presets", nil, "Built-in presets to sweep instead of the parameter grid.")

	fiberKm      = flag.Float64Slice("fiberKm", []float64{25}, "Fiber lengths to sweep, in km.")
	wavelengthNm = flag.Float64Slice("wavelengthNm", []float64{1550}, "Carrier wavelengths to sweep, in nm.")
	depol        = flag.Float64Slice("depol", []float64{0.02}, "Depolarization probabilities to sweep.")
	phaseDamp    = flag.Float64Slice("phaseDamp", []float64{0.01}, "Phase damping probabilities to sweep.")
	ampDamp      = flag.Float64Slice("ampDamp", []float64{0.01}, "Amplitude damping probabilities to sweep.")
	thermal      = flag.Float64Slice("thermal", []float64{0.001}, "Thermal noise probabilities to sweep.")
	pmd          = flag.Float64Slice("pmd", []float64{0.1}, "PMD coefficients to sweep, in ps/sqrt(km).")
)

var columns = []string{
	"Name", "FiberKm", "WavelengthNm", "Depol", "PhaseDamp", "AmpDamp",
	"Thermal", "PMD", "PredictedQBER", "MeanQBER", "StdDevQBER",
	"MeanKeyBits", "LossRate", "Verdict",
}

// An Experiment packages together the inputs and averaged results of
// sweeping a single parameter combination, for easy formatting.
type Experiment struct {
	Name         string
	FiberKm      float64
	WavelengthNm float64
	Depol        float64
	PhaseDamp    float64
	AmpDamp      float64
	Thermal      float64
	PMD          float64

	PredictedQBER float64
	MeanQBER      float64
	StdDevQBER    float64
	MeanKeyBits   float64
	LossRate      float64
	Verdict       bb84.Verdict
}

func main() {
	flag.Parse()
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	exps, err := experiments()
	if err != nil {
		logger.Fatal("assembling parameter sweep", zap.Error(err))
	}

	fmt.Println(strings.Join(columns, ", "))
	tmpl := template.Must(template.New("line").Parse(lineTmpl()))
	for _, exp := range exps {
		if err := sweep(&exp); err != nil {
			logger.Error("sweeping combination",
				zap.String("name", exp.Name), zap.Error(err))
			continue
		}
		if err := tmpl.Execute(os.Stdout, exp); err != nil {
			logger.Fatal("filling in line template", zap.Error(err))
		}
	}
}

// experiments assembles the list of parameter combinations to sweep: a
// scenario file or preset list when given, otherwise the cartesian product
// of the grid flags.
func experiments() ([]Experiment, error) {
	var exps []Experiment
	if *scenarioFile != "" {
		scenarios, err := optics.LoadScenarioFile(*scenarioFile)
		if err != nil {
			return nil, err
		}
		for _, s := range scenarios {
			exps = append(exps, fromParams(s.Name, s.Params))
		}
	}
	for _, name := range *presetNames {
		p, err := optics.Preset(name)
		if err != nil {
			return nil, err
		}
		exps = append(exps, fromParams(name, p))
	}
	if len(exps) > 0 {
		return exps, nil
	}

	grid := [][]float64{*fiberKm, *wavelengthNm, *depol, *phaseDamp, *ampDamp, *thermal, *pmd}
	applyCartesian(grid, func(vals []float64) {
		p := optics.NoiseParameters{
			FiberLengthKm:        vals[0],
			WavelengthNm:         vals[1],
			DepolarizationProb:   vals[2],
			PhaseDampingProb:     vals[3],
			AmplitudeDampingProb: vals[4],
			ThermalNoiseProb:     vals[5],
			PMDCoefficient:       vals[6],
		}
		exps = append(exps, fromParams("grid", p))
	})
	return exps, nil
}

func fromParams(name string, p optics.NoiseParameters) Experiment {
	return Experiment{
		Name:         name,
		FiberKm:      p.FiberLengthKm,
		WavelengthNm: p.WavelengthNm,
		Depol:        p.DepolarizationProb,
		PhaseDamp:    p.PhaseDampingProb,
		AmpDamp:      p.AmplitudeDampingProb,
		Thermal:      p.ThermalNoiseProb,
		PMD:          p.PMDCoefficient,
	}
}

func (e *Experiment) params() optics.NoiseParameters {
	return optics.NoiseParameters{
		FiberLengthKm:        e.FiberKm,
		WavelengthNm:         e.WavelengthNm,
		DepolarizationProb:   e.Depol,
		PhaseDampingProb:     e.PhaseDamp,
		AmplitudeDampingProb: e.AmpDamp,
		ThermalNoiseProb:     e.Thermal,
		PMDCoefficient:       e.PMD,
	}
}

// sweep runs the configured number of seeded trials for one combination and
// fills in its averaged results.
func sweep(exp *Experiment) error {
	p := exp.params()
	exp.PredictedQBER = optics.EstimateQBER(p)

	var qbers, keyBits, lossRates []float64
	for i := 0; i < *trials; i++ {
		stats, err := bb84.Run(bb84.RunOpts{
			Rounds: *rounds,
			Noise:  p,
			Rand:   rand.New(rand.NewSource(*seed + int64(i))),
		})
		if err != nil {
			return err
		}
		if stats.QBERValid {
			qbers = append(qbers, stats.QBER)
		}
		keyBits = append(keyBits, float64(stats.MatchedBases))
		lossRates = append(lossRates, float64(stats.Lost)/float64(stats.Rounds))
	}
	exp.MeanKeyBits = stat.Mean(keyBits, nil)
	exp.LossRate = stat.Mean(lossRates, nil)
	if len(qbers) == 0 {
		exp.Verdict = bb84.VerdictAbort
		return nil
	}
	exp.MeanQBER = stat.Mean(qbers, nil)
	exp.StdDevQBER = stat.StdDev(qbers, nil)
	exp.Verdict = bb84.VerdictFor(exp.MeanQBER)
	return nil
}

func lineTmpl() string {
	var els []string
	for _, c := range columns {
		els = append(els, "{{."+c+"}}")
	}
	return strings.Join(els, ", ") + "\n"
}

// applyCartesian invokes f once for every element of the cartesian product
// of the given value slices.
func applyCartesian(grid [][]float64, f func([]float64)) {
	vals := make([]float64, len(grid))
	var rec func(i int)
	rec = func(i int) {
		if i == len(grid) {
			out := make([]float64, len(vals))
			copy(out, vals)
			f(out)
			return
		}
		for _, v := range grid[i] {
			vals[i] = v
			rec(i + 1)
		}
	}
	rec(0)
}
