/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/model_problems/Heat1D"
	"github.com/numlab/goheat/writefiles"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the same case for a list of diffusivities",
	Long: `
Runs one simulation per diffusivity value into a timestamped results
tree, for side by side comparison of diffusion rates,

goheat sweep --alphas 0.005,0.01,0.02 -k 100`,
	Run: func(cmd *cobra.Command, args []string) {
		alphas, _ := cmd.Flags().GetFloat64Slice("alphas")
		n, _ := cmd.Flags().GetInt("nodes")
		dt, _ := cmd.Flags().GetFloat64("dt")
		finalTime, _ := cmd.Flags().GetFloat64("finalTime")
		length, _ := cmd.Flags().GetFloat64("length")
		resultsDir, _ := cmd.Flags().GetString("resultsDir")
		if err := RunSweep(alphas, n, dt, finalTime, length, resultsDir); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().Float64Slice("alphas", []float64{0.005, 0.01, 0.02}, "diffusivity values to sweep")
	SweepCmd.Flags().IntP("nodes", "k", 100, "number of interior spatial nodes")
	SweepCmd.Flags().Float64P("dt", "t", 0.002, "time step size")
	SweepCmd.Flags().Float64P("finalTime", "T", 1.0, "total simulation time")
	SweepCmd.Flags().Float64P("length", "L", 1.0, "domain length")
	SweepCmd.Flags().StringP("resultsDir", "r", "results", "root directory for sweep output")
}

// RunSweep advances the same configuration once per diffusivity. The
// grid is read only and shared; each run owns its operators, time-step
// system and history, so the runs proceed concurrently.
func RunSweep(alphas []float64, n int, dt, finalTime, length float64, resultsDir string) (err error) {
	if len(alphas) == 0 {
		return fmt.Errorf("invalid configuration: at least one diffusivity is required")
	}
	var (
		g    *CD1D.Grid1D
		sdir = filepath.Join(resultsDir, time.Now().Format("200601021504"))
	)
	if g, err = CD1D.NewGrid1D(length, n); err != nil {
		return
	}
	runs := make([]*Heat1D.Heat1D, len(alphas))
	for i, alpha := range alphas {
		if runs[i], err = Heat1D.NewHeat1D(alpha, dt, finalTime, g); err != nil {
			return
		}
	}
	fmt.Printf("Sweeping %d diffusivities into %s\n", len(alphas), sdir)

	errs := make([]error, len(runs))
	var wg sync.WaitGroup
	for i := range runs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = runs[i].Run()
		}(i)
	}
	wg.Wait()
	for i, runErr := range errs {
		if runErr != nil {
			return fmt.Errorf("alpha = %v: %v", alphas[i], runErr)
		}
	}

	for i, c := range runs {
		prefix := filepath.Join(sdir, fmt.Sprintf("alpha_%g", alphas[i]), "temperature")
		if err = writefiles.WriteSnapshots(prefix, g, c.History()); err != nil {
			return
		}
		if err = writefiles.WriteAggregate(prefix, g, c.History(), dt); err != nil {
			return
		}
		fmt.Printf("alpha = %v completed, final max T = %8.5f\n", alphas[i], c.T.Max())
	}
	return
}
