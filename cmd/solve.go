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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/InputParameters"
	"github.com/numlab/goheat/model_problems/Heat1D"
	"github.com/numlab/goheat/writefiles"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a single heat conduction simulation and write CSV results",
	Long: `
Advances the hot pulse initial condition on a unit rod and writes one
CSV snapshot per time level plus an aggregate table,

goheat solve -k 100 -a 0.01 -t 0.002 -T 1.0`,
	Run: func(cmd *cobra.Command, args []string) {
		mh := &ModelHeat{}
		mh.N, _ = cmd.Flags().GetInt("nodes")
		mh.Alpha, _ = cmd.Flags().GetFloat64("alpha")
		mh.Dt, _ = cmd.Flags().GetFloat64("dt")
		mh.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		mh.Length, _ = cmd.Flags().GetFloat64("length")
		mh.OutputPrefix, _ = cmd.Flags().GetString("output")
		mh.ICFile, _ = cmd.Flags().GetString("inputParametersFile")
		mh.Profile, _ = cmd.Flags().GetBool("cpuprofile")
		if len(mh.ICFile) != 0 {
			applyInputFile(mh)
		}
		if err := RunSolve(mh); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().IntP("nodes", "k", 100, "number of interior spatial nodes")
	SolveCmd.Flags().Float64P("alpha", "a", 0.01, "thermal diffusivity")
	SolveCmd.Flags().Float64P("dt", "t", 0.01, "time step size")
	SolveCmd.Flags().Float64P("finalTime", "T", 1.0, "total simulation time")
	SolveCmd.Flags().Float64P("length", "L", 1.0, "domain length")
	SolveCmd.Flags().StringP("output", "o", "results/temperature", "output file prefix")
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file overriding the parameter flags")
	SolveCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
}

type ModelHeat struct {
	N                    int
	Alpha, Dt, FinalTime float64
	Length               float64
	OutputPrefix, ICFile string
	Profile              bool
}

func applyInputFile(mh *ModelHeat) {
	var (
		err  error
		data []byte
	)
	if data, err = ioutil.ReadFile(mh.ICFile); err != nil {
		panic(err)
	}
	ip := &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	if ip.NodeCount != 0 {
		mh.N = ip.NodeCount
	}
	if ip.Alpha != 0 {
		mh.Alpha = ip.Alpha
	}
	if ip.Dt != 0 {
		mh.Dt = ip.Dt
	}
	if ip.FinalTime != 0 {
		mh.FinalTime = ip.FinalTime
	}
	if ip.DomainLength != 0 {
		mh.Length = ip.DomainLength
	}
	if len(ip.OutputPrefix) != 0 {
		mh.OutputPrefix = ip.OutputPrefix
	}
}

func RunSolve(mh *ModelHeat) (err error) {
	if mh.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		g *CD1D.Grid1D
		c *Heat1D.Heat1D
	)
	if g, err = CD1D.NewGrid1D(mh.Length, mh.N); err != nil {
		return
	}
	if c, err = Heat1D.NewHeat1D(mh.Alpha, mh.Dt, mh.FinalTime, g); err != nil {
		return
	}
	PrintBanner(mh, g, c)

	logMod := c.NSteps / 10
	if logMod == 0 {
		logMod = 1
	}
	if err = c.Run(func(step, nsteps int) {
		if step%logMod == 0 || step == nsteps {
			fmt.Printf("Time step %d/%d completed.\n", step, nsteps)
		}
	}); err != nil {
		return
	}

	fmt.Printf("\nWriting results to files...\n")
	if err = writefiles.WriteSnapshots(mh.OutputPrefix, g, c.History()); err != nil {
		return
	}
	if err = writefiles.WriteAggregate(mh.OutputPrefix, g, c.History(), c.Dt); err != nil {
		return
	}
	fmt.Printf("Simulation completed successfully.\n")
	return
}

func PrintBanner(mh *ModelHeat, g *CD1D.Grid1D, c *Heat1D.Heat1D) {
	fmt.Printf("--- 1D Heat Conduction Simulation ---\n")
	fmt.Printf("Number of spatial nodes: %d\n", g.N)
	fmt.Printf("Thermal diffusivity (alpha): %v\n", mh.Alpha)
	fmt.Printf("Spatial step (dx): %v\n", g.Dx)
	fmt.Printf("Time step (dt): %v\n", mh.Dt)
	fmt.Printf("Total time: %v\n", mh.FinalTime)
	fmt.Printf("Number of time steps: %d\n", c.NSteps)
	fmt.Printf("Domain length (L): %v\n", g.Length)
	fmt.Printf("Output file prefix: %s\n", mh.OutputPrefix)
	courant := CourantNumber(mh.Alpha, mh.Dt, g.Dx)
	fmt.Printf("Courant number (alpha * dt / dx^2): %v\n", courant)
	if courant > 0.5 {
		fmt.Printf("Note: Courant number > 0.5. The implicit scheme remains stable, accuracy degrades for large values.\n")
	}
}

func CourantNumber(alpha, dt, dx float64) float64 {
	return alpha * dt / (dx * dx)
}
