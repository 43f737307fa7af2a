package writefiles

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/numlab/goheat/CD1D"
	"github.com/numlab/goheat/utils"
)

// WriteSnapshots emits one delimited file per time level, named
// <prefix>_t_<k>.csv with header "x,Temperature", nodes in ascending
// index order. The prefix directory is created if needed.
func WriteSnapshots(prefix string, g *CD1D.Grid1D, history []utils.Vector) (err error) {
	if err = os.MkdirAll(filepath.Dir(prefix), 0755); err != nil {
		return fmt.Errorf("unable to create results directory: %v", err)
	}
	for k, T := range history {
		if err = writeLevel(fmt.Sprintf("%s_t_%d.csv", prefix, k), g, T); err != nil {
			return
		}
	}
	return
}

func writeLevel(fileName string, g *CD1D.Grid1D, T utils.Vector) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create output file: %v", err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "x,Temperature\n")
	for i := 0; i < g.N; i++ {
		fmt.Fprintf(w, "%g,%g\n", g.X.AtVec(i), T.AtVec(i))
	}
	return w.Flush()
}

// WriteAggregate emits a single table spanning all time levels, named
// <prefix>_all_timesteps.csv with header "t,x,Temperature", ascending
// node index within a level and ascending time level across.
func WriteAggregate(prefix string, g *CD1D.Grid1D, history []utils.Vector, dt float64) (err error) {
	var (
		file *os.File
	)
	if err = os.MkdirAll(filepath.Dir(prefix), 0755); err != nil {
		return fmt.Errorf("unable to create results directory: %v", err)
	}
	if file, err = os.Create(prefix + "_all_timesteps.csv"); err != nil {
		return fmt.Errorf("unable to create output file: %v", err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "t,x,Temperature\n")
	for k, T := range history {
		t := float64(k) * dt
		for i := 0; i < g.N; i++ {
			fmt.Fprintf(w, "%g,%g,%g\n", t, g.X.AtVec(i), T.AtVec(i))
		}
	}
	return w.Flush()
}
