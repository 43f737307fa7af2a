package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title        string  `yaml:"Title"`
	Alpha        float64 `yaml:"Alpha"`
	Dt           float64 `yaml:"Dt"`
	FinalTime    float64 `yaml:"FinalTime"`
	NodeCount    int     `yaml:"NodeCount"`
	DomainLength float64 `yaml:"DomainLength"`
	OutputPrefix string  `yaml:"OutputPrefix"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Alpha (thermal diffusivity)\n", ip.Alpha)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= NodeCount\n", ip.NodeCount)
	fmt.Printf("%8.5f\t\t= DomainLength\n", ip.DomainLength)
	fmt.Printf("[%s]\t= OutputPrefix\n", ip.OutputPrefix)
}
