package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravoids/internal/planet"
	"github.com/vovakirdan/gravoids/internal/terrain"
)

var infoCmd = &cobra.Command{
	Use:   "info <galaxy>",
	Short: "Summarize a decoded planet",
	Long: `Decodes one planet from a galaxy file and prints its header and
section counts.

Examples:
  gravoids info galaxy.bin
  gravoids info galaxy.bin --planet 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInfo,
}

var (
	infoTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	infoLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	infoValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

func runInfo(cmd *cobra.Command, args []string) {
	p, _, err := loadPlanet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	wrap := "no"
	if p.Wrap {
		wrap = "yes"
	}
	liveFuels := 0
	for _, f := range p.Fuels {
		if f.Alive {
			liveFuels++
		}
	}

	fmt.Println(infoTitleStyle.Render(fmt.Sprintf("Planet %d", flagPlanet)))
	fmt.Println()
	printRow("World", fmt.Sprintf("%dx%d  wrap: %s", p.Width, p.Height, wrap))
	printRow("Ship start", fmt.Sprintf("(%d, %d)", p.XStart, p.YStart))
	printRow("Gravity", fmt.Sprintf("(%d, %d)", p.GravX, p.GravY))
	printRow("Shoot chance", fmt.Sprintf("%d%%", p.ShootChance))
	printRow("Bonus", fmt.Sprintf("%d", p.Bonus))
	fmt.Println()
	printRow("Walls", fmt.Sprintf("%d  (%s)", len(p.Walls), wallKindCounts(p)))
	printRow("White walls", fmt.Sprintf("%d", len(p.Index.Whites)))
	printRow("Junctions", fmt.Sprintf("%d", len(p.Index.Junctions)))
	printRow("Bunkers", fmt.Sprintf("%d", len(p.Bunkers)))
	printRow("Fuel cells", fmt.Sprintf("%d live", liveFuels))
	printRow("Craters", fmt.Sprintf("%d initial, %d slots", p.CraterCount, len(p.Craters)))
}

func printRow(label, value string) {
	fmt.Printf("  %s  %s\n",
		infoLabelStyle.Render(fmt.Sprintf("%-13s", label)),
		infoValueStyle.Render(value))
}

// wallKindCounts renders per-kind wall counts like "10 normal, 2 bounce".
func wallKindCounts(p *planet.Planet) string {
	var parts []string
	for kind := terrain.LineKind(0); kind < terrain.NumKinds; kind++ {
		n := len(p.Index.ByKind[kind])
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
