package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/floatscore/internal/controller"
	"github.com/dotcommander/floatscore/internal/params"
)

// inputFlags maps command-line flag names to form fields. Values stay as text
// so the same parse-or-default policy applies as in the shell.
var inputFlags = []struct {
	flag  string
	field params.Field
	usage string
}{
	{"name", params.Name, "Item name"},
	{"average-cost", params.AverageCost, "Average acquisition price (must be > 0)"},
	{"current-price", params.CurrentPrice, "Current market price"},
	{"fee", params.Fee, "Transaction fee added to the current price"},
	{"float", params.FloatValue, "Wear float in [0,1]"},
	{"price-weight", params.PriceWeight, "Weight of the price discount term"},
	{"float-weight", params.FloatWeight, "Weight of the float quality term"},
	{"alpha", params.Alpha, "Float sensitivity exponent"},
	{"cap", params.Cap, "Clamp bound on the discount"},
	{"rarity", params.Rarity, "Rarity multiplier"},
	{"liquidity", params.Liquidity, "Liquidity factor in [0,1]"},
}

func addInputFlags(cmd *cobra.Command) {
	for _, f := range inputFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// applyInputFlags copies explicitly set flags into the controller. Fields
// not given on the command line keep their defaults or remembered values.
func applyInputFlags(cmd *cobra.Command, ctrl *controller.Controller) {
	for _, f := range inputFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		ctrl.SetField(f.field, v)
	}
}
