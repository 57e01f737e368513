package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list catalog products",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category"},
			&cli.StringFlag{Name: "subcategory"},
		},
		Action: withApp(func(_ context.Context, cmd *cli.Command, a *app) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tSIZES\tCOLORS")

			for _, p := range a.catalog.List(cmd.String("category"), cmd.String("subcategory")) {
				price := p.EffectivePrice().StringFixed(2)
				if p.OnSale && p.SalePrice != nil {
					price += " (was " + p.Price.StringFixed(2) + ")"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, price, p.Stock,
					strings.Join(p.Sizes, ","), strings.Join(p.Colors, ","))
			}

			return w.Flush()
		}),
	}
}
