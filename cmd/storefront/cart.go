package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/urfave/cli/v3"
)

func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "inspect and change the cart",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Action: withApp(listCart),
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "product", Required: true},
					&cli.IntFlag{Name: "quantity", Value: 1},
					&cli.StringFlag{Name: "size"},
					&cli.StringFlag{Name: "color"},
				},
				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app) error {
					id, err := uuid.Parse(cmd.String("product"))
					if err != nil {
						return fmt.Errorf("product[%s] is not valid: %w", cmd.String("product"), err)
					}

					product, ok := a.catalog.Get(id)
					if !ok {
						return fmt.Errorf("product[%s] not found", id)
					}

					item, err := a.store.AddItem(ctx, product, int(cmd.Int("quantity")), optional(cmd, "size"), optional(cmd, "color"))
					if err != nil {
						return err
					}

					fmt.Fprintf(a.out, "added %s: %d in cart (line %s)\n", product.Name, item.Quantity, item.ID)
					return nil
				}),
			},
			{
				Name: "update",
				Flags: []cli.Flag{
					lineFlag(),
					&cli.IntFlag{Name: "quantity", Required: true},
				},
				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app) error {
					item, err := a.store.UpdateQuantity(ctx, cmd.String("line"), int(cmd.Int("quantity")))
					if err != nil {
						return err
					}

					fmt.Fprintf(a.out, "%s: quantity %d\n", item.Product.Name, item.Quantity)
					return nil
				}),
			},
			{
				Name: "options",
				Flags: []cli.Flag{
					lineFlag(),
					&cli.StringFlag{Name: "size"},
					&cli.StringFlag{Name: "color"},
				},
				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app) error {
					result, err := a.store.UpdateItemOptions(ctx, cmd.String("line"), cart.VariantChange{
						Size:  optional(cmd, "size"),
						Color: optional(cmd, "color"),
					})
					if err != nil {
						return err
					}

					switch {
					case result.Capped:
						fmt.Fprintf(a.out, "merged into line %s, quantity adjusted to %d due to stock\n", result.Item.ID, result.Item.Quantity)
					case result.Merged:
						fmt.Fprintf(a.out, "merged into line %s, quantity %d\n", result.Item.ID, result.Item.Quantity)
					default:
						fmt.Fprintf(a.out, "line %s is now %s\n", result.PreviousID, result.Item.ID)
					}
					return nil
				}),
			},
			{
				Name:  "remove",
				Flags: []cli.Flag{lineFlag()},
				Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app) error {
					return a.store.RemoveItem(ctx, cmd.String("line"))
				}),
			},
			{
				Name: "clear",
				Action: withApp(func(ctx context.Context, _ *cli.Command, a *app) error {
					a.store.Clear(ctx)
					return nil
				}),
			},
		},
	}
}

func listCart(_ context.Context, _ *cli.Command, a *app) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tVARIANT\tQTY\tUNIT\tTOTAL")

	for _, item := range a.store.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", item.ID, item.Product.Name, item.VariantLabel(), item.Quantity,
			item.Product.EffectivePrice().StringFixed(2), item.LineTotal().StringFixed(2))
	}

	fmt.Fprintf(w, "\t\t\t%d\t\t%s\n", a.store.ItemCount(), a.store.Subtotal().StringFixed(2))

	return w.Flush()
}

func lineFlag() cli.Flag {
	return &cli.StringFlag{Name: "line", Usage: "line item id", Required: true}
}
