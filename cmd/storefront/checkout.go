package main

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/handoff"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func methodFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "delivery", Usage: "pickup-in-store | local-delivery | nationwide-delivery"},
		&cli.StringFlag{Name: "payment", Usage: "bank-transfer | cash-local-currency | cash-usd | zelle"},
	}
}

// parseMethods leaves a method unselected when its flag is absent.
func parseMethods(cmd *cli.Command) (checkout.DeliveryMethod, checkout.PaymentMethod, error) {
	delivery, payment := checkout.DeliveryNone, checkout.PaymentNone

	if cmd.IsSet("delivery") {
		d, err := checkout.ParseDeliveryMethod(cmd.String("delivery"))
		if err != nil {
			return "", "", err
		}
		delivery = d
	}
	if cmd.IsSet("payment") {
		p, err := checkout.ParsePaymentMethod(cmd.String("payment"))
		if err != nil {
			return "", "", err
		}
		payment = p
	}

	return delivery, payment, nil
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "show the cost breakdown of the current cart",
		Flags: methodFlags(),
		Action: withApp(func(_ context.Context, cmd *cli.Command, a *app) error {
			delivery, payment, err := parseMethods(cmd)
			if err != nil {
				return err
			}

			calc, err := checkout.Calculate(a.store.Subtotal(), delivery, payment)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Subtotal: %s\n", calc.Format(calc.Subtotal))
			fmt.Fprintf(a.out, "Discount: %s\n", calc.Format(calc.Discount))
			switch {
			case calc.FreeShipping:
				fmt.Fprintln(a.out, "Shipping: free shipping applied")
			case calc.FreeShippingRemaining.IsPositive():
				fmt.Fprintf(a.out, "Shipping: %s (free from %s more)\n", calc.Format(calc.DeliveryCost), calc.Format(calc.FreeShippingRemaining))
			default:
				fmt.Fprintf(a.out, "Shipping: %s\n", calc.Format(calc.DeliveryCost))
			}
			fmt.Fprintf(a.out, "Total: %s\n", calc.TotalMoney())

			return nil
		}),
	}
}

func checkoutCommand() *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "phone"},
		&cli.StringFlag{Name: "address"},
		&cli.StringFlag{Name: "email"},
		&cli.StringFlag{Name: "notes"},
		&cli.BoolFlag{Name: "clear", Usage: "empty the cart after the hand-off"},
	}, methodFlags()...)

	return &cli.Command{
		Name:  "checkout",
		Usage: "validate the order and print the WhatsApp link carrying it",
		Flags: flags,
		Action: withApp(func(ctx context.Context, cmd *cli.Command, a *app) error {
			delivery, payment, err := parseMethods(cmd)
			if err != nil {
				return err
			}

			messenger, err := handoff.NewWhatsApp(a.cfg.Checkout.WhatsAppPhone, a.logger.Named("handoff"))
			if err != nil {
				return fmt.Errorf("handoff.NewWhatsApp: %w", err)
			}

			form := checkout.Form{
				Customer: checkout.Customer{
					Name:    cmd.String("name"),
					Phone:   cmd.String("phone"),
					Address: cmd.String("address"),
					Email:   cmd.String("email"),
					Notes:   cmd.String("notes"),
				},
				Delivery: delivery,
				Payment:  payment,
			}

			submitter := checkout.NewSubmitter(messenger, checkout.WithLogger(a.logger.Named("checkout")))

			receipt, err := submitter.Submit(ctx, form, a.store.Items())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, receipt.Summary.Message())
			fmt.Fprintln(a.out, receipt.Link)

			if cmd.Bool("clear") {
				a.store.Clear(ctx)
				a.logger.Info("cart cleared after hand-off", zap.Int("lines", len(receipt.Summary.Lines)))
			}

			return nil
		}),
	}
}
