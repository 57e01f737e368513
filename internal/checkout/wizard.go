package checkout

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
)

type Step int

const (
	StepContact Step = iota + 1
	StepDelivery
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Wizard tracks the checkout steps. Only Next validates; JumpTo moves freely.
type Wizard struct {
	Form Form
	step Step
}

func NewWizard() *Wizard {
	return &Wizard{step: StepContact}
}

func (w *Wizard) Step() Step {
	return w.step
}

// Next validates the fields of the current step and advances. It stays on the review step.
func (w *Wizard) Next() error {
	if err := w.validateStep(); err != nil {
		return err
	}
	if w.step < StepReview {
		w.step++
	}
	return nil
}

func (w *Wizard) Prev() {
	if w.step > StepContact {
		w.step--
	}
}

func (w *Wizard) JumpTo(step Step) error {
	if step < StepContact || step > StepReview {
		return fmt.Errorf("step %d out of range", int(step))
	}
	w.step = step
	return nil
}

func (w *Wizard) validateStep() error {
	var missing []string

	switch w.step {
	case StepContact:
		missing = missingContact(w.Form.Customer)
	case StepDelivery:
		if w.Form.Delivery == DeliveryNone {
			missing = append(missing, "delivery method")
		}
	case StepPayment:
		if w.Form.Payment == PaymentNone {
			missing = append(missing, "payment method")
		}
	}

	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}
