package validate_test

import (
	"testing"

	"github.com/vivekmishra161/AKC-autoparts-1/pkg/validate"
)

type orderInput struct {
	Name          string `json:"name"          validate:"required,min=2,max=100"`
	Phone         string `json:"phone"         validate:"required,digits=10"`
	Pin           string `json:"pin"           validate:"required,digits=6"`
	PaymentMethod string `json:"paymentMethod" validate:"required,in=COD,UPI"`
	Notes         string `json:"notes"         validate:"nullable,max=500"`
	Rating        int    `json:"rating"        validate:"required,gte=1,lte=5"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(orderInput{
		Name:          "Asha Rao",
		Phone:         "9876543210",
		Pin:           "560001",
		PaymentMethod: "COD",
		Notes:         "", // nullable, may be empty
		Rating:        4,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(orderInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["paymentMethod"]; !ok {
		t.Error("expected paymentMethod to be required")
	}
}

func TestInRuleKeepsParamListIntact(t *testing.T) {
	errs := validate.Struct(orderInput{
		Name:          "Asha Rao",
		Phone:         "9876543210",
		Pin:           "560001",
		PaymentMethod: "NETBANKING",
		Rating:        4,
	})
	if _, ok := errs["paymentMethod"]; !ok {
		t.Errorf("expected paymentMethod to be rejected, got: %v", errs)
	}

	errs = validate.Struct(orderInput{
		Name:          "Asha Rao",
		Phone:         "9876543210",
		Pin:           "560001",
		PaymentMethod: "UPI",
		Rating:        4,
	})
	if _, ok := errs["paymentMethod"]; ok {
		t.Errorf("expected UPI to be accepted, got: %v", errs)
	}
}

func TestRatingBounds(t *testing.T) {
	type in struct {
		Rating int `json:"rating" validate:"required,gte=1,lte=5"`
	}
	if errs := validate.Struct(in{Rating: 6}); len(errs) == 0 {
		t.Error("expected rating 6 to fail lte=5")
	}
	if errs := validate.Struct(in{Rating: 0}); len(errs) == 0 {
		t.Error("expected rating 0 to fail required")
	}
	if errs := validate.Struct(in{Rating: 5}); len(errs) != 0 {
		t.Errorf("expected rating 5 to pass, got: %v", errs)
	}
}

func TestDigitsRule(t *testing.T) {
	type in struct {
		Phone string `json:"phone" validate:"required,digits=10"`
	}
	if errs := validate.Struct(in{Phone: "12345"}); len(errs) == 0 {
		t.Error("expected short phone to fail")
	}
	if errs := validate.Struct(in{Phone: "98765abc10"}); len(errs) == 0 {
		t.Error("expected non-numeric phone to fail")
	}
	if errs := validate.Struct(in{Phone: "9876543210"}); len(errs) != 0 {
		t.Errorf("expected valid phone to pass, got: %v", errs)
	}
}
