package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/storefront/pkg/validate"
)

type signUpForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=255"`
	Role     string `json:"role"     validate:"nullable,in=ADMIN,CUSTOMER"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(signUpForm{
		Email:    "jane@example.com",
		Name:     "Jane",
		Role:     "ADMIN",
		Password: "long-enough",
	})
	if validate.HasErrors(errs) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(signUpForm{})

	if errs["email"] != "The email field is required." {
		t.Errorf("email: %q", errs["email"])
	}
	if _, ok := errs["password"]; !ok {
		t.Error("missing password error")
	}
	if _, ok := errs["role"]; ok {
		t.Error("nullable role must not error when empty")
	}
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(signUpForm{
		Email:    "not-an-email",
		Name:     "Jane",
		Password: "long-enough",
	})
	if errs["email"] != "The email must be a valid email address." {
		t.Errorf("email: %q", errs["email"])
	}
}

func TestStructInRule(t *testing.T) {
	errs := validate.Struct(signUpForm{
		Email:    "jane@example.com",
		Name:     "Jane",
		Role:     "SUPERUSER",
		Password: "long-enough",
	})
	if errs["role"] != "The selected role is invalid." {
		t.Errorf("role: %q", errs["role"])
	}

	// The comma inside in=ADMIN,CUSTOMER must not split the rule.
	errs = validate.Struct(signUpForm{
		Email:    "jane@example.com",
		Name:     "Jane",
		Role:     "CUSTOMER",
		Password: "long-enough",
	})
	if _, ok := errs["role"]; ok {
		t.Errorf("CUSTOMER must be accepted: %v", errs)
	}
}

func TestStructMin(t *testing.T) {
	errs := validate.Struct(signUpForm{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "short",
	})
	if errs["password"] != "The password must be at least 8 characters." {
		t.Errorf("password: %q", errs["password"])
	}
}

func TestStructNumericBounds(t *testing.T) {
	type form struct {
		Price float64 `json:"price" validate:"gt=0"`
		Stock *int    `json:"stock" validate:"nullable,gte=0"`
	}

	if errs := validate.Struct(form{Price: -1}); errs["price"] == "" {
		t.Error("negative price must fail gt=0")
	}

	neg := -2
	if errs := validate.Struct(form{Price: 5, Stock: &neg}); errs["stock"] == "" {
		t.Error("negative stock must fail gte=0")
	}

	zero := 0
	if errs := validate.Struct(form{Price: 5, Stock: &zero}); len(errs) != 0 {
		t.Errorf("zero stock is allowed: %v", errs)
	}
}
