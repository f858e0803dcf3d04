package domain

import "testing"

func TestRegisterConfirmValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterConfirmRequest
		wantErr bool
	}{
		{"valid", RegisterConfirmRequest{Username: "alice", Email: "a@example.com", Password: "longenough", Code: "123456"}, false},
		{"missing email", RegisterConfirmRequest{Username: "alice", Password: "longenough", Code: "123456"}, true},
		{"bad email", RegisterConfirmRequest{Username: "alice", Email: "nope", Password: "longenough", Code: "123456"}, true},
		{"short password", RegisterConfirmRequest{Username: "alice", Email: "a@example.com", Password: "short", Code: "123456"}, true},
		{"short code", RegisterConfirmRequest{Username: "alice", Email: "a@example.com", Password: "longenough", Code: "12345"}, true},
		{"non-digit code", RegisterConfirmRequest{Username: "alice", Email: "a@example.com", Password: "longenough", Code: "12a456"}, true},
		{"missing username", RegisterConfirmRequest{Email: "a@example.com", Password: "longenough", Code: "123456"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRequestNormalize(t *testing.T) {
	req := RegisterRequest{Email: "  Alice@Example.COM "}
	req.Normalize()
	if req.Email != "alice@example.com" {
		t.Errorf("Expected lowercased trimmed email, got %q", req.Email)
	}
}

func TestPlaceOrderValidate(t *testing.T) {
	valid := PlaceOrderRequest{
		Name:        "Alice",
		Email:       "alice@example.com",
		ProductName: "Chocolate Fudge",
		PhoneNumber: "01712345678",
		Quantity:    1,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid order, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *PlaceOrderRequest)
	}{
		{"short phone", func(r *PlaceOrderRequest) { r.PhoneNumber = "0171234567" }},
		{"wrong prefix", func(r *PlaceOrderRequest) { r.PhoneNumber = "02712345678" }},
		{"zero quantity", func(r *PlaceOrderRequest) { r.Quantity = 0 }},
		{"missing name", func(r *PlaceOrderRequest) { r.Name = " " }},
		{"missing product", func(r *PlaceOrderRequest) { r.ProductName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestCartItemRequestValidate(t *testing.T) {
	if err := (&CartItemRequest{ProductID: 1}).Validate(); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
	if err := (&CartItemRequest{}).Validate(); err == nil {
		t.Error("Expected error for missing product_id")
	}
	if err := (&CartItemRequest{ProductID: -1}).Validate(); err == nil {
		t.Error("Expected error for negative product_id")
	}
}
