package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceOrderRequest is forwarded as a formatted notification to the shop
// inbox; orders are not persisted.
type PlaceOrderRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

type ContactRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"msg"`
}

// Local mobile numbers only: 11 digits starting with 01.
var orderPhoneRegex = regexp.MustCompile(`^01\d{9}$`)

func (r *PlaceOrderRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !isValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if strings.TrimSpace(r.ProductName) == "" {
		return fmt.Errorf("product_name is required")
	}
	if !orderPhoneRegex.MatchString(r.PhoneNumber) {
		return fmt.Errorf("invalid phone number format")
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

func (r *ContactRequest) Validate() error {
	if !isValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("msg is required")
	}
	return nil
}

func (r *PlaceOrderRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.Location = strings.TrimSpace(r.Location)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

func (r *ContactRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
}
