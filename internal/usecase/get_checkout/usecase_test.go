package get_checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
	policyRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricingpolicy"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePropertyClient struct {
	property *propertyClient.Property
	err      error
}

func (f *fakePropertyClient) GetProperty(ctx context.Context, propertyID string) (*propertyClient.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.property, nil
}

type fakePolicyRepo struct {
	policy *domain.PricingPolicy
	err    error
}

func (f *fakePolicyRepo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.PricingPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policy, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProperty() *propertyClient.Property {
	return &propertyClient.Property{
		ID:            "prop-1",
		HostID:        "host-1",
		Title:         "Студия в центре",
		PricePerNight: 50,
		MaxGuests:     3,
	}
}

func validRequest() *Request {
	return &Request{
		PropertyID: "prop-1",
		CheckIn:    date(2026, time.July, 1),
		CheckOut:   date(2026, time.July, 3),
		Guests:     2,
	}
}

func TestExecute_DefaultPolicy(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pricing.Nights)
	assert.Equal(t, 100.0, resp.Pricing.Subtotal)
	// Платформенный сбор 10%
	assert.Equal(t, 10.0, resp.Pricing.ServiceFee)
	assert.Equal(t, 0.0, resp.Pricing.Taxes)
	assert.Equal(t, 110.0, resp.Pricing.Total)
	assert.Equal(t, "prop-1", resp.Property.ID)
	assert.Equal(t, "Студия в центре", resp.Property.Title)
}

func TestExecute_CustomPolicy(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{policy: &domain.PricingPolicy{
			PropertyID:     "prop-1",
			ServiceFeeRate: 0.15,
			TaxRate:        0.08,
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.Pricing.Subtotal)
	assert.Equal(t, 15.0, resp.Pricing.ServiceFee)
	assert.Equal(t, 8.0, resp.Pricing.Taxes)
	assert.Equal(t, 123.0, resp.Pricing.Total)
}

func TestExecute_PricingIdentity(t *testing.T) {
	// total == subtotal + serviceFee + taxes на диапазоне входов
	uc := NewUseCase(
		&fakePropertyClient{property: &propertyClient.Property{
			ID:            "prop-1",
			PricePerNight: 33.33,
			MaxGuests:     10,
		}},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	for nights := 1; nights <= 30; nights++ {
		req := validRequest()
		req.CheckOut = req.CheckIn.AddDate(0, 0, nights)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		p := resp.Pricing
		assert.InDelta(t, p.Subtotal+p.ServiceFee+p.Taxes, p.Total, 1e-9,
			"identity broken for %d nights", nights)
	}
}

func TestExecute_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{err: propertyClient.ErrPropertyNotFound},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_InvalidDateRange(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_InvalidGuests(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	req := validRequest()
	req.Guests = 0

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidGuests)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{err: policyRepo.ErrPolicyNotFound},
		nopLogger{},
	)

	req := validRequest()
	req.Guests = 4

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_PolicyRepositoryError(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyClient{property: testProperty()},
		&fakePolicyRepo{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		email     string
		wantValid bool
	}{
		{name: "valid", fullName: "Анна Иванова", email: "anna@example.com", wantValid: true},
		{name: "valid with subdomain", fullName: "Ivan Petrov", email: "ivan@mail.example.org", wantValid: true},
		{name: "empty name", fullName: "", email: "anna@example.com", wantValid: false},
		{name: "whitespace name", fullName: "   ", email: "anna@example.com", wantValid: false},
		{name: "empty email", fullName: "Анна Иванова", email: "", wantValid: false},
		{name: "no at sign", fullName: "Анна Иванова", email: "anna.example.com", wantValid: false},
		{name: "no domain dot", fullName: "Анна Иванова", email: "anna@example", wantValid: false},
		{name: "space in email", fullName: "Анна Иванова", email: "anna @example.com", wantValid: false},
		{name: "double at", fullName: "Анна Иванова", email: "anna@@example.com", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateContact(ContactInfo{FullName: tt.fullName, Email: tt.email})
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Error)
			}
		})
	}
}
