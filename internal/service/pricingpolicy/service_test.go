package pricingpolicy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	policyRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricingpolicy"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePolicyRepo struct {
	policy   *domain.PricingPolicy
	getErr   error
	upserted *domain.PricingPolicy
}

func (f *fakePolicyRepo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.PricingPolicy, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.policy, nil
}

func (f *fakePolicyRepo) Upsert(ctx context.Context, policy *domain.PricingPolicy) (*domain.PricingPolicy, error) {
	stored := *policy
	stored.UpdatedAt = time.Now()
	f.upserted = &stored
	return &stored, nil
}

type fakePropertyClient struct {
	hostID string
	err    error
}

func (f *fakePropertyClient) GetProperty(ctx context.Context, propertyID string) (*propertyservice.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &propertyservice.Property{ID: propertyID, HostID: f.hostID}, nil
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakePolicyRepo{getErr: policyRepo.ErrPolicyNotFound}, &fakePropertyClient{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultServiceFeeRate, resp.ServiceFeeRate)
	assert.Equal(t, domain.DefaultTaxRate, resp.TaxRate)
}

func TestGet_StoredPolicy(t *testing.T) {
	svc := NewService(&fakePolicyRepo{policy: &domain.PricingPolicy{
		PropertyID:     "prop-1",
		ServiceFeeRate: 0.12,
		TaxRate:        0.05,
	}}, &fakePropertyClient{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 0.12, resp.ServiceFeeRate)
	assert.Equal(t, 0.05, resp.TaxRate)
}

func TestUpdate_HostOnly(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := NewService(repo, &fakePropertyClient{hostID: "host-1"}, nopLogger{})

	_, err := svc.Update(context.Background(), &UpdatePolicyRequest{
		UserID:         "stranger",
		PropertyID:     "prop-1",
		ServiceFeeRate: 0.12,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.upserted)
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := NewService(repo, &fakePropertyClient{hostID: "host-1"}, nopLogger{})

	resp, err := svc.Update(context.Background(), &UpdatePolicyRequest{
		UserID:         "host-1",
		PropertyID:     "prop-1",
		ServiceFeeRate: 0.12,
		TaxRate:        0.05,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.12, resp.ServiceFeeRate)
	assert.Equal(t, 0.05, resp.TaxRate)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "prop-1", repo.upserted.PropertyID)
}

func TestUpdate_RateValidation(t *testing.T) {
	tests := []struct {
		name string
		fee  float64
		tax  float64
	}{
		{name: "negative fee", fee: -0.01},
		{name: "fee above cap", fee: domain.MaxServiceFeeRate + 0.01},
		{name: "negative tax", tax: -0.01},
		{name: "tax above cap", tax: domain.MaxTaxRate + 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePolicyRepo{}
			svc := NewService(repo, &fakePropertyClient{hostID: "host-1"}, nopLogger{})

			_, err := svc.Update(context.Background(), &UpdatePolicyRequest{
				UserID:         "host-1",
				PropertyID:     "prop-1",
				ServiceFeeRate: tt.fee,
				TaxRate:        tt.tax,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestUpdate_PropertyNotFound(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakePropertyClient{err: propertyservice.ErrPropertyNotFound}, nopLogger{})

	_, err := svc.Update(context.Background(), &UpdatePolicyRequest{
		UserID:         "host-1",
		PropertyID:     "prop-1",
		ServiceFeeRate: 0.1,
	})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
