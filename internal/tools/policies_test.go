package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"insurance_rag/internal/insurance"
	"insurance_rag/internal/storage"
)

type fakeCatalog struct {
	next    *insurance.PolicyRecord
	nextErr error

	records []insurance.PolicyRecord
	listErr error

	addID         string
	addConditions string
	addErr        error

	count    int64
	countErr error
}

func (f *fakeCatalog) NextExpiring(ctx context.Context, now time.Time) (*insurance.PolicyRecord, error) {
	return f.next, f.nextErr
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]insurance.PolicyRecord, error) {
	return f.records, f.listErr
}

func (f *fakeCatalog) Add(ctx context.Context, holder, policyType, provider, guarantees, expiration string) (string, string, error) {
	return f.addID, f.addConditions, f.addErr
}

func (f *fakeCatalog) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

func policyRegistry(t *testing.T, catalog PolicyCatalog) *Registry {
	t.Helper()
	r := NewRegistry()
	RegisterPolicyTools(r, catalog, "insurance_db", "insurances")
	return r
}

func TestNextExpiration(t *testing.T) {
	record := &insurance.PolicyRecord{
		PolicyHolder:   "Alice",
		PolicyType:     "Car",
		Provider:       "Acme",
		Guarantees:     "Full cover",
		ExpirationDate: time.Now().AddDate(0, 0, 30),
		Conditions:     "Car Conditions 2026",
	}

	r := policyRegistry(t, &fakeCatalog{next: record})
	out := r.Dispatch(context.Background(), "get_next_policy_exp", nil)

	assert.Contains(t, out, "Next expiration:")
	assert.Contains(t, out, "Policy holder: Alice")
	assert.Contains(t, out, "Days until expiration: 29")
	assert.Contains(t, out, "Conditions edition: Car Conditions 2026")
}

func TestNextExpirationEmpty(t *testing.T) {
	r := policyRegistry(t, &fakeCatalog{})
	out := r.Dispatch(context.Background(), "get_next_policy_exp", nil)

	assert.Equal(t, "No upcoming insurance expirations found in the database.", out)
}

func TestNextExpirationNoConnection(t *testing.T) {
	r := policyRegistry(t, &fakeCatalog{nextErr: storage.ErrNoConnection})
	out := r.Dispatch(context.Background(), "get_next_policy_exp", nil)

	assert.Equal(t, dbConnectionHint, out)
}

func TestListAllStatusLabels(t *testing.T) {
	now := time.Now()
	r := policyRegistry(t, &fakeCatalog{records: []insurance.PolicyRecord{
		{
			PolicyHolder:   "Bob",
			PolicyType:     "Home",
			Provider:       "Acme",
			Guarantees:     "Fire and flood",
			ExpirationDate: now.AddDate(0, 0, -10),
			Conditions:     "Home Conditions 2024",
		},
		{
			PolicyHolder:   "Alice",
			PolicyType:     "Car",
			Provider:       "Acme",
			Guarantees:     "Full cover",
			ExpirationDate: now.AddDate(0, 0, 5).Add(time.Hour),
			Conditions:     "Car Conditions 2026",
		},
	}})

	out := r.Dispatch(context.Background(), "list_all_insurances", nil)

	assert.Contains(t, out, "Found 2 insurance policies:")
	assert.Contains(t, out, "1. Bob (Home)")
	assert.Contains(t, out, "(Expired)")
	assert.Contains(t, out, "2. Alice (Car)")
	assert.Contains(t, out, "(5 days left)")
}

func TestListAllEmpty(t *testing.T) {
	r := policyRegistry(t, &fakeCatalog{})
	out := r.Dispatch(context.Background(), "list_all_insurances", nil)

	assert.Equal(t, "No insurance policies found in the database.", out)
}

func TestAddInsuranceMessages(t *testing.T) {
	args := json.RawMessage(`{
		"policy_holder": "Alice",
		"policy_type": "Car",
		"provider": "Acme",
		"guarantees": "Full cover",
		"expiration_date": "2099-01-01"
	}`)

	r := policyRegistry(t, &fakeCatalog{addID: "65f0c0ffee", addConditions: "Car Conditions 2026"})
	out := r.Dispatch(context.Background(), "add_insurance", args)
	assert.Equal(t, "Successfully added insurance policy for 'Alice' with conditions Car Conditions 2026 (ID: 65f0c0ffee)", out)

	r = policyRegistry(t, &fakeCatalog{addErr: insurance.ErrInvalidDate})
	out = r.Dispatch(context.Background(), "add_insurance", args)
	assert.Equal(t, "Error: Invalid date format. Please use YYYY-MM-DD format (e.g., 2026-12-31)", out)

	r = policyRegistry(t, &fakeCatalog{addErr: storage.ErrNoConnection})
	out = r.Dispatch(context.Background(), "add_insurance", args)
	assert.Equal(t, dbConnectionHint, out)
}

func TestDbStatus(t *testing.T) {
	r := policyRegistry(t, &fakeCatalog{count: 42})
	out := r.Dispatch(context.Background(), "get_db_status", nil)
	assert.Equal(t, "Database Status: Connected\nDatabase: insurance_db\nCollection: insurances\nTotal policies: 42", out)

	r = policyRegistry(t, &fakeCatalog{countErr: storage.ErrNoConnection})
	out = r.Dispatch(context.Background(), "get_db_status", nil)
	assert.Equal(t, "Database Status: Not Connected\nPlease check your MONGODB_CONNECTION_STRING in the .env file.", out)
}
