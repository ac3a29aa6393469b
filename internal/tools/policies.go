package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"insurance_rag/internal/insurance"
	"insurance_rag/internal/llm"
	"insurance_rag/internal/storage"
)

// PolicyCatalog - операции над страховыми полисами, доступные инструментам
type PolicyCatalog interface {
	NextExpiring(ctx context.Context, now time.Time) (*insurance.PolicyRecord, error)
	ListAll(ctx context.Context) ([]insurance.PolicyRecord, error)
	Add(ctx context.Context, holder, policyType, provider, guarantees, expiration string) (id, conditionsName string, err error)
	Count(ctx context.Context) (int64, error)
}

const dbConnectionHint = "Error: Cannot connect to database. Please check your MongoDB connection string in the .env file."

// RegisterPolicyTools регистрирует инструменты работы с полисами
func RegisterPolicyTools(r *Registry, catalog PolicyCatalog, dbName, collection string) {
	r.Register(Tool{
		Name: "get_next_policy_exp",
		Description: "Gets the next insurance expiration date from the database. " +
			"Returns the insurance policy that will expire soonest.",
		Parameters: llm.ObjectSchema(nil),
		Run: func(ctx context.Context, args json.RawMessage) string {
			return nextExpiration(ctx, catalog)
		},
	})

	r.Register(Tool{
		Name:        "list_all_insurances",
		Description: "Lists all insurance policies in the database with their expiration dates and their guarantees.",
		Parameters:  llm.ObjectSchema(nil),
		Run: func(ctx context.Context, args json.RawMessage) string {
			return listInsurances(ctx, catalog)
		},
	})

	r.Register(Tool{
		Name: "add_insurance",
		Description: "Adds a new insurance policy to the database. Requires policy holder, type, provider, " +
			"guarantees and expiration date (YYYY-MM-DD format).",
		Parameters: llm.ObjectSchema(map[string]llm.Property{
			"policy_holder":   {Type: "string", Description: "Name of the insurance policy holder"},
			"policy_type":     {Type: "string", Description: "Type of insurance (e.g., Car, Injuries, Home)"},
			"provider":        {Type: "string", Description: "Insurance provider/company name"},
			"guarantees":      {Type: "string", Description: "Policy guarantees"},
			"expiration_date": {Type: "string", Description: "Expiration date in YYYY-MM-DD format"},
		}, "policy_holder", "policy_type", "provider", "guarantees", "expiration_date"),
		Run: func(ctx context.Context, args json.RawMessage) string {
			var in struct {
				PolicyHolder   string `json:"policy_holder"`
				PolicyType     string `json:"policy_type"`
				Provider       string `json:"provider"`
				Guarantees     string `json:"guarantees"`
				ExpirationDate string `json:"expiration_date"`
			}
			if err := json.Unmarshal(args, &in); err != nil {
				return fmt.Sprintf("Error: invalid arguments: %v", err)
			}
			return addInsurance(ctx, catalog, in.PolicyHolder, in.PolicyType, in.Provider, in.Guarantees, in.ExpirationDate)
		},
	})

	r.Register(Tool{
		Name:        "get_db_status",
		Description: "Returns the connection status and basic information about the insurance database.",
		Parameters:  llm.ObjectSchema(nil),
		Run: func(ctx context.Context, args json.RawMessage) string {
			return dbStatus(ctx, catalog, dbName, collection)
		},
	})
}

func nextExpiration(ctx context.Context, catalog PolicyCatalog) string {
	now := time.Now()

	record, err := catalog.NextExpiring(ctx, now)
	if errors.Is(err, storage.ErrNoConnection) {
		return dbConnectionHint
	}
	if err != nil {
		return fmt.Sprintf("Error retrieving expiration date: %v", err)
	}
	if record == nil {
		return "No upcoming insurance expirations found in the database."
	}

	return fmt.Sprintf("Next expiration:\n- Policy holder: %s\n- Type: %s\n- Provider: %s\n- Guarantees: %s\n- Expiration Date: %s\n- Days until expiration: %d\n- Conditions edition: %s",
		record.PolicyHolder,
		record.PolicyType,
		record.Provider,
		record.Guarantees,
		record.ExpirationDate.Format(insurance.DateFormat),
		insurance.DaysUntil(record.ExpirationDate, now),
		record.Conditions,
	)
}

func listInsurances(ctx context.Context, catalog PolicyCatalog) string {
	records, err := catalog.ListAll(ctx)
	if errors.Is(err, storage.ErrNoConnection) {
		return dbConnectionHint
	}
	if err != nil {
		return fmt.Sprintf("Error listing insurances: %v", err)
	}
	if len(records) == 0 {
		return "No insurance policies found in the database."
	}

	now := time.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d insurance policies:\n\n", len(records))
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, rec.PolicyHolder, rec.PolicyType)
		fmt.Fprintf(&b, "   Provider: %s\n", rec.Provider)
		fmt.Fprintf(&b, "   Guarantees: %s\n", rec.Guarantees)
		fmt.Fprintf(&b, "   Expires: %s (%s)\n", rec.ExpirationDate.Format(insurance.DateFormat), insurance.StatusLabel(rec.ExpirationDate, now))
		fmt.Fprintf(&b, "   Conditions: %s\n\n", rec.Conditions)
	}
	return b.String()
}

func addInsurance(ctx context.Context, catalog PolicyCatalog, holder, policyType, provider, guarantees, expiration string) string {
	id, conditionsName, err := catalog.Add(ctx, holder, policyType, provider, guarantees, expiration)

	switch {
	case errors.Is(err, insurance.ErrInvalidDate):
		return "Error: Invalid date format. Please use YYYY-MM-DD format (e.g., 2026-12-31)"
	case errors.Is(err, storage.ErrNoConnection):
		return dbConnectionHint
	case err != nil:
		return fmt.Sprintf("Error adding insurance: %v", err)
	}

	return fmt.Sprintf("Successfully added insurance policy for '%s' with conditions %s (ID: %s)", holder, conditionsName, id)
}

func dbStatus(ctx context.Context, catalog PolicyCatalog, dbName, collection string) string {
	count, err := catalog.Count(ctx)
	if errors.Is(err, storage.ErrNoConnection) {
		return "Database Status: Not Connected\nPlease check your MONGODB_CONNECTION_STRING in the .env file."
	}
	if err != nil {
		return fmt.Sprintf("Database Status: Connected but error occurred: %v", err)
	}

	return fmt.Sprintf("Database Status: Connected\nDatabase: %s\nCollection: %s\nTotal policies: %d", dbName, collection, count)
}
