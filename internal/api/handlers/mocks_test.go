package handlers_test

import (
	"context"

	"github.com/jmateos/procura-be/internal/models"
)

// MockUserService implements services.UserServiceProvider.
type MockUserService struct {
	RegisterFunc     func(ctx context.Context, name, email, password string) (int64, error)
	AuthenticateFunc func(ctx context.Context, email, password string) (int64, error)
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (int64, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return 1, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (int64, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return 1, nil
}

// MockSupplierService implements services.SupplierServiceProvider.
type MockSupplierService struct {
	OnboardFunc func(ctx context.Context, name, registrationNumber, address string) (int64, error)
	ListFunc    func(ctx context.Context) ([]models.Supplier, error)
}

func (m *MockSupplierService) Onboard(ctx context.Context, name, registrationNumber, address string) (int64, error) {
	if m.OnboardFunc != nil {
		return m.OnboardFunc(ctx, name, registrationNumber, address)
	}
	return 1, nil
}

func (m *MockSupplierService) List(ctx context.Context) ([]models.Supplier, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Supplier{{ID: 1, Name: "Acme Pipes", RegistrationNumber: "REG-001", Address: "1 Factory Rd"}}, nil
}

// MockRFPService implements services.RFPServiceProvider.
type MockRFPService struct {
	CreateFunc func(ctx context.Context, title, description string) (int64, error)
	ListFunc   func(ctx context.Context) ([]models.RFP, error)
}

func (m *MockRFPService) Create(ctx context.Context, title, description string) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, title, description)
	}
	return 1, nil
}

func (m *MockRFPService) List(ctx context.Context) ([]models.RFP, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.RFP{{ID: 1, Title: "Office fit-out", Description: "Desks and chairs"}}, nil
}

// MockBidService implements services.BidServiceProvider.
type MockBidService struct {
	SubmitFunc     func(ctx context.Context, rfpID, supplierID int64, amount float64, documents string) (int64, error)
	ListForRFPFunc func(ctx context.Context, rfpID int64) ([]models.Bid, error)
	EvaluateFunc   func(ctx context.Context, rfpID int64) (int, error)
	WinningFunc    func(ctx context.Context, rfpID int64) (models.Bid, error)
}

func (m *MockBidService) Submit(ctx context.Context, rfpID, supplierID int64, amount float64, documents string) (int64, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, rfpID, supplierID, amount, documents)
	}
	return 1, nil
}

func (m *MockBidService) ListForRFP(ctx context.Context, rfpID int64) ([]models.Bid, error) {
	if m.ListForRFPFunc != nil {
		return m.ListForRFPFunc(ctx, rfpID)
	}
	return []models.Bid{{ID: 1, RFPID: rfpID, SupplierID: 1, Amount: 100, Status: models.BidStatusPending}}, nil
}

func (m *MockBidService) Evaluate(ctx context.Context, rfpID int64) (int, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, rfpID)
	}
	return 0, nil
}

func (m *MockBidService) Winning(ctx context.Context, rfpID int64) (models.Bid, error) {
	if m.WinningFunc != nil {
		return m.WinningFunc(ctx, rfpID)
	}
	return models.Bid{ID: 1, RFPID: rfpID, SupplierID: 1, Amount: 50, Status: models.BidStatusPending}, nil
}
