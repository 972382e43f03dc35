package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"
)

// --- DTOs ---

type CreateBuyerRequest struct {
	NTNCNIC          string `json:"ntncnic" binding:"required,notblank"`
	BusinessName     string `json:"businessName" binding:"required,notblank,min=2,max=255"`
	Province         string `json:"province" binding:"required,notblank"`
	Address          string `json:"address" binding:"required,notblank,min=5"`
	RegistrationType string `json:"registrationType" binding:"required,oneof=Registered Unregistered"`
}

type UpdateBuyerRequest struct {
	NTNCNIC          *string `json:"ntncnic"`
	BusinessName     *string `json:"businessName" binding:"omitempty,min=2,max=255"`
	Province         *string `json:"province" binding:"omitempty,notblank"`
	Address          *string `json:"address" binding:"omitempty,min=5"`
	RegistrationType *string `json:"registrationType" binding:"omitempty,oneof=Registered Unregistered"`
}

type BuyerResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	NTNCNIC          string    `json:"ntncnic"`
	BusinessName     string    `json:"businessName"`
	Province         string    `json:"province"`
	Address          string    `json:"address"`
	RegistrationType string    `json:"registrationType"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// --- Interface ---

type BuyerService interface {
	CreateBuyer(ctx context.Context, userID string, req CreateBuyerRequest) (BuyerResponse, error)
	GetBuyer(ctx context.Context, userID, id string) (BuyerResponse, error)
	ListBuyers(ctx context.Context, userID, search string, page, limit int) ([]BuyerResponse, int64, error)
	UpdateBuyer(ctx context.Context, userID, id string, req UpdateBuyerRequest) (BuyerResponse, error)
	DeleteBuyer(ctx context.Context, userID, id string) error
}

// --- Implementation ---

type buyerService struct {
	buyerRepo repository.BuyerRepository
}

func NewBuyerService(buyerRepo repository.BuyerRepository) BuyerService {
	return &buyerService{buyerRepo: buyerRepo}
}

const errBuyerNotFound = "Buyer not found"

func (s *buyerService) CreateBuyer(ctx context.Context, userID string, req CreateBuyerRequest) (BuyerResponse, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return BuyerResponse{}, err
	}
	buyer := &model.Buyer{
		UserID:           owner,
		NTNCNIC:          strings.TrimSpace(req.NTNCNIC),
		BusinessName:     strings.TrimSpace(req.BusinessName),
		Province:         strings.TrimSpace(req.Province),
		Address:          strings.TrimSpace(req.Address),
		RegistrationType: req.RegistrationType,
	}
	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		return BuyerResponse{}, fmt.Errorf("failed to create buyer: %w", err)
	}
	return toBuyerResponse(buyer), nil
}

func (s *buyerService) GetBuyer(ctx context.Context, userID, id string) (BuyerResponse, error) {
	buyer, err := s.load(ctx, userID, id)
	if err != nil {
		return BuyerResponse{}, err
	}
	return toBuyerResponse(buyer), nil
}

func (s *buyerService) ListBuyers(ctx context.Context, userID, search string, page, limit int) ([]BuyerResponse, int64, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, 0, err
	}
	buyers, total, err := s.buyerRepo.List(ctx, owner, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch buyers: %w", err)
	}
	res := make([]BuyerResponse, 0, len(buyers))
	for i := range buyers {
		res = append(res, toBuyerResponse(&buyers[i]))
	}
	return res, total, nil
}

func (s *buyerService) UpdateBuyer(ctx context.Context, userID, id string, req UpdateBuyerRequest) (BuyerResponse, error) {
	buyer, err := s.load(ctx, userID, id)
	if err != nil {
		return BuyerResponse{}, err
	}

	if v := trimPtr(req.NTNCNIC); v != nil && *v != "" {
		buyer.NTNCNIC = *v
	}
	if v := trimPtr(req.BusinessName); v != nil {
		if len(*v) < 2 {
			return BuyerResponse{}, apperr.Validation("Validation failed", apperr.FieldError{
				Field:   "businessName",
				Message: "Business name must be between 2 and 255 characters",
			})
		}
		buyer.BusinessName = *v
	}
	if v := trimPtr(req.Province); v != nil {
		buyer.Province = *v
	}
	if v := trimPtr(req.Address); v != nil {
		if len(*v) < 5 {
			return BuyerResponse{}, apperr.Validation("Validation failed", apperr.FieldError{
				Field:   "address",
				Message: "Address must be at least 5 characters long",
			})
		}
		buyer.Address = *v
	}
	if req.RegistrationType != nil {
		buyer.RegistrationType = *req.RegistrationType
	}

	if err := s.buyerRepo.Update(ctx, buyer); err != nil {
		return BuyerResponse{}, fmt.Errorf("failed to update buyer: %w", err)
	}
	return toBuyerResponse(buyer), nil
}

func (s *buyerService) DeleteBuyer(ctx context.Context, userID, id string) error {
	buyer, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	used, err := s.buyerRepo.CountInvoices(ctx, buyer.ID)
	if err != nil {
		return err
	}
	if used > 0 {
		return apperr.Conflict("Cannot delete buyer that is used in invoices")
	}
	return s.buyerRepo.Delete(ctx, buyer.UserID, buyer.ID)
}

func (s *buyerService) load(ctx context.Context, userID, id string) (*model.Buyer, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	bid, err := parseID(id, "buyer")
	if err != nil {
		return nil, err
	}
	buyer, err := s.buyerRepo.FindByID(ctx, owner, bid)
	if err != nil {
		return nil, notFound(err, errBuyerNotFound)
	}
	return buyer, nil
}

// --- Response mappers ---

func toBuyerResponse(b *model.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:               b.ID.String(),
		UserID:           b.UserID.String(),
		NTNCNIC:          b.NTNCNIC,
		BusinessName:     b.BusinessName,
		Province:         b.Province,
		Address:          b.Address,
		RegistrationType: b.RegistrationType,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
