package inventory

import (
	"Resto-Manager/domain"
	"Resto-Manager/entities"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// LowStockThreshold is the quantity at or below which an ingredient is
// flagged for restocking, matching the original desktop alert.
const LowStockThreshold = 5.0

type (
	InventoryService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		GetLowStock(ctx context.Context) ([]domain.IngredientResponse, error)
		SetQuantity(ctx context.Context, id string, req domain.UpdateIngredientQuantityRequest) error
		DeleteIngredient(ctx context.Context, id string) error
		ImportStockCSV(ctx context.Context, file io.Reader) (domain.ImportStockResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}
	if !entities.ValidUnit(req.Unit) {
		return domain.IngredientResponse{}, domain.ErrInvalidUnit
	}
	if req.Quantity < 0 {
		return domain.IngredientResponse{}, domain.ErrInvalidQuantity
	}

	ingredient, _, err := s.inventoryRepository.AddOrMergeStock(ctx, strings.TrimSpace(req.Name), req.Unit, req.Quantity)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *inventoryService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.inventoryRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *inventoryService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *inventoryService) GetLowStock(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.inventoryRepository.GetLowStock(ctx, LowStockThreshold)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *inventoryService) SetQuantity(ctx context.Context, id string, req domain.UpdateIngredientQuantityRequest) error {
	if req.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	if err := s.inventoryRepository.SetQuantity(ctx, id, req.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) DeleteIngredient(ctx context.Context, id string) error {
	if err := s.inventoryRepository.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return nil
}

// ImportStockCSV reads "name,unit,quantity" rows and feeds each valid one
// through the same add-or-merge primitive as manual insertion. Bad rows are
// reported per line and do not stop the rest of the file.
func (s *inventoryService) ImportStockCSV(ctx context.Context, file io.Reader) (domain.ImportStockResponse, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	response := domain.ImportStockResponse{}
	line := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			response.Rejected = append(response.Rejected, domain.ImportRowError{Line: line, Reason: err.Error()})
			continue
		}

		// Skip a header row if present.
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}

		name, unit, quantity, rowErr := parseStockRow(record)
		if rowErr != nil {
			response.Rejected = append(response.Rejected, domain.ImportRowError{Line: line, Reason: rowErr.Error()})
			continue
		}

		_, merged, err := s.inventoryRepository.AddOrMergeStock(ctx, name, unit, quantity)
		if err != nil {
			response.Rejected = append(response.Rejected, domain.ImportRowError{Line: line, Reason: err.Error()})
			continue
		}

		if merged {
			response.Merged++
		} else {
			response.Imported++
		}
	}

	return response, nil
}

func parseStockRow(record []string) (string, string, float64, error) {
	if len(record) != 3 {
		return "", "", 0, fmt.Errorf("expected 3 columns, got %d", len(record))
	}

	name := strings.TrimSpace(record[0])
	unit := strings.TrimSpace(record[1])
	if name == "" {
		return "", "", 0, errors.New("empty ingredient name")
	}
	if !entities.ValidUnit(unit) {
		return "", "", 0, domain.ErrInvalidUnit
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("bad quantity %q", record[2])
	}
	if quantity < 0 {
		return "", "", 0, domain.ErrInvalidQuantity
	}

	return name, unit, quantity, nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:       ingredient.ID.String(),
		Name:     ingredient.Name,
		Unit:     ingredient.Unit,
		Quantity: ingredient.Quantity,
		LowStock: ingredient.Quantity <= LowStockThreshold,
	}
}
