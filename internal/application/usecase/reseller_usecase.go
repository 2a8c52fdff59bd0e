package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// ResellerUseCase casos de uso de revendedores. Cada revendedor referencia una entidad organizacional.
type ResellerUseCase struct {
	repo     repository.Repository[entity.Reseller]
	entities repository.Repository[entity.OrganizationalEntity]
}

// NewResellerUseCase construye el caso de uso.
func NewResellerUseCase(repo repository.Repository[entity.Reseller], entities repository.Repository[entity.OrganizationalEntity]) *ResellerUseCase {
	return &ResellerUseCase{repo: repo, entities: entities}
}

// Create registra un revendedor. Devuelve domain.ErrParentNotFound si la entidad no existe.
func (uc *ResellerUseCase) Create(ctx context.Context, in dto.CreateResellerRequest) (*dto.ResellerResponse, error) {
	if err := uc.requireEntity(ctx, in.EntityID); err != nil {
		return nil, err
	}
	r := &entity.Reseller{
		EntityID:  in.EntityID,
		Status:    dto.StatusOrDefault(in.Status),
		CreatedAt: now(),
	}
	if err := uc.repo.Add(ctx, r); err != nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

// List devuelve todos los revendedores.
func (uc *ResellerUseCase) List(ctx context.Context) (*dto.ListResponse[dto.ResellerResponse], error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResellerList(list), nil
}

// GetByID obtiene un revendedor por ID. Devuelve (nil, nil) si no existe.
func (uc *ResellerUseCase) GetByID(ctx context.Context, id string) (*dto.ResellerResponse, error) {
	r, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || r == nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

// ListByEntity devuelve los revendedores de una entidad.
// Entidad inexistente: domain.ErrParentNotFound. Sin revendedores: lista vacía.
func (uc *ResellerUseCase) ListByEntity(ctx context.Context, entityID string) (*dto.ListResponse[dto.ResellerResponse], error) {
	if err := uc.requireEntity(ctx, entityID); err != nil {
		return nil, err
	}
	list, err := uc.repo.FindAll(ctx, repository.ByColumn("entity_id", entityID))
	if err != nil {
		return nil, err
	}
	return toResellerList(list), nil
}

// Update reasigna la entidad y el estado. Primero valida el revendedor, luego la entidad.
func (uc *ResellerUseCase) Update(ctx context.Context, id string, in dto.UpdateResellerRequest) (*dto.ResellerResponse, error) {
	r, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || r == nil {
		return nil, err
	}
	if err := uc.requireEntity(ctx, in.EntityID); err != nil {
		return nil, err
	}
	r.EntityID = in.EntityID
	r.Status = dto.StatusOrDefault(in.Status)
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

// UpdateStatus activa o desactiva un revendedor.
func (uc *ResellerUseCase) UpdateStatus(ctx context.Context, id string, status bool) (*dto.ResellerResponse, error) {
	r, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || r == nil {
		return nil, err
	}
	r.Status = status
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toResellerResponse(r), nil
}

// Delete elimina un revendedor.
func (uc *ResellerUseCase) Delete(ctx context.Context, id string) error {
	r, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("revendedor %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, r)
}

func (uc *ResellerUseCase) requireEntity(ctx context.Context, entityID string) error {
	e, err := uc.entities.FindFirst(ctx, repository.ByID(entityID))
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%w: entidad %s", domain.ErrParentNotFound, entityID)
	}
	return nil
}

func toResellerList(list []*entity.Reseller) *dto.ListResponse[dto.ResellerResponse] {
	items := make([]dto.ResellerResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResellerResponse(r))
	}
	return dto.NewListResponse(items)
}

func toResellerResponse(r *entity.Reseller) *dto.ResellerResponse {
	return &dto.ResellerResponse{
		ID:        r.ID,
		EntityID:  r.EntityID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
