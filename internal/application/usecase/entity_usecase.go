package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// EntityUseCase casos de uso de entidades organizacionales (clientes, distribuidores, etc.).
type EntityUseCase struct {
	repo repository.Repository[entity.OrganizationalEntity]
}

// NewEntityUseCase construye el caso de uso.
func NewEntityUseCase(repo repository.Repository[entity.OrganizationalEntity]) *EntityUseCase {
	return &EntityUseCase{repo: repo}
}

// Create registra una entidad organizacional.
func (uc *EntityUseCase) Create(ctx context.Context, in dto.CreateEntityRequest) (*dto.EntityResponse, error) {
	t, err := parseEntityType(in.Type)
	if err != nil {
		return nil, err
	}
	ts := now()
	e := &entity.OrganizationalEntity{
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    dto.StatusOrDefault(in.Status),
		Type:      t,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := uc.repo.Add(ctx, e); err != nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

// List devuelve todas las entidades.
func (uc *EntityUseCase) List(ctx context.Context) (*dto.ListResponse[dto.EntityResponse], error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntityResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntityResponse(e))
	}
	return dto.NewListResponse(items), nil
}

// GetByID obtiene una entidad por ID. Devuelve (nil, nil) si no existe.
func (uc *EntityUseCase) GetByID(ctx context.Context, id string) (*dto.EntityResponse, error) {
	e, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || e == nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

// Update reemplaza todos los campos mutables.
func (uc *EntityUseCase) Update(ctx context.Context, id string, in dto.UpdateEntityRequest) (*dto.EntityResponse, error) {
	t, err := parseEntityType(in.Type)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) {
		e.Name = in.Name
		e.Address = in.Address
		e.Phone = in.Phone
		e.Type = t
		e.Status = dto.StatusOrDefault(in.Status)
	})
}

func (uc *EntityUseCase) UpdateStatus(ctx context.Context, id string, status bool) (*dto.EntityResponse, error) {
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) { e.Status = status })
}

func (uc *EntityUseCase) UpdateName(ctx context.Context, id, name string) (*dto.EntityResponse, error) {
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) { e.Name = name })
}

func (uc *EntityUseCase) UpdateAddress(ctx context.Context, id, address string) (*dto.EntityResponse, error) {
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) { e.Address = address })
}

func (uc *EntityUseCase) UpdatePhone(ctx context.Context, id, phone string) (*dto.EntityResponse, error) {
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) { e.Phone = phone })
}

// UpdateType cambia la clasificación. Tipos fuera del catálogo: domain.ErrInvalidInput.
func (uc *EntityUseCase) UpdateType(ctx context.Context, id, typ string) (*dto.EntityResponse, error) {
	t, err := parseEntityType(typ)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, id, func(e *entity.OrganizationalEntity) { e.Type = t })
}

// Delete elimina una entidad. Falla con domain.ErrReferenced si tiene revendedores.
func (uc *EntityUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("entidad %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, e)
}

func (uc *EntityUseCase) mutate(ctx context.Context, id string, fn func(*entity.OrganizationalEntity)) (*dto.EntityResponse, error) {
	e, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || e == nil {
		return nil, err
	}
	fn(e)
	e.UpdatedAt = now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEntityResponse(e), nil
}

func parseEntityType(s string) (entity.EntityType, error) {
	t := entity.EntityType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: tipo de entidad %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toEntityResponse(e *entity.OrganizationalEntity) *dto.EntityResponse {
	return &dto.EntityResponse{
		ID:        e.ID,
		Name:      e.Name,
		Address:   e.Address,
		Phone:     e.Phone,
		Status:    e.Status,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
