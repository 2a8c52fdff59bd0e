package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// SoftwareUseCase casos de uso del catálogo de software.
type SoftwareUseCase struct {
	repo repository.Repository[entity.Software]
}

// NewSoftwareUseCase construye el caso de uso con el puerto de persistencia.
func NewSoftwareUseCase(repo repository.Repository[entity.Software]) *SoftwareUseCase {
	return &SoftwareUseCase{repo: repo}
}

// Create registra un software. Status es true si no viene en el payload.
func (uc *SoftwareUseCase) Create(ctx context.Context, in dto.CreateSoftwareRequest) (*dto.SoftwareResponse, error) {
	ts := now()
	sw := &entity.Software{
		Name:        in.Name,
		Description: in.Description,
		Status:      dto.StatusOrDefault(in.Status),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := uc.repo.Add(ctx, sw); err != nil {
		return nil, err
	}
	return toSoftwareResponse(sw), nil
}

// List devuelve todo el catálogo.
func (uc *SoftwareUseCase) List(ctx context.Context) (*dto.ListResponse[dto.SoftwareResponse], error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SoftwareResponse, 0, len(list))
	for _, sw := range list {
		items = append(items, *toSoftwareResponse(sw))
	}
	return dto.NewListResponse(items), nil
}

// GetByID obtiene un software por ID. Devuelve (nil, nil) si no existe.
func (uc *SoftwareUseCase) GetByID(ctx context.Context, id string) (*dto.SoftwareResponse, error) {
	sw, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || sw == nil {
		return nil, err
	}
	return toSoftwareResponse(sw), nil
}

// Update reemplaza nombre, descripción y estado. Devuelve (nil, nil) si no existe.
func (uc *SoftwareUseCase) Update(ctx context.Context, id string, in dto.UpdateSoftwareRequest) (*dto.SoftwareResponse, error) {
	return uc.mutate(ctx, id, func(sw *entity.Software) {
		sw.Name = in.Name
		sw.Description = in.Description
		sw.Status = dto.StatusOrDefault(in.Status)
	})
}

// UpdateStatus activa o desactiva un software.
func (uc *SoftwareUseCase) UpdateStatus(ctx context.Context, id string, status bool) (*dto.SoftwareResponse, error) {
	return uc.mutate(ctx, id, func(sw *entity.Software) { sw.Status = status })
}

// UpdateName renombra un software.
func (uc *SoftwareUseCase) UpdateName(ctx context.Context, id, name string) (*dto.SoftwareResponse, error) {
	return uc.mutate(ctx, id, func(sw *entity.Software) { sw.Name = name })
}

// Delete elimina un software. Falla con domain.ErrReferenced si tiene módulos.
func (uc *SoftwareUseCase) Delete(ctx context.Context, id string) error {
	sw, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil {
		return err
	}
	if sw == nil {
		return fmt.Errorf("software %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, sw)
}

// mutate busca por identidad, aplica fn, sella UpdatedAt y persiste.
func (uc *SoftwareUseCase) mutate(ctx context.Context, id string, fn func(*entity.Software)) (*dto.SoftwareResponse, error) {
	sw, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || sw == nil {
		return nil, err
	}
	fn(sw)
	sw.UpdatedAt = now()
	if err := uc.repo.Update(ctx, sw); err != nil {
		return nil, err
	}
	return toSoftwareResponse(sw), nil
}

func toSoftwareResponse(sw *entity.Software) *dto.SoftwareResponse {
	return &dto.SoftwareResponse{
		ID:          sw.ID,
		Name:        sw.Name,
		Description: sw.Description,
		Status:      sw.Status,
		CreatedAt:   sw.CreatedAt,
		UpdatedAt:   sw.UpdatedAt,
	}
}
