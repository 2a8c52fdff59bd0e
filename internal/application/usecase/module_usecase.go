package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// ModuleUseCase casos de uso de los módulos de un software.
// Necesita el repositorio de software para validar la referencia al padre.
type ModuleUseCase struct {
	repo     repository.Repository[entity.Module]
	software repository.Repository[entity.Software]
}

// NewModuleUseCase construye el caso de uso.
func NewModuleUseCase(repo repository.Repository[entity.Module], software repository.Repository[entity.Software]) *ModuleUseCase {
	return &ModuleUseCase{repo: repo, software: software}
}

// Create registra un módulo. Devuelve domain.ErrParentNotFound si el software no existe;
// en ese caso no se persiste nada.
func (uc *ModuleUseCase) Create(ctx context.Context, in dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	if err := uc.requireSoftware(ctx, in.SoftwareID); err != nil {
		return nil, err
	}
	ts := now()
	m := &entity.Module{
		SoftwareID:  in.SoftwareID,
		Name:        in.Name,
		Description: in.Description,
		Status:      dto.StatusOrDefault(in.Status),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := uc.repo.Add(ctx, m); err != nil {
		return nil, err
	}
	return toModuleResponse(m), nil
}

// List devuelve todos los módulos.
func (uc *ModuleUseCase) List(ctx context.Context) (*dto.ListResponse[dto.ModuleResponse], error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toModuleList(list), nil
}

// GetByID obtiene un módulo por ID. Devuelve (nil, nil) si no existe.
func (uc *ModuleUseCase) GetByID(ctx context.Context, id string) (*dto.ModuleResponse, error) {
	m, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || m == nil {
		return nil, err
	}
	return toModuleResponse(m), nil
}

// ListBySoftware devuelve los módulos de un software.
// Software inexistente: domain.ErrParentNotFound. Sin módulos: lista vacía.
func (uc *ModuleUseCase) ListBySoftware(ctx context.Context, softwareID string) (*dto.ListResponse[dto.ModuleResponse], error) {
	if err := uc.requireSoftware(ctx, softwareID); err != nil {
		return nil, err
	}
	list, err := uc.repo.FindAll(ctx, repository.ByColumn("software_id", softwareID))
	if err != nil {
		return nil, err
	}
	return toModuleList(list), nil
}

// Update reemplaza todos los campos mutables, incluida la referencia al software.
// Orden de validación: primero el módulo (nil, nil si no existe), luego el software.
func (uc *ModuleUseCase) Update(ctx context.Context, id string, in dto.UpdateModuleRequest) (*dto.ModuleResponse, error) {
	m, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || m == nil {
		return nil, err
	}
	if err := uc.requireSoftware(ctx, in.SoftwareID); err != nil {
		return nil, err
	}
	m.SoftwareID = in.SoftwareID
	m.Name = in.Name
	m.Description = in.Description
	m.Status = dto.StatusOrDefault(in.Status)
	return uc.save(ctx, m)
}

// UpdateStatus activa o desactiva un módulo.
func (uc *ModuleUseCase) UpdateStatus(ctx context.Context, id string, status bool) (*dto.ModuleResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Module) { m.Status = status })
}

// UpdateName renombra un módulo.
func (uc *ModuleUseCase) UpdateName(ctx context.Context, id, name string) (*dto.ModuleResponse, error) {
	return uc.mutate(ctx, id, func(m *entity.Module) { m.Name = name })
}

// Delete elimina un módulo.
func (uc *ModuleUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("módulo %s: %w", id, domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, m)
}

func (uc *ModuleUseCase) requireSoftware(ctx context.Context, softwareID string) error {
	sw, err := uc.software.FindFirst(ctx, repository.ByID(softwareID))
	if err != nil {
		return err
	}
	if sw == nil {
		return fmt.Errorf("%w: software %s", domain.ErrParentNotFound, softwareID)
	}
	return nil
}

func (uc *ModuleUseCase) mutate(ctx context.Context, id string, fn func(*entity.Module)) (*dto.ModuleResponse, error) {
	m, err := uc.repo.FindFirst(ctx, repository.ByID(id))
	if err != nil || m == nil {
		return nil, err
	}
	fn(m)
	return uc.save(ctx, m)
}

func (uc *ModuleUseCase) save(ctx context.Context, m *entity.Module) (*dto.ModuleResponse, error) {
	m.UpdatedAt = now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toModuleResponse(m), nil
}

func toModuleList(list []*entity.Module) *dto.ListResponse[dto.ModuleResponse] {
	items := make([]dto.ModuleResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toModuleResponse(m))
	}
	return dto.NewListResponse(items)
}

func toModuleResponse(m *entity.Module) *dto.ModuleResponse {
	return &dto.ModuleResponse{
		ID:          m.ID,
		SoftwareID:  m.SoftwareID,
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
