package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// ResellerHandler maneja las peticiones HTTP para el recurso Reseller.
type ResellerHandler struct {
	uc *usecase.ResellerUseCase
}

func NewResellerHandler(uc *usecase.ResellerUseCase) *ResellerHandler {
	return &ResellerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear revendedor
// @Tags         resellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateResellerRequest  true  "Entidad a registrar como revendedor"
// @Success      201   {object}  dto.ResellerResponse
// @Failure      400   {object}  dto.ErrorResponse  "validación o entidad inexistente"
// @Router       /api/resellers [post]
func (h *ResellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResellerRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar revendedores
// @Tags         resellers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.ResellerResponse]
// @Router       /api/resellers [get]
func (h *ResellerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener revendedor por ID
// @Tags         resellers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del revendedor"
// @Success      200  {object}  dto.ResellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resellers/{id} [get]
func (h *ResellerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	return h.reply(c, out, err)
}

// ListByEntity godoc
// @Summary      Listar revendedores de una entidad
// @Tags         resellers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.ListResponse[dto.ResellerResponse]
// @Failure      404  {object}  dto.ErrorResponse  "entidad inexistente"
// @Router       /api/resellers/by-entity/{id} [get]
func (h *ResellerHandler) ListByEntity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByEntity(c.UserContext(), id)
	if err != nil {
		return respondParentMissing(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar revendedor
// @Tags         resellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del revendedor"
// @Param        body  body  dto.UpdateResellerRequest  true  "Campos del revendedor"
// @Success      200   {object}  dto.ResellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resellers/{id} [put]
func (h *ResellerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateResellerRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return h.reply(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del revendedor
// @Tags         resellers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del revendedor"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ResellerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resellers/{id}/status [put]
func (h *ResellerHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, *in.Status)
	return h.reply(c, out, err)
}

// Delete godoc
// @Summary      Eliminar revendedor
// @Tags         resellers
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del revendedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resellers/{id} [delete]
func (h *ResellerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResellerHandler) reply(c *fiber.Ctx, out *dto.ResellerResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "revendedor no encontrado")
	}
	return c.JSON(out)
}
