package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// SoftwareHandler maneja las peticiones HTTP para el recurso Software.
type SoftwareHandler struct {
	uc *usecase.SoftwareUseCase
}

// NewSoftwareHandler construye el handler inyectando el caso de uso.
func NewSoftwareHandler(uc *usecase.SoftwareUseCase) *SoftwareHandler {
	return &SoftwareHandler{uc: uc}
}

// Create godoc
// @Summary      Crear software
// @Tags         software
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSoftwareRequest  true  "Datos del software"
// @Success      201   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/software [post]
func (h *SoftwareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSoftwareRequest
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
// @Summary      Listar software
// @Tags         software
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.SoftwareResponse]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/software [get]
func (h *SoftwareHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener software por ID
// @Tags         software
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del software"
// @Success      200  {object}  dto.SoftwareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/software/{id} [get]
func (h *SoftwareHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "software no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar software
// @Tags         software
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del software"
// @Param        body  body  dto.UpdateSoftwareRequest  true  "Campos del software"
// @Success      200   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/software/{id} [put]
func (h *SoftwareHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateSoftwareRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return h.reply(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del software
// @Tags         software
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del software"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/software/{id}/status [put]
func (h *SoftwareHandler) UpdateStatus(c *fiber.Ctx) error {
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

// UpdateName godoc
// @Summary      Renombrar software
// @Tags         software
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del software"
// @Param        body  body  dto.UpdateNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.SoftwareResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/software/{id}/name [put]
func (h *SoftwareHandler) UpdateName(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateNameRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateName(c.UserContext(), id, in.Name)
	return h.reply(c, out, err)
}

// Delete godoc
// @Summary      Eliminar software
// @Description  Falla si el software todavía tiene módulos.
// @Tags         software
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del software"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/software/{id} [delete]
func (h *SoftwareHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SoftwareHandler) reply(c *fiber.Ctx, out *dto.SoftwareResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "software no encontrado")
	}
	return c.JSON(out)
}
