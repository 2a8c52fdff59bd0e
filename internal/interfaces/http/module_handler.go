package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// ModuleHandler maneja las peticiones HTTP para el recurso Module.
type ModuleHandler struct {
	uc *usecase.ModuleUseCase
}

// NewModuleHandler construye el handler inyectando el caso de uso.
func NewModuleHandler(uc *usecase.ModuleUseCase) *ModuleHandler {
	return &ModuleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear módulo
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateModuleRequest  true  "Datos del módulo"
// @Success      201   {object}  dto.ModuleResponse
// @Failure      400   {object}  dto.ErrorResponse  "validación o software inexistente"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/modules [post]
func (h *ModuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateModuleRequest
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
// @Summary      Listar módulos
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.ModuleResponse]
// @Router       /api/modules [get]
func (h *ModuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener módulo por ID
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del módulo"
// @Success      200  {object}  dto.ModuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modules/{id} [get]
func (h *ModuleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	return h.reply(c, out, err)
}

// ListBySoftware godoc
// @Summary      Listar módulos de un software
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del software"
// @Success      200  {object}  dto.ListResponse[dto.ModuleResponse]
// @Failure      404  {object}  dto.ErrorResponse  "software inexistente"
// @Router       /api/modules/by-software/{id} [get]
func (h *ModuleHandler) ListBySoftware(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListBySoftware(c.UserContext(), id)
	if err != nil {
		return respondParentMissing(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar módulo
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del módulo"
// @Param        body  body  dto.UpdateModuleRequest  true  "Campos del módulo"
// @Success      200   {object}  dto.ModuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modules/{id} [put]
func (h *ModuleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateModuleRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return h.reply(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del módulo
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del módulo"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ModuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modules/{id}/status [put]
func (h *ModuleHandler) UpdateStatus(c *fiber.Ctx) error {
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
// @Summary      Renombrar módulo
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del módulo"
// @Param        body  body  dto.UpdateNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ModuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modules/{id}/name [put]
func (h *ModuleHandler) UpdateName(c *fiber.Ctx) error {
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
// @Summary      Eliminar módulo
// @Tags         modules
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del módulo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modules/{id} [delete]
func (h *ModuleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ModuleHandler) reply(c *fiber.Ctx, out *dto.ModuleResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "módulo no encontrado")
	}
	return c.JSON(out)
}
