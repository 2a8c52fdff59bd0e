package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// EntityHandler maneja las peticiones HTTP para entidades organizacionales.
type EntityHandler struct {
	uc *usecase.EntityUseCase
}

// NewEntityHandler construye el handler inyectando el caso de uso.
func NewEntityHandler(uc *usecase.EntityUseCase) *EntityHandler {
	return &EntityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entidad organizacional
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEntityRequest  true  "Datos de la entidad"
// @Success      201   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entities [post]
func (h *EntityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntityRequest
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
// @Summary      Listar entidades organizacionales
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResponse[dto.EntityResponse]
// @Router       /api/entities [get]
func (h *EntityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entidad por ID
// @Tags         entities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.EntityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entities/{id} [get]
func (h *EntityHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	return h.reply(c, out, err)
}

// Update godoc
// @Summary      Reemplazar entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID de la entidad"
// @Param        body  body  dto.UpdateEntityRequest  true  "Campos de la entidad"
// @Success      200   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id} [put]
func (h *EntityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateEntityRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return h.reply(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID de la entidad"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id}/status [put]
func (h *EntityHandler) UpdateStatus(c *fiber.Ctx) error {
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
// @Summary      Renombrar entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID de la entidad"
// @Param        body  body  dto.UpdateNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id}/name [put]
func (h *EntityHandler) UpdateName(c *fiber.Ctx) error {
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

// UpdateAddress godoc
// @Summary      Cambiar dirección de la entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la entidad"
// @Param        body  body  dto.UpdateAddressRequest  true  "Nueva dirección"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id}/address [put]
func (h *EntityHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAddressRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateAddress(c.UserContext(), id, in.Address)
	return h.reply(c, out, err)
}

// UpdatePhone godoc
// @Summary      Cambiar teléfono de la entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID de la entidad"
// @Param        body  body  dto.UpdatePhoneRequest  true  "Nuevo teléfono"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id}/phone [put]
func (h *EntityHandler) UpdatePhone(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePhoneRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdatePhone(c.UserContext(), id, in.Phone)
	return h.reply(c, out, err)
}

// UpdateType godoc
// @Summary      Cambiar tipo de la entidad
// @Tags         entities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID de la entidad"
// @Param        body  body  dto.UpdateTypeRequest  true  "Nuevo tipo (client, distributor, reseller, partner)"
// @Success      200   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entities/{id}/type [put]
func (h *EntityHandler) UpdateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateTypeRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateType(c.UserContext(), id, in.Type)
	return h.reply(c, out, err)
}

// Delete godoc
// @Summary      Eliminar entidad
// @Description  Falla si la entidad todavía tiene revendedores.
// @Tags         entities
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la entidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/entities/{id} [delete]
func (h *EntityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EntityHandler) reply(c *fiber.Ctx, out *dto.EntityResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "entidad no encontrada")
	}
	return c.JSON(out)
}
