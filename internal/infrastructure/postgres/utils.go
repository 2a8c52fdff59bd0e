package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Licencias-api/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isInvalidText indica un valor que no se puede convertir al tipo de la columna (p. ej. UUID mal formado).
func isInvalidText(err error) bool {
	return pgCode(err) == codeInvalidText
}

// writeError traduce errores de INSERT/UPDATE a errores de dominio, conservando el mensaje original.
func writeError(err error) error {
	switch {
	case pgCode(err) == codeForeignKeyViolation:
		return fmt.Errorf("%w: %w", domain.ErrParentNotFound, err)
	case pgCode(err) == codeNotNullViolation, pgCode(err) == codeCheckViolation, isInvalidText(err):
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	}
	return err
}

// deleteError traduce errores de DELETE: la FK con RESTRICT significa que el registro está referenciado.
func deleteError(err error) error {
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %w", domain.ErrReferenced, err)
	}
	return err
}
