package usecase

import "time"

// now devuelve la hora actual en UTC truncada a microsegundos (precisión de timestamptz),
// así la respuesta coincide con lo que devuelve una lectura posterior.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
