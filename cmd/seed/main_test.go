package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Licencias-api/pkg/config"
)

func TestCheckDriver_MemoriaFalla(t *testing.T) {
	err := checkDriver(config.DriverMemory)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}

func TestCheckDriver_PostgresOK(t *testing.T) {
	assert.NoError(t, checkDriver(config.DriverPostgres))
}
