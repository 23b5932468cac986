package home

import (
	"testing"

	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/stretchr/testify/assert"
)

func TestPathForRole(t *testing.T) {
	assert.Equal(t, "/claims", PathForRole(models.RoleLecturer))
	assert.Equal(t, "/review", PathForRole(models.RoleCoordinator))
	assert.Equal(t, "/review", PathForRole(models.RoleAcademicManager))
	assert.Equal(t, "", PathForRole(models.RoleUnknown))
	assert.Equal(t, "", PathForRole(models.Role("auditor")))
}
