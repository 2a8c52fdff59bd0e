package schema

import "github.com/jhoicas/Licencias-api/internal/domain/entity"

// Nombres de tabla (deben coincidir con las migraciones SQL).
const (
	TableSoftware  = "software"
	TableModules   = "modules"
	TableEntities  = "organizational_entities"
	TableResellers = "resellers"
)

// Software metadata de la tabla software.
var Software = Table[entity.Software]{
	Name:     TableSoftware,
	Columns:  []string{"id", "name", "description", "status", "created_at", "updated_at"},
	Required: []string{"name"},
	Values: func(s *entity.Software) []any {
		return []any{s.ID, s.Name, s.Description, s.Status, s.CreatedAt, s.UpdatedAt}
	},
	ID: func(s *entity.Software) *string { return &s.ID },
}

// Modules metadata de la tabla modules.
var Modules = Table[entity.Module]{
	Name:     TableModules,
	Columns:  []string{"id", "software_id", "name", "description", "status", "created_at", "updated_at"},
	Required: []string{"software_id", "name"},
	Values: func(m *entity.Module) []any {
		return []any{m.ID, m.SoftwareID, m.Name, m.Description, m.Status, m.CreatedAt, m.UpdatedAt}
	},
	ID: func(m *entity.Module) *string { return &m.ID },
}

// Entities metadata de la tabla organizational_entities.
var Entities = Table[entity.OrganizationalEntity]{
	Name:     TableEntities,
	Columns:  []string{"id", "name", "address", "phone", "status", "type", "created_at", "updated_at"},
	Required: []string{"name", "type"},
	Values: func(e *entity.OrganizationalEntity) []any {
		return []any{e.ID, e.Name, e.Address, e.Phone, e.Status, string(e.Type), e.CreatedAt, e.UpdatedAt}
	},
	ID: func(e *entity.OrganizationalEntity) *string { return &e.ID },
}

// Resellers metadata de la tabla resellers.
var Resellers = Table[entity.Reseller]{
	Name:     TableResellers,
	Columns:  []string{"id", "entity_id", "status", "created_at"},
	Required: []string{"entity_id"},
	Values: func(r *entity.Reseller) []any {
		return []any{r.ID, r.EntityID, r.Status, r.CreatedAt}
	},
	ID: func(r *entity.Reseller) *string { return &r.ID },
}

// Relationships claves foráneas del modelo. Ambas son ON DELETE RESTRICT.
var Relationships = Relations{
	{Table: TableModules, Column: "software_id", References: TableSoftware, OnDelete: Restrict},
	{Table: TableResellers, Column: "entity_id", References: TableEntities, OnDelete: Restrict},
}
