package authz

import "github.com/agendasalud/clinic-agenda/internal/models"

// Capacidades consultadas por los guards genéricos, en vez de comparar
// strings de rol repartidas por los handlers.
type Capability string

const (
	CapReadAppointments   Capability = "read:appointments"
	CapManageAppointments Capability = "manage:appointments"
	CapReadPatients       Capability = "read:patients"
	CapCreatePatients     Capability = "create:patients"
	CapManageSchedule     Capability = "manage:schedule"
	CapManageSpecialties  Capability = "manage:specialties"
	CapManageCenter       Capability = "manage:center"
)

// Tabla estática rol → capacidades. admin tiene todo; member opera la
// agenda diaria; limited sólo mira.
var roleCapabilities = map[string]map[Capability]bool{
	models.RoleAdmin: {
		CapReadAppointments:   true,
		CapManageAppointments: true,
		CapReadPatients:       true,
		CapCreatePatients:     true,
		CapManageSchedule:     true,
		CapManageSpecialties:  true,
		CapManageCenter:       true,
	},
	models.RoleMember: {
		CapReadAppointments:   true,
		CapManageAppointments: true,
		CapReadPatients:       true,
		CapCreatePatients:     true,
		CapManageSchedule:     true,
	},
	models.RoleLimited: {
		CapReadAppointments: true,
		CapReadPatients:     true,
	},
}

func Can(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	return caps[cap]
}
