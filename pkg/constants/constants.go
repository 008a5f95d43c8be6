package constants

import "strings"

// Catálogos fijos del dominio. Se almacenan en minúsculas; las comparaciones
// de importación son insensibles a mayúsculas.
var EquipmentTypes = []string{
	"desktop",
	"laptop",
	"printer",
	"server",
	"router",
	"switch",
	"monitor",
	"radio_communication",
	"sim_chip",
	"roaming",
	"other",
}

var EquipmentStatuses = []string{
	"active",
	"maintenance",
	"out_of_service",
	"disposed",
}

const DefaultEquipmentStatus = "active"

func IsValidEquipmentType(v string) bool {
	return containsFold(EquipmentTypes, v)
}

func IsValidEquipmentStatus(v string) bool {
	return containsFold(EquipmentStatuses, v)
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
