package entities

import (
	"strings"

	"github.com/facilitydesk/facility-api/internal/errors"
)

// RoomType categorizes a room. The set is closed; EXIT is the distinguished
// type used as a routing target for egress queries.
type RoomType string

// Room types
const (
	RoomTypeConsultation    RoomType = "CONSULTATION"
	RoomTypeSurgery         RoomType = "SURGERY"
	RoomTypeWaiting         RoomType = "WAITING"
	RoomTypeRecovery        RoomType = "RECOVERY"
	RoomTypeHospitalization RoomType = "HOSPITALIZATION"
	RoomTypeEmergency       RoomType = "EMERGENCY"
	RoomTypeStorage         RoomType = "STORAGE"
	RoomTypeRestroom        RoomType = "RESTROOM"
	RoomTypeKitchen         RoomType = "KITCHEN"
	RoomTypeOffice          RoomType = "OFFICE"
	RoomTypeCanteen         RoomType = "CANTEEN"
	RoomTypeCafe            RoomType = "CAFE"
	RoomTypeCommon          RoomType = "COMMON"
	RoomTypeBathroom        RoomType = "BATHROOM"
	RoomTypeLaboratory      RoomType = "LABORATORY"
	RoomTypePharmacy        RoomType = "PHARMACY"
	RoomTypeImaging         RoomType = "IMAGING"
	RoomTypeReception       RoomType = "RECEPTION"
	RoomTypeLaundry         RoomType = "LAUNDRY"
	RoomTypeMeeting         RoomType = "MEETING"
	RoomTypeLibrary         RoomType = "LIBRARY"
	RoomTypeChurch          RoomType = "CHURCH"
	RoomTypeExit            RoomType = "EXIT"
)

var roomTypes = map[RoomType]struct{}{
	RoomTypeConsultation: {}, RoomTypeSurgery: {}, RoomTypeWaiting: {},
	RoomTypeRecovery: {}, RoomTypeHospitalization: {}, RoomTypeEmergency: {},
	RoomTypeStorage: {}, RoomTypeRestroom: {}, RoomTypeKitchen: {},
	RoomTypeOffice: {}, RoomTypeCanteen: {}, RoomTypeCafe: {},
	RoomTypeCommon: {}, RoomTypeBathroom: {}, RoomTypeLaboratory: {},
	RoomTypePharmacy: {}, RoomTypeImaging: {}, RoomTypeReception: {},
	RoomTypeLaundry: {}, RoomTypeMeeting: {}, RoomTypeLibrary: {},
	RoomTypeChurch: {}, RoomTypeExit: {},
}

// ParseRoomType converts a textual room type to a RoomType, case-insensitively
func ParseRoomType(s string) (RoomType, error) {
	rt := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roomTypes[rt]; !ok {
		return "", errors.InvalidArgumentf("unknown room type: %q", s)
	}
	return rt, nil
}

// Role is the staff or visitor function governing room access permission
type Role string

// Roles
const (
	RoleDoctor        Role = "DOCTOR"
	RoleNurse         Role = "NURSE"
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleCleaner       Role = "CLEANER"
	RoleSecurity      Role = "SECURITY"
	RoleVisitor       Role = "VISITOR"
	RolePatient       Role = "PATIENT"
)

var roles = map[Role]struct{}{
	RoleDoctor: {}, RoleNurse: {}, RoleAdministrator: {}, RoleCleaner: {},
	RoleSecurity: {}, RoleVisitor: {}, RolePatient: {},
}

// ParseRole converts a textual role to a Role, case-insensitively
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roles[r]; !ok {
		return "", errors.InvalidArgumentf("unknown role: %q", s)
	}
	return r, nil
}
