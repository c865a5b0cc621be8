package user

type Permission string

const (
	// Invitations
	PermissionInvitationManage Permission = "invitation.manage"

	// Data-protection settings
	PermissionRetentionManage Permission = "retention.manage"

	// Events and shifts
	PermissionEventCreate  Permission = "event.create"
	PermissionEventViewAll Permission = "event.view_all"
	PermissionShiftManage  Permission = "shift.manage"

	// Incident reports
	PermissionReportSubmit    Permission = "report.submit"
	PermissionReportViewOwn   Permission = "report.view_own"
	PermissionReportViewEvent Permission = "report.view_event"

	// Directory
	PermissionUserViewAll Permission = "user.view_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionInvitationManage,
		PermissionRetentionManage,
		PermissionEventCreate,
		PermissionEventViewAll,
		PermissionShiftManage,
		PermissionReportSubmit,
		PermissionReportViewOwn,
		PermissionReportViewEvent,
		PermissionUserViewAll,
	},
	RoleOrganizer: {
		// Organizer runs events and reads reports for their own events
		PermissionEventCreate,
		PermissionEventViewAll,
		PermissionShiftManage,
		PermissionReportSubmit,
		PermissionReportViewOwn,
		PermissionReportViewEvent,
		PermissionUserViewAll,
	},
	RoleTeamMember: {
		// Team member works shifts and reports incidents
		PermissionReportSubmit,
		PermissionReportViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
