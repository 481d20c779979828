package authorization

import (
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireScheduleManagement gates routes on the can-manage-schedule
// capability (admins and supervisors).
func RequireScheduleManagement() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.CanManageSchedule() {
			c.JSON(403, gin.H{
				"error": "schedule management access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLeaveApproval gates routes on the can-approve-leave capability.
func RequireLeaveApproval() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.CanApproveLeave() {
			c.JSON(403, gin.H{
				"error": "leave approval access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
