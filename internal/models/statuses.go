package models

type UserType string
type UserRole string
type ApplicationStatus string
type StartupStatus string
type Recommendation string

const (
	UserTypeStudent UserType = "STUDENT"
	UserTypeStartup UserType = "STARTUP"
	UserTypeAdmin   UserType = "ADMIN"

	UserRoleUser  UserRole = "ROLE_USER"
	UserRoleAdmin UserRole = "ROLE_ADMIN"

	// Статусная машина заявок намеренно пермиссивная:
	// любой ADMIN-переход между четырьмя значениями допустим
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	StartupStatusSubmitted StartupStatus = "submitted"
	StartupStatusApproved  StartupStatus = "approved"
	StartupStatusActive    StartupStatus = "active"
	StartupStatusInactive  StartupStatus = "inactive"

	RecommendationStrongYes Recommendation = "STRONG_YES"
	RecommendationYes       Recommendation = "YES"
	RecommendationMaybe     Recommendation = "MAYBE"
	RecommendationNo        Recommendation = "NO"
)
