package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"fellowship_backend/internal/models"
	"fellowship_backend/internal/repositories"
	"fellowship_backend/internal/services/dto"
	"fellowship_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ExportService выгружает заявки и интейк-формы для офлайн-обработки.
// CSV пишется потоково, экранирование делает encoding/csv.
type ExportService struct {
	appRepo     repositories.ApplicationRepository
	startupRepo repositories.StartupRepository
}

func NewExportService(appRepo repositories.ApplicationRepository, startupRepo repositories.StartupRepository) *ExportService {
	return &ExportService{
		appRepo:     appRepo,
		startupRepo: startupRepo,
	}
}

var studentCSVHeader = []string{
	"id", "full_name", "pronouns", "grad_year", "school", "major", "email",
	"linkedin_profile", "portfolio_website", "role_preferences",
	"work_mode", "time_commitment", "is_us_citizen", "work_authorization",
	"previously_applied", "previously_participated", "has_upcoming_internship_offers",
	"how_did_you_hear", "referral_source", "additional_comments",
	"has_resume", "term", "status", "submitted_at", "reviewed_by", "review_notes",
}

// StudentsCSV пишет все заявки (с учетом фильтров) в CSV
func (s *ExportService) StudentsCSV(db *gorm.DB, filter repositories.ListFilter, w io.Writer) error {
	apps, err := s.appRepo.FindAll(db, filter)
	if err != nil {
		return apperrors.ErrDatabase(err, "export")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(studentCSVHeader); err != nil {
		return apperrors.InternalError(err)
	}

	for i := range apps {
		if err := cw.Write(studentCSVRow(&apps[i])); err != nil {
			return apperrors.InternalError(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// StudentsJSON пишет все заявки (с учетом фильтров) в JSON-массив
func (s *ExportService) StudentsJSON(db *gorm.DB, filter repositories.ListFilter, w io.Writer) error {
	apps, err := s.appRepo.FindAll(db, filter)
	if err != nil {
		return apperrors.ErrDatabase(err, "export")
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(dto.ToApplicationResponses(apps)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

var startupCSVHeader = []string{
	"id", "company_name", "website", "industry", "description", "stage",
	"team_size", "founded_year", "contact_name", "contact_title",
	"contact_email", "contact_phone", "operating_mode", "time_zone",
	"interns_supervisor", "has_hired_interns_previously", "number_of_interns_needed",
	"positions", "will_pay_interns", "pay_amount", "looking_for_permanent_intern",
	"project_description_url", "referral_source", "commitment_acknowledged",
	"term", "status", "submitted_at", "reviewed_by", "review_notes",
}

// StartupsCSV пишет все интейк-формы (с учетом фильтров) в CSV
func (s *ExportService) StartupsCSV(db *gorm.DB, filter repositories.ListFilter, w io.Writer) error {
	startups, err := s.startupRepo.FindAll(db, filter)
	if err != nil {
		return apperrors.ErrDatabase(err, "export")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(startupCSVHeader); err != nil {
		return apperrors.InternalError(err)
	}

	for i := range startups {
		if err := cw.Write(startupCSVRow(&startups[i])); err != nil {
			return apperrors.InternalError(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// StartupsJSON пишет все интейк-формы (с учетом фильтров) в JSON-массив
func (s *ExportService) StartupsJSON(db *gorm.DB, filter repositories.ListFilter, w io.Writer) error {
	startups, err := s.startupRepo.FindAll(db, filter)
	if err != nil {
		return apperrors.ErrDatabase(err, "export")
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(dto.ToStartupResponses(startups)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func studentCSVRow(app *models.StudentApplication) []string {
	return []string{
		app.ID,
		app.FullName,
		app.Pronouns,
		app.GradYear,
		app.School,
		app.Major,
		app.Email,
		app.LinkedinProfile,
		app.PortfolioWebsite,
		strings.Join(app.RolePreferences, "; "),
		app.WorkMode,
		app.TimeCommitment,
		app.IsUSCitizen,
		app.WorkAuthorization,
		formatBool(app.PreviouslyApplied),
		formatBool(app.PreviouslyParticipated),
		formatBool(app.HasUpcomingInternshipOffers),
		app.HowDidYouHear,
		app.ReferralSource,
		app.AdditionalComments,
		formatBool(app.HasResume()),
		app.Term,
		string(app.Status),
		formatTime(app.SubmittedAt),
		app.ReviewedBy,
		app.ReviewNotes,
	}
}

func startupCSVRow(startup *models.Startup) []string {
	return []string{
		startup.ID,
		startup.CompanyName,
		startup.Website,
		startup.Industry,
		startup.Description,
		startup.Stage,
		startup.TeamSize,
		startup.FoundedYear,
		startup.ContactName,
		startup.ContactTitle,
		startup.ContactEmail,
		startup.ContactPhone,
		startup.OperatingMode,
		startup.TimeZone,
		startup.InternsSupervisor,
		formatBool(startup.HasHiredInternsPreviously),
		fmt.Sprintf("%d", startup.NumberOfInternsNeeded),
		formatPositions(startup.Positions),
		startup.WillPayInterns,
		startup.PayAmount,
		startup.LookingForPermanentIntern,
		startup.ProjectDescriptionURL,
		startup.ReferralSource,
		formatBool(startup.CommitmentAcknowledged),
		startup.Term,
		string(startup.Status),
		formatTime(startup.SubmittedAt),
		startup.ReviewedBy,
		startup.ReviewNotes,
	}
}

// formatPositions сворачивает позиции в одну читаемую ячейку
func formatPositions(positions []models.Position) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		part := p.RoleType
		if p.Description != "" {
			part += ": " + p.Description
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " | ")
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
