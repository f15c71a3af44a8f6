package queries

import (
	"time"

	"pontomais/internal/domain/point"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanQuoteView is one row of a point's plan table
type PlanQuoteView struct {
	Period         string          `json:"period"`
	DurationDays   int             `json:"durationDays"`
	Price          decimal.Decimal `json:"price"`
	PerDay         decimal.Decimal `json:"perDay"`
	SavingsPercent *int            `json:"savingsPercent,omitempty"`
}

// PointView represents a listing as shown in the catalog
type PointView struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	Neighborhood  string          `json:"neighborhood"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Images        []string        `json:"images"`
	FootTraffic   string          `json:"footTraffic"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Features      []string        `json:"features"`
	RentalOptions []PlanQuoteView `json:"rentalOptions"`
	IsHidden      bool            `json:"isHidden"`
	Version       int64           `json:"version"`
}

type FilterOptionsView struct {
	States        []string `json:"states"`
	Cities        []string `json:"cities"`
	Neighborhoods []string `json:"neighborhoods"`
	Categories    []string `json:"categories"`
}

type CalendarDayView struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	IsPast     bool   `json:"isPast"`
	IsOccupied bool   `json:"isOccupied"`
	IsToday    bool   `json:"isToday"`
	IsSelected bool   `json:"isSelected"`
	Selectable bool   `json:"selectable"`
}

// CalendarView is the month grid for one point and plan
type CalendarView struct {
	PointID       uuid.UUID          `json:"pointId"`
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	Period        string             `json:"period"`
	LeadingBlanks int                `json:"leadingBlanks"`
	Days          []CalendarDayView  `json:"days"`
	OccupiedDates []string           `json:"occupiedDates"`
	Selected      *string            `json:"selected,omitempty"`
	Error         *AvailabilityError `json:"error,omitempty"`
	CanProceed    bool               `json:"canProceed"`
}

type AvailabilityError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AvailabilityView is the outcome of checking a start date against a plan
type AvailabilityView struct {
	Available bool               `json:"available"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Period    string             `json:"period"`
	Error     *AvailabilityError `json:"error,omitempty"`
}

// BookingView carries the frozen point snapshot and the computed status
type BookingView struct {
	ID              uuid.UUID       `json:"id"`
	TransactionCode string          `json:"transactionCode"`
	Point           point.Snapshot  `json:"point"`
	Period          string          `json:"period"`
	Price           decimal.Decimal `json:"price"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	UserEmail       string          `json:"userEmail"`
	Status          string          `json:"status"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	ProfileType string    `json:"profileType"`
	JoinDate    time.Time `json:"joinDate"`
}

type PartnerRequestView struct {
	ID                uuid.UUID  `json:"id"`
	OwnerName         string     `json:"ownerName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	EstablishmentName string     `json:"establishmentName"`
	CNPJ              string     `json:"cnpj"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	Description       string     `json:"description"`
	Features          []string   `json:"features"`
	Images            []string   `json:"images"`
	Prices            PricesView `json:"prices"`
	Status            string     `json:"status"`
	RequestDate       time.Time  `json:"requestDate"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	PointID           *uuid.UUID `json:"pointId,omitempty"`
}

type PricesView struct {
	Quinzenal  decimal.Decimal `json:"quinzenal"`
	Mensal     decimal.Decimal `json:"mensal"`
	Trimestral decimal.Decimal `json:"trimestral"`
}

type PartnerDashboardView struct {
	Requests []*PartnerRequestView `json:"requests"`
	Bookings []*BookingView        `json:"bookings"`
	Revenue  decimal.Decimal       `json:"revenue"`
}

type FinancialSummaryView struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	CompanyProfit  decimal.Decimal `json:"companyProfit"`
	PartnerRevenue decimal.Decimal `json:"partnerRevenue"`
	BookingCount   int             `json:"bookingCount"`
	ActiveBookings int             `json:"activeBookings"`
}

type UserMetricsView struct {
	UserView
	TotalInvested    decimal.Decimal `json:"totalInvested"`
	BookingCount     int             `json:"bookingCount"`
	HasActiveBooking bool            `json:"hasActiveBooking"`
	IsOwner          bool            `json:"isOwner"`
}

type PointMetricsView struct {
	PointView
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	BookingCount    int             `json:"bookingCount"`
	IsActive        bool            `json:"isActive"`
	TotalDaysRented int             `json:"totalDaysRented"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate"`
}

type FinancialsView struct {
	Summary         FinancialSummaryView  `json:"summary"`
	Users           []*UserMetricsView    `json:"users"`
	Points          []*PointMetricsView   `json:"points"`
	PendingRequests []*PartnerRequestView `json:"pendingRequests"`
}

// ExportDocument mirrors the four persisted collections under their storage keys
type ExportDocument struct {
	Users    []*UserView           `json:"pm_users_v1"`
	Points   []*PointView          `json:"pm_points_v1"`
	Bookings []*BookingView        `json:"pm_bookings_v1"`
	Requests []*PartnerRequestView `json:"pm_requests_v1"`
}
