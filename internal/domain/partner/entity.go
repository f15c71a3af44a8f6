package partner

import (
	"fmt"
	"strings"
	"time"

	"pontomais/internal/domain/point"

	"github.com/google/uuid"
)

// Submission is the partner registration form.
type Submission struct {
	OwnerName         string
	Email             string
	Phone             string
	EstablishmentName string
	CNPJ              string
	Address           string
	City              string
	Description       string
	Features          []string
	Images            []string
	Prices            Prices
}

// Edit is a partner's change to its own request. Empty Images keeps the gallery.
type Edit struct {
	EstablishmentName string
	Phone             string
	Address           string
	City              string
	Description       string
	Features          []string
	Images            []string
	Prices            Prices
}

type Request struct {
	id          uuid.UUID
	submission  Submission
	status      Status
	requestDate time.Time
	resolvedAt  *time.Time
	pointID     *uuid.UUID
}

func Submit(s Submission, now time.Time) (*Request, error) {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	required := []struct{ field, value string }{
		{"ownerName", s.OwnerName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"establishmentName", s.EstablishmentName},
		{"cnpj", s.CNPJ},
		{"address", s.Address},
		{"city", s.City},
		{"description", s.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%s: %w", r.field, ErrMissingField)
		}
	}
	if err := s.Prices.Validate(); err != nil {
		return nil, err
	}

	s.Features = nonNil(s.Features)
	s.Images = nonNil(s.Images)
	return &Request{
		id:          uuid.New(),
		submission:  s,
		status:      StatusPending,
		requestDate: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	s Submission,
	status Status,
	requestDate time.Time,
	resolvedAt *time.Time,
	pointID *uuid.UUID,
) *Request {
	s.Features = nonNil(s.Features)
	s.Images = nonNil(s.Images)
	return &Request{
		id:          id,
		submission:  s,
		status:      status,
		requestDate: requestDate,
		resolvedAt:  resolvedAt,
		pointID:     pointID,
	}
}

// Approve is a one-time transition out of pending. The returned details describe
// the listing to create; the caller links it back with LinkPoint.
func (r *Request) Approve(now time.Time) (point.Details, error) {
	if r.status != StatusPending {
		return point.Details{}, ErrRequestAlreadyResolved
	}
	d, err := r.PointDetails()
	if err != nil {
		return point.Details{}, err
	}
	r.status = StatusApproved
	r.resolvedAt = &now
	return d, nil
}

func (r *Request) Reject(now time.Time) error {
	if r.status != StatusPending {
		return ErrRequestAlreadyResolved
	}
	r.status = StatusRejected
	r.resolvedAt = &now
	return nil
}

func (r *Request) LinkPoint(id uuid.UUID) {
	r.pointID = &id
}

// ApplyEdit updates the request. When it is linked to a listing, the second result
// carries the changes to propagate.
func (r *Request) ApplyEdit(e Edit) (*point.ListingEdit, error) {
	if strings.TrimSpace(e.EstablishmentName) == "" {
		return nil, fmt.Errorf("establishmentName: %w", ErrMissingField)
	}
	if strings.TrimSpace(e.City) == "" {
		return nil, fmt.Errorf("city: %w", ErrMissingField)
	}
	if err := e.Prices.Validate(); err != nil {
		return nil, err
	}

	s := r.submission
	s.EstablishmentName = e.EstablishmentName
	if strings.TrimSpace(e.Phone) != "" {
		s.Phone = e.Phone
	}
	if strings.TrimSpace(e.Address) != "" {
		s.Address = e.Address
	}
	s.City = e.City
	s.Description = e.Description
	s.Features = nonNil(e.Features)
	if len(e.Images) > 0 {
		s.Images = append([]string{}, e.Images...)
	}
	s.Prices = e.Prices
	r.submission = s

	if r.status != StatusApproved || r.pointID == nil {
		return nil, nil
	}
	opts, err := s.Prices.Options()
	if err != nil {
		return nil, err
	}
	return &point.ListingEdit{
		Title:       s.EstablishmentName,
		Location:    s.Address,
		City:        s.City,
		Description: s.Description,
		Features:    s.Features,
		Images:      e.Images,
		Options:     opts,
	}, nil
}

// PointDetails derives a listing from the request.
func (r *Request) PointDetails() (point.Details, error) {
	s := r.submission
	opts, err := s.Prices.Options()
	if err != nil {
		return point.Details{}, err
	}
	images := s.Images
	if len(images) == 0 {
		images = []string{DefaultImage}
	}
	return point.Details{
		Title:        s.EstablishmentName,
		Location:     s.Address,
		Neighborhood: NeighborhoodOf(s.Address),
		City:         s.City,
		Images:       append([]string{}, images...),
		FootTraffic:  point.FootTrafficMedium,
		Description:  s.Description,
		Category:     DefaultCategory,
		Features:     append([]string{}, s.Features...),
		Options:      opts,
	}, nil
}

// NeighborhoodOf reads the second comma-separated part of an address.
func NeighborhoodOf(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return DefaultNeighborhood
	}
	if n := strings.TrimSpace(parts[1]); n != "" {
		return n
	}
	return DefaultNeighborhood
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) Submission() Submission { return r.submission }
func (r *Request) Email() string          { return r.submission.Email }
func (r *Request) Status() Status         { return r.status }
func (r *Request) RequestDate() time.Time { return r.requestDate }
func (r *Request) ResolvedAt() *time.Time { return r.resolvedAt }
func (r *Request) PointID() *uuid.UUID    { return r.pointID }
func (r *Request) IsPending() bool        { return r.status == StatusPending }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
