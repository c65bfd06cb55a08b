package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
)

// TimestampFormat renders timestamps as fixed-width RFC 3339 in UTC, so
// their text sorts the same way as the instants they represent.
const TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// flexFloat accepts a JSON number or a string holding one.
type flexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexFloat) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

func (f *flexFloat) ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

// flexInt accepts a JSON number or a string holding one. The value must be integral.
type flexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *flexInt) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		return err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return fmt.Errorf("%w: %v is not an integer", domain.ErrMalformedNumber, v)
	}
	*n = flexInt(v)
	return nil
}

func (n *flexInt) ptr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func parseNumber(data []byte) (float64, error) {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", domain.ErrMalformedNumber, err)
		}
		raw = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedNumber, raw)
	}
	return v, nil
}

// amenityRefs accepts a list of amenity IDs or of objects carrying an "id".
type amenityRefs []string

// UnmarshalJSON implements json.Unmarshaler.
func (a *amenityRefs) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	refs := make([]string, 0, len(items))
	for _, item := range items {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			refs = append(refs, id)
			continue
		}
		var obj struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return fmt.Errorf("amenity reference must be an id or an object with an id: %w", err)
		}
		refs = append(refs, obj.ID)
	}
	*a = refs
	return nil
}

// User requests and responses

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	Email     string  `json:"email"      validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Password  *string `json:"password"`
	IsAdmin   bool    `json:"is_admin"`
}

func (r *CreateUserRequest) toInput() service.CreateUserInput {
	return service.CreateUserInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsAdmin:   r.IsAdmin,
		Password:  r.Password,
	}
}

// UpdateUserRequest defines the payload for a partial user update.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsAdmin   *bool   `json:"is_admin"`
	Password  *string `json:"password"`
}

func (r *UpdateUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsAdmin:   r.IsAdmin,
		Password:  r.Password,
	}
}

// UserResponse is the wire form of a user. It never carries the password hash.
type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	IsAdmin   bool     `json:"is_admin"`
	Places    []string `json:"places"`
	Reviews   []string `json:"reviews"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
		Places:    idStrings(u.PlaceIDs),
		Reviews:   idStrings(u.ReviewIDs),
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// Amenity requests and responses

// CreateAmenityRequest defines the payload for creating an amenity.
type CreateAmenityRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// UpdateAmenityRequest defines the payload for a partial amenity update.
type UpdateAmenityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateAmenityRequest) toPatch() domain.AmenityPatch {
	return domain.AmenityPatch{Name: r.Name, Description: r.Description}
}

// AmenityResponse is the wire form of an amenity.
type AmenityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PlaceIDs    []string `json:"place_ids"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func amenityToResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		PlaceIDs:    idStrings(a.PlaceIDs),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func amenitiesToResponse(amenities []*domain.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		out[i] = amenityToResponse(a)
	}
	return out
}

// Place requests and responses

// CreatePlaceRequest defines the payload for creating a place. The price may
// also be sent as price_per_night.
type CreatePlaceRequest struct {
	Title         string      `json:"title"           validate:"required"`
	Description   string      `json:"description"`
	Price         *flexFloat  `json:"price"           validate:"required"`
	PricePerNight *flexFloat  `json:"price_per_night"`
	Latitude      *flexFloat  `json:"latitude"`
	Longitude     *flexFloat  `json:"longitude"`
	OwnerID       string      `json:"owner_id"        validate:"required"`
	Amenities     amenityRefs `json:"amenities"`
}

func (r *CreatePlaceRequest) normalize() {
	if r.Price == nil {
		r.Price = r.PricePerNight
	}
}

func (r *CreatePlaceRequest) toInput() service.CreatePlaceInput {
	in := service.CreatePlaceInput{
		Title:       r.Title,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		AmenityIDs:  r.Amenities,
	}
	if r.Price != nil {
		in.Price = float64(*r.Price)
	}
	if r.Latitude != nil {
		in.Latitude = float64(*r.Latitude)
	}
	if r.Longitude != nil {
		in.Longitude = float64(*r.Longitude)
	}
	return in
}

// UpdatePlaceRequest defines the payload for a partial place update. A
// present amenities list replaces the current one.
type UpdatePlaceRequest struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	Price         *flexFloat   `json:"price"`
	PricePerNight *flexFloat   `json:"price_per_night"`
	Latitude      *flexFloat   `json:"latitude"`
	Longitude     *flexFloat   `json:"longitude"`
	OwnerID       *string      `json:"owner_id"`
	Amenities     *amenityRefs `json:"amenities"`
}

func (r *UpdatePlaceRequest) normalize() {
	if r.Price == nil {
		r.Price = r.PricePerNight
	}
}

func (r *UpdatePlaceRequest) toInput() service.UpdatePlaceInput {
	in := service.UpdatePlaceInput{
		PlacePatch: domain.PlacePatch{
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price.ptr(),
			Latitude:    r.Latitude.ptr(),
			Longitude:   r.Longitude.ptr(),
		},
		OwnerID: r.OwnerID,
	}
	if r.Amenities != nil {
		ids := []string(*r.Amenities)
		in.AmenityIDs = &ids
	}
	return in
}

// PlaceResponse is the wire form of a place.
type PlaceResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenity_ids"`
	ReviewIDs   []string `json:"review_ids"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func placeToResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID.String(),
		AmenityIDs:  idStrings(p.AmenityIDs),
		ReviewIDs:   idStrings(p.ReviewIDs),
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

// OwnerSummary is the part of a user shown inside a place.
type OwnerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PlaceDetailsResponse is a place with its resolved references and average rating.
type PlaceDetailsResponse struct {
	PlaceResponse
	Owner         *OwnerSummary     `json:"owner"`
	Amenities     []AmenityResponse `json:"amenities"`
	Reviews       []ReviewResponse  `json:"reviews"`
	AverageRating float64           `json:"average_rating"`
}

func placeDetailsToResponse(d *service.PlaceDetails) PlaceDetailsResponse {
	resp := PlaceDetailsResponse{
		PlaceResponse: placeToResponse(d.Place),
		Amenities:     amenitiesToResponse(d.Amenities),
		Reviews:       reviewsToResponse(d.Reviews),
		AverageRating: d.AverageRating,
	}
	if d.Owner != nil {
		resp.Owner = &OwnerSummary{
			ID:        d.Owner.ID.String(),
			FirstName: d.Owner.FirstName,
			LastName:  d.Owner.LastName,
			Email:     d.Owner.Email,
		}
	}
	return resp
}

// AmenityLinkResponse confirms a place/amenity association.
type AmenityLinkResponse struct {
	Message   string `json:"message"`
	PlaceID   string `json:"place_id"`
	AmenityID string `json:"amenity_id"`
}

// Review requests and responses

// CreateReviewRequest defines the payload for creating a review. The comment
// may also be sent as text.
type CreateReviewRequest struct {
	Rating  *flexInt `json:"rating"   validate:"required"`
	Comment string   `json:"comment"  validate:"required"`
	Text    string   `json:"text"`
	UserID  string   `json:"user_id"  validate:"required"`
	PlaceID string   `json:"place_id" validate:"required"`
}

func (r *CreateReviewRequest) normalize() {
	if r.Comment == "" {
		r.Comment = r.Text
	}
}

func (r *CreateReviewRequest) toInput() service.CreateReviewInput {
	in := service.CreateReviewInput{
		Comment: r.Comment,
		UserID:  r.UserID,
		PlaceID: r.PlaceID,
	}
	if r.Rating != nil {
		in.Rating = int(*r.Rating)
	}
	return in
}

// UpdateReviewRequest defines the payload for a partial review update.
// Author and place cannot change and are ignored if sent.
type UpdateReviewRequest struct {
	Rating  *flexInt `json:"rating"`
	Comment *string  `json:"comment"`
	Text    *string  `json:"text"`
}

func (r *UpdateReviewRequest) normalize() {
	if r.Comment == nil {
		r.Comment = r.Text
	}
}

func (r *UpdateReviewRequest) toPatch() domain.ReviewPatch {
	return domain.ReviewPatch{Rating: r.Rating.ptr(), Comment: r.Comment}
}

// ReviewResponse is the wire form of a review.
type ReviewResponse struct {
	ID        string `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	UserID    string `json:"user_id"`
	PlaceID   string `json:"place_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func reviewToResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		UserID:    r.UserID.String(),
		PlaceID:   r.PlaceID.String(),
		CreatedAt: formatTime(r.CreatedAt),
		UpdatedAt: formatTime(r.UpdatedAt),
	}
}

func reviewsToResponse(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = reviewToResponse(r)
	}
	return out
}
