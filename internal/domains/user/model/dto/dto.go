package dto

import (
	"mime/multipart"

	"linka/internal/domains/user/model"
	"linka/shared"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	gModel "linka/shared/model"
	"linka/shared/timezone"
)

// NewUser builds the row created on first sign-in or local sign-up.
func NewUser(id, email, fullName string, hashedPassword *string) model.User {
	now := timezone.Now()

	return model.User{
		ID:                 id,
		Email:              email,
		FullName:           fullName,
		Password:           hashedPassword,
		Role:               constant.RoleUser,
		VerificationStatus: model.VerificationUnverified,
		Active:             true,
		Metadata:           gModel.NewMetadata(now, id),
	}
}

type UserResponse struct {
	ID                   string  `json:"id"`
	Email                string  `json:"email"`
	FullName             string  `json:"full_name"`
	Phone                *string `json:"phone,omitempty"`
	Role                 string  `json:"role"`
	VerificationStatus   string  `json:"verification_status"`
	VerificationDocument *string `json:"verification_document,omitempty"`
	VerificationNote     *string `json:"verification_note,omitempty"`
	CanOfferRides        bool    `json:"can_offer_rides"`
	CanOfferStays        bool    `json:"can_offer_stays"`
	Rating               float64 `json:"rating"`
	RatingCount          int     `json:"rating_count"`
	ProfileImage         *string `json:"profile_image,omitempty"`
	LastLogin            *string `json:"last_login,omitempty"`
	Active               bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Role = model.Role
	r.VerificationStatus = model.VerificationStatus
	r.VerificationDocument = model.VerificationDocument
	r.VerificationNote = model.VerificationNote
	r.CanOfferRides = model.CanOfferRides
	r.CanOfferStays = model.CanOfferStays
	r.Rating = model.Rating
	r.RatingCount = model.RatingCount
	r.ProfileImage = model.ProfileImage
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

// PublicUserResponse is what other marketplace users may see.
type PublicUserResponse struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"full_name"`
	VerificationStatus string  `json:"verification_status"`
	CanOfferRides      bool    `json:"can_offer_rides"`
	CanOfferStays      bool    `json:"can_offer_stays"`
	Rating             float64 `json:"rating"`
	RatingCount        int     `json:"rating_count"`
	ProfileImage       *string `json:"profile_image,omitempty"`
}

func (r *PublicUserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.VerificationStatus = model.VerificationStatus
	r.CanOfferRides = model.CanOfferRides
	r.CanOfferStays = model.CanOfferStays
	r.Rating = model.Rating
	r.RatingCount = model.RatingCount
	r.ProfileImage = model.ProfileImage
}

type UpdateProfileRequest struct {
	FullName      *string `db:"full_name"       json:"full_name,omitempty"       validate:"omitempty,min=1,max=100"`
	Phone         *string `db:"phone"           json:"phone,omitempty"           validate:"omitempty,e164"`
	ProfileImage  *string `db:"profile_image"   json:"profile_image,omitempty"   validate:"omitempty,url"`
	CanOfferRides *bool   `db:"can_offer_rides" json:"can_offer_rides,omitempty"`
	CanOfferStays *bool   `db:"can_offer_stays" json:"can_offer_stays,omitempty"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r == UpdateProfileRequest{}
}

// EnablesOffering reports whether the request switches on a provider capability.
func (r UpdateProfileRequest) EnablesOffering() bool {
	return (r.CanOfferRides != nil && *r.CanOfferRides) || (r.CanOfferStays != nil && *r.CanOfferStays)
}

type SubmitVerificationRequest struct {
	Document     *multipart.FileHeader `json:"document" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	DocumentFile multipart.File        `json:"-"`
}

type ReviewVerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
	Note   string `json:"note"   validate:"omitempty,max=500"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
