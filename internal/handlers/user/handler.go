package user

import (
	"net/http"

	"linka/infras/otel"
	"linka/internal/domains/user/model"
	"linka/internal/domains/user/model/dto"
	"linka/internal/domains/user/service"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	"linka/shared/failure"
	"linka/shared/validator"
	"linka/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formDocument = "document"

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/me", handler.GetMe)
		routerGroup.Patch("/me", handler.UpdateMe)
		routerGroup.Post("/me/verification", handler.SubmitVerification)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Patch("/{id}/verification", handler.ReviewVerification)
		routerGroup.Post("/{id}/deactivate", handler.DeactivateUser)
	})
}

// GetMe returns the caller's own profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	user, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Current user retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateMe edits the caller's profile and offering flags.
// @Summary Update my profile
// @Description Enabling ride or stay offering requires a verified account.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMe")
	defer scope.End()

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// SubmitVerification uploads an identity document for review.
// @Summary Submit verification document
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Identity document (png, jpeg or pdf)"
// @Success 202 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/me/verification [post]
// @Security BearerAuth
func (handler *Handler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitVerification")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(formDocument)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document from form")

		response.WithError(w, failure.BadRequestFromString("document is required"))

		return
	}
	defer file.Close()

	req := dto.SubmitVerificationRequest{
		Document:     fileHeader,
		DocumentFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate document")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SubmitVerification(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit verification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Verification submitted successfully")

	response.WithMessage(w, http.StatusAccepted, "Verification submitted successfully")
}

// GetUserByID returns the public profile of a user.
// @Summary Get a public profile
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.PublicUserResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// GetUsers lists users for administrators.
// @Summary List users
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by email"
// @Param verification_status query string false "Filter by verification status" Enums(unverified, pending, verified, rejected)
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldVerificationStatus); status != constant.Empty {
		filterGroup.Add(gDto.Filter{
			Field:    model.FieldVerificationStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	users, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Users retrieved successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// ReviewVerification accepts or rejects a submitted document.
// @Summary Review a verification
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ReviewVerificationRequest true "Review Verification Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/{id}/verification [patch]
// @Security BearerAuth
func (handler *Handler) ReviewVerification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewVerification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReviewVerificationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReviewVerification(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review verification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Verification reviewed successfully")

	response.WithMessage(w, http.StatusOK, "Verification reviewed successfully")
}

// DeactivateUser blocks a user from signing in and transacting.
// @Summary Deactivate a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/{id}/deactivate [post]
// @Security BearerAuth
func (handler *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User deactivated successfully")

	response.WithMessage(w, http.StatusOK, "User deactivated successfully")
}
