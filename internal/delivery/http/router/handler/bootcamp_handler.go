// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"bootcamper/internal/delivery/http/response"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const photoFormField = "file"

type createBootcampRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Website       string   `json:"website"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Careers       []string `json:"careers"`
	AverageRating *float64 `json:"averageRating"`
	AverageCost   *float64 `json:"averageCost"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

type updateBootcampRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Website       *string  `json:"website"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	Address       *string  `json:"address"`
	Careers       []string `json:"careers"`
	AverageRating *float64 `json:"averageRating"`
	AverageCost   *float64 `json:"averageCost"`
	Housing       *bool    `json:"housing"`
	JobAssistance *bool    `json:"jobAssistance"`
	JobGuarantee  *bool    `json:"jobGuarantee"`
	AcceptGi      *bool    `json:"acceptGi"`
}

type radiusRequest struct {
	Zipcode  string  `json:"zipcode" validate:"required"`
	Distance float64 `json:"distance" validate:"gte=0"`
}

// BootcampHandler holds dependencies for bootcamp-related handlers.
type BootcampHandler struct {
	uc     usecase.BootcampUsecase
	logger *slog.Logger
}

// NewBootcampHandler is the constructor for BootcampHandler, injected by Fx.
func NewBootcampHandler(uc usecase.BootcampUsecase, logger *slog.Logger) *BootcampHandler {
	return &BootcampHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBootcamps handles GET /bootcamps with filtering, projection, sorting and paging.
func (h *BootcampHandler) ListBootcamps(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), query.BootcampSchema)
	if err != nil {
		return errors.WithStack(err)
	}

	list, err := h.uc.ListBootcamps(c.Request().Context(), q)
	if err != nil {
		return errors.WithStack(err)
	}

	items, err := projectBootcamps(response.NewBootcampResponses(list.Bootcamps), q)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, items, len(list.Bootcamps), &list.Pagination)
}

// GetBootcamp handles GET /bootcamps/:id.
func (h *BootcampHandler) GetBootcamp(c echo.Context) error {
	bootcamp, err := h.uc.GetBootcamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewBootcampResponse(bootcamp))
}

// CreateBootcamp handles POST /bootcamps.
func (h *BootcampHandler) CreateBootcamp(c echo.Context) error {
	var req createBootcampRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(err)
	}

	bootcamp, err := h.uc.CreateBootcamp(c.Request().Context(), &usecase.CreateBootcampInput{
		Name:          req.Name,
		Description:   req.Description,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Careers:       req.Careers,
		AverageRating: req.AverageRating,
		AverageCost:   req.AverageCost,
		Housing:       req.Housing,
		JobAssistance: req.JobAssistance,
		JobGuarantee:  req.JobGuarantee,
		AcceptGi:      req.AcceptGi,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewBootcampResponse(bootcamp))
}

// UpdateBootcamp handles PATCH /bootcamps/:id; only the keys present in the body change.
func (h *BootcampHandler) UpdateBootcamp(c echo.Context) error {
	var req updateBootcampRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(err)
	}

	bootcamp, err := h.uc.UpdateBootcamp(c.Request().Context(), c.Param("id"), &usecase.UpdateBootcampInput{
		Name:          req.Name,
		Description:   req.Description,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Careers:       req.Careers,
		AverageRating: req.AverageRating,
		AverageCost:   req.AverageCost,
		Housing:       req.Housing,
		JobAssistance: req.JobAssistance,
		JobGuarantee:  req.JobGuarantee,
		AcceptGi:      req.AcceptGi,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewBootcampResponse(bootcamp))
}

// DeleteBootcamp handles DELETE /bootcamps/:id and returns the removed bootcamp.
func (h *BootcampHandler) DeleteBootcamp(c echo.Context) error {
	bootcamp, err := h.uc.DeleteBootcamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewBootcampResponse(bootcamp))
}

// GetBootcampsInRadius handles GET /bootcamps/radius/:zipcode/:distance.
func (h *BootcampHandler) GetBootcampsInRadius(c echo.Context) error {
	var req radiusRequest
	if err := echo.PathParamsBinder(c).
		String("zipcode", &req.Zipcode).
		Float64("distance", &req.Distance).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithMessagef("distance: must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bootcamps, err := h.uc.GetBootcampsInRadius(c.Request().Context(), &usecase.RadiusInput{
		Zipcode:  req.Zipcode,
		Distance: req.Distance,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, response.NewBootcampResponses(bootcamps), len(bootcamps), nil)
}

// UploadPhoto handles PATCH /bootcamps/:id/photo with a multipart "file" field.
func (h *BootcampHandler) UploadPhoto(c echo.Context) error {
	input := &usecase.UploadPhotoInput{BootcampID: c.Param("id")}

	fileHeader, err := c.FormFile(photoFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// The usecase reports the missing file once the bootcamp is known to exist.
	case err != nil:
		return bindingError(err)
	default:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		defer closeUpload(h.logger, file)

		input.FileName = fileHeader.Filename
		input.ContentType = fileHeader.Header.Get(echo.HeaderContentType)
		input.Size = fileHeader.Size
		input.Content = file
	}

	name, err := h.uc.UploadPhoto(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, name)
}

func projectBootcamps(items []*response.BootcampResponse, q *query.Query) (any, error) {
	var keep []string
	if q.Populates(query.PopulateCourses) {
		keep = append(keep, query.PopulateCourses)
	}

	return response.Project(items, q.Select, keep...)
}

func closeUpload(logger *slog.Logger, file multipart.File) {
	if err := file.Close(); err != nil {
		logger.Warn("Failed to close uploaded file", slog.Any("error", err))
	}
}

func bindingError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return domainerrors.ErrValidationFailed.
			WithMessagef("Invalid request body").
			WithDetails(fmt.Sprint(httpErr.Message))
	}

	return errors.Wrap(err, "failed to bind request")
}
