package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/metrics"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// ProfileHandler handles profile CRUD, embedded history mutation, account
// deletion and the GitHub repo proxy.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetOwn(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert creates or updates the authenticated user's profile.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string                true  "Signed token"
// @Param        body          body    upsertProfileRequest  true  "Profile fields"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorsResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Upsert(c.Request().Context(), ports.UpsertProfileInput{
		OwnerID:        userID,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return err
	}

	metrics.ProfilesUpsertedTotal.Inc()
	return c.JSON(http.StatusOK, profile)
}

// List returns all profiles with owner name and avatar.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}   domain.Profile
// @Failure      500  {object}  msgResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUser returns the profile owned by the given user id.
//
// @Summary      Get profile by user id
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "Owner user id"
// @Success      200      {object}  domain.Profile
// @Failure      400      {object}  msgResponse
// @Router       /api/profile/user/{user_id} [get]
func (h *ProfileHandler) ByUser(c echo.Context) error {
	profile, err := h.service.GetByOwner(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete removes the authenticated user's posts, profile and account.
//
// @Summary      Delete own account
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Success      200  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "User deleted"})
}

// AddExperience prepends a work-history entry.
//
// @Summary      Add an experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "Signed token"
// @Param        body          body    experienceRequest  true  "Experience entry"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorsResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddExperience(c.Request().Context(), userID, ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience removes a work-history entry by id. Removing an unknown
// id leaves the profile unchanged.
//
// @Summary      Remove an experience entry
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        exp_id        path    string  true  "Experience entry id"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation prepends a study-history entry.
//
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string            true  "Signed token"
// @Param        body          body    educationRequest  true  "Education entry"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  errorsResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddEducation(c.Request().Context(), userID, ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation removes a study-history entry by id.
//
// @Summary      Remove an education entry
// @Tags         profile
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        edu_id        path    string  true  "Education entry id"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/profile/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveEducation(c.Request().Context(), userID, c.Param("edu_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos proxies the username's latest public repositories.
//
// @Summary      Get a user's latest GitHub repos
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {array}   domain.GithubRepo
// @Failure      400       {object}  msgResponse
// @Router       /api/profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.service.GithubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, repos)
}
