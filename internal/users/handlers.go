package users

import (
	"frota-backend/internal/middleware"
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles user management handlers.
type Handlers struct {
	Service *Service
}

func actorFromSession(c *fiber.Ctx) Actor {
	actor := Actor{
		UserID: middleware.GetUserID(c),
		Role:   middleware.GetUserRole(c),
	}
	if m, ok := middleware.GetUser(c).(map[string]interface{}); ok {
		if cid, ok := m["company_id"].(string); ok && cid != "" {
			actor.CompanyID = &cid
		}
	}
	return actor
}

// CreateUser POST /api/v1/users/create-user
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var in CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	user, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrFullnameRequired, ErrInvalidEmail, ErrInvalidPassword, ErrInvalidRole:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrEmailTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "User created successfully", user, nil)
}

// GetAllUsers GET /api/v1/users/get-all-users
func (h *Handlers) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Users retrieved successfully", users, nil)
}

// GetUser GET /api/v1/users/get-user/:id
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid user ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	user, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "User retrieved successfully", user, nil)
}

// UpdateUser PUT /api/v1/users/update-user/:id
func (h *Handlers) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid user ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	user, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			return response.NotFound(c, err.Error())
		case ErrFullnameRequired, ErrInvalidEmail, ErrInvalidPassword:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrEmailTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "User updated successfully", user, nil)
}

// UpdateRole PATCH /api/v1/users/update-role/:id
func (h *Handlers) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid user ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	user, err := h.Service.UpdateRole(c.Context(), actorFromSession(c), id, body.Role)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			return response.NotFound(c, err.Error())
		case ErrInvalidRole:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrOwnRole, ErrLastAdmin, ErrDifferentCompany:
			return response.Error(c, err.Error(), fiber.StatusForbidden, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "User role updated successfully", user, nil)
}

// RemoveUser DELETE /api/v1/users/remove-user/:id
func (h *Handlers) RemoveUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid user ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Remove(c.Context(), actorFromSession(c), id); err != nil {
		switch err {
		case ErrUserNotFound:
			return response.NotFound(c, err.Error())
		case ErrSelfRemoval, ErrLastAdmin, ErrDifferentCompany:
			return response.Error(c, err.Error(), fiber.StatusForbidden, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "User removed successfully", nil, nil)
}
