package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// UserHandler manages login accounts; owner-only routes.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     models.Role `json:"role" binding:"required"`

	PersonnelID *uuid.UUID `json:"personnel_id"`
}

type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Role     *models.Role `json:"role"`
	Password *string      `json:"password"`

	PersonnelID *uuid.UUID `json:"personnel_id"`
}

func validRole(r models.Role) bool {
	return r == models.RoleOwner || r == models.RoleManager || r == models.RolePersonnel
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := dbc(c, h.db).Preload("Personnel").Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "could not list users")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "role must be owner, manager or personnel")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         req.Role,
		PersonnelID:  req.PersonnelID,
	}

	if err := dbc(c, h.db).Create(&user).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := dbc(c, h.db).First(&user, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			httperr.BadRequest(c, "invalid_role", "role must be owner, manager or personnel")
			return
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "could not hash password")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.PersonnelID != nil {
		user.PersonnelID = req.PersonnelID
	}

	if err := dbc(c, h.db).Omit("Personnel").Save(&user).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := dbc(c, h.db).First(&user, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	if err := dbc(c, h.db).Delete(&user).Error; err != nil {
		httperr.FromDB(c, err, "user")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
