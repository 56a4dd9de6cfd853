package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/facetrack/attendance-backend-go/internal/domain/department"
	"github.com/facetrack/attendance-backend-go/internal/domain/role"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/facetrack/attendance-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	ListRoles(w http.ResponseWriter, r *http.Request)
	CreateRole(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== DEPARTMENT HANDLERS ====================

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", created)
}

// UpdateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.masterService.UpdateDepartment(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.masterService.DeleteDepartment(r.Context(), id)
	if err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, "Department not found")
		return
	}
	response.NoContent(w)
}

// ==================== ROLE HANDLERS ====================

// ListRoles implements MasterHandler.
func (h *MasterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("departmentId")

	roles, err := h.masterService.ListRoles(r.Context(), departmentID)
	if err != nil {
		slog.Error("ListRoles service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, roles)
}

// CreateRole implements MasterHandler.
func (h *MasterHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var createReq role.CreateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateRole(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateRole service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Role created successfully", created)
}

// UpdateRole implements MasterHandler.
func (h *MasterHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.masterService.UpdateRole(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateRole service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// DeleteRole implements MasterHandler.
func (h *MasterHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.masterService.DeleteRole(r.Context(), id)
	if err != nil {
		slog.Error("DeleteRole service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, "Role not found")
		return
	}
	response.NoContent(w)
}
