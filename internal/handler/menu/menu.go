// File: internal/handler/menu/menu.go
package menu

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"taste-of-aloha/internal/api"
	"taste-of-aloha/internal/model"
	"taste-of-aloha/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Service 是 handler 需要的菜單操作
type Service interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Get(ctx context.Context, id int) (*model.MenuItem, error)
	Create(ctx context.Context, req api.CreateMenuItemRequest) (*model.MenuItem, error)
	Update(ctx context.Context, id int, req api.UpdateMenuItemRequest) (*model.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

// Resource 描述一個 HTTP 資源的顯示名稱
type Resource struct {
	// 單數，例如 "Menu item"
	Name string
	// 複數小寫，例如 "menu items"
	Plural string
}

var (
	MenuResource  = Resource{Name: "Menu item", Plural: "menu items"}
	SnackResource = Resource{Name: "Snack", Plural: "snacks"}
)

// Handler 對單一資源提供 CRUD endpoints
type Handler struct {
	svc      Service
	resource Resource
	log      logrus.FieldLogger
}

func NewHandler(svc Service, resource Resource, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, resource: resource, log: log}
}

// List 列出資源內所有項目，依建立時間新到舊
// @Summary     List menu items
// @Description 回傳 {success, count, data}，data 依 createdAt 由新到舊
// @Tags        menu
// @Produce     json
// @Success     200 {object} api.MenuItemListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /menu [get]
// @Router      /snacks [get]
func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		failed := false
		return h.fail(c, err, api.ErrorResponse{Success: &failed, Message: "Error fetching " + h.resource.Plural})
	}
	return c.JSON(http.StatusOK, api.NewMenuItemListResponse(items))
}

// Get 依 ID 取得單一項目
// @Summary     Get a menu item by ID
// @Tags        menu
// @Produce     json
// @Param       id  path     int true "項目 ID"
// @Success     200 {object} api.MenuItemResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /menu/{id} [get]
// @Router      /snacks/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return h.notFound(c)
		}
		return h.fail(c, err, api.ErrorResponse{Message: "Error fetching " + h.singular()})
	}
	return c.JSON(http.StatusOK, api.NewMenuItemResponse(*item))
}

// Create 建立新項目；price 省略時為 0，isAvailable 省略時為 true
// @Summary     Create a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateMenuItemRequest true "項目內容"
// @Success     201  {object} api.MenuItemResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /menu [post]
// @Router      /snacks [post]
func (h *Handler) Create(c echo.Context) error {
	msg := "Error creating " + h.singular()

	var req api.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}
	if err := c.Validate(&req); err != nil {
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}

	item, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}
	return c.JSON(http.StatusCreated, api.NewMenuItemResponse(*item))
}

// Update 部分更新；未提供的欄位保留原值
// @Summary     Update a menu item
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id   path     int                       true "項目 ID"
// @Param       body body     api.UpdateMenuItemRequest true "要更新的欄位"
// @Success     200  {object} api.MenuItemResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /menu/{id} [put]
// @Router      /snacks/{id} [put]
func (h *Handler) Update(c echo.Context) error {
	msg := "Error updating " + h.singular()

	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	var req api.UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}
	if err := c.Validate(&req); err != nil {
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}

	item, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return h.notFound(c)
		}
		return h.fail(c, err, api.ErrorResponse{Message: msg})
	}
	return c.JSON(http.StatusOK, api.NewMenuItemResponse(*item))
}

// Delete 刪除單一項目
// @Summary     Delete a menu item
// @Tags        menu
// @Produce     json
// @Param       id  path     int true "項目 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /menu/{id} [delete]
// @Router      /snacks/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return h.notFound(c)
		}
		return h.fail(c, err, api.ErrorResponse{Message: "Error deleting " + h.singular()})
	}
	return c.JSON(http.StatusOK, api.MessageResponse{Message: h.resource.Name + " deleted"})
}

func (h *Handler) singular() string {
	return strings.ToLower(h.resource.Name)
}

func (h *Handler) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: h.resource.Name + " not found"})
}

func (h *Handler) fail(c echo.Context, err error, body api.ErrorResponse) error {
	h.log.WithFields(logrus.Fields{
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"method":     c.Request().Method,
		"path":       c.Path(),
	}).WithError(err).Error(body.Message)

	body.Error = err.Error()
	return c.JSON(http.StatusInternalServerError, body)
}

// parseID 非數字或超出 int4 (SERIAL) 範圍的 ID 不可能對應任何資料列
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
