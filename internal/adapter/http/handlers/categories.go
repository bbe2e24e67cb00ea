package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoplist/internal/adapter/http/mapper"
	"shoplist/internal/adapter/http/validation"
	"shoplist/internal/core/ports"
	"shoplist/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err, apierrors.MsgFailListCategories, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryListResponse(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, apierrors.MsgFailGetCategory, "failed to get category", zap.String("category_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryResponse(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	raw, err := readObject(c)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "failed to read category body")
		return
	}

	name, err := validation.BuildCategoryName(raw)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "invalid category payload")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), name)
	if err != nil {
		writeError(c, err, apierrors.MsgFailCreateCategory, "failed to create category", zap.String("name", name))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryResponse(category))
}

func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	raw, err := readObject(c)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "failed to read category body")
		return
	}

	name, err := validation.BuildCategoryName(raw)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "invalid category payload")
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), id, name)
	if err != nil {
		writeError(c, err, apierrors.MsgFailRenameCategory, "failed to rename category", zap.String("category_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		writeError(c, err, apierrors.MsgFailDeleteCategory, "failed to delete category", zap.String("category_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
