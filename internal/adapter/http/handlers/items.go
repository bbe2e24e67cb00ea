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

type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	q, err := validation.ParseItemQuery(c.Request.URL.Query())
	if err != nil {
		writeError(c, err, apierrors.MsgInvalidQuery, "invalid item query")
		return
	}

	page, err := h.itemService.ListItems(c.Request.Context(), q)
	if err != nil {
		writeError(c, err, apierrors.MsgFailListItems, "failed to list items")
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemListResponse(page))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, apierrors.MsgFailGetItem, "failed to get item", zap.String("item_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemResponse(item))
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	raw, err := readObject(c)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "failed to read item body")
		return
	}

	input, err := validation.BuildCreateItemInput(raw)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "invalid item payload")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, apierrors.MsgFailCreateItem, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToItemResponse(item))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	raw, err := readObject(c)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "failed to read item body")
		return
	}

	input, err := validation.BuildUpdateItemInput(raw)
	if err != nil {
		writeError(c, err, apierrors.MsgMalformedBody, "invalid item payload")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err, apierrors.MsgFailUpdateItem, "failed to update item", zap.String("item_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToItemResponse(item))
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		writeError(c, err, apierrors.MsgFailDeleteItem, "failed to delete item", zap.String("item_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
