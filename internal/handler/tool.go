package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/parts-store-api/internal/repository"
)

// ToolHandler serves the product catalog.
type ToolHandler struct {
	Tools ToolStore
}

func NewToolHandler(tools ToolStore) *ToolHandler {
	if tools == nil {
		panic("nil store passed to NewToolHandler")
	}
	return &ToolHandler{Tools: tools}
}

// ListTools handles GET /tools.
func (h *ToolHandler) ListTools(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	tools, err := h.Tools.List(ctx)
	if err != nil {
		return respondError(c, "list tools", err)
	}
	return ok(c, tools)
}

// GetTool handles GET /tool/:id.  An unknown id yields {"data": null}.
func (h *ToolHandler) GetTool(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "get tool", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	tool, err := h.Tools.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ok(c, nil)
	}
	if err != nil {
		return respondError(c, "get tool", err)
	}
	return ok(c, tool)
}

// AddTool handles POST /addItem (admin).
func (h *ToolHandler) AddTool(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return respondError(c, "add tool", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Tools.Insert(ctx, doc)
	if err != nil {
		return respondError(c, "add tool", err)
	}
	return created(c, res)
}

// DeleteTool handles DELETE /manage/:id (admin).
func (h *ToolHandler) DeleteTool(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, "delete tool", err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.Tools.Delete(ctx, id)
	if err != nil {
		return respondError(c, "delete tool", err)
	}
	return ok(c, res)
}
